// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/strengthmeter/core/binder"
	"github.com/toeirei/strengthmeter/core/strength"
	"github.com/toeirei/strengthmeter/internal/config"
	"github.com/toeirei/strengthmeter/internal/i18n"
	"github.com/toeirei/strengthmeter/ui"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// report is the printable form of a strength.Result.
type report struct {
	Score          int                 `json:"score" yaml:"score"`
	Tier           string              `json:"tier" yaml:"tier"`
	Label          string              `json:"label" yaml:"label"`
	Language       string              `json:"language" yaml:"language"`
	IndicatorClass string              `json:"indicator_class" yaml:"indicator_class"`
	TextClass      string              `json:"text_class" yaml:"text_class"`
	Requirements   []requirementReport `json:"requirements" yaml:"requirements"`
}

type requirementReport struct {
	Name      string `json:"name" yaml:"name"`
	Text      string `json:"text" yaml:"text"`
	Satisfied bool   `json:"satisfied" yaml:"satisfied"`
}

func newReport(res strength.Result) report {
	r := report{
		Score:          res.Score,
		Tier:           res.Tier.Label(),
		Label:          ui.TierLabel(res.Tier),
		Language:       i18n.GetLang(),
		IndicatorClass: res.IndicatorClass(),
		TextClass:      res.TextClass(),
	}
	for _, req := range strength.Requirements() {
		r.Requirements = append(r.Requirements, requirementReport{
			Name:      string(req),
			Text:      ui.RequirementText(req),
			Satisfied: res.Requirements[req],
		})
	}
	return r
}

func writeReport(w io.Writer, r report, format string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintln(w, i18n.T("check.score", r.Score))
		fmt.Fprintln(w, i18n.T("check.strength", r.Label))
		for _, req := range r.Requirements {
			fmt.Fprintln(w, binder.MarkText(req.Text, req.Satisfied))
		}
		return nil
	}
}

func newCheckCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password and print the result",
		Long: `Scores one password and prints the score, the strength tier and the
requirement checklist. The password is taken from the argument, from the
first line of stdin with --stdin, or from an echo-free prompt.

The exit status does not depend on the strength.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, args, fromStdin)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), newReport(strength.Evaluate(password)), appConfig.Output)
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from the first line of stdin")
	cmd.Flags().StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
	return cmd
}

// readPassword picks the password source: argument, --stdin, an interactive
// prompt on a terminal, or piped stdin.
func readPassword(cmd *cobra.Command, args []string, fromStdin bool) (string, error) {
	if len(args) == 1 && !fromStdin {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), i18n.T("check.prompt"))
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.New(i18n.T("check.error_read_password", err))
		}
		return string(b), nil
	}
	return readLine(in)
}

// readLine returns the first line of r without its line ending. Empty input
// is an empty password, not an error.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
