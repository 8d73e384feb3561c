// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/strengthmeter/core/binder"
	"github.com/toeirei/strengthmeter/internal/i18n"
	"github.com/toeirei/strengthmeter/internal/logging"
	"github.com/toeirei/strengthmeter/ui"
	"github.com/toeirei/strengthmeter/ui/web"
)

func newRenderCmd() *cobra.Command {
	var (
		password  string
		fromStdin bool
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "render <page.html>",
		Short: "Attach strength indicators to an HTML page",
		Long: `Parses an HTML page, inserts a strength indicator after every password
field named --field-name and writes the page back out. With --password (or
--stdin) the value is typed into every bound field first, which updates the
indicators and the [data-requirement] checklist. Typed values are never
written to the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromStdin {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = line
			}
			typed := fromStdin || cmd.Flags().Changed("password")

			doc, err := loadPage(args[0])
			if err != nil {
				return err
			}

			name := appConfig.FieldName
			b := binder.Bind(doc, binder.WithFieldName(name))
			if b.Len() == 0 {
				logging.Warnf("%s", i18n.T("render.no_fields", name))
			} else {
				logging.Infof("%s", i18n.T("render.bound", b.Len()))
			}

			fields := doc.Fields(name)
			switch {
			case typed:
				for _, f := range fields {
					f.SetValue(password)
				}
			case prefilled(fields):
				b.Refresh()
			}

			return writePage(cmd.OutOrStdout(), outPath, doc)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to type into every bound field")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from the first line of stdin")
	cmd.Flags().StringVarP(&outPath, "out", "O", "", "Write the page to this file instead of stdout")
	return cmd
}

func loadPage(path string) (*web.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return web.Parse(f, web.WithLabeler(ui.TierLabel))
}

// prefilled reports whether any field already carries a value in markup.
func prefilled(fields []*web.Field) bool {
	for _, f := range fields {
		if f.Value() != "" {
			return true
		}
	}
	return false
}

func writePage(stdout io.Writer, outPath string, doc *web.Document) error {
	if outPath == "" {
		return doc.Render(stdout)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render page: %w", err)
	}
	return f.Close()
}
