// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, loads configuration for every
// subcommand and resolves build version information.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/strengthmeter/buildvars"
	"github.com/toeirei/strengthmeter/internal/config"
	"github.com/toeirei/strengthmeter/internal/i18n"
	"github.com/toeirei/strengthmeter/internal/logging"
	"github.com/toeirei/strengthmeter/ui/tui"
)

const modulePath = "github.com/toeirei/strengthmeter"

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// appConfig is loaded by setupDefaultServices before any command runs.
var appConfig config.Config

// runTUI is swapped in tests so the root command does not take over the
// terminal.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logging.SetOutput(cmd.ErrOrStderr())
	verbose, _ := cmd.Flags().GetBool("verbose")
	logging.SetDebug(verbose)
	i18n.Init(appConfig.Language)

	logging.Debugf("config: language=%s field_name=%s output=%s", appConfig.Language, appConfig.FieldName, appConfig.Output)
	return nil
}

// Execute runs the CLI entrypoint. main should call this and handle the
// process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates a fresh root command with all subcommands. Tests call
// it once per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strengthmeter",
		Short: "Live password strength indicator",
		Long: `strengthmeter scores passwords against five checks (length, uppercase,
lowercase, number, special character) and shows the result as a strength
meter plus a requirement checklist.

Running without a subcommand opens the interactive form.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(tui.Options{FieldName: appConfig.FieldName, Reveal: appConfig.Reveal})
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("field-name", "password1", "Name of the password fields that get a strength indicator")
	cmd.Flags().Bool("reveal", false, "Start with passwords shown in clear text")

	cmd.AddCommand(
		newCheckCmd(),
		newRenderCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
