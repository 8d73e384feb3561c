// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads strengthmeter's settings from defaults, config
// files, environment variables and command flags, using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/toeirei/strengthmeter/internal/i18n"
)

// Output formats accepted by the check command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the application configuration.
type Config struct {
	Language  string `mapstructure:"language" yaml:"language"`
	FieldName string `mapstructure:"field_name" yaml:"field_name"`
	Output    string `mapstructure:"output" yaml:"output"`
	Reveal    bool   `mapstructure:"reveal" yaml:"reveal"`
}

// Defaults returns the default values keyed the way Viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":   "en",
		"field_name": "password1",
		"output":     OutputText,
		"reveal":     false,
	}
}

// Validate checks values that cannot be expressed through defaults alone.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", c.Output)
	}
	if strings.TrimSpace(c.FieldName) == "" {
		return errors.New("field_name must not be empty")
	}
	if !i18n.IsAvailable(c.Language) {
		return fmt.Errorf("unsupported language %q (available: %s)", c.Language, strings.Join(availableLanguages(), ", "))
	}
	return nil
}

func availableLanguages() []string {
	var codes []string
	for code := range i18n.GetAvailableLocales() {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Strengthmeter")
		default:
			configDir = "/etc/strengthmeter"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "strengthmeter")
	}

	return filepath.Join(configDir, "strengthmeter.yaml"), nil
}

// Path returns where WriteConfigFile writes for the given scope.
func Path(system bool) (string, error) {
	return getConfigPath(system)
}

// LoadConfig builds a T from, in increasing precedence: defaults, the first
// strengthmeter.yaml found in the user dir, system dir or working directory,
// an explicit file merged on top, STRENGTHMETER_* environment variables and
// the changed flags of cmd. A missing searched file is not an error; a
// missing explicit file is.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("strengthmeter")
	v.SetConfigType("yaml")

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
		if err := v.MergeInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", *explicitPath, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("strengthmeter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := defaults[key]; known {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
