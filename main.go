// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for strengthmeter.
//
// Usage:
//
//	go run . [flags]
//	./strengthmeter [command] [flags]
//
// Without a command the interactive form starts. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/strengthmeter/internal/logging"
	"github.com/toeirei/strengthmeter/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("strengthmeter: %v", err)
		os.Exit(1)
	}
}
