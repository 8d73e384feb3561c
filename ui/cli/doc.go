// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for strengthmeter using
// Cobra. It wires configuration, localisation and logging, then hands off to
// `core` for scoring and to the `ui` surfaces for display. Commands stay
// thin.
package cli
