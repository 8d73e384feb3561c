// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui contains the text shared by strengthmeter's surfaces (CLI, TUI,
// HTML). Each surface lives in a sub-package and renders results produced
// by `core`.
package ui
