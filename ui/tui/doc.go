// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal surface: a password form whose
// fields, strength meter and requirement checklist implement the
// interfaces of `core/binder`. Scoring lives in `core/strength`.
package tui
