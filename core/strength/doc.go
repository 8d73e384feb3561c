// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength scores a candidate password with five character-class
// checks. It is deterministic and UI-agnostic; surfaces in `ui/` render the
// Result through `core/binder`.
//
// The score is a heuristic. It is not an entropy estimate and it never
// rejects a password.
package strength
