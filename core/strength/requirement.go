// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"strings"
	"unicode/utf16"
)

// MinLength is the number of characters the length check requires.
// Characters are UTF-16 code units, so one emoji counts as two.
const MinLength = 8

// SpecialCharacters is the fixed set accepted by the special-character
// check. It is deliberately not every punctuation mark; do not extend it.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Requirement names one character-class check. The values match the
// `data-requirement` attribute used by host markup.
type Requirement string

const (
	RequirementLength    Requirement = "length"
	RequirementUppercase Requirement = "uppercase"
	RequirementLowercase Requirement = "lowercase"
	RequirementNumber    Requirement = "number"
	RequirementSpecial   Requirement = "special"
)

var requirements = []Requirement{
	RequirementLength,
	RequirementUppercase,
	RequirementLowercase,
	RequirementNumber,
	RequirementSpecial,
}

// Requirements returns all requirements in display order.
func Requirements() []Requirement {
	out := make([]Requirement, len(requirements))
	copy(out, requirements)
	return out
}

// ParseRequirement maps a markup value to a Requirement. Matching is exact.
func ParseRequirement(s string) (Requirement, bool) {
	for _, r := range requirements {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Satisfied reports whether password meets r. Unknown requirements are
// never satisfied.
func (r Requirement) Satisfied(password string) bool {
	switch r {
	case RequirementLength:
		return HasMinLength(password)
	case RequirementUppercase:
		return HasUppercase(password)
	case RequirementLowercase:
		return HasLowercase(password)
	case RequirementNumber:
		return HasDigit(password)
	case RequirementSpecial:
		return HasSpecial(password)
	}
	return false
}

// HasMinLength reports whether password has at least MinLength characters.
func HasMinLength(password string) bool {
	return utf16Len(password) >= MinLength
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// HasUppercase reports whether password contains one of A-Z.
func HasUppercase(password string) bool {
	return containsRange(password, 'A', 'Z')
}

// HasLowercase reports whether password contains one of a-z.
func HasLowercase(password string) bool {
	return containsRange(password, 'a', 'z')
}

// HasDigit reports whether password contains one of 0-9. Other Unicode
// digits do not count.
func HasDigit(password string) bool {
	return containsRange(password, '0', '9')
}

// HasSpecial reports whether password contains a rune from SpecialCharacters.
func HasSpecial(password string) bool {
	return strings.ContainsAny(password, SpecialCharacters)
}

func containsRange(s string, lo, hi rune) bool {
	for _, c := range s {
		if c >= lo && c <= hi {
			return true
		}
	}
	return false
}

// RequirementSet records, per requirement, whether a password satisfies it.
// Sets built by Check always hold all five keys.
type RequirementSet map[Requirement]bool

// Check evaluates every requirement against password.
func Check(password string) RequirementSet {
	set := make(RequirementSet, len(requirements))
	for _, r := range requirements {
		set[r] = r.Satisfied(password)
	}
	return set
}

// Count returns the number of satisfied requirements.
func (s RequirementSet) Count() int {
	n := 0
	for _, met := range s {
		if met {
			n++
		}
	}
	return n
}
