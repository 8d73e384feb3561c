// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package ui

import (
	"github.com/toeirei/strengthmeter/core/strength"
	"github.com/toeirei/strengthmeter/internal/i18n"
)

// TierLabel returns the localised label for tier, or the English label when
// the active catalog has none.
func TierLabel(tier strength.Tier) string {
	id := "tier." + tier.Key()
	if s := i18n.T(id); s != id {
		return s
	}
	return tier.Label()
}

// RequirementText returns the localised checklist text for r.
func RequirementText(r strength.Requirement) string {
	return i18n.T("requirement." + string(r))
}
