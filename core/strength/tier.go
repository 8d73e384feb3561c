// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

// Tier buckets a score into one of four strength levels.
type Tier int

const (
	TierVeryWeak Tier = iota
	TierWeak
	TierGood
	TierStrong
)

// Score thresholds. Each is the inclusive lower bound of its tier.
const (
	thresholdWeak   = 40
	thresholdGood   = 60
	thresholdStrong = 80
)

type tierInfo struct {
	key            string
	label          string
	indicatorClass string
	textClass      string
}

var tiers = [...]tierInfo{
	TierVeryWeak: {"very_weak", "Very Weak", "bg-danger", "text-danger"},
	TierWeak:     {"weak", "Weak", "bg-warning", "text-warning"},
	TierGood:     {"good", "Good", "bg-info", "text-info"},
	TierStrong:   {"strong", "Strong", "bg-success", "text-success"},
}

// TierForScore classifies a score.
func TierForScore(score int) Tier {
	switch {
	case score < thresholdWeak:
		return TierVeryWeak
	case score < thresholdGood:
		return TierWeak
	case score < thresholdStrong:
		return TierGood
	default:
		return TierStrong
	}
}

func (t Tier) info() tierInfo {
	if t < TierVeryWeak || t > TierStrong {
		return tiers[TierVeryWeak]
	}
	return tiers[t]
}

// Key is a stable identifier suitable for message catalogs.
func (t Tier) Key() string { return t.info().key }

// Label is the English display label, e.g. "Very Weak".
func (t Tier) Label() string { return t.info().label }

// IndicatorClass is the style class for the indicator fill.
func (t Tier) IndicatorClass() string { return t.info().indicatorClass }

// TextClass is the style class for the label text.
func (t Tier) TextClass() string { return t.info().textClass }

func (t Tier) String() string { return t.Label() }

// MarshalText encodes the tier as its label.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.Label()), nil
}
