// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
package strength

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Examples(t *testing.T) {
	cases := []struct {
		name     string
		password string
		score    int
		tier     Tier
	}{
		{"empty", "", 0, TierVeryWeak},
		{"lowercase and length", "abcdefgh", 40, TierWeak},
		{"no special", "Abcdefg1", 80, TierStrong},
		{"all five", "Ab1!efgh", 100, TierStrong},
		{"short mixed", "aB1", 60, TierGood},
		{"single upper", "A", 20, TierVeryWeak},
		{"special only", "!!", 20, TierVeryWeak},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Evaluate(tc.password)
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.tier, res.Tier)
		})
	}
}

func TestEvaluate_EmptyLabelAndClasses(t *testing.T) {
	res := Evaluate("")
	assert.Equal(t, "Very Weak", res.Label())
	assert.Equal(t, "bg-danger", res.IndicatorClass())
	assert.Equal(t, "text-danger", res.TextClass())
	require.Len(t, res.Requirements, 5)
	for _, r := range Requirements() {
		assert.False(t, res.Requirements[r], "requirement %s", r)
	}
}

func TestEvaluate_ScoreIsMultipleOfTwenty(t *testing.T) {
	inputs := []string{
		"", " ", "a", "A", "1", "!", "abcdefgh", "ABCDEFGH", "12345678",
		"!@#$%^&*", "Ab1!", "Ab1!efgh", "pässwörd", "密码密码密码密码",
		"\x00\x01\x02", strings.Repeat("x", 1000), "a-b_c=d+e",
	}
	for _, in := range inputs {
		s := Evaluate(in).Score
		assert.Zero(t, s%PointsPerRequirement, "input %q score %d", in, s)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestTierForScore_Boundaries(t *testing.T) {
	cases := map[int]Tier{
		0:   TierVeryWeak,
		20:  TierVeryWeak,
		39:  TierVeryWeak,
		40:  TierWeak,
		59:  TierWeak,
		60:  TierGood,
		79:  TierGood,
		80:  TierStrong,
		100: TierStrong,
	}
	for score, want := range cases {
		assert.Equal(t, want, TierForScore(score), "score %d", score)
	}
}

func TestTier_Metadata(t *testing.T) {
	cases := []struct {
		tier      Tier
		key       string
		label     string
		indicator string
		text      string
	}{
		{TierVeryWeak, "very_weak", "Very Weak", "bg-danger", "text-danger"},
		{TierWeak, "weak", "Weak", "bg-warning", "text-warning"},
		{TierGood, "good", "Good", "bg-info", "text-info"},
		{TierStrong, "strong", "Strong", "bg-success", "text-success"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.key, tc.tier.Key())
		assert.Equal(t, tc.label, tc.tier.Label())
		assert.Equal(t, tc.label, tc.tier.String())
		assert.Equal(t, tc.indicator, tc.tier.IndicatorClass())
		assert.Equal(t, tc.text, tc.tier.TextClass())
	}

	// out of range values fall back to the lowest tier
	assert.Equal(t, "Very Weak", Tier(42).Label())
}

func TestTier_MarshalsAsLabel(t *testing.T) {
	b, err := json.Marshal(map[string]Tier{"tier": TierGood})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"Good"}`, string(b))
}

func TestEvaluate_NonASCIILettersSatisfyNothing(t *testing.T) {
	res := Evaluate("éàüö")
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, TierVeryWeak, res.Tier)

	// eight accented letters only pass the length check
	res = Evaluate("éàüöéàüö")
	assert.Equal(t, 20, res.Score)
	assert.True(t, res.Requirements[RequirementLength])
	assert.False(t, res.Requirements[RequirementUppercase])
	assert.False(t, res.Requirements[RequirementLowercase])

	// fullwidth digits are not ASCII digits
	assert.False(t, HasDigit("１２３"))
	// a fullwidth exclamation mark is not in the special set
	assert.False(t, HasSpecial("！"))
}

func TestEvaluate_EmojiCountTwiceTowardLength(t *testing.T) {
	res := Evaluate("😀😀😀😀")
	assert.Equal(t, 20, res.Score)
	assert.Equal(t, TierVeryWeak, res.Tier)
	assert.True(t, res.Requirements[RequirementLength])

	res = Evaluate("Ab1!😀😀")
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, TierStrong, res.Tier)
}
