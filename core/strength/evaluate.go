// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

// PointsPerRequirement is the score contributed by each satisfied
// requirement. Five requirements give a maximum of 100.
const PointsPerRequirement = 20

// Result is the outcome of one evaluation. It is recomputed on every
// keystroke and never cached.
type Result struct {
	Score        int
	Tier         Tier
	Requirements RequirementSet
}

// Evaluate scores password. It accepts any string, including the empty one.
func Evaluate(password string) Result {
	reqs := Check(password)
	score := reqs.Count() * PointsPerRequirement
	return Result{
		Score:        score,
		Tier:         TierForScore(score),
		Requirements: reqs,
	}
}

func (r Result) Label() string          { return r.Tier.Label() }
func (r Result) IndicatorClass() string { return r.Tier.IndicatorClass() }
func (r Result) TextClass() string      { return r.Tier.TextClass() }
