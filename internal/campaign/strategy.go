package campaign

import "github.com/talgya/campaign-trail/internal/encounters"

// Strategy is the auto-player. It scores each choice by expected trust
// minus a penalty for risk and picks the best.
type Strategy struct {
	RiskAversion float64 // trust points given up per point of risk
}

// DefaultStrategy weighs 20 points of risk as one point of trust.
func DefaultStrategy() Strategy {
	return Strategy{RiskAversion: 1.0 / 20}
}

// Score is success × trust − risk × aversion.
func (s Strategy) Score(c encounters.Choice) float64 {
	return c.SuccessChance*float64(c.TrustDelta) - float64(c.RiskLevel)*s.RiskAversion
}

// Pick returns the best-scoring choice on enc. Ties go to the earlier
// choice. It reports false when there is nothing to pick.
func (s Strategy) Pick(enc *encounters.Encounter) (encounters.Choice, bool) {
	if enc == nil || len(enc.Choices) == 0 {
		return encounters.Choice{}, false
	}
	best := enc.Choices[0]
	bestScore := s.Score(best)
	for _, c := range enc.Choices[1:] {
		if sc := s.Score(c); sc > bestScore {
			best, bestScore = c, sc
		}
	}
	return best, true
}
