// Package campaign is the host-side view of the candidate: office tier,
// approval that drifts between stops, and the effect of each completed stop.
package campaign

import (
	"log/slog"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/campaign-trail/internal/encounters"
	"github.com/talgya/campaign-trail/internal/engine"
	"github.com/talgya/campaign-trail/internal/reporter"
	"github.com/talgya/campaign-trail/internal/trail"
)

const (
	MaxTier = 5

	// Approval points per point of net trust at a stop.
	TrustWeight = 0.25

	// Largest swing the daily news cycle can add to approval either way.
	DriftAmplitude = 3.0

	// Positive stops needed at a tier before moving up.
	DefaultPromoteAfter = 3
)

// Campaign implements trail.PlayerContext for a running campaign.
type Campaign struct {
	Name   string  `json:"name"`
	Tier   int     `json:"tier"`
	Rating float64 `json:"approval"`
	Day    int     `json:"day"`

	PositiveStops int `json:"positive_stops"` // at the current tier
	PromoteAfter  int `json:"promote_after"`

	StoriesAbsorbed int `json:"stories_absorbed"`

	noise opensimplex.Noise
}

var _ trail.PlayerContext = (*Campaign)(nil)

// New starts a campaign. The seed drives the approval drift only.
func New(name string, tier int, approval float64, seed int64) *Campaign {
	return &Campaign{
		Name:         name,
		Tier:         trail.Clamp(tier, 1, MaxTier),
		Rating:       trail.Clamp(approval, 0, 100),
		PromoteAfter: DefaultPromoteAfter,
		noise:        opensimplex.NewNormalized(seed),
	}
}

func (c *Campaign) OfficeTier() int       { return c.Tier }
func (c *Campaign) Approval() float64     { return c.Rating }
func (c *Campaign) CandidateName() string { return c.Name }

// Advance moves to the next campaign day and applies the news-cycle drift.
// It returns the drift applied.
func (c *Campaign) Advance() float64 {
	c.Day++
	drift := (octaveNoise(c.noise, float64(c.Day), float64(c.Tier), 3, 0.15, 0.5) - 0.5) * 2 * DriftAmplitude
	c.Rating = trail.Clamp(c.Rating+drift, 0, 100)
	return drift
}

// ApplyResult folds a completed stop into approval and tier. It reports
// whether the candidate moved up a tier.
func (c *Campaign) ApplyResult(res *engine.Result) bool {
	if res == nil {
		return false
	}
	c.Rating = trail.Clamp(c.Rating+TrustWeight*float64(res.NetTrust), 0, 100)

	if res.OverallOutcome != encounters.OutcomePositive {
		return false
	}
	c.PositiveStops++
	if c.PositiveStops < c.PromoteAfter || c.Tier >= MaxTier {
		return false
	}
	c.Tier++
	c.PositiveStops = 0
	slog.Info("candidate promoted", "candidate", c.Name, "tier", c.Tier, "approval", c.Rating)
	return true
}

// AbsorbStory applies a published investigation. Each line of evidence costs
// a point of approval on top of a flat hit.
func (c *Campaign) AbsorbStory(s reporter.Story) float64 {
	hit := 5 + float64(len(s.Evidence))
	c.Rating = trail.Clamp(c.Rating-hit, 0, 100)
	c.StoriesAbsorbed++
	slog.Warn("investigation published", "outlet", s.Outlet, "headline", s.Headline, "approval_hit", hit)
	return hit
}

// octaveNoise layers several frequencies of simplex noise. The result stays
// in [0, 1) for a normalized source.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
