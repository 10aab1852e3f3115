package engine

import (
	"fmt"
	"strings"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/encounters"
	"github.com/talgya/campaign-trail/internal/press"
	"github.com/talgya/campaign-trail/internal/trail"
)

// TrailEvent is one campaign stop.
type TrailEvent struct {
	ID          string          `json:"id"`
	Day         int             `json:"day"`
	Type        trail.EventType `json:"type"`
	Location    string          `json:"location"`
	Description string          `json:"description"`

	ExpectedAttendance int `json:"expected_attendance"`
	ActualAttendance   int `json:"actual_attendance"`

	HostilityScore float64         `json:"hostility_score"`
	Hostility      trail.Hostility `json:"hostility"`

	PressPresent bool   `json:"press_present"`
	PressOutlet  string `json:"press_outlet,omitempty"`

	// Roster is the crowd drawn for the stop. Shaped encounters bring their
	// own citizen and are not added to it.
	Roster    []*citizens.Citizen     `json:"roster"`
	Planned   []*encounters.Encounter `json:"planned"`
	Completed []*encounters.Encounter `json:"completed"`

	Resolutions []*encounters.Resolution `json:"resolutions"`

	AmbushPlanned  bool `json:"ambush_planned"`
	AmbushOccurred bool `json:"ambush_occurred"`

	Result *Result `json:"result,omitempty"`
}

// Result aggregates one completed stop.
type Result struct {
	EventID string          `json:"event_id"`
	Type    trail.EventType `json:"type"`
	Forced  bool            `json:"forced"`

	TotalEncounters    int `json:"total_encounters"`
	PositiveEncounters int `json:"positive_encounters"`
	NeutralEncounters  int `json:"neutral_encounters"`
	NegativeEncounters int `json:"negative_encounters"`
	DisasterEncounters int `json:"disaster_encounters"`
	SecretsRevealed    int `json:"secrets_revealed"`
	ViralMoments       int `json:"viral_moments"`

	NetTrust        int                        `json:"net_trust"`
	NetMedia        int                        `json:"net_media"`
	NetPartyLoyalty int                        `json:"net_party_loyalty"`
	CapitalSpent    int                        `json:"capital_spent"`
	BlocDeltas      map[citizens.VoterBloc]int `json:"bloc_deltas"`

	RevealedSecrets  []citizens.SecretKind `json:"revealed_secrets"`
	Headlines        []string              `json:"headlines"`
	MemorableMoments []string              `json:"memorable_moments"`

	SecurityIncident bool `json:"security_incident"`
	MedicalEmergency bool `json:"medical_emergency"`
	AmbushOccurred   bool `json:"ambush_occurred"`

	OverallOutcome      encounters.Outcome `json:"overall_outcome"`
	HeadlineOfTheDay    string             `json:"headline_of_the_day"`
	MostMemorableMoment string             `json:"most_memorable_moment,omitempty"`
}

// Aggregate folds an event's resolutions into a Result. Secret reveals count
// against the stop alongside ordinary negatives.
func Aggregate(ev *TrailEvent, candidate string) *Result {
	r := &Result{
		EventID:        ev.ID,
		Type:           ev.Type,
		BlocDeltas:     make(map[citizens.VoterBloc]int),
		AmbushOccurred: ev.AmbushOccurred,
	}

	var (
		bestHeadline   string
		bestHeadlineAt = -1
		bestMoment     string
		bestMomentAt   = -1
	)
	for i, res := range ev.Resolutions {
		r.TotalEncounters++
		switch res.Outcome {
		case encounters.OutcomePositive:
			r.PositiveEncounters++
		case encounters.OutcomeNeutral:
			r.NeutralEncounters++
		case encounters.OutcomeNegative:
			r.NegativeEncounters++
		case encounters.OutcomeDisaster:
			r.DisasterEncounters++
		case encounters.OutcomeSecretRevealed:
			r.SecretsRevealed++
		}

		r.NetTrust += res.TrustDelta
		r.NetMedia += res.MediaDelta
		r.NetPartyLoyalty += res.PartyLoyaltyDelta
		r.CapitalSpent += res.Cost
		for b, d := range res.BlocDeltas {
			r.BlocDeltas[b] += d
		}

		if res.SecretExposed {
			r.RevealedSecrets = append(r.RevealedSecrets, res.ExposedSecretKind)
		}
		if res.Viral {
			r.ViralMoments++
		}
		if res.Headline != "" {
			r.Headlines = append(r.Headlines, res.Headline)
			weight := abs(res.TrustDelta) + abs(res.MediaDelta)
			if res.Viral || res.SecretExposed {
				weight += 100
			}
			if weight > bestHeadlineAt {
				bestHeadline, bestHeadlineAt = res.Headline, weight
			}
		}
		if res.MemorableMoment != "" {
			r.MemorableMoments = append(r.MemorableMoments, res.MemorableMoment)
			if i < len(ev.Completed) && ev.Completed[i].Memorability > bestMomentAt {
				bestMoment, bestMomentAt = res.MemorableMoment, ev.Completed[i].Memorability
			}
		}

		if res.Action == encounters.ActionCallSecurity || (res.Projectile != nil && res.Projectile.Hit) {
			r.SecurityIncident = true
		}
		if res.Projectile != nil && res.Projectile.Face {
			r.MedicalEmergency = true
		}
	}

	r.OverallOutcome = overallOutcome(r.PositiveEncounters, r.NegativeEncounters+r.SecretsRevealed, r.DisasterEncounters)

	r.HeadlineOfTheDay = bestHeadline
	if r.HeadlineOfTheDay == "" {
		r.HeadlineOfTheDay = press.DayHeadline(toneFor(r.OverallOutcome), candidate, strings.TrimPrefix(ev.Location, "the "))
	}
	r.MostMemorableMoment = bestMoment
	return r
}

// overallOutcome: any disaster sinks the stop; positives must more than
// double negatives to count as a win.
func overallOutcome(positives, negatives, disasters int) encounters.Outcome {
	switch {
	case disasters > 0:
		return encounters.OutcomeNegative
	case positives > 2*negatives:
		return encounters.OutcomePositive
	case negatives > positives:
		return encounters.OutcomeNegative
	default:
		return encounters.OutcomeNeutral
	}
}

func toneFor(o encounters.Outcome) press.Tone {
	switch o {
	case encounters.OutcomePositive:
		return press.ToneGood
	case encounters.OutcomeNegative, encounters.OutcomeDisaster:
		return press.ToneBad
	default:
		return press.ToneFlat
	}
}

// scandalLabel names a revealed secret the way a reporter would bring it up.
func scandalLabel(k citizens.SecretKind) string {
	return fmt.Sprintf("the %s allegation", strings.ToLower(k.String()))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
