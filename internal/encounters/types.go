// Package encounters wraps citizens in resolvable interactions and resolves
// the player's chosen response into outcomes, headlines and resource deltas.
package encounters

import (
	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/trail"
)

// Outcome is the terminal category of a resolved encounter.
type Outcome uint8

const (
	OutcomePositive Outcome = iota
	OutcomeNeutral
	OutcomeNegative
	OutcomeDisaster
	OutcomeSecretRevealed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePositive:
		return "Positive"
	case OutcomeNeutral:
		return "Neutral"
	case OutcomeNegative:
		return "Negative"
	case OutcomeDisaster:
		return "Disaster"
	case OutcomeSecretRevealed:
		return "Secret Revealed"
	default:
		return "Unknown"
	}
}

// MediaImpact is how far a story travels.
type MediaImpact uint8

const (
	MediaNone MediaImpact = iota
	MediaLocalBlip
	MediaRegionalStory
	MediaNationalMention
	MediaViralSensation
)

// String returns the media tier name.
func (m MediaImpact) String() string {
	switch m {
	case MediaLocalBlip:
		return "Local Blip"
	case MediaRegionalStory:
		return "Regional Story"
	case MediaNationalMention:
		return "National Mention"
	case MediaViralSensation:
		return "Viral Sensation"
	default:
		return "None"
	}
}

// Kind is the shape of an encounter.
type Kind uint8

const (
	KindStandard Kind = iota
	KindProjectile
	KindChild
	KindSecretWitness
	KindReporter
)

// String returns the encounter kind name.
func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "Standard"
	case KindProjectile:
		return "Projectile"
	case KindChild:
		return "Child"
	case KindSecretWitness:
		return "Secret Witness"
	case KindReporter:
		return "Reporter"
	default:
		return "Unknown"
	}
}

// Encounter is one resolvable interaction between the candidate and a
// citizen or the reporter.
type Encounter struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Event     trail.EventType `json:"event"`
	Hostility trail.Hostility `json:"hostility"`
	Location  string          `json:"location"`

	// Snapshot of the citizen at generation time.
	Citizen      citizens.Citizen            `json:"citizen"`
	Archetype    citizens.Archetype          `json:"archetype,omitempty"`
	Quirk        string                      `json:"quirk,omitempty"`
	Memorability int                         `json:"memorability"`
	Unique       *citizens.UniqueInteraction `json:"unique,omitempty"`

	OpeningAction   string `json:"opening_action"`
	OpeningDialogue string `json:"opening_dialogue"`
	Context         string `json:"context"`

	HasAudience  bool `json:"has_audience"`
	PressPresent bool `json:"press_present"`
	Recorded     bool `json:"recorded"`

	// Secret carryover.
	HasSecret    bool                `json:"has_secret"`
	SecretKind   citizens.SecretKind `json:"secret_kind,omitempty"`
	SecretDetail string              `json:"secret_detail,omitempty"`

	Projectile    citizens.ProjectileKind `json:"projectile,omitempty"`
	ChildQuestion string                  `json:"child_question,omitempty"`
	Revelation    *Revelation             `json:"revelation,omitempty"`

	Choices []Choice `json:"choices"`

	// Filled once by the resolver.
	Resolved           bool        `json:"resolved"`
	Outcome            Outcome     `json:"outcome"`
	OutcomeDescription string      `json:"outcome_description,omitempty"`
	Headline           string      `json:"headline,omitempty"`
	MediaImpact        MediaImpact `json:"media_impact"`
}

// Subject is the display name of whoever the candidate is facing.
func (e *Encounter) Subject() string {
	if e.Citizen.Name == "" {
		return "a voter"
	}
	return e.Citizen.Name
}

// Resolution is the result of resolving one encounter.
type Resolution struct {
	EncounterID string `json:"encounter_id"`
	Kind        Kind   `json:"kind"`
	Action      Action `json:"action"`
	Success     bool   `json:"success"`

	Outcome     Outcome `json:"outcome"`
	Description string  `json:"description"`

	TrustDelta        int                        `json:"trust_delta"`
	MediaDelta        int                        `json:"media_delta"`
	PartyLoyaltyDelta int                        `json:"party_loyalty_delta"`
	BlocDeltas        map[citizens.VoterBloc]int `json:"bloc_deltas,omitempty"`
	Cost              int                        `json:"cost"`

	SecretExposed       bool                `json:"secret_exposed"`
	ExposedSecretKind   citizens.SecretKind `json:"exposed_secret_kind,omitempty"`
	ExposedSecretDetail string              `json:"exposed_secret_detail,omitempty"`

	Headline    string      `json:"headline,omitempty"`
	MediaImpact MediaImpact `json:"media_impact"`
	Viral       bool        `json:"viral"`

	Projectile      *ProjectileImpact `json:"projectile,omitempty"`
	MemorableMoment string            `json:"memorable_moment,omitempty"`
}
