package encounters

import (
	"errors"
	"fmt"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/press"
	"github.com/talgya/campaign-trail/internal/trail"
)

var (
	ErrNilEncounter    = errors.New("nil encounter")
	ErrAlreadyResolved = errors.New("encounter already resolved")
	ErrInvalidChoice   = errors.New("invalid choice")
)

// SecretExposureChance is the chance an encounter's secret comes out
// whatever the player picks.
const SecretExposureChance = 0.4

// ViralMediaThreshold is the media swing a recorded headline needs to go viral.
const ViralMediaThreshold = 10

// Resolver turns a chosen response into an outcome.
type Resolver struct {
	src entropy.Source
}

// NewResolver creates a resolver drawing from src.
func NewResolver(src entropy.Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve applies choice to enc and writes the outcome back onto it.
//
// Draw order: success roll, secret-exposure roll (only when the encounter
// carries a secret), projectile hit roll and location (projectile encounters
// only), then the headline template (only for non-secret headlines).
func (r *Resolver) Resolve(enc *Encounter, choice Choice, player trail.PlayerContext) (*Resolution, error) {
	if enc == nil {
		return nil, ErrNilEncounter
	}
	if enc.Resolved {
		return nil, fmt.Errorf("resolve %s: %w", enc.ID, ErrAlreadyResolved)
	}
	if err := choice.validate(); err != nil {
		return nil, err
	}

	res := &Resolution{
		EncounterID:       enc.ID,
		Kind:              enc.Kind,
		Action:            choice.Action,
		TrustDelta:        choice.TrustDelta,
		MediaDelta:        choice.MediaDelta,
		PartyLoyaltyDelta: choice.PartyLoyaltyDelta,
		BlocDeltas:        copyBlocs(choice.BlocDeltas),
		Cost:              choice.Cost,
	}

	res.Success = entropy.Chance(r.src, choice.SuccessChance)
	res.Outcome = rollOutcome(res.Success, choice.TrustDelta)

	if enc.HasSecret && entropy.Chance(r.src, SecretExposureChance) {
		res.Outcome = OutcomeSecretRevealed
		res.SecretExposed = true
		res.ExposedSecretKind = enc.SecretKind
		res.ExposedSecretDetail = enc.SecretDetail
	}

	if enc.Kind == KindProjectile || (enc.Projectile != citizens.ProjectileNone && isDefensive(choice.Action)) {
		imp := ResolveProjectile(r.src, enc.Projectile, choice.Action)
		res.Projectile = &imp
	}

	candidate := "The Candidate"
	if player != nil && player.CandidateName() != "" {
		candidate = player.CandidateName()
	}
	if abs(choice.TrustDelta) > 5 || res.SecretExposed {
		res.Headline = r.headline(enc, res, candidate)
		if choice.TrustDelta > 0 {
			res.MediaImpact = MediaRegionalStory
		} else {
			res.MediaImpact = MediaNationalMention
		}
		if enc.Recorded && abs(choice.MediaDelta) >= ViralMediaThreshold {
			res.Viral = true
			res.MediaImpact = MediaViralSensation
		}
	} else if choice.MediaDelta != 0 {
		res.MediaImpact = MediaLocalBlip
	}

	res.Description = describe(enc, choice, res)
	res.MemorableMoment = memorableMoment(enc, res)

	enc.Resolved = true
	enc.Outcome = res.Outcome
	enc.OutcomeDescription = res.Description
	enc.Headline = res.Headline
	enc.MediaImpact = res.MediaImpact
	return res, nil
}

func rollOutcome(success bool, trust int) Outcome {
	if success {
		switch {
		case trust > 3:
			return OutcomePositive
		case trust > 0:
			return OutcomeNeutral
		default:
			return OutcomeNegative
		}
	}
	if trust < -5 {
		return OutcomeDisaster
	}
	return OutcomeNegative
}

func (r *Resolver) headline(enc *Encounter, res *Resolution, candidate string) string {
	if res.SecretExposed {
		if enc.Revelation != nil && enc.Revelation.Headline != "" {
			return enc.Revelation.Headline
		}
		return press.SecretHeadline(res.ExposedSecretKind, candidate)
	}
	slant := press.SlantDefault
	switch {
	case res.Outcome == OutcomeDisaster:
		slant = press.SlantDisaster
	case res.TrustDelta > 0:
		slant = press.SlantTrustGain
	}
	location := enc.Location
	if location == "" {
		location = enc.Event.String()
	}
	return press.EncounterHeadline(r.src, slant, candidate, enc.Subject(), location)
}

func describe(enc *Encounter, choice Choice, res *Resolution) string {
	if res.SecretExposed {
		return fmt.Sprintf("%s goes public: %s %s.", enc.Subject(), enc.Subject(), enc.SecretDetail)
	}
	if res.Projectile != nil {
		return res.Projectile.Description
	}
	switch res.Outcome {
	case OutcomePositive:
		return fmt.Sprintf("You %s. %s walks away impressed.", lowerFirst(choice.Text), enc.Subject())
	case OutcomeNeutral:
		return fmt.Sprintf("You %s. %s shrugs and moves along.", lowerFirst(choice.Text), enc.Subject())
	case OutcomeDisaster:
		return fmt.Sprintf("You %s, and it goes horribly wrong.", lowerFirst(choice.Text))
	default:
		return fmt.Sprintf("You %s. It does not land well with %s.", lowerFirst(choice.Text), enc.Subject())
	}
}

func memorableMoment(enc *Encounter, res *Resolution) string {
	switch {
	case enc.Unique != nil:
		return enc.Unique.Dialogue
	case res.Projectile != nil && res.Projectile.Face:
		return res.Projectile.Description
	case res.Viral:
		return res.Headline
	case enc.Memorability >= 60 && enc.Archetype != "":
		return fmt.Sprintf("%s, the %s, %s.", enc.Subject(), enc.Archetype, enc.Quirk)
	}
	return ""
}

func isDefensive(a Action) bool {
	switch a {
	case ActionDuck, ActionCatchProjectile, ActionStandGround, ActionGetInCar:
		return true
	}
	return false
}

func copyBlocs(in map[citizens.VoterBloc]int) map[citizens.VoterBloc]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[citizens.VoterBloc]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
