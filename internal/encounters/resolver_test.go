package encounters

import (
	"errors"
	"testing"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/trail"
)

var player = trail.Player{Name: "Pat Quinn", Tier: 1, Rating: 50}

func plainEncounter() *Encounter {
	return &Encounter{
		ID:       "enc-1",
		Kind:     KindStandard,
		Location: "Millbrook",
		Citizen:  citizens.Citizen{Name: "Gary Baker"},
	}
}

func TestCertainSuccessWithTrustGainIsPositive(t *testing.T) {
	r := NewResolver(entropy.NewSeeded(4))
	choice := NewChoice("Shake hands", ActionHandshake, 10, 2)
	choice.SuccessChance = 1
	for i := 0; i < 200; i++ {
		res, err := r.Resolve(plainEncounter(), choice, player)
		if err != nil {
			t.Fatalf("resolve err: %v", err)
		}
		if res.Outcome != OutcomePositive {
			t.Fatalf("expected Positive, got %s", res.Outcome)
		}
	}
}

func TestCertainFailureWithTrustLossIsDisaster(t *testing.T) {
	r := NewResolver(entropy.NewSeeded(4))
	choice := NewChoice("Insult them", ActionConfront, -10, 5)
	choice.SuccessChance = 0
	for i := 0; i < 200; i++ {
		res, err := r.Resolve(plainEncounter(), choice, player)
		if err != nil {
			t.Fatalf("resolve err: %v", err)
		}
		if res.Outcome != OutcomeDisaster {
			t.Fatalf("expected Disaster, got %s", res.Outcome)
		}
	}
}

func TestOutcomeTable(t *testing.T) {
	tests := []struct {
		success bool
		trust   int
		want    Outcome
	}{
		{true, 4, OutcomePositive},
		{true, 3, OutcomeNeutral},
		{true, 1, OutcomeNeutral},
		{true, 0, OutcomeNegative},
		{false, 10, OutcomeNegative},
		{false, -5, OutcomeNegative},
		{false, -6, OutcomeDisaster},
	}
	for _, tt := range tests {
		if got := rollOutcome(tt.success, tt.trust); got != tt.want {
			t.Fatalf("success=%v trust=%d: expected %s, got %s", tt.success, tt.trust, tt.want, got)
		}
	}
}

func TestResolveTwiceIsRejected(t *testing.T) {
	r := NewResolver(entropy.NewSeeded(1))
	enc := plainEncounter()
	choice := NewChoice("Nod", ActionNod, 1, 0)
	if _, err := r.Resolve(enc, choice, player); err != nil {
		t.Fatalf("first resolve err: %v", err)
	}
	if _, err := r.Resolve(enc, choice, player); !errors.Is(err, ErrAlreadyResolved) {
		t.Fatalf("expected ErrAlreadyResolved, got %v", err)
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	r := NewResolver(entropy.NewSeeded(1))
	if _, err := r.Resolve(nil, NewChoice("Nod", ActionNod, 1, 0), player); !errors.Is(err, ErrNilEncounter) {
		t.Fatalf("expected ErrNilEncounter, got %v", err)
	}
	bad := NewChoice("Nod", ActionNod, 1, 0)
	bad.SuccessChance = 1.5
	if _, err := r.Resolve(plainEncounter(), bad, player); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	bad = NewChoice("Nod", ActionNod, 1, 0)
	bad.RiskLevel = 101
	if _, err := r.Resolve(plainEncounter(), bad, player); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
}

func TestSecretWitnessForcedExposure(t *testing.T) {
	g := NewGenerator(entropy.NewSeeded(12), nil)
	enc := g.SecretWitness(Params{Event: trail.EventTownHall, Location: "Millbrook", Candidate: "Pat Quinn"})

	r := NewResolver(entropy.NewSequence(0))
	res, err := r.Resolve(enc, enc.Choices[1], player)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if !res.SecretExposed {
		t.Fatal("expected the secret to be exposed")
	}
	if res.ExposedSecretKind != enc.Citizen.Secret.Kind {
		t.Fatalf("expected exposed kind %s, got %s", enc.Citizen.Secret.Kind, res.ExposedSecretKind)
	}
	if res.Outcome != OutcomeSecretRevealed || enc.Outcome != OutcomeSecretRevealed {
		t.Fatalf("expected SecretRevealed on result and encounter, got %s / %s", res.Outcome, enc.Outcome)
	}
	if res.Headline != enc.Revelation.Headline {
		t.Fatalf("expected revelation headline %q, got %q", enc.Revelation.Headline, res.Headline)
	}
}

func TestHeadlineAndMediaTiers(t *testing.T) {
	r := NewResolver(entropy.NewSequence(0.99))

	gain := NewChoice("Listen", ActionListen, 6, 3)
	gain.SuccessChance = 1
	res, err := r.Resolve(plainEncounter(), gain, player)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if res.Headline == "" || res.MediaImpact != MediaRegionalStory || res.Viral {
		t.Fatalf("expected regional headline without virality, got %+v", res)
	}

	loss := NewChoice("Snap", ActionConfront, -6, 3)
	res, err = r.Resolve(plainEncounter(), loss, player)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if res.MediaImpact != MediaNationalMention {
		t.Fatalf("expected national mention, got %s", res.MediaImpact)
	}

	quiet := NewChoice("Nod", ActionNod, 5, 3)
	res, err = r.Resolve(plainEncounter(), quiet, player)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if res.Headline != "" || res.MediaImpact != MediaLocalBlip {
		t.Fatalf("expected local blip without headline, got %+v", res)
	}
}

func TestRecordedBigSwingGoesViral(t *testing.T) {
	r := NewResolver(entropy.NewSequence(0.5))
	enc := plainEncounter()
	enc.Recorded = true
	choice := NewChoice("Catch it", ActionCatchProjectile, 10, 15)
	choice.SuccessChance = 1
	res, err := r.Resolve(enc, choice, player)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if !res.Viral || res.MediaImpact != MediaViralSensation {
		t.Fatalf("expected viral sensation, got %+v", res)
	}
	if res.MemorableMoment != res.Headline {
		t.Fatalf("expected the viral headline as memorable moment, got %q", res.MemorableMoment)
	}
	if enc.MediaImpact != MediaViralSensation || enc.Headline != res.Headline {
		t.Fatal("expected resolution written back onto the encounter")
	}
}

func TestResolverDrawOrder(t *testing.T) {
	src := entropy.NewSequence(0.5)
	r := NewResolver(src)
	if _, err := r.Resolve(plainEncounter(), NewChoice("Nod", ActionNod, 1, 0), player); err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if src.Drawn() != 1 {
		t.Fatalf("expected only the success draw, got %d draws", src.Drawn())
	}

	enc := plainEncounter()
	enc.HasSecret = true
	big := NewChoice("Listen", ActionListen, 8, 1)
	if _, err := r.Resolve(enc, big, player); err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if src.Drawn() != 4 {
		t.Fatalf("expected success, secret and headline draws, got %d total", src.Drawn())
	}
}

func TestProjectileTables(t *testing.T) {
	src := entropy.NewSeeded(77)
	for i := 0; i < 500; i++ {
		if ResolveProjectile(src, citizens.ProjectileEgg, ActionCatchProjectile).Hit {
			t.Fatal("catching must never be hit")
		}
		if ResolveProjectile(src, citizens.ProjectileTomato, ActionGetInCar).Hit {
			t.Fatal("getting in the car must never be hit")
		}
	}

	imp := ResolveProjectile(entropy.NewSequence(0.1, 0), citizens.ProjectileMilkshake, ActionDuck)
	if !imp.Hit || !imp.Face || imp.Location != "face" {
		t.Fatalf("expected a face hit, got %+v", imp)
	}

	seq := entropy.NewSequence(0.3)
	imp = ResolveProjectile(seq, citizens.ProjectileShoe, ActionDuck)
	if imp.Hit || seq.Drawn() != 1 {
		t.Fatalf("expected a miss with no location draw, got %+v after %d draws", imp, seq.Drawn())
	}
}

func TestProjectileEncounterRunsImpact(t *testing.T) {
	g := NewGenerator(entropy.NewSeeded(5), nil)
	enc := g.Projectile(Params{Event: trail.EventRally, Location: "Millbrook"})
	enc.HasSecret = false
	r := NewResolver(entropy.NewSeeded(5))
	res, err := r.Resolve(enc, enc.Choices[1], player)
	if err != nil {
		t.Fatalf("resolve err: %v", err)
	}
	if res.Projectile == nil || res.Projectile.Hit {
		t.Fatalf("expected a caught projectile, got %+v", res.Projectile)
	}
	if res.Description != res.Projectile.Description {
		t.Fatalf("expected the impact description, got %q", res.Description)
	}
}
