package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/encounters"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/reporter"
	"github.com/talgya/campaign-trail/internal/trail"
)

var player = trail.Player{Name: "Pat Quinn", Tier: 1, Rating: 50}

func newManager(t *testing.T, cfg Config, src entropy.Source, sink Sink) *Manager {
	t.Helper()
	m, err := New(cfg, src, player, nil, sink)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	return m
}

func handshake() encounters.Choice {
	c := encounters.NewChoice("Shake hands", encounters.ActionHandshake, 6, 1)
	c.SuccessChance = 1
	return c
}

// drain resolves every queued encounter with choice. It fails on an ambush.
func drain(t *testing.T, m *Manager, choice encounters.Choice) int {
	t.Helper()
	n := 0
	for m.HasMoreEncounters() {
		enc, err := m.NextEncounter()
		if err != nil {
			t.Fatalf("NextEncounter err: %v", err)
		}
		if enc == nil {
			t.Fatalf("unexpected ambush while draining")
		}
		if _, err := m.ResolveCurrentEncounter(choice); err != nil {
			t.Fatalf("ResolveCurrentEncounter err: %v", err)
		}
		n++
	}
	return n
}

func TestWalkaboutAtTierOneIsNeutral(t *testing.T) {
	m := newManager(t, DefaultConfig(), entropy.NewSeeded(11), nil)
	ev, err := m.StartEvent(trail.EventWalkabout)
	if err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}
	if ev.HostilityScore != 40 {
		t.Fatalf("expected hostility score 40, got %v", ev.HostilityScore)
	}
	if ev.Hostility != trail.HostilityNeutral {
		t.Fatalf("expected Neutral band, got %s", ev.Hostility)
	}
	if m.State() != StateDraining {
		t.Fatalf("expected draining, got %s", m.State())
	}
}

func TestStartEventBuildsRosterAndQueue(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 50; seed++ {
		m := newManager(t, cfg, entropy.NewSeeded(seed), nil)
		ev, err := m.StartEvent(trail.EventTownHall)
		if err != nil {
			t.Fatalf("StartEvent err: %v", err)
		}
		if len(ev.Roster) < cfg.MinRoster {
			t.Fatalf("seed %d: roster %d below minimum", seed, len(ev.Roster))
		}
		if n := len(ev.Planned); n < cfg.MinEncounters || n > cfg.MaxEncounters {
			t.Fatalf("seed %d: %d encounters outside [%d,%d]", seed, n, cfg.MinEncounters, cfg.MaxEncounters)
		}
		lo := int(float64(ev.ExpectedAttendance)*0.7) - 1
		hi := int(float64(ev.ExpectedAttendance) * 1.3)
		if ev.ActualAttendance < lo || ev.ActualAttendance > hi {
			t.Fatalf("seed %d: attendance %d outside [%d,%d]", seed, ev.ActualAttendance, lo, hi)
		}
		for _, enc := range ev.Planned {
			if len(enc.Choices) < 2 {
				t.Fatalf("seed %d: %s encounter has %d choices", seed, enc.Kind, len(enc.Choices))
			}
		}
	}
}

func TestRosterStaysWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProjectileChance = 0.3
	cfg.ChildChance = 0.3
	cfg.SecretWitnessChance = 0.3
	shaped := 0
	for seed := int64(1); seed <= 300; seed++ {
		m := newManager(t, cfg, entropy.NewSeeded(seed), nil)
		ev, err := m.StartEvent(trail.EventRally)
		if err != nil {
			t.Fatalf("StartEvent err: %v", err)
		}
		if n := len(ev.Roster); n < cfg.MinRoster || n > cfg.MaxRoster {
			t.Fatalf("seed %d: roster %d outside [%d,%d]", seed, n, cfg.MinRoster, cfg.MaxRoster)
		}
		for _, enc := range ev.Planned {
			if enc.Kind != encounters.KindStandard {
				shaped++
			}
		}
	}
	if shaped == 0 {
		t.Fatal("expected shaped encounters with these weights")
	}
}

func TestOverallOutcome(t *testing.T) {
	tests := []struct {
		name                string
		pos, neg, disasters int
		want                encounters.Outcome
	}{
		{"empty stop", 0, 0, 0, encounters.OutcomeNeutral},
		{"all positive", 5, 0, 0, encounters.OutcomePositive},
		{"one disaster sinks many positives", 12, 0, 1, encounters.OutcomeNegative},
		{"exactly double is not a win", 2, 1, 0, encounters.OutcomeNeutral},
		{"more than double wins", 3, 1, 0, encounters.OutcomePositive},
		{"even split", 2, 2, 0, encounters.OutcomeNeutral},
		{"negatives ahead", 1, 2, 0, encounters.OutcomeNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overallOutcome(tt.pos, tt.neg, tt.disasters); got != tt.want {
				t.Fatalf("overallOutcome(%d, %d, %d) = %s, want %s", tt.pos, tt.neg, tt.disasters, got, tt.want)
			}
		})
	}
}

// stopWith builds a finished stop from resolutions, pairing each with an
// encounter of the given memorability.
func stopWith(memorability []int, resolutions ...*encounters.Resolution) *TrailEvent {
	ev := &TrailEvent{ID: "stop-1", Type: trail.EventRally, Location: "the Veterans Memorial Park"}
	for i, res := range resolutions {
		ev.Resolutions = append(ev.Resolutions, res)
		ev.Completed = append(ev.Completed, &encounters.Encounter{Memorability: memorability[i]})
	}
	return ev
}

func TestAggregateCountsSecretsAsNegatives(t *testing.T) {
	ev := stopWith([]int{0, 0, 0},
		&encounters.Resolution{Outcome: encounters.OutcomePositive, TrustDelta: 4},
		&encounters.Resolution{Outcome: encounters.OutcomePositive, TrustDelta: 4},
		&encounters.Resolution{
			Outcome:           encounters.OutcomeSecretRevealed,
			TrustDelta:        -8,
			SecretExposed:     true,
			ExposedSecretKind: citizens.SecretDebt,
		},
	)
	r := Aggregate(ev, "Pat Quinn")

	got := []int{r.TotalEncounters, r.PositiveEncounters, r.SecretsRevealed, r.NetTrust}
	if diff := cmp.Diff([]int{3, 2, 1, 0}, got); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
	if r.OverallOutcome != encounters.OutcomeNeutral {
		t.Fatalf("expected a secret to hold two positives at Neutral, got %s", r.OverallOutcome)
	}
	if diff := cmp.Diff([]citizens.SecretKind{citizens.SecretDebt}, r.RevealedSecrets); diff != "" {
		t.Fatalf("revealed secrets mismatch (-want +got):\n%s", diff)
	}
	if r.HeadlineOfTheDay != "Pat Quinn Spends Quiet Afternoon In Veterans Memorial Park" {
		t.Fatalf("expected the flat day headline, got %q", r.HeadlineOfTheDay)
	}
}

func TestAggregateFlagsAndPicks(t *testing.T) {
	ev := stopWith([]int{20, 90, 40},
		&encounters.Resolution{
			Outcome:         encounters.OutcomeNeutral,
			Action:          encounters.ActionCallSecurity,
			TrustDelta:      -2,
			Headline:        "Security Escorts Heckler Out",
			MemorableMoment: "a heckler is escorted out",
		},
		&encounters.Resolution{
			Outcome:         encounters.OutcomeDisaster,
			TrustDelta:      -9,
			MediaDelta:      -3,
			Projectile:      &encounters.ProjectileImpact{Hit: true, Face: true},
			Headline:        "Egg To The Face",
			MemorableMoment: "an egg lands square on the nose",
		},
		&encounters.Resolution{
			Outcome:         encounters.OutcomePositive,
			TrustDelta:      2,
			Viral:           true,
			Headline:        "Dance Clip Takes Off",
			MemorableMoment: "an impromptu two-step",
		},
	)
	r := Aggregate(ev, "Pat Quinn")

	if !r.SecurityIncident || !r.MedicalEmergency {
		t.Fatalf("expected security and medical flags, got security=%v medical=%v", r.SecurityIncident, r.MedicalEmergency)
	}
	if r.OverallOutcome != encounters.OutcomeNegative {
		t.Fatalf("expected a disaster to sink the stop, got %s", r.OverallOutcome)
	}
	if r.MostMemorableMoment != "an egg lands square on the nose" {
		t.Fatalf("expected the most memorable encounter's moment, got %q", r.MostMemorableMoment)
	}
	if r.HeadlineOfTheDay != "Dance Clip Takes Off" {
		t.Fatalf("expected the viral headline to lead, got %q", r.HeadlineOfTheDay)
	}
	if r.ViralMoments != 1 || len(r.Headlines) != 3 {
		t.Fatalf("expected 1 viral moment and 3 headlines, got %d and %d", r.ViralMoments, len(r.Headlines))
	}
}

func TestAggregateMissedThrowRaisesNoFlags(t *testing.T) {
	ev := stopWith([]int{10}, &encounters.Resolution{
		Outcome:    encounters.OutcomePositive,
		Action:     encounters.ActionHandshake,
		TrustDelta: 4,
		Projectile: &encounters.ProjectileImpact{Hit: false},
	})
	r := Aggregate(ev, "Pat Quinn")
	if r.SecurityIncident || r.MedicalEmergency {
		t.Fatalf("expected no flags for a missed throw, got security=%v medical=%v", r.SecurityIncident, r.MedicalEmergency)
	}
	if r.OverallOutcome != encounters.OutcomePositive {
		t.Fatalf("expected Positive, got %s", r.OverallOutcome)
	}
}

func TestCalmStopEndToEnd(t *testing.T) {
	rec := &Recorder{}
	m := newManager(t, DefaultConfig(), entropy.NewSequence(0.99), rec)

	ev, err := m.StartEvent(trail.EventRally)
	if err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}
	if ev.AmbushPlanned {
		t.Fatalf("expected no ambush on a calm run")
	}
	for _, enc := range ev.Planned {
		if enc.Kind != encounters.KindStandard {
			t.Fatalf("expected only standard encounters, got %s", enc.Kind)
		}
	}

	resolved := drain(t, m, handshake())
	if resolved != len(ev.Planned) {
		t.Fatalf("expected %d resolutions, got %d", len(ev.Planned), resolved)
	}

	res, err := m.CompleteEvent()
	if err != nil {
		t.Fatalf("CompleteEvent err: %v", err)
	}
	if res.PositiveEncounters < 1 {
		t.Fatalf("expected positive encounters, got %d", res.PositiveEncounters)
	}
	if res.OverallOutcome != encounters.OutcomePositive {
		t.Fatalf("expected Positive, got %s", res.OverallOutcome)
	}
	if res.NetTrust != 6*resolved {
		t.Fatalf("expected net trust %d, got %d", 6*resolved, res.NetTrust)
	}
	if res.HeadlineOfTheDay == "" {
		t.Fatalf("expected a headline of the day")
	}
	if m.State() != StateIdle {
		t.Fatalf("expected idle after completion, got %s", m.State())
	}
	if got := len(m.CompletedEvents()); got != 1 {
		t.Fatalf("expected 1 completed event, got %d", got)
	}
	if got := m.ReporterStatus().Reporter.Investigation.Progress; got != DefaultConfig().InvestigationPerStop {
		t.Fatalf("expected investigation progress %d, got %d", DefaultConfig().InvestigationPerStop, got)
	}

	if got := rec.Count(EncounterStarted{}); got != resolved {
		t.Fatalf("expected %d started notifications, got %d", resolved, got)
	}
	if got := rec.Count(EncounterResolved{}); got != resolved {
		t.Fatalf("expected %d resolved notifications, got %d", resolved, got)
	}
	if got := rec.Count(HeadlineGenerated{}); got != resolved {
		t.Fatalf("expected %d headline notifications, got %d", resolved, got)
	}
	if got := rec.Count(TrailEventCompleted{}); got != 1 {
		t.Fatalf("expected 1 completion notification, got %d", got)
	}
}

func TestInvalidStateTransitions(t *testing.T) {
	m := newManager(t, DefaultConfig(), entropy.NewSequence(0.99), nil)

	if _, err := m.CompleteEvent(); !errors.Is(err, ErrNoCurrentEvent) {
		t.Fatalf("expected ErrNoCurrentEvent, got %v", err)
	}
	if _, err := m.NextEncounter(); !errors.Is(err, ErrNoCurrentEvent) {
		t.Fatalf("expected ErrNoCurrentEvent, got %v", err)
	}
	if _, err := m.ResolveCurrentEncounter(handshake()); !errors.Is(err, ErrNoCurrentEvent) {
		t.Fatalf("expected ErrNoCurrentEvent, got %v", err)
	}

	if _, err := m.StartEvent(trail.EventDinerStop); err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}
	if _, err := m.StartEvent(trail.EventDinerStop); !errors.Is(err, ErrEventInProgress) {
		t.Fatalf("expected ErrEventInProgress, got %v", err)
	}
	if _, err := m.ResolveCurrentEncounter(handshake()); !errors.Is(err, ErrNoCurrentEncounter) {
		t.Fatalf("expected ErrNoCurrentEncounter, got %v", err)
	}
	if _, err := m.ResolveReporterAmbush(handshake()); !errors.Is(err, ErrNoActiveAmbush) {
		t.Fatalf("expected ErrNoActiveAmbush, got %v", err)
	}
	if _, err := m.CompleteEvent(); !errors.Is(err, ErrEncountersRemaining) {
		t.Fatalf("expected ErrEncountersRemaining, got %v", err)
	}

	if _, err := m.NextEncounter(); err != nil {
		t.Fatalf("NextEncounter err: %v", err)
	}
	if _, err := m.NextEncounter(); !errors.Is(err, ErrAwaitingResolution) {
		t.Fatalf("expected ErrAwaitingResolution, got %v", err)
	}

	bad := handshake()
	bad.SuccessChance = 2
	if _, err := m.ResolveCurrentEncounter(bad); !errors.Is(err, encounters.ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	if m.CurrentEncounter() == nil {
		t.Fatalf("expected encounter to stay current after a rejected choice")
	}
	if _, err := m.ResolveCurrentEncounter(handshake()); err != nil {
		t.Fatalf("ResolveCurrentEncounter err: %v", err)
	}
	if _, err := m.ResolveCurrentEncounter(handshake()); !errors.Is(err, ErrNoCurrentEncounter) {
		t.Fatalf("expected ErrNoCurrentEncounter on second resolve, got %v", err)
	}

	var ise *InvalidStateError
	_, err := m.StartEvent(trail.EventRally)
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidStateError, got %T", err)
	}
	if ise.State != StateDraining {
		t.Fatalf("expected state draining in error, got %s", ise.State)
	}
}

func TestForceCompleteDropsRemaining(t *testing.T) {
	m := newManager(t, DefaultConfig(), entropy.NewSequence(0.99), nil)
	ev, err := m.StartEvent(trail.EventFundraiser)
	if err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}
	if _, err := m.NextEncounter(); err != nil {
		t.Fatalf("NextEncounter err: %v", err)
	}
	if _, err := m.ResolveCurrentEncounter(handshake()); err != nil {
		t.Fatalf("ResolveCurrentEncounter err: %v", err)
	}

	res, err := m.ForceCompleteEvent()
	if err != nil {
		t.Fatalf("ForceCompleteEvent err: %v", err)
	}
	if !res.Forced {
		t.Fatalf("expected forced result")
	}
	if res.TotalEncounters != 1 || len(ev.Planned) <= 1 {
		t.Fatalf("expected 1 of %d encounters resolved, got %d", len(ev.Planned), res.TotalEncounters)
	}
	if m.CurrentEvent() != nil || m.HasMoreEncounters() {
		t.Fatalf("expected manager to be idle")
	}
}

func TestAbandonLeavesNoHistory(t *testing.T) {
	m := newManager(t, DefaultConfig(), entropy.NewSeeded(3), nil)
	if _, err := m.StartEvent(trail.EventParade); err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}
	if _, err := m.AbandonEvent(); err != nil {
		t.Fatalf("AbandonEvent err: %v", err)
	}
	if len(m.CompletedEvents()) != 0 {
		t.Fatalf("expected empty history")
	}
	if m.ReporterStatus().Reporter.Investigation.Progress != 0 {
		t.Fatalf("expected investigation untouched")
	}
	if _, err := m.AbandonEvent(); !errors.Is(err, ErrNoCurrentEvent) {
		t.Fatalf("expected ErrNoCurrentEvent, got %v", err)
	}
}

func ambushConfig() Config {
	cfg := DefaultConfig()
	cfg.AmbushBaseChance = 1
	cfg.MaxAmbushChance = 1
	cfg.AmbushFireChance = 1
	return cfg
}

func choiceFor(t *testing.T, enc *encounters.Encounter, a encounters.Action) encounters.Choice {
	t.Helper()
	for _, c := range enc.Choices {
		if c.Action == a {
			return c
		}
	}
	t.Fatalf("no %s choice on %s encounter", a, enc.Kind)
	return encounters.Choice{}
}

func TestAmbushFiresAndWalkAwayEndsIt(t *testing.T) {
	rec := &Recorder{}
	m := newManager(t, ambushConfig(), entropy.NewSequence(0.99), rec)
	ev, err := m.StartEvent(trail.EventTownHall)
	if err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}
	if !ev.AmbushPlanned || !m.HasMoreEncounters() {
		t.Fatalf("expected a pending ambush")
	}

	enc, err := m.NextEncounter()
	if err != nil {
		t.Fatalf("NextEncounter err: %v", err)
	}
	if enc != nil {
		t.Fatalf("expected the ambush to fire instead of an encounter")
	}
	if m.CurrentAmbush() == nil {
		t.Fatalf("expected an active ambush")
	}
	if _, err := m.NextEncounter(); !errors.Is(err, ErrAwaitingResolution) {
		t.Fatalf("expected ErrAwaitingResolution during ambush, got %v", err)
	}
	if _, err := m.ResolveReporterAmbush(handshake()); !errors.Is(err, encounters.ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice for a non-reporter action, got %v", err)
	}

	amb := m.CurrentAmbushEncounter()
	if amb.Kind != encounters.KindReporter {
		t.Fatalf("expected reporter encounter, got %s", amb.Kind)
	}
	if _, err := m.ResolveReporterAmbush(choiceFor(t, amb, encounters.ActionWalkAway)); err != nil {
		t.Fatalf("ResolveReporterAmbush err: %v", err)
	}
	if m.CurrentAmbush() != nil {
		t.Fatalf("expected walking away to end the ambush")
	}

	st := m.ReporterStatus().Reporter
	if st.TimesAmbushed != 1 || st.TimesEvaded != 1 {
		t.Fatalf("expected 1 ambush and 1 evasion, got %d and %d", st.TimesAmbushed, st.TimesEvaded)
	}
	if st.Relationship != -15 || !st.ActiveHostility {
		t.Fatalf("expected relationship -15 with hostility, got %d %v", st.Relationship, st.ActiveHostility)
	}

	drain(t, m, handshake())
	res, err := m.CompleteEvent()
	if err != nil {
		t.Fatalf("CompleteEvent err: %v", err)
	}
	if !res.AmbushOccurred {
		t.Fatalf("expected ambush recorded on the result")
	}
	if got := rec.Count(ReporterAmbush{}); got != 1 {
		t.Fatalf("expected 1 ambush notification, got %d", got)
	}
}

func TestPendingAmbushFiresWhenQueueEmpties(t *testing.T) {
	cfg := ambushConfig()
	cfg.AmbushFireChance = 0
	m := newManager(t, cfg, entropy.NewSequence(0.99), nil)
	ev, err := m.StartEvent(trail.EventRally)
	if err != nil {
		t.Fatalf("StartEvent err: %v", err)
	}

	for i := 0; i < len(ev.Planned); i++ {
		enc, err := m.NextEncounter()
		if err != nil || enc == nil {
			t.Fatalf("expected encounter %d, got %v, %v", i, enc, err)
		}
		if _, err := m.ResolveCurrentEncounter(handshake()); err != nil {
			t.Fatalf("ResolveCurrentEncounter err: %v", err)
		}
	}
	if !m.HasMoreEncounters() {
		t.Fatalf("expected the pending ambush to count as remaining")
	}
	if _, err := m.CompleteEvent(); !errors.Is(err, ErrEncountersRemaining) {
		t.Fatalf("expected ErrEncountersRemaining, got %v", err)
	}
	if enc, err := m.NextEncounter(); err != nil || enc != nil {
		t.Fatalf("expected the ambush to fire, got %v, %v", enc, err)
	}

	// Answer until the questions run out.
	for i := 0; m.CurrentAmbush() != nil; i++ {
		if i > 20 {
			t.Fatalf("ambush never ended")
		}
		if _, err := m.ResolveReporterAmbush(choiceFor(t, m.CurrentAmbushEncounter(), encounters.ActionDirectAnswer)); err != nil {
			t.Fatalf("ResolveReporterAmbush err: %v", err)
		}
	}
	if enc, err := m.NextEncounter(); err != nil || enc != nil {
		t.Fatalf("expected nothing left, got %v, %v", enc, err)
	}
	if _, err := m.CompleteEvent(); err != nil {
		t.Fatalf("CompleteEvent err: %v", err)
	}
	if m.ReporterStatus().Reporter.TimesCharmed == 0 {
		t.Fatalf("expected direct answers to charm the reporter")
	}
}

func TestKnownScandalsCarryAcrossStops(t *testing.T) {
	m := newManager(t, DefaultConfig(), entropy.NewSeeded(1), nil)
	m.completed = append(m.completed, &TrailEvent{Result: &Result{RevealedSecrets: []citizens.SecretKind{citizens.SecretBribery}}})
	got := m.knownScandals()
	if len(got) != 1 || got[0] != "the bribery allegation" {
		t.Fatalf("expected bribery allegation, got %v", got)
	}
}

func TestAmbushChanceScalesAndCaps(t *testing.T) {
	m := newManager(t, DefaultConfig(), entropy.NewSeeded(1), nil)
	if got := m.ambushChance(1); got != 0.15 {
		t.Fatalf("expected 0.15 at tier 1, got %v", got)
	}
	if got := m.ambushChance(3); got < 0.2499 || got > 0.2501 {
		t.Fatalf("expected 0.25 at tier 3, got %v", got)
	}
	m.cfg.ChaosMultiplier = 10
	if got := m.ambushChance(5); got != 0.9 {
		t.Fatalf("expected cap 0.9, got %v", got)
	}
}

func TestSuppliedReporterIsKept(t *testing.T) {
	rep := reporter.New(entropy.NewSeeded(5))
	m, err := New(DefaultConfig(), entropy.NewSeeded(5), player, rep, nil)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	if m.Reporter() != rep {
		t.Fatalf("expected supplied reporter to be used")
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(DefaultConfig(), entropy.NewSeeded(1), nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil player")
	}
	cfg := DefaultConfig()
	cfg.MinEncounters = 0
	if _, err := New(cfg, entropy.NewSeeded(1), player, nil, nil); err == nil {
		t.Fatalf("expected error for bad config")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"min above max", func(c *Config) { c.MinEncounters = 7 }, false},
		{"roster zero", func(c *Config) { c.MinRoster = 0 }, false},
		{"chance above one", func(c *Config) { c.AmbushFireChance = 1.5 }, false},
		{"shapes sum above one", func(c *Config) { c.ProjectileChance, c.ChildChance = 0.6, 0.6 }, false},
		{"negative chaos", func(c *Config) { c.ChaosMultiplier = -1 }, false},
		{"negative progress", func(c *Config) { c.InvestigationPerStop = -5 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
