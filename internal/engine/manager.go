// Package engine orchestrates campaign stops: it builds each stop, hands
// encounters out one at a time, resolves the player's choices, and folds the
// results into a per-stop summary.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/encounters"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/reporter"
	"github.com/talgya/campaign-trail/internal/trail"
)

// State is the manager's lifecycle state.
type State uint8

const (
	StateIdle State = iota
	StateBuilding
	StateDraining
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateDraining:
		return "draining"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Manager runs one campaign stop at a time. It owns the campaign's reporter
// and is not safe for concurrent use.
type Manager struct {
	cfg      Config
	src      entropy.Source
	player   trail.PlayerContext
	reporter *reporter.Reporter
	sink     Sink

	people    *citizens.Generator
	generator *encounters.Generator
	resolver  *encounters.Resolver

	state   State
	current *TrailEvent
	queue   []*encounters.Encounter
	active  *encounters.Encounter

	pendingAmbush *reporter.Ambush
	ambush        *reporter.Ambush
	ambushEnc     *encounters.Encounter

	completed []*TrailEvent
}

// New creates a manager. A nil reporter is replaced by a fresh one drawn from
// src; a nil sink discards notifications.
func New(cfg Config, src entropy.Source, player trail.PlayerContext, rep *reporter.Reporter, sink Sink) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if src == nil {
		return nil, errors.New("engine: nil random source")
	}
	if player == nil {
		return nil, errors.New("engine: nil player context")
	}
	if rep == nil {
		rep = reporter.New(src)
	}
	if sink == nil {
		sink = nopSink{}
	}
	people := citizens.NewGenerator(src)
	return &Manager{
		cfg:       cfg,
		src:       src,
		player:    player,
		reporter:  rep,
		sink:      sink,
		people:    people,
		generator: encounters.NewGenerator(src, people),
		resolver:  encounters.NewResolver(src),
	}, nil
}

// StartEvent builds a stop and begins draining its encounters.
//
// Draw order: location, description, attendance, press roll, roster size and
// roster citizens, encounter count, then per encounter a shape roll and the
// generator's draws (standard encounters first pick their citizen from the
// roster), the queue shuffle, the ambush roll, and the ambush's own draws.
func (m *Manager) StartEvent(t trail.EventType) (*TrailEvent, error) {
	if m.current != nil {
		return nil, m.invalid("start event", ErrEventInProgress)
	}
	m.state = StateBuilding

	tier := m.player.OfficeTier()
	approval := m.player.Approval()

	ev := &TrailEvent{
		ID:   uuid.NewString(),
		Day:  len(m.completed) + 1,
		Type: t,
	}
	ev.Location = trail.Location(m.src, t)
	ev.Description = trail.Description(m.src, t)
	ev.ExpectedAttendance = trail.ExpectedAttendance(t)
	ev.ActualAttendance = trail.ActualAttendance(m.src, ev.ExpectedAttendance)
	ev.HostilityScore = trail.HostilityScore(t, tier, approval)
	ev.Hostility = trail.BandForScore(ev.HostilityScore)
	ev.PressPresent = entropy.Chance(m.src, trail.PressChance(t, tier))
	if ev.PressPresent {
		ev.PressOutlet = m.reporter.Outlet
	}

	rosterSize := entropy.Range(m.src, m.cfg.MinRoster, m.cfg.MaxRoster+1)
	for i := 0; i < rosterSize; i++ {
		ev.Roster = append(ev.Roster, m.people.Generate(t, ev.Hostility))
	}

	n := entropy.Range(m.src, m.cfg.MinEncounters, m.cfg.MaxEncounters+1)
	shapes := []float64{
		m.cfg.ProjectileChance,
		m.cfg.ChildChance,
		m.cfg.SecretWitnessChance,
		1 - m.cfg.ProjectileChance - m.cfg.ChildChance - m.cfg.SecretWitnessChance,
	}
	for i := 0; i < n; i++ {
		p := encounters.Params{
			Event:        t,
			Hostility:    ev.Hostility,
			Location:     ev.Location,
			Candidate:    m.player.CandidateName(),
			PressPresent: ev.PressPresent,
		}
		var enc *encounters.Encounter
		switch entropy.Weighted(m.src, shapes) {
		case 0:
			enc = m.generator.Projectile(p)
		case 1:
			enc = m.generator.Child(p)
		case 2:
			enc = m.generator.SecretWitness(p)
		default:
			p.Citizen = entropy.Pick(m.src, ev.Roster)
			enc = m.generator.Standard(p)
		}
		ev.Planned = append(ev.Planned, enc)
	}
	entropy.Shuffle(m.src, ev.Planned)
	m.queue = append([]*encounters.Encounter(nil), ev.Planned...)

	if entropy.Chance(m.src, m.ambushChance(tier)) {
		m.pendingAmbush = reporter.Generate(m.src, m.reporter, t, ev.Location, m.knownScandals())
		ev.AmbushPlanned = true
	}

	m.current = ev
	m.state = StateDraining
	slog.Info("trail event started", "day", ev.Day, "type", t, "location", ev.Location,
		"hostility", ev.Hostility, "attendance", ev.ActualAttendance, "encounters", len(ev.Planned),
		"press", ev.PressPresent, "ambush_pending", ev.AmbushPlanned)
	return ev, nil
}

func (m *Manager) ambushChance(tier int) float64 {
	p := (m.cfg.AmbushBaseChance + m.cfg.AmbushChancePerTier*float64(tier-1)) * m.cfg.ChaosMultiplier
	return trail.Clamp(p, 0, m.cfg.MaxAmbushChance)
}

// knownScandals lists secrets revealed at earlier stops, most recent last.
func (m *Manager) knownScandals() []string {
	var out []string
	for _, ev := range m.completed {
		if ev.Result == nil {
			continue
		}
		for _, k := range ev.Result.RevealedSecrets {
			out = append(out, scandalLabel(k))
		}
	}
	return out
}

// NextEncounter hands out the next encounter. It returns nil with no error
// when the reporter's ambush fires instead (see CurrentAmbush) or when the
// stop has nothing left.
//
// A pending ambush fires on a roll each pull, or unconditionally once the
// queue is empty. The roll draws only while the queue still has encounters.
func (m *Manager) NextEncounter() (*encounters.Encounter, error) {
	if m.current == nil {
		return nil, m.invalid("next encounter", ErrNoCurrentEvent)
	}
	if m.active != nil || m.ambush != nil {
		return nil, m.invalid("next encounter", ErrAwaitingResolution)
	}

	if m.pendingAmbush != nil {
		if len(m.queue) == 0 || entropy.Chance(m.src, m.cfg.AmbushFireChance) {
			m.fireAmbush()
			return nil, nil
		}
	}
	if len(m.queue) == 0 {
		return nil, nil
	}

	enc := m.queue[0]
	m.queue = m.queue[1:]
	m.active = enc
	m.sink.Notify(EncounterStarted{EventID: m.current.ID, Encounter: enc})
	return enc, nil
}

func (m *Manager) fireAmbush() {
	m.ambush = m.pendingAmbush
	m.pendingAmbush = nil
	m.ambushEnc = m.ambush.Encounter()
	m.current.AmbushOccurred = true
	m.reporter.BeginAmbush()
	slog.Info("reporter ambush", "reporter", m.reporter.Name, "angle", m.ambush.Angle,
		"questions", len(m.ambush.Questions), "ambush", humanize.Ordinal(m.reporter.TimesAmbushed))
	m.sink.Notify(ReporterAmbush{EventID: m.current.ID, Ambush: m.ambush})
}

// HasMoreEncounters reports whether queued encounters or a pending ambush
// remain. An ambush already in progress is reported by CurrentAmbush.
func (m *Manager) HasMoreEncounters() bool {
	return m.current != nil && (len(m.queue) > 0 || m.pendingAmbush != nil)
}

// CurrentEncounter returns the encounter awaiting a choice, if any.
func (m *Manager) CurrentEncounter() *encounters.Encounter {
	return m.active
}

// CurrentAmbush returns the ambush in progress, if any.
func (m *Manager) CurrentAmbush() *reporter.Ambush {
	return m.ambush
}

// CurrentAmbushEncounter returns the resolvable form of the ambush's current
// question.
func (m *Manager) CurrentAmbushEncounter() *encounters.Encounter {
	return m.ambushEnc
}

// ResolveCurrentEncounter resolves the pulled encounter with choice. On an
// invalid choice the encounter stays current.
func (m *Manager) ResolveCurrentEncounter(choice encounters.Choice) (*encounters.Resolution, error) {
	if m.current == nil {
		return nil, m.invalid("resolve encounter", ErrNoCurrentEvent)
	}
	if m.active == nil {
		return nil, m.invalid("resolve encounter", ErrNoCurrentEncounter)
	}
	res, err := m.resolver.Resolve(m.active, choice, m.player)
	if err != nil {
		return nil, fmt.Errorf("resolve encounter: %w", err)
	}
	m.archive(m.active, res)
	m.active = nil
	return res, nil
}

// ResolveReporterAmbush answers the ambush's current question. The choice
// must carry a reporter response action. The ambush stays current until its
// questions run out or the candidate walks away.
func (m *Manager) ResolveReporterAmbush(choice encounters.Choice) (*encounters.Resolution, error) {
	if m.current == nil {
		return nil, m.invalid("resolve ambush", ErrNoCurrentEvent)
	}
	if m.ambush == nil {
		return nil, m.invalid("resolve ambush", ErrNoActiveAmbush)
	}
	rt, ok := reporter.ResponseForAction(choice.Action)
	if !ok {
		return nil, fmt.Errorf("resolve ambush: %w: %s is not a reporter response", encounters.ErrInvalidChoice, choice.Action)
	}
	res, err := m.resolver.Resolve(m.ambushEnc, choice, m.player)
	if err != nil {
		return nil, fmt.Errorf("resolve ambush: %w", err)
	}
	story := m.reporter.RecordResponse(m.src, rt)
	slog.Debug("reporter response", "response", rt, "relationship", m.reporter.Relationship, "story", story)
	m.archive(m.ambushEnc, res)

	m.ambush.Answer(rt)
	if m.ambush.Done() {
		m.ambush = nil
		m.ambushEnc = nil
	} else {
		m.ambushEnc = m.ambush.Encounter()
	}
	return res, nil
}

func (m *Manager) archive(enc *encounters.Encounter, res *encounters.Resolution) {
	ev := m.current
	ev.Completed = append(ev.Completed, enc)
	ev.Resolutions = append(ev.Resolutions, res)

	m.sink.Notify(EncounterResolved{EventID: ev.ID, Encounter: enc, Resolution: res})
	if res.Headline != "" {
		m.sink.Notify(HeadlineGenerated{EventID: ev.ID, Headline: res.Headline, Impact: res.MediaImpact, Viral: res.Viral})
	}
	if res.SecretExposed {
		m.sink.Notify(SecretExposed{EventID: ev.ID, Witness: enc.Subject(), Kind: res.ExposedSecretKind, Detail: res.ExposedSecretDetail})
	}
}

// CompleteEvent aggregates the drained stop, advances the reporter's
// investigation and returns to idle.
func (m *Manager) CompleteEvent() (*Result, error) {
	if m.current == nil {
		return nil, m.invalid("complete event", ErrNoCurrentEvent)
	}
	if len(m.queue) > 0 || m.pendingAmbush != nil || m.active != nil || m.ambush != nil {
		return nil, m.invalid("complete event", ErrEncountersRemaining)
	}
	return m.finish(false), nil
}

// ForceCompleteEvent aggregates whatever has been resolved so far, dropping
// unresolved encounters and any pending or active ambush.
func (m *Manager) ForceCompleteEvent() (*Result, error) {
	if m.current == nil {
		return nil, m.invalid("force complete event", ErrNoCurrentEvent)
	}
	return m.finish(true), nil
}

func (m *Manager) finish(forced bool) *Result {
	ev := m.current
	m.state = StateCompleted

	res := Aggregate(ev, m.player.CandidateName())
	res.Forced = forced
	ev.Result = res

	progress := m.cfg.InvestigationPerStop
	if res.SecretsRevealed > 0 {
		progress += m.cfg.InvestigationSecretBonus
	}
	m.reporter.AdvanceInvestigation(progress)

	m.completed = append(m.completed, ev)
	m.reset()

	slog.Info("trail event completed", "day", ev.Day, "outcome", res.OverallOutcome, "trust", res.NetTrust,
		"media", res.NetMedia, "headline", res.HeadlineOfTheDay, "forced", forced,
		"investigation", m.reporter.Investigation.Progress)
	m.sink.Notify(TrailEventCompleted{Event: ev, Result: res})
	return res
}

// AbandonEvent discards the current stop without a result. Nothing is added
// to history and the investigation does not advance.
func (m *Manager) AbandonEvent() (*TrailEvent, error) {
	if m.current == nil {
		return nil, m.invalid("abandon event", ErrNoCurrentEvent)
	}
	ev := m.current
	m.reset()
	slog.Info("trail event abandoned", "day", ev.Day, "resolved", len(ev.Completed))
	return ev, nil
}

func (m *Manager) reset() {
	m.current = nil
	m.queue = nil
	m.active = nil
	m.pendingAmbush = nil
	m.ambush = nil
	m.ambushEnc = nil
	m.state = StateIdle
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// ReporterStatus returns a snapshot of the reporter with any warning.
func (m *Manager) ReporterStatus() reporter.Status {
	return m.reporter.Status()
}

// Reporter returns the reporter the manager owns. Hosts use it to publish a
// ready investigation between stops.
func (m *Manager) Reporter() *reporter.Reporter {
	return m.reporter
}

// CompletedEvents returns the stops completed so far, oldest first.
func (m *Manager) CompletedEvents() []*TrailEvent {
	return append([]*TrailEvent(nil), m.completed...)
}

// CurrentEvent returns the stop in progress, or nil.
func (m *Manager) CurrentEvent() *TrailEvent {
	return m.current
}

func (m *Manager) invalid(op string, err error) error {
	return &InvalidStateError{Op: op, State: m.state, Err: err}
}
