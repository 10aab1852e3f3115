package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/encounters"
	"github.com/talgya/campaign-trail/internal/reporter"
)

// Notification is a plain record fired synchronously by the manager.
type Notification interface {
	notification()
}

// EncounterStarted fires when an encounter is pulled from the queue.
type EncounterStarted struct {
	EventID   string
	Encounter *encounters.Encounter
}

// EncounterResolved fires after every resolution, ambush questions included.
type EncounterResolved struct {
	EventID    string
	Encounter  *encounters.Encounter
	Resolution *encounters.Resolution
}

// TrailEventCompleted fires when a stop is aggregated.
type TrailEventCompleted struct {
	Event  *TrailEvent
	Result *Result
}

// ReporterAmbush fires when a pending ambush is sprung.
type ReporterAmbush struct {
	EventID string
	Ambush  *reporter.Ambush
}

// HeadlineGenerated fires for every resolution that produced a headline.
type HeadlineGenerated struct {
	EventID  string
	Headline string
	Impact   encounters.MediaImpact
	Viral    bool
}

// SecretExposed fires when a secret comes out.
type SecretExposed struct {
	EventID string
	Witness string
	Kind    citizens.SecretKind
	Detail  string
}

func (EncounterStarted) notification()    {}
func (EncounterResolved) notification()   {}
func (TrailEventCompleted) notification() {}
func (ReporterAmbush) notification()      {}
func (HeadlineGenerated) notification()   {}
func (SecretExposed) notification()       {}

// Sink receives notifications.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(n Notification)

// Notify implements Sink.
func (f SinkFunc) Notify(n Notification) { f(n) }

// Recorder keeps every notification in order. Tests and replay tools use it.
type Recorder struct {
	Notifications []Notification
}

// Notify implements Sink.
func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Count returns how many recorded notifications have the same type as like.
func (r *Recorder) Count(like Notification) int {
	want := fmt.Sprintf("%T", like)
	n := 0
	for _, x := range r.Notifications {
		if fmt.Sprintf("%T", x) == want {
			n++
		}
	}
	return n
}

// Fanout delivers each notification to every sink in order.
type Fanout []Sink

// Notify implements Sink.
func (f Fanout) Notify(n Notification) {
	for _, s := range f {
		s.Notify(n)
	}
}

// LogSink writes notifications to slog. A nil Logger uses the default.
type LogSink struct {
	Logger *slog.Logger
}

// Notify implements Sink.
func (l LogSink) Notify(n Notification) {
	log := l.Logger
	if log == nil {
		log = slog.Default()
	}
	switch n := n.(type) {
	case EncounterStarted:
		log.Debug("encounter started", "event", n.EventID, "kind", n.Encounter.Kind, "subject", n.Encounter.Subject())
	case EncounterResolved:
		log.Debug("encounter resolved", "event", n.EventID, "action", n.Resolution.Action, "outcome", n.Resolution.Outcome,
			"trust", n.Resolution.TrustDelta, "media", n.Resolution.MediaDelta)
	case TrailEventCompleted:
		log.Info("trail event completed", "event", n.Event.ID, "type", n.Event.Type, "outcome", n.Result.OverallOutcome,
			"trust", n.Result.NetTrust, "headline", n.Result.HeadlineOfTheDay)
	case ReporterAmbush:
		log.Info("reporter ambush", "event", n.EventID, "reporter", n.Ambush.Reporter, "angle", n.Ambush.Angle,
			"questions", len(n.Ambush.Questions))
	case HeadlineGenerated:
		log.Info("headline", "event", n.EventID, "text", n.Headline, "impact", n.Impact, "viral", n.Viral)
	case SecretExposed:
		log.Warn("secret exposed", "event", n.EventID, "witness", n.Witness, "kind", n.Kind)
	}
}

type nopSink struct{}

func (nopSink) Notify(Notification) {}
