// Package reporter models the campaign's one persistent adversary: a reporter
// whose relationship with the candidate and running investigation evolve
// across every stop and every answer.
package reporter

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/press"
	"github.com/talgya/campaign-trail/internal/trail"
)

// WarningThreshold is the investigation progress at which Status warns.
const WarningThreshold = 50

// Investigation is the story the reporter is building.
type Investigation struct {
	Topic          Angle    `json:"topic"`
	Topics         []Angle  `json:"topics"`
	Progress       int      `json:"progress"` // 0–100
	Evidence       []string `json:"evidence"`
	ReadyToPublish bool     `json:"ready_to_publish"`
}

// Story is a published investigation.
type Story struct {
	Topic    Angle    `json:"topic"`
	Headline string   `json:"headline"`
	Outlet   string   `json:"outlet"`
	Evidence []string `json:"evidence"`
}

// Reporter is the long-lived adversary. One instance lives for a whole
// campaign and is owned by the trail event manager.
type Reporter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Outlet      string `json:"outlet"`
	Personality string `json:"personality"`
	Catchphrase string `json:"catchphrase"`

	TimesAmbushed int `json:"times_ambushed"`
	TimesEvaded   int `json:"times_evaded"`
	TimesCharmed  int `json:"times_charmed"`

	Relationship int `json:"relationship"` // -100 nemesis to +100 friendly

	// Behavioral sliders, 0–100.
	Persistence           int `json:"persistence"`
	Ruthlessness          int `json:"ruthlessness"`
	Credibility           int `json:"credibility"`
	IntelligenceGathering int `json:"intelligence_gathering"`

	Respect         int  `json:"respect"`
	ActiveHostility bool `json:"active_hostility"`
	HasSource       bool `json:"has_source"`

	Investigation Investigation `json:"investigation"`
	Stories       []string      `json:"stories"`
	Published     []Story       `json:"published"`
}

// New creates the campaign's reporter.
//
// Draw order: name, outlet, personality, catchphrase, the four sliders,
// topic shuffle, then the source roll.
func New(src entropy.Source) *Reporter {
	r := &Reporter{
		ID:          uuid.NewString(),
		Name:        entropy.Pick(src, reporterNames),
		Outlet:      entropy.Pick(src, outlets),
		Personality: entropy.Pick(src, personalities),
		Catchphrase: entropy.Pick(src, catchphrases),
	}
	r.Persistence = entropy.Range(src, 40, 91)
	r.Ruthlessness = entropy.Range(src, 40, 91)
	r.Credibility = entropy.Range(src, 40, 91)
	r.IntelligenceGathering = entropy.Range(src, 40, 91)

	topics := make([]Angle, NumAngles)
	for i := range topics {
		topics[i] = Angle(i)
	}
	entropy.Shuffle(src, topics)
	r.Investigation.Topics = topics[:3]
	r.Investigation.Topic = topics[0]

	r.HasSource = entropy.Chance(src, float64(r.IntelligenceGathering)/200)
	return r
}

// BeginAmbush counts an ambush that just fired.
func (r *Reporter) BeginAmbush() {
	r.TimesAmbushed++
}

// RecordResponse updates the relationship for one answer and returns the
// story line it produced. Only an attack draws: a coin flip for grudging
// respect.
func (r *Reporter) RecordResponse(src entropy.Source, rt ResponseType) string {
	switch rt {
	case ResponseDirectAnswer:
		r.Relationship += 5
		r.Respect++
		r.TimesCharmed++
	case ResponseAttack:
		r.Relationship -= 10
		if entropy.Chance(src, 0.5) {
			r.Respect++
		}
	case ResponseDeflect:
		r.Relationship -= 3
		r.TimesEvaded++
	case ResponseEvade, ResponseNoComment:
		r.Relationship -= 5
		r.TimesEvaded++
		r.gather(5, fmt.Sprintf("Candidate dodged a question on %s", r.Investigation.Topic))
	case ResponseLie:
		r.Relationship -= 20
		r.ActiveHostility = true
		r.gather(10, fmt.Sprintf("Candidate made a false statement about %s", r.Investigation.Topic))
	case ResponseDefer:
		r.Relationship -= 2
	case ResponseWalkAway:
		r.Relationship -= 15
		r.ActiveHostility = true
		r.TimesEvaded++
	}
	r.Relationship = trail.Clamp(r.Relationship, -100, 100)

	tmpl, ok := storyLines[rt]
	if !ok {
		tmpl = "%s files a short item from the campaign trail."
	}
	story := fmt.Sprintf(tmpl, r.Name)
	r.Stories = append(r.Stories, story)
	return story
}

// AdvanceInvestigation moves the investigation forward. Progress saturates
// at 100, which marks the story ready to publish.
func (r *Reporter) AdvanceInvestigation(amount int) {
	r.gather(amount, "")
}

func (r *Reporter) gather(amount int, evidence string) {
	inv := &r.Investigation
	if evidence != "" {
		inv.Evidence = append(inv.Evidence, evidence)
	}
	if amount <= 0 {
		return
	}
	inv.Progress = trail.Clamp(inv.Progress+amount, 0, 100)
	if inv.Progress >= 100 {
		inv.ReadyToPublish = true
	}
}

// Publish consumes a ready investigation and returns the story. It applies
// no effect to the campaign; that is the host's call. The investigation
// resets onto the next topic.
func (r *Reporter) Publish() (Story, bool) {
	inv := &r.Investigation
	if !inv.ReadyToPublish {
		return Story{}, false
	}
	st := Story{
		Topic:    inv.Topic,
		Headline: press.Title(fmt.Sprintf("%s investigation: what the candidate doesn't want you to know about %s", r.Outlet, inv.Topic)),
		Outlet:   r.Outlet,
		Evidence: append([]string(nil), inv.Evidence...),
	}
	r.Published = append(r.Published, st)

	next := inv.Topic
	for i, t := range inv.Topics {
		if t == inv.Topic {
			next = inv.Topics[(i+1)%len(inv.Topics)]
			break
		}
	}
	inv.Topic = next
	inv.Progress = 0
	inv.Evidence = nil
	inv.ReadyToPublish = false
	return st, true
}

// Status is a snapshot of the reporter plus a readable warning once the
// investigation is halfway done.
type Status struct {
	Reporter Reporter `json:"reporter"`
	Warning  string   `json:"warning,omitempty"`
}

// Status returns a copy safe to hand to the host.
func (r *Reporter) Status() Status {
	snap := *r
	snap.Investigation.Topics = append([]Angle(nil), r.Investigation.Topics...)
	snap.Investigation.Evidence = append([]string(nil), r.Investigation.Evidence...)
	snap.Stories = append([]string(nil), r.Stories...)
	snap.Published = append([]Story(nil), r.Published...)

	st := Status{Reporter: snap}
	inv := r.Investigation
	switch {
	case inv.ReadyToPublish:
		st.Warning = fmt.Sprintf("%s of %s is ready to publish a story on your %s.", r.Name, r.Outlet, inv.Topic)
	case inv.Progress >= WarningThreshold:
		st.Warning = fmt.Sprintf("%s of %s is %d%% through an investigation into your %s.", r.Name, r.Outlet, inv.Progress, inv.Topic)
	}
	return st
}
