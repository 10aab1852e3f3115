package reporter

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/encounters"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/trail"
)

// Ambush tuning.
const (
	FollowUpChance = 0.4
	ProofChance    = 0.2
)

// Angle is a line of investigation.
type Angle uint8

const (
	AngleFinances Angle = iota
	AngleCampaignDonors
	AnglePastStatements
	AnglePersonalLife
	AnglePolicyFlipFlops
	AngleStaffTurmoil
)

// NumAngles is the number of investigation angles.
const NumAngles = 6

// String returns the angle as it reads mid-sentence.
func (a Angle) String() string {
	switch a {
	case AngleFinances:
		return "finances"
	case AngleCampaignDonors:
		return "campaign donors"
	case AnglePastStatements:
		return "past statements"
	case AnglePersonalLife:
		return "personal life"
	case AnglePolicyFlipFlops:
		return "policy flip-flops"
	case AngleStaffTurmoil:
		return "staff turmoil"
	default:
		return "record"
	}
}

// ResponseType is a strategy for answering a reporter's question.
type ResponseType uint8

const (
	ResponseDirectAnswer ResponseType = iota
	ResponseDeflect
	ResponseAttack
	ResponseNoComment
	ResponseEvade
	ResponseLie
	ResponseDefer
	ResponseWalkAway
)

// NumResponseTypes is the number of response strategies.
const NumResponseTypes = 8

// String returns the response name.
func (rt ResponseType) String() string {
	return rt.Action().String()
}

// Action maps a response strategy onto the encounter action tag.
func (rt ResponseType) Action() encounters.Action {
	switch rt {
	case ResponseDirectAnswer:
		return encounters.ActionDirectAnswer
	case ResponseDeflect:
		return encounters.ActionDeflect
	case ResponseAttack:
		return encounters.ActionAttackReporter
	case ResponseNoComment:
		return encounters.ActionNoComment
	case ResponseEvade:
		return encounters.ActionEvade
	case ResponseLie:
		return encounters.ActionLie
	case ResponseDefer:
		return encounters.ActionDefer
	default:
		return encounters.ActionWalkAway
	}
}

// ResponseForAction is the inverse of ResponseType.Action.
func ResponseForAction(a encounters.Action) (ResponseType, bool) {
	for rt := ResponseType(0); rt < NumResponseTypes; rt++ {
		if rt.Action() == a {
			return rt, true
		}
	}
	return 0, false
}

// Response is one way to answer a question.
type Response struct {
	Type        ResponseType `json:"type"`
	Text        string       `json:"text"`
	Consequence string       `json:"consequence"`
	TrustDelta  int          `json:"trust_delta"`
	MediaDelta  int          `json:"media_delta"`
	HasProof    bool         `json:"has_proof,omitempty"` // lie only
}

// Question is one question in an ambush.
type Question struct {
	Text           string     `json:"text"`
	Angle          Angle      `json:"angle"`
	DamageIfEvaded int        `json:"damage_if_evaded"` // 10–25
	DamageIfLied   int        `json:"damage_if_lied"`   // 30–50
	FollowUp       *Question  `json:"follow_up,omitempty"`
	Responses      []Response `json:"responses"`
}

// Ambush is a multi-question reporter interjection.
type Ambush struct {
	ID               string     `json:"id"`
	Reporter         string     `json:"reporter"`
	Outlet           string     `json:"outlet"`
	Angle            Angle      `json:"angle"`
	Location         string     `json:"location"`
	Context          string     `json:"context"`
	Accusation       string     `json:"accusation"`
	SourceRevelation string     `json:"source_revelation,omitempty"`
	Questions        []Question `json:"questions"`

	Current int            `json:"current"`
	Answers []ResponseType `json:"answers"`
	ended   bool
}

// Generate builds an ambush for the reporter at the given stop. When known
// scandals are supplied, the final question names the most recent one.
//
// Draw order: angle, context, accusation, question count, then per question:
// text (only once the bank is exhausted), evaded damage, lied damage,
// follow-up roll and text, proof roll. Finally the source paragraph when the
// reporter has a source.
func Generate(src entropy.Source, r *Reporter, event trail.EventType, location string, knownScandals []string) *Ambush {
	topics := r.Investigation.Topics
	if len(topics) == 0 {
		topics = []Angle{r.Investigation.Topic}
	}
	angle := entropy.Pick(src, topics)
	if location == "" {
		location = event.String()
	}

	a := &Ambush{
		ID:       uuid.NewString(),
		Reporter: r.Name,
		Outlet:   r.Outlet,
		Angle:    angle,
		Location: location,
	}
	a.Context = fmt.Sprintf(entropy.Pick(src, ambushContexts), r.Name, r.Outlet, location)
	a.Accusation = entropy.Pick(src, bankFor(angle).accusations)

	bank := bankFor(angle)
	n := entropy.Range(src, 3, 6)
	for i := 0; i < n; i++ {
		var text string
		if i < len(bank.questions) {
			text = bank.questions[i]
		} else {
			text = entropy.Pick(src, bank.questions)
		}
		q := Question{
			Text:           text,
			Angle:          angle,
			DamageIfEvaded: entropy.Range(src, 10, 26),
			DamageIfLied:   entropy.Range(src, 30, 51),
		}
		var followUp string
		if entropy.Chance(src, FollowUpChance) {
			followUp = entropy.Pick(src, bank.followUps)
		}
		proof := entropy.Chance(src, ProofChance)
		q.Responses = responses(proof)
		if followUp != "" {
			fq := q
			fq.Text = followUp
			fq.FollowUp = nil
			fq.Responses = responses(proof)
			q.FollowUp = &fq
		}
		a.Questions = append(a.Questions, q)
	}

	if r.HasSource {
		a.SourceRevelation = fmt.Sprintf(entropy.Pick(src, sourceRevelations), r.Name)
	}

	if len(knownScandals) > 0 {
		last := &a.Questions[len(a.Questions)-1]
		last.Text = fmt.Sprintf("And what about %s? The voters deserve an answer.", knownScandals[len(knownScandals)-1])
		last.FollowUp = nil
	}
	return a
}

// Question returns the question awaiting an answer, or nil when done.
func (a *Ambush) Question() *Question {
	if a.Done() {
		return nil
	}
	return &a.Questions[a.Current]
}

// Done reports whether the ambush is over.
func (a *Ambush) Done() bool {
	return a.ended || a.Current >= len(a.Questions)
}

// Answer records the response to the current question and moves on. An
// evasive answer to a question with a follow-up queues the follow-up next.
// Walking away ends the ambush.
func (a *Ambush) Answer(rt ResponseType) {
	q := a.Question()
	if q == nil {
		return
	}
	a.Answers = append(a.Answers, rt)
	if rt == ResponseWalkAway {
		a.ended = true
		return
	}
	if q.FollowUp != nil && evasive(rt) {
		fq := *q.FollowUp
		q.FollowUp = nil
		a.Questions = slices.Insert(a.Questions, a.Current+1, fq)
	}
	a.Current++
}

func evasive(rt ResponseType) bool {
	switch rt {
	case ResponseDeflect, ResponseNoComment, ResponseEvade, ResponseLie:
		return true
	}
	return false
}

// Encounter converts the current question into a resolvable encounter whose
// choices map one to one onto the response strategies. It returns nil once
// the ambush is over.
func (a *Ambush) Encounter() *encounters.Encounter {
	q := a.Question()
	if q == nil {
		return nil
	}
	ctx := a.Context + " " + a.Accusation
	if a.Current > 0 {
		ctx = fmt.Sprintf("%s presses on.", a.Reporter)
	} else if a.SourceRevelation != "" {
		ctx += " " + a.SourceRevelation
	}

	enc := &encounters.Encounter{
		ID:   uuid.NewString(),
		Kind: encounters.KindReporter,
		Citizen: citizens.Citizen{
			ID:               a.ID,
			Name:             a.Reporter,
			Occupation:       "Reporter, " + a.Outlet,
			Disposition:      citizens.DispositionSkeptical,
			Recording:        true,
			TrustInCandidate: -10,
		},
		Location:        a.Location,
		OpeningAction:   "shoves a microphone in your face",
		OpeningDialogue: q.Text,
		Context:         ctx,
		HasAudience:     true,
		PressPresent:    true,
		Recorded:        true,
		Memorability:    40,
	}
	for _, resp := range q.Responses {
		enc.Choices = append(enc.Choices, choiceFor(q, resp))
	}
	return enc
}

func choiceFor(q *Question, resp Response) encounters.Choice {
	c := encounters.NewChoice(resp.Text, resp.Type.Action(), resp.TrustDelta, resp.MediaDelta)
	switch resp.Type {
	case ResponseDirectAnswer:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.7, 30, encounters.OutcomePositive
	case ResponseDeflect:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.6, 25, encounters.OutcomeNeutral
	case ResponseAttack:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.4, 60, encounters.OutcomeNegative
		c.PartyLoyaltyDelta = 3
	case ResponseNoComment:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.8, q.DamageIfEvaded, encounters.OutcomeNeutral
	case ResponseEvade:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.5, q.DamageIfEvaded, encounters.OutcomeNegative
	case ResponseLie:
		c.RiskLevel = q.DamageIfLied
		if resp.HasProof {
			c.SuccessChance, c.LeadsTo = 0.1, encounters.OutcomeDisaster
		} else {
			c.SuccessChance, c.LeadsTo = 0.6, encounters.OutcomeNeutral
		}
	case ResponseDefer:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.7, 20, encounters.OutcomeNeutral
	case ResponseWalkAway:
		c.SuccessChance, c.RiskLevel, c.LeadsTo = 0.9, 50, encounters.OutcomeNegative
	}
	return c
}

// responses builds the eight strategies for a question. Only the lie
// depends on whether the reporter is holding proof.
func responses(proof bool) []Response {
	out := []Response{
		{ResponseDirectAnswer, "Answer the question directly", "A straight answer. The reporter looks almost disappointed.", 3, 2, false},
		{ResponseDeflect, "Pivot to your talking points", "Smooth, but everyone noticed.", -1, 1, false},
		{ResponseAttack, "Go after the reporter's bias", "Your base loves it. The press corps does not.", -3, 6, false},
		{ResponseNoComment, "\"No comment.\"", "Two words that will lead the evening news.", -2, -1, false},
		{ResponseEvade, "Talk in circles until they give up", "The clip of you not answering runs for a full minute.", -3, -3, false},
		{ResponseLie, "Flatly deny it", "You say it with a straight face.", 0, -5, false},
		{ResponseDefer, "Promise a full statement later", "Buys time. The clock is now ticking.", -1, 0, false},
		{ResponseWalkAway, "Turn and walk to the car", "The shot of your back is on every channel.", -5, -8, false},
	}
	if proof {
		lie := &out[ResponseLie]
		lie.Consequence = "The reporter holds up a document that proves otherwise."
		lie.TrustDelta = -30
		lie.MediaDelta = -50
		lie.HasProof = true
	}
	return out
}
