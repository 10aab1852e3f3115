package encounters

import (
	"fmt"

	"github.com/talgya/campaign-trail/internal/citizens"
)

// DefaultSuccessChance is used by choices that do not set their own.
const DefaultSuccessChance = 0.5

// Action tags what the candidate does when picking a choice.
type Action uint8

const (
	ActionNod Action = iota
	ActionMoveOn
	ActionHandshake
	ActionPhoto
	ActionHoldBaby
	ActionListen
	ActionConfront
	ActionIgnore
	ActionClapBack
	ActionPromise
	ActionBusinessCard
	ActionDeny
	ActionDeescalate
	ActionCallSecurity
	ActionDuck
	ActionCatchProjectile
	ActionStandGround
	ActionGetInCar
	ActionAnswerHonestly
	ActionDeflect
	ActionAvoid

	// Reporter responses.
	ActionDirectAnswer
	ActionAttackReporter
	ActionNoComment
	ActionEvade
	ActionLie
	ActionDefer
	ActionWalkAway
)

var actionNames = map[Action]string{
	ActionNod:             "Nod",
	ActionMoveOn:          "Move On",
	ActionHandshake:       "Handshake",
	ActionPhoto:           "Photo",
	ActionHoldBaby:        "Hold Baby",
	ActionListen:          "Listen",
	ActionConfront:        "Confront",
	ActionIgnore:          "Ignore",
	ActionClapBack:        "Clap Back",
	ActionPromise:         "Promise",
	ActionBusinessCard:    "Business Card",
	ActionDeny:            "Deny",
	ActionDeescalate:      "De-escalate",
	ActionCallSecurity:    "Call Security",
	ActionDuck:            "Duck",
	ActionCatchProjectile: "Catch Projectile",
	ActionStandGround:     "Stand Ground",
	ActionGetInCar:        "Get In Car",
	ActionAnswerHonestly:  "Answer Honestly",
	ActionDeflect:         "Deflect",
	ActionAvoid:           "Avoid",
	ActionDirectAnswer:    "Direct Answer",
	ActionAttackReporter:  "Attack Reporter",
	ActionNoComment:       "No Comment",
	ActionEvade:           "Evade",
	ActionLie:             "Lie",
	ActionDefer:           "Defer",
	ActionWalkAway:        "Walk Away",
}

// String returns the action name.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Choice is one selectable player response.
type Choice struct {
	Text   string `json:"text"`
	Action Action `json:"action"`

	TrustDelta        int                        `json:"trust_delta"`
	MediaDelta        int                        `json:"media_delta"`
	PartyLoyaltyDelta int                        `json:"party_loyalty_delta,omitempty"`
	BlocDeltas        map[citizens.VoterBloc]int `json:"bloc_deltas,omitempty"`
	Cost              int                        `json:"cost,omitempty"` // political capital

	SuccessChance float64 `json:"success_chance"` // 0.0–1.0
	RiskLevel     int     `json:"risk_level"`     // 0–100
	LeadsTo       Outcome `json:"leads_to"`
}

// NewChoice returns a choice with the default success chance.
func NewChoice(text string, action Action, trust, media int) Choice {
	return Choice{
		Text:          text,
		Action:        action,
		TrustDelta:    trust,
		MediaDelta:    media,
		SuccessChance: DefaultSuccessChance,
		LeadsTo:       OutcomeNeutral,
	}
}

func (c Choice) validate() error {
	if c.SuccessChance < 0 || c.SuccessChance > 1 || c.SuccessChance != c.SuccessChance {
		return fmt.Errorf("%w: success chance %v outside [0,1]", ErrInvalidChoice, c.SuccessChance)
	}
	if c.RiskLevel < 0 || c.RiskLevel > 100 {
		return fmt.Errorf("%w: risk level %d outside [0,100]", ErrInvalidChoice, c.RiskLevel)
	}
	return nil
}

// with sets the tuning fields that vary per choice.
func (c Choice) with(success float64, risk int, leadsTo Outcome) Choice {
	c.SuccessChance = success
	c.RiskLevel = risk
	c.LeadsTo = leadsTo
	return c
}

func supporterChoices(c *citizens.Citizen) []Choice {
	out := []Choice{
		NewChoice("Shake their hand warmly", ActionHandshake, 4, 1).with(0.9, 5, OutcomePositive),
		NewChoice("Pose for a selfie", ActionPhoto, 5, 3).with(0.85, 10, OutcomePositive),
	}
	out[1].BlocDeltas = map[citizens.VoterBloc]int{c.Bloc: 2}
	if c.CarryingBaby {
		baby := NewChoice("Offer to hold the baby", ActionHoldBaby, 8, 6).with(0.7, 25, OutcomePositive)
		baby.BlocDeltas = map[citizens.VoterBloc]int{citizens.BlocSuburban: 3}
		out = append(out, baby)
	}
	return out
}

func persuadableChoices(c *citizens.Citizen) []Choice {
	promise := NewChoice("Promise to look into it personally", ActionPromise, 7, 2).with(0.55, 35, OutcomePositive)
	promise.Cost = 5
	promise.BlocDeltas = map[citizens.VoterBloc]int{c.Bloc: 3}
	return []Choice{
		NewChoice("Listen to their concerns", ActionListen, 4, 1).with(0.75, 10, OutcomePositive),
		promise,
		NewChoice("Hand them a business card", ActionBusinessCard, 1, 0).with(0.9, 5, OutcomeNeutral),
	}
}

func hostileChoices() []Choice {
	clapBack := NewChoice("Fire back with a zinger", ActionClapBack, 6, 8).with(0.35, 75, OutcomePositive)
	clapBack.PartyLoyaltyDelta = 2
	return []Choice{
		NewChoice("Hear them out calmly", ActionListen, 3, 1).with(0.6, 15, OutcomeNeutral),
		NewChoice("Confront them head-on", ActionConfront, -4, 6).with(0.4, 60, OutcomeNegative),
		NewChoice("Ignore them and keep walking", ActionIgnore, -2, -1).with(0.7, 20, OutcomeNeutral),
		clapBack,
	}
}

func secretChoices() []Choice {
	security := NewChoice("Signal security to remove them", ActionCallSecurity, -8, 12).with(0.5, 80, OutcomeDisaster)
	security.Cost = 10
	return []Choice{
		NewChoice("Deny everything", ActionDeny, -3, 5).with(0.45, 70, OutcomeNegative),
		NewChoice("Lower your voice and steer them aside", ActionDeescalate, 2, 2).with(0.6, 40, OutcomeNeutral),
		NewChoice("Call them a liar in front of everyone", ActionConfront, -6, 10).with(0.3, 85, OutcomeDisaster),
		security,
	}
}

func projectileChoices(includeCar bool) []Choice {
	out := []Choice{
		NewChoice("Duck!", ActionDuck, 1, 4).with(0.8, 30, OutcomeNeutral),
		NewChoice("Try to catch it", ActionCatchProjectile, 10, 15).with(0.25, 70, OutcomePositive),
		NewChoice("Stand your ground", ActionStandGround, 6, 10).with(0.5, 55, OutcomePositive),
	}
	if includeCar {
		out = append(out, NewChoice("Dive into the car", ActionGetInCar, -4, 3).with(0.95, 10, OutcomeNegative))
	}
	return out
}

func childChoices() []Choice {
	return []Choice{
		NewChoice("Answer honestly, at their level", ActionAnswerHonestly, 6, 8).with(0.8, 20, OutcomePositive),
		NewChoice("Turn it into a joke", ActionDeflect, -1, 2).with(0.7, 30, OutcomeNeutral),
		NewChoice("Hand the question to a staffer", ActionAvoid, -6, -4).with(0.6, 40, OutcomeNegative),
	}
}

func fallbackChoices() []Choice {
	return []Choice{
		NewChoice("Smile and nod", ActionNod, 1, 0).with(0.8, 5, OutcomeNeutral),
		NewChoice("Thank them and move on", ActionMoveOn, 0, 0).with(0.9, 0, OutcomeNeutral),
	}
}
