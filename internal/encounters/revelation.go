package encounters

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/press"
)

// Revelation is the scene a secret witness makes when they go public.
type Revelation struct {
	Kind           citizens.SecretKind `json:"kind"`
	Witness        string              `json:"witness"`
	Monologue      string              `json:"monologue"`
	Witnesses      int                 `json:"witnesses"` // corroborating bystanders
	Evidence       []string            `json:"evidence"`
	CrowdReactions []string            `json:"crowd_reactions"`
	Headline       string              `json:"headline"`
}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var gaspReactions = []string{
	"A collective gasp ripples through the crowd.",
	"Someone drops a plate of funnel cake.",
	"Phones go up all across the room.",
}

var knewItReactions = []string{
	"\"I KNEW it!\" shouts a man near the back.",
	"\"Told you so,\" someone mutters to their spouse.",
}

var skepticReactions = []string{
	"\"Sounds made up to me,\" says a woman in a visor.",
	"A few people roll their eyes.",
	"\"Who even is this person?\"",
}

var photoReactions = []string{
	"The photo is passed hand to hand down the front row.",
	"A camera operator zooms in on the photograph.",
}

var witnessReactions = []string{
	"Another voice calls out: \"It's true, I was there too!\"",
	"Two more people step forward, nodding.",
}

// Revelation builds the witness's public revelation.
//
// Draw order: month, year, amount (always drawn, whatever the kind), the
// corroboration roll and count, then one line from each reaction pool in
// order: gasp, knew-it, skeptic, photo, witness. Gated pools draw only when
// their gate is open. The headline is a lookup and draws nothing.
func (g *Generator) Revelation(witness *citizens.Citizen, p Params) *Revelation {
	sec := witness.Secret
	if sec == nil {
		sec = &citizens.Secret{Kind: citizens.SecretKind(citizens.NumSecretKinds), Credibility: 50}
	}
	candidate := p.Candidate
	if candidate == "" {
		candidate = "the candidate"
	}

	month := entropy.Pick(g.src, months)
	year := entropy.Range(g.src, 2004, 2021)
	amount := humanize.Comma(int64(entropy.Range(g.src, 5, 500) * 1000))

	r := &Revelation{
		Kind:      sec.Kind,
		Witness:   witness.Name,
		Monologue: monologue(sec.Kind, witness.Name, candidate, month, year, amount),
		Headline:  press.SecretHeadline(sec.Kind, candidate),
	}

	if entropy.Chance(g.src, WitnessesChance) {
		r.Witnesses = entropy.Range(g.src, 1, 5)
	}

	if sec.HasPhoto {
		r.Evidence = append(r.Evidence, "a creased photograph")
	}
	if sec.HasDocuments {
		r.Evidence = append(r.Evidence, "a folder of photocopied documents")
	}
	switch {
	case r.Witnesses > 1:
		r.Evidence = append(r.Evidence, fmt.Sprintf("%d people willing to back the story", r.Witnesses))
	case r.Witnesses == 1 || sec.HasWitnesses:
		r.Evidence = append(r.Evidence, "a friend willing to back the story")
	}
	if len(r.Evidence) == 0 {
		r.Evidence = append(r.Evidence, "nothing but their word")
	}

	credibility := float64(sec.Credibility) / 100
	r.CrowdReactions = append(r.CrowdReactions, entropy.Pick(g.src, gaspReactions))
	if credibility > 0.6 {
		r.CrowdReactions = append(r.CrowdReactions, entropy.Pick(g.src, knewItReactions))
	}
	if credibility < 0.7 {
		r.CrowdReactions = append(r.CrowdReactions, entropy.Pick(g.src, skepticReactions))
	}
	if sec.HasPhoto {
		r.CrowdReactions = append(r.CrowdReactions, entropy.Pick(g.src, photoReactions))
	}
	if r.Witnesses > 0 {
		r.CrowdReactions = append(r.CrowdReactions, entropy.Pick(g.src, witnessReactions))
	}
	return r
}

func monologue(kind citizens.SecretKind, witness, candidate, month string, year int, amount string) string {
	switch kind {
	case citizens.SecretAffair:
		return fmt.Sprintf("My name is %s. In %s %d I was working the front desk at the Pine Motor Lodge, and %s checked in every Thursday. Never with their spouse.",
			witness, month, year, candidate)
	case citizens.SecretTaxEvasion:
		return fmt.Sprintf("I'm %s. I kept the books. In %s %d, %s moved $%s to an account in the Caymans and told me to call it consulting.",
			witness, month, year, candidate, amount)
	case citizens.SecretBribery:
		return fmt.Sprintf("I'm %s, and in %s %d I carried an envelope with $%s in it from a developer straight to %s's office. The rezoning passed a week later.",
			witness, month, year, amount, candidate)
	case citizens.SecretDrunkDriving:
		return fmt.Sprintf("%s here. I drive a tow truck. %s %d, two in the morning, I pulled %s's car out of a ditch. They could barely stand.",
			witness, month, year, candidate)
	case citizens.SecretCollegeCheating:
		return fmt.Sprintf("I'm %s. In %s %d, %s paid me $%s to write a senior thesis. I still have the drafts.",
			witness, month, year, candidate, amount)
	case citizens.SecretHiddenChild:
		return fmt.Sprintf("I'm %s. There's a child born in %s %d who has %s's eyes and %s's last name on the birth certificate.",
			witness, month, year, candidate, candidate)
	case citizens.SecretDebt:
		return fmt.Sprintf("My name's %s. Since %s %d, %s has owed me $%s from a card game, and they still haven't paid a dime.",
			witness, month, year, candidate, amount)
	case citizens.SecretDrugUse:
		return fmt.Sprintf("I'm %s. %s and I partied together back in %s %d, and it wasn't just beer.",
			witness, candidate, month, year)
	case citizens.SecretPastArrest:
		return fmt.Sprintf("I'm %s. In %s %d I shared a holding cell with %s. Ask them about that night.",
			witness, month, year, candidate)
	case citizens.SecretForeignDonation:
		return fmt.Sprintf("I'm %s. In %s %d I was paid to give $%s to %s's campaign. The money wasn't mine, and it wasn't from this country.",
			witness, month, year, amount, candidate)
	default:
		return fmt.Sprintf("I'm %s, and I know things about %s that the voters deserve to hear.", witness, candidate)
	}
}
