package encounters

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/trail"
)

// Evidence roll probabilities for secret witnesses.
const (
	PhotoChance     = 0.5
	DocumentsChance = 0.3
	WitnessesChance = 0.4
)

// Params describes the stop an encounter is generated for.
type Params struct {
	// Citizen is the subject. When nil the generator creates one. A supplied
	// citizen is copied, never mutated.
	Citizen *citizens.Citizen

	Event        trail.EventType
	Hostility    trail.Hostility
	Location     string
	Candidate    string
	PressPresent bool

	// ForceHostile applies only when the generator creates the citizen.
	ForceHostile bool
}

// Generator builds encounters. It shares its random source with the
// citizen generator so one seed replays a whole stop.
type Generator struct {
	src      entropy.Source
	citizens *citizens.Generator
}

// NewGenerator creates an encounter generator. A nil citizen generator is
// replaced with one drawing from the same source.
func NewGenerator(src entropy.Source, people *citizens.Generator) *Generator {
	if people == nil {
		people = citizens.NewGenerator(src)
	}
	return &Generator{src: src, citizens: people}
}

// Standard builds an ordinary encounter.
//
// Draw order: citizen (when not supplied), archetype elaboration, then one
// opening line from the branch list. The branch is the first of secret,
// projectile, intoxicated, sign, then the disposition group.
func (g *Generator) Standard(p Params) *Encounter {
	c := g.subject(p, citizens.Force{Hostile: p.ForceHostile})
	cc := g.citizens.Elaborate(c, p.Hostility)

	e := newEncounter(KindStandard, p, c)
	e.Archetype = cc.Archetype
	e.Quirk = cc.Quirk
	e.Memorability = cc.Memorability
	e.Unique = cc.Unique

	group := c.Disposition.Group()
	switch {
	case c.HasSecret():
		e.OpeningAction = "steps out of the crowd and blocks your path"
		e.OpeningDialogue = entropy.Pick(g.src, secretOpenings)
		e.Choices = secretChoices()
	case c.HasProjectile:
		e.OpeningAction = "lunges toward the rope line"
		e.OpeningDialogue = entropy.Pick(g.src, projectileOpenings)
		e.Projectile = c.Projectile
		e.Choices = projectileChoices(false)
	case c.Intoxicated:
		e.OpeningAction = "stumbles over, drink in hand"
		e.OpeningDialogue = entropy.Pick(g.src, intoxicatedOpenings)
		e.Choices = groupChoices(c)
	case c.HasSign:
		e.OpeningAction = fmt.Sprintf("waves a sign reading %q", c.SignText)
		e.OpeningDialogue = entropy.Pick(g.src, signOpenings)
		e.Choices = groupChoices(c)
	case group == citizens.GroupSupportive:
		e.OpeningAction = "waves you over, beaming"
		e.OpeningDialogue = entropy.Pick(g.src, supporterOpenings)
		e.Choices = supporterChoices(c)
	case group == citizens.GroupPersuadable:
		e.OpeningAction = "approaches with arms folded"
		e.OpeningDialogue = entropy.Pick(g.src, undecidedOpenings)
		e.Choices = persuadableChoices(c)
	case group == citizens.GroupHostile:
		e.OpeningAction = "shoves to the front, shouting"
		e.OpeningDialogue = entropy.Pick(g.src, hostileOpenings)
		e.Choices = hostileChoices()
	default:
		e.OpeningAction = "drifts into your path"
		e.OpeningDialogue = entropy.Pick(g.src, fallbackOpenings)
		e.Choices = fallbackChoices()
	}

	e.Context = introduce(c)
	if e.Unique != nil {
		e.Context = e.Unique.Dialogue
	}
	return e
}

// Projectile builds a physical-confrontation encounter with an armed, angry,
// hostile citizen.
//
// Draw order: citizen (when not supplied), projectile kind (only when a
// supplied citizen was unarmed), opening line, context line.
func (g *Generator) Projectile(p Params) *Encounter {
	c := g.subject(p, citizens.Force{Projectile: true})
	c.HasProjectile = true
	c.Angry = true
	if c.Disposition.Group() != citizens.GroupHostile {
		c.Disposition = citizens.DispositionHeckler
	}
	if c.Projectile == citizens.ProjectileNone {
		c.Projectile = citizens.ProjectileKind(entropy.Range(g.src, int(citizens.ProjectileEgg), int(citizens.ProjectileGlitter)+1))
	}

	e := newEncounter(KindProjectile, p, c)
	e.Projectile = c.Projectile
	e.OpeningAction = "draws back an arm"
	e.OpeningDialogue = entropy.Pick(g.src, projectileOpenings)
	e.Context = fmt.Sprintf(entropy.Pick(g.src, projectileContexts), c.Name, c.Projectile)
	e.Choices = projectileChoices(true)
	return e
}

// Child builds an encounter with a child asking an innocent but loaded
// question. Children are always watched, recorded and covered.
//
// Draw order: child (when not supplied), question.
func (g *Generator) Child(p Params) *Encounter {
	var c *citizens.Citizen
	if p.Citizen != nil {
		cp := p.Citizen.Snapshot()
		c = &cp
	} else {
		c = g.citizens.GenerateChild()
	}

	e := newEncounter(KindChild, p, c)
	e.HasAudience = true
	e.Recorded = true
	e.PressPresent = true
	e.ChildQuestion = entropy.Pick(g.src, childQuestions)
	e.OpeningAction = "tugs on your jacket"
	e.OpeningDialogue = e.ChildQuestion
	e.Context = fmt.Sprintf("%s, age %d, is lifted onto a parent's shoulders as the cameras turn.", c.Name, c.Age)
	e.Choices = childChoices()
	return e
}

// SecretWitness builds a revelation encounter around a citizen who always
// carries a secret.
//
// Draw order: citizen (when not supplied), secret (only when a supplied
// citizen had none), photo, documents and witness rolls, opening line, then
// the revelation's own draws.
func (g *Generator) SecretWitness(p Params) *Encounter {
	c := g.subject(p, citizens.Force{Secret: true, Hostile: p.ForceHostile})
	if c.Secret == nil {
		c.Secret = g.citizens.NewSecret()
	}
	c.Secret.HasPhoto = entropy.Chance(g.src, PhotoChance)
	c.Secret.HasDocuments = entropy.Chance(g.src, DocumentsChance)
	c.Secret.HasWitnesses = entropy.Chance(g.src, WitnessesChance)

	e := newEncounter(KindSecretWitness, p, c)
	e.OpeningAction = "grabs the microphone from a volunteer"
	e.OpeningDialogue = entropy.Pick(g.src, secretOpenings)
	e.Revelation = g.Revelation(c, p)
	e.Context = e.Revelation.Monologue
	e.Memorability = 60
	e.Choices = secretChoices()
	return e
}

// subject returns a private copy of the supplied citizen, or a new one.
func (g *Generator) subject(p Params, force citizens.Force) *citizens.Citizen {
	if p.Citizen != nil {
		cp := p.Citizen.Snapshot()
		return &cp
	}
	return g.citizens.GenerateForced(p.Event, p.Hostility, force)
}

func newEncounter(kind Kind, p Params, c *citizens.Citizen) *Encounter {
	e := &Encounter{
		ID:           uuid.NewString(),
		Kind:         kind,
		Event:        p.Event,
		Hostility:    p.Hostility,
		Location:     p.Location,
		Citizen:      c.Snapshot(),
		HasAudience:  trail.ExpectedAttendance(p.Event) >= 50,
		PressPresent: p.PressPresent,
		Recorded:     c.Recording || p.PressPresent,
	}
	if c.Secret != nil {
		e.HasSecret = true
		e.SecretKind = c.Secret.Kind
		e.SecretDetail = c.Secret.Detail
	}
	return e
}

func groupChoices(c *citizens.Citizen) []Choice {
	switch c.Disposition.Group() {
	case citizens.GroupSupportive:
		return supporterChoices(c)
	case citizens.GroupPersuadable:
		return persuadableChoices(c)
	case citizens.GroupHostile:
		return hostileChoices()
	default:
		return fallbackChoices()
	}
}

func introduce(c *citizens.Citizen) string {
	return fmt.Sprintf("%s (%s, %d), %s.", c.Name, c.Occupation, c.Age, c.Appearance)
}
