// Citizen generation. Every attribute is an independent weighted draw from the
// tables in names.go; hostility biases disposition and the volatile flags.
package citizens

import (
	"github.com/google/uuid"

	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/trail"
)

// SecretChance is the probability an ordinary citizen carries a secret.
const SecretChance = 0.15

// Force pins correlated attributes that specialized encounters need.
type Force struct {
	Hostile    bool // Disposition drawn from the hostile group; implies Angry
	Projectile bool // Armed, angry and hostile
	Secret     bool // Always carries a secret
}

// Generator creates citizens from weighted tables.
type Generator struct {
	src entropy.Source
}

// NewGenerator creates a citizen generator drawing from src.
func NewGenerator(src entropy.Source) *Generator {
	return &Generator{src: src}
}

// Generate creates an ordinary citizen for an event at the given hostility.
//
// Draw order: first name, last name, age band, age, occupation, appearance,
// bloc, disposition, enthusiasm, volatility, articulateness, trust, then one
// draw each for intoxicated, angry, projectile, recording, sign, knows and
// baby, then the secret roll. Projectile kind, sign text and secret details
// draw only when their flag is set.
func (g *Generator) Generate(event trail.EventType, hostility trail.Hostility) *Citizen {
	return g.GenerateForced(event, hostility, Force{})
}

// GenerateForced creates a citizen with forced attribute combinations. The
// draw order is identical to Generate so forcing never shifts later draws.
func (g *Generator) GenerateForced(event trail.EventType, hostility trail.Hostility, force Force) *Citizen {
	src := g.src
	band := float64(hostility)

	c := &Citizen{ID: uuid.NewString()}
	c.Name = entropy.Pick(src, firstNames) + " " + entropy.Pick(src, lastNames)
	c.Age = g.age()
	c.Occupation = g.occupationForEvent(event)
	c.Appearance = entropy.Pick(src, appearances)
	c.Bloc = VoterBloc(entropy.Intn(src, NumBlocs))

	c.Disposition = g.disposition(hostility)
	if (force.Hostile || force.Projectile) && c.Disposition.Group() != GroupHostile {
		c.Disposition = hostileFallback(c.Disposition)
	}

	c.Enthusiasm = entropy.Range(src, 0, 101)
	c.Volatility = entropy.Range(src, 0, 101)
	if c.Disposition.Group() == GroupHostile {
		c.Volatility = trail.Clamp(c.Volatility+15, 0, 100)
	}
	c.Articulateness = entropy.Range(src, 0, 101)
	c.TrustInCandidate = trail.Clamp(baseTrust[c.Disposition]+entropy.Range(src, -20, 21), -100, 100)

	c.Intoxicated = entropy.Chance(src, 0.08+0.02*band)
	c.Angry = entropy.Chance(src, 0.1+0.1*band)
	armed := entropy.Chance(src, 0.02*band)
	c.Recording = entropy.Chance(src, 0.25)
	c.HasSign = entropy.Chance(src, 0.2)
	c.KnowsCandidate = entropy.Chance(src, 0.05)
	baby := entropy.Chance(src, 0.1)

	if c.Disposition.Group() == GroupHostile && c.Volatility > 70 {
		c.Angry = true
	}
	if force.Hostile {
		c.Angry = true
	}
	c.HasProjectile = force.Projectile || (armed && c.Disposition.Group() == GroupHostile)
	if c.HasProjectile {
		c.Angry = true
		c.Projectile = ProjectileKind(entropy.Range(src, int(ProjectileEgg), int(ProjectileGlitter)+1))
	}
	if c.HasSign {
		c.SignText = g.signFor(c.Disposition)
	}
	c.CarryingBaby = baby && c.Age >= 18 && c.Age <= 45

	if entropy.Chance(src, SecretChance) || force.Secret {
		c.Secret = g.secret()
	}
	return c
}

// GenerateChild creates a young citizen for child encounters. Children are
// undecided, sober and never armed. Draw order: first name, age, enthusiasm,
// articulateness.
func (g *Generator) GenerateChild() *Citizen {
	src := g.src
	return &Citizen{
		ID:               uuid.NewString(),
		Name:             entropy.Pick(src, childNames),
		Age:              entropy.Range(src, 6, 12),
		Occupation:       "Student",
		Appearance:       "clutching a crayon drawing",
		Bloc:             BlocSuburban,
		Enthusiasm:       entropy.Range(src, 60, 101),
		Volatility:       5,
		Articulateness:   entropy.Range(src, 20, 81),
		TrustInCandidate: 0,
		Disposition:      DispositionUndecided,
	}
}

// NewSecret draws a secret of a uniformly chosen kind. Exposed for the
// secret-witness generator, which forces a secret and rolls evidence itself.
func (g *Generator) NewSecret() *Secret {
	return g.secret()
}

// secret draws kind, detail, then credibility.
func (g *Generator) secret() *Secret {
	kind := SecretKind(entropy.Intn(g.src, NumSecretKinds))
	return &Secret{
		Kind:        kind,
		Detail:      g.secretDetail(kind),
		Credibility: entropy.Range(g.src, 20, 101),
	}
}

func (g *Generator) secretDetail(kind SecretKind) string {
	details, ok := secretDetails[kind]
	if !ok || len(details) == 0 {
		return "knows something the campaign would rather keep quiet"
	}
	return entropy.Pick(g.src, details)
}

// age draws a band then an age within it.
func (g *Generator) age() int {
	band := entropy.Weighted(g.src, []float64{0.22, 0.28, 0.32, 0.18})
	switch band {
	case 0:
		return entropy.Range(g.src, 18, 30)
	case 1:
		return entropy.Range(g.src, 30, 45)
	case 2:
		return entropy.Range(g.src, 45, 65)
	default:
		return entropy.Range(g.src, 65, 90)
	}
}

// disposition walks the hostility row in order; first matching band wins.
func (g *Generator) disposition(h trail.Hostility) Disposition {
	row, ok := dispositionWeights[h]
	if !ok {
		row = dispositionWeights[trail.HostilityNeutral]
	}
	return Disposition(entropy.Weighted(g.src, row[:]))
}

// hostileFallback maps a non-hostile draw onto the hostile group, keeping
// the relative intensity of the original draw.
func hostileFallback(d Disposition) Disposition {
	switch {
	case d <= DispositionSupporter:
		return DispositionOpponent
	case d <= DispositionUndecided:
		return DispositionHostileOpponent
	default:
		return DispositionHeckler
	}
}

func (g *Generator) occupationForEvent(event trail.EventType) string {
	r := g.src.Float()
	switch event {
	case trail.EventFactoryTour:
		if r < 0.55 {
			return "Line Worker"
		} else if r < 0.7 {
			return "Shift Supervisor"
		} else if r < 0.82 {
			return "Welder"
		} else if r < 0.92 {
			return "Forklift Operator"
		} else {
			return "Union Steward"
		}
	case trail.EventCampusVisit:
		if r < 0.6 {
			return "Student"
		} else if r < 0.75 {
			return "Graduate Student"
		} else if r < 0.9 {
			return "Professor"
		} else {
			return "Campus Barista"
		}
	case trail.EventFundraiser:
		if r < 0.35 {
			return "Hedge Fund Manager"
		} else if r < 0.6 {
			return "Corporate Lawyer"
		} else if r < 0.8 {
			return "Real Estate Developer"
		} else if r < 0.92 {
			return "Heiress"
		} else {
			return "Caterer"
		}
	case trail.EventCountyFair:
		if r < 0.4 {
			return "Farmer"
		} else if r < 0.6 {
			return "Livestock Judge"
		} else if r < 0.8 {
			return "Retired Teacher"
		} else {
			return "Carnival Worker"
		}
	default:
		return occupations[int(r*float64(len(occupations)))%len(occupations)]
	}
}

func (g *Generator) signFor(d Disposition) string {
	switch d.Group() {
	case GroupSupportive:
		return entropy.Pick(g.src, supportiveSigns)
	case GroupHostile:
		return entropy.Pick(g.src, hostileSigns)
	default:
		return entropy.Pick(g.src, neutralSigns)
	}
}

// dispositionWeights rows are indexed by Disposition, TrueBeliever first.
var dispositionWeights = map[trail.Hostility][NumDispositions]float64{
	trail.HostilityAdoring:  {0.25, 0.30, 0.18, 0.12, 0.07, 0.05, 0.02, 0.01},
	trail.HostilityFriendly: {0.15, 0.25, 0.18, 0.16, 0.10, 0.09, 0.04, 0.03},
	trail.HostilityNeutral:  {0.08, 0.15, 0.15, 0.20, 0.14, 0.14, 0.08, 0.06},
	trail.HostilityTense:    {0.05, 0.10, 0.12, 0.16, 0.15, 0.18, 0.13, 0.11},
	trail.HostilityHostile:  {0.03, 0.06, 0.08, 0.12, 0.14, 0.22, 0.19, 0.16},
	trail.HostilityRiotous:  {0.02, 0.03, 0.05, 0.08, 0.12, 0.22, 0.25, 0.23},
}

var baseTrust = map[Disposition]int{
	DispositionTrueBeliever:    80,
	DispositionSupporter:       50,
	DispositionLeaning:         25,
	DispositionUndecided:       0,
	DispositionSkeptical:       -20,
	DispositionOpponent:        -45,
	DispositionHostileOpponent: -70,
	DispositionHeckler:         -60,
}
