// Archetype layer: flavor overlays that give a base citizen a personality,
// a look, catchphrases, a backstory and occasionally a one-off scene.
package citizens

import (
	"fmt"
	"strings"

	"github.com/talgya/campaign-trail/internal/entropy"
	"github.com/talgya/campaign-trail/internal/trail"
)

// Archetype is a flavor template layered on top of a citizen.
type Archetype string

const (
	ArchSuperFan            Archetype = "SuperFan"
	ArchProudVeteran        Archetype = "ProudVeteran"
	ArchChurchVolunteer     Archetype = "ChurchVolunteer"
	ArchLocalBooster        Archetype = "LocalBooster"
	ArchNostalgicRetiree    Archetype = "NostalgicRetiree"
	ArchPolicyWonk          Archetype = "PolicyWonk"
	ArchWorriedParent       Archetype = "WorriedParent"
	ArchShopOwner           Archetype = "ShopOwner"
	ArchConfusedTourist     Archetype = "ConfusedTourist"
	ArchFenceSitter         Archetype = "FenceSitter"
	ArchAngryTaxpayer       Archetype = "AngryTaxpayer"
	ArchRivalVolunteer      Archetype = "RivalVolunteer"
	ArchProfessionalHeckler Archetype = "ProfessionalHeckler"
	ArchLocalGadfly         Archetype = "LocalGadfly"
	ArchScornedStaffer      Archetype = "ScornedStaffer"

	// Wild cards.
	ArchTimeTraveler       Archetype = "TimeTraveler"
	ArchMarriageProposer   Archetype = "MarriageProposer"
	ArchProphet            Archetype = "SelfDeclaredProphet"
	ArchConspiracyTheorist Archetype = "ConspiracyTheorist"
	ArchCostumedSuperfan   Archetype = "CostumedSuperfan"
)

// WildCardChance is the fixed probability of the wild-card branch.
const WildCardChance = 0.05

// UniqueInteractionChance is the chance a colorful citizen brings a one-off scene.
const UniqueInteractionChance = 0.3

// UniqueKind names a one-off interaction.
type UniqueKind string

const (
	UniqueProphecy      UniqueKind = "Prophecy"
	UniqueProposal      UniqueKind = "Proposal"
	UniqueFutureWarning UniqueKind = "FutureWarning"
	UniqueDossier       UniqueKind = "ConspiracyDossier"
	UniqueSerenade      UniqueKind = "Serenade"
	UniquePetition      UniqueKind = "PetitionAmbush"
)

// UniqueInteraction is a one-off dialogue block a citizen delivers.
type UniqueInteraction struct {
	Kind     UniqueKind `json:"kind"`
	Dialogue string     `json:"dialogue"`
}

// ColorfulCitizen is a citizen with an archetype overlay.
type ColorfulCitizen struct {
	*Citizen

	Archetype    Archetype          `json:"archetype"`
	Quirk        string             `json:"quirk"`
	VisualTrait  string             `json:"visual_trait"`
	Catchphrases []string           `json:"catchphrases"`
	Backstory    string             `json:"backstory"`
	Memorability int                `json:"memorability"` // 0–100
	Unique       *UniqueInteraction `json:"unique,omitempty"`
}

// archetypeBand is one row in a disposition-group table.
type archetypeBand struct {
	arch   Archetype
	weight float64
}

// Tables are walked top to bottom; the first band containing the draw wins.
var archetypeTables = map[Group][]archetypeBand{
	GroupSupportive: {
		{ArchSuperFan, 0.30},
		{ArchProudVeteran, 0.20},
		{ArchChurchVolunteer, 0.20},
		{ArchLocalBooster, 0.20},
		{ArchNostalgicRetiree, 0.10},
	},
	GroupPersuadable: {
		{ArchPolicyWonk, 0.25},
		{ArchWorriedParent, 0.25},
		{ArchShopOwner, 0.20},
		{ArchConfusedTourist, 0.15},
		{ArchFenceSitter, 0.15},
	},
	GroupHostile: {
		{ArchAngryTaxpayer, 0.30},
		{ArchRivalVolunteer, 0.25},
		{ArchProfessionalHeckler, 0.20},
		{ArchLocalGadfly, 0.15},
		{ArchScornedStaffer, 0.10},
	},
}

var wildCards = []archetypeBand{
	{ArchTimeTraveler, 0.2},
	{ArchMarriageProposer, 0.2},
	{ArchProphet, 0.2},
	{ArchConspiracyTheorist, 0.2},
	{ArchCostumedSuperfan, 0.2},
}

// archetypeRarity feeds the memorability score.
var archetypeRarity = map[Archetype]int{
	ArchSuperFan:            15,
	ArchProudVeteran:        20,
	ArchChurchVolunteer:     10,
	ArchLocalBooster:        10,
	ArchNostalgicRetiree:    25,
	ArchPolicyWonk:          20,
	ArchWorriedParent:       10,
	ArchShopOwner:           10,
	ArchConfusedTourist:     30,
	ArchFenceSitter:         5,
	ArchAngryTaxpayer:       15,
	ArchRivalVolunteer:      25,
	ArchProfessionalHeckler: 30,
	ArchLocalGadfly:         20,
	ArchScornedStaffer:      40,
	ArchTimeTraveler:        70,
	ArchMarriageProposer:    65,
	ArchProphet:             60,
	ArchConspiracyTheorist:  55,
	ArchCostumedSuperfan:    50,
}

// IsWildCard reports whether the archetype came from the wild-card branch.
func (a Archetype) IsWildCard() bool {
	for _, w := range wildCards {
		if w.arch == a {
			return true
		}
	}
	return false
}

// Elaborate layers an archetype onto a base citizen.
//
// Draw order: wild-card roll, archetype band, quirk, visual trait, catchphrase
// count, catchphrase start, backstory, unique-interaction roll, then the unique
// handler's own draws when triggered. Hostility only biases the wild-card
// roll: rowdier crowds attract stranger people.
func (g *Generator) Elaborate(base *Citizen, hostility trail.Hostility) *ColorfulCitizen {
	src := g.src
	cc := &ColorfulCitizen{Citizen: base}

	wildChance := WildCardChance + 0.01*float64(hostility)
	if entropy.Chance(src, wildChance) {
		cc.Archetype = pickBand(src, wildCards)
	} else {
		table, ok := archetypeTables[base.Disposition.Group()]
		if !ok {
			table = archetypeTables[GroupPersuadable]
		}
		cc.Archetype = pickBand(src, table)
	}

	cc.Quirk = entropy.Pick(src, quirks)
	cc.VisualTrait = entropy.Pick(src, visualTraits)
	cc.Catchphrases = g.catchphrases(cc.Archetype)
	cc.Backstory = g.backstory(cc.Archetype, base)
	cc.Memorability = memorability(cc.Archetype, base)

	if entropy.Chance(src, UniqueInteractionChance) {
		cc.Unique = g.uniqueInteraction(cc)
	}
	return cc
}

// pickBand walks bands in order; ties go to the earlier band.
func pickBand(src entropy.Source, bands []archetypeBand) Archetype {
	weights := make([]float64, len(bands))
	for i, b := range bands {
		weights[i] = b.weight
	}
	return bands[entropy.Weighted(src, weights)].arch
}

func memorability(a Archetype, c *Citizen) int {
	score := archetypeRarity[a]
	if c.Secret != nil {
		score += 15
	}
	if c.HasProjectile {
		score += 10
	}
	if c.Intoxicated {
		score += 8
	}
	return trail.Clamp(score, 0, 100)
}

// catchphrases takes a run of consecutive lines so no phrase repeats.
func (g *Generator) catchphrases(a Archetype) []string {
	pool, ok := archetypeCatchphrases[a]
	if !ok {
		pool = genericCatchphrases
	}
	n := entropy.Range(g.src, 2, 4)
	if n > len(pool) {
		n = len(pool)
	}
	start := entropy.Intn(g.src, len(pool))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pool[(start+i)%len(pool)])
	}
	return out
}

func (g *Generator) backstory(a Archetype, c *Citizen) string {
	pool, ok := archetypeBackstories[a]
	if !ok {
		pool = genericBackstories
	}
	tmpl := entropy.Pick(g.src, pool)
	return fmt.Sprintf(tmpl, c.Name, strings.ToLower(c.Occupation))
}

// uniqueInteraction dispatches to the archetype's dedicated handler. Ordinary
// archetypes draw a kind from the generic set first.
func (g *Generator) uniqueInteraction(cc *ColorfulCitizen) *UniqueInteraction {
	var kind UniqueKind
	switch cc.Archetype {
	case ArchTimeTraveler:
		kind = UniqueFutureWarning
	case ArchMarriageProposer:
		kind = UniqueProposal
	case ArchProphet:
		kind = UniqueProphecy
	case ArchConspiracyTheorist:
		kind = UniqueDossier
	default:
		kind = entropy.Pick(g.src, []UniqueKind{UniqueProphecy, UniqueSerenade, UniquePetition})
	}

	var dialogue string
	switch kind {
	case UniqueFutureWarning:
		dialogue = fmt.Sprintf("%s grips your sleeve. \"I'm from %d. Whatever you do, %s.\"",
			cc.Name, entropy.Range(g.src, 2031, 2090), entropy.Pick(g.src, futureWarnings))
	case UniqueProposal:
		dialogue = fmt.Sprintf("%s drops to one knee with a ring pop. \"%s\"",
			cc.Name, entropy.Pick(g.src, proposals))
	case UniqueProphecy:
		dialogue = fmt.Sprintf("%s raises both arms to the sky. \"%s\"",
			cc.Name, entropy.Pick(g.src, prophecies))
	case UniqueDossier:
		dialogue = fmt.Sprintf("%s presses a binder into your hands. \"%s\"",
			cc.Name, entropy.Pick(g.src, dossiers))
	case UniqueSerenade:
		dialogue = fmt.Sprintf("%s pulls out a ukulele and starts %s.",
			cc.Name, entropy.Pick(g.src, serenades))
	case UniquePetition:
		dialogue = fmt.Sprintf("%s unrolls a petition %d feet long and asks you to sign it on camera.",
			cc.Name, entropy.Range(g.src, 8, 40))
	default:
		dialogue = fmt.Sprintf("%s does something nobody present will be able to describe accurately.", cc.Name)
	}
	return &UniqueInteraction{Kind: kind, Dialogue: dialogue}
}
