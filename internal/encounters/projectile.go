package encounters

import (
	"fmt"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/entropy"
)

// ProjectileImpact is the physical result of a thrown object.
type ProjectileImpact struct {
	Kind        citizens.ProjectileKind `json:"kind"`
	Hit         bool                    `json:"hit"`
	Location    string                  `json:"location,omitempty"`
	Face        bool                    `json:"face"`
	Description string                  `json:"description"`
}

var hitLocations = []string{"face", "chest", "shoulder", "suit jacket", "hair", "shoes"}

// hitChance is the probability the object still lands, by defensive action.
func hitChance(a Action) float64 {
	switch a {
	case ActionDuck:
		return 0.2
	case ActionCatchProjectile, ActionGetInCar:
		return 0
	case ActionStandGround:
		return 0.5
	default:
		return 0.6
	}
}

// ResolveProjectile rolls whether the object lands given the chosen action.
// Draw order: hit roll (always), then hit location only on a hit.
func ResolveProjectile(src entropy.Source, kind citizens.ProjectileKind, action Action) ProjectileImpact {
	imp := ProjectileImpact{Kind: kind}
	imp.Hit = entropy.Chance(src, hitChance(action))
	if imp.Hit {
		imp.Location = entropy.Pick(src, hitLocations)
		imp.Face = imp.Location == "face"
	}
	imp.Description = describeImpact(imp, action)
	return imp
}

func describeImpact(imp ProjectileImpact, action Action) string {
	switch {
	case imp.Hit && imp.Face:
		return fmt.Sprintf("The %s hits you square in the face. Every camera in the county has the shot.", imp.Kind)
	case imp.Hit:
		return fmt.Sprintf("The %s splatters across your %s. You keep smiling, barely.", imp.Kind, imp.Location)
	case action == ActionCatchProjectile:
		return fmt.Sprintf("You snatch the %s out of the air. The crowd goes wild.", imp.Kind)
	case action == ActionGetInCar:
		return fmt.Sprintf("The %s bounces off the car door as it slams shut.", imp.Kind)
	case action == ActionDuck:
		return fmt.Sprintf("The %s sails over your head and hits a staffer instead.", imp.Kind)
	default:
		return fmt.Sprintf("The %s misses by inches.", imp.Kind)
	}
}
