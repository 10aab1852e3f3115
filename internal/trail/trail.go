// Package trail holds the campaign-stop vocabulary shared by the generators and
// the event manager: event types, hostility bands, and the player context the
// host supplies.
package trail

import "golang.org/x/exp/constraints"

// EventType is the kind of campaign stop.
type EventType uint8

const (
	EventWalkabout EventType = iota
	EventRally
	EventTownHall
	EventDinerStop
	EventFactoryTour
	EventCountyFair
	EventCampusVisit
	EventFundraiser
	EventParade
	EventSportsGame
)

// NumEventTypes is the number of known event types.
const NumEventTypes = 10

// String returns a human-readable name for an event type.
func (t EventType) String() string {
	switch t {
	case EventWalkabout:
		return "Walkabout"
	case EventRally:
		return "Rally"
	case EventTownHall:
		return "Town Hall"
	case EventDinerStop:
		return "Diner Stop"
	case EventFactoryTour:
		return "Factory Tour"
	case EventCountyFair:
		return "County Fair"
	case EventCampusVisit:
		return "Campus Visit"
	case EventFundraiser:
		return "Fundraiser"
	case EventParade:
		return "Parade"
	case EventSportsGame:
		return "Sports Game"
	default:
		return "Campaign Stop"
	}
}

// Hostility is the crowd-hostility band of a stop, ordered calm to violent.
type Hostility uint8

const (
	HostilityAdoring Hostility = iota
	HostilityFriendly
	HostilityNeutral
	HostilityTense
	HostilityHostile
	HostilityRiotous
)

// NumHostilityBands is the number of hostility bands.
const NumHostilityBands = 6

// String returns the band name.
func (h Hostility) String() string {
	switch h {
	case HostilityAdoring:
		return "Adoring"
	case HostilityFriendly:
		return "Friendly"
	case HostilityNeutral:
		return "Neutral"
	case HostilityTense:
		return "Tense"
	case HostilityHostile:
		return "Hostile"
	case HostilityRiotous:
		return "Riotous"
	default:
		return "Unknown"
	}
}

// BandForScore buckets a 0–100 hostility score. Upper bounds are exclusive.
func BandForScore(score float64) Hostility {
	switch {
	case score < 15:
		return HostilityAdoring
	case score < 30:
		return HostilityFriendly
	case score < 50:
		return HostilityNeutral
	case score < 65:
		return HostilityTense
	case score < 80:
		return HostilityHostile
	default:
		return HostilityRiotous
	}
}

// HostilityScore blends the event's base hostility with office-tier and
// approval modifiers. Higher office draws sharper crowds; approval below 50
// sours them.
func HostilityScore(t EventType, officeTier int, approval float64) float64 {
	base := 40.0
	if p, ok := profiles[t]; ok {
		base = p.baseHostility
	}
	tierMod := 5.0 * float64(officeTier-1)
	approvalMod := 0.4 * (50 - approval)
	return Clamp(base+tierMod+approvalMod, 0, 100)
}

// PlayerContext is what the host tells the engine about the candidate.
type PlayerContext interface {
	OfficeTier() int
	Approval() float64
	CandidateName() string
}

// Player is a fixed PlayerContext.
type Player struct {
	Name   string
	Tier   int
	Rating float64
}

func (p Player) OfficeTier() int       { return p.Tier }
func (p Player) Approval() float64     { return p.Rating }
func (p Player) CandidateName() string { return p.Name }

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
