package trail

import (
	"github.com/talgya/campaign-trail/internal/entropy"
)

// profile is the per-event-type table row.
type profile struct {
	baseHostility float64
	attendance    int     // Expected headcount before variance
	pressChance   float64 // Chance of press at office tier 1
	locations     []string
	descriptions  []string // Empty means use a generic fallback description
}

var profiles = map[EventType]profile{
	EventWalkabout: {
		baseHostility: 40,
		attendance:    60,
		pressChance:   0.3,
		locations:     []string{"Main Street", "Old Town Square", "the Riverside Promenade", "the Farmers Market"},
		descriptions: []string{
			"Shopfronts are open and foot traffic is steady.",
			"A loose crowd drifts between food carts and storefronts.",
		},
	},
	EventRally: {
		baseHostility: 20,
		attendance:    800,
		pressChance:   0.7,
		locations:     []string{"the Fairgrounds Pavilion", "Memorial Stadium", "the Union Hall", "Liberty Park"},
		descriptions: []string{
			"Banners hang from the rafters and a warm-up band is finishing its set.",
			"Supporters wave signs beneath a wall of flags.",
		},
	},
	EventTownHall: {
		baseHostility: 50,
		attendance:    150,
		pressChance:   0.6,
		locations:     []string{"the Community Center", "the High School Gymnasium", "the Public Library Annex"},
		descriptions: []string{
			"Folding chairs face a single microphone stand in the aisle.",
			"A moderator shuffles index cards while the room fills up.",
		},
	},
	EventDinerStop: {
		baseHostility: 35,
		attendance:    40,
		pressChance:   0.4,
		locations:     []string{"Rosie's Diner", "the Blue Plate Cafe", "Sunrise Pancake House"},
		descriptions: []string{
			"Coffee is bottomless and every booth has an opinion.",
		},
	},
	EventFactoryTour: {
		baseHostility: 45,
		attendance:    120,
		pressChance:   0.5,
		locations:     []string{"the Steel Works", "Consolidated Auto Parts", "the Bottling Plant"},
		descriptions: []string{
			"Hard hats are mandatory and the line supervisor looks unconvinced.",
			"The shift whistle blows as workers gather near the loading dock.",
		},
	},
	EventCountyFair: {
		baseHostility: 40,
		attendance:    500,
		pressChance:   0.4,
		locations:     []string{"the County Fairgrounds", "the 4-H Barn", "the Midway"},
		descriptions: []string{
			"Funnel cake smoke drifts over the livestock pens.",
		},
	},
	EventCampusVisit: {
		baseHostility: 50,
		attendance:    300,
		pressChance:   0.5,
		locations:     []string{"the Student Union", "the Quad", "the Lecture Hall"},
		descriptions: []string{
			"Students with phones out line the walkway.",
		},
	},
	EventFundraiser: {
		baseHostility: 15,
		attendance:    90,
		pressChance:   0.2,
		locations:     []string{"the Grand Hotel Ballroom", "a Lakeside Estate", "the Country Club"},
		descriptions: []string{
			"Donors in evening wear circle the silent auction tables.",
		},
	},
	EventParade: {
		baseHostility: 35,
		attendance:    2000,
		pressChance:   0.5,
		locations:     []string{"the Parade Route on Elm Street", "Veterans Boulevard"},
	},
	EventSportsGame: {
		baseHostility: 45,
		attendance:    5000,
		pressChance:   0.6,
		locations:     []string{"the Minor League Ballpark", "the High School Football Field"},
	},
}

var genericLocations = []string{"the Town Green", "a Strip Mall Parking Lot", "the Courthouse Steps"}

var genericDescriptions = []string{
	"A modest crowd has gathered, unsure what to expect.",
	"Folding tables and a portable speaker mark the campaign's corner.",
	"Passersby slow down to see what the fuss is about.",
}

// Location picks a location name for an event type. Draws once.
func Location(src entropy.Source, t EventType) string {
	if p, ok := profiles[t]; ok && len(p.locations) > 0 {
		return entropy.Pick(src, p.locations)
	}
	return entropy.Pick(src, genericLocations)
}

// Description picks a scene description, falling back to a generic line when
// the type has no entry. Draws once.
func Description(src entropy.Source, t EventType) string {
	if p, ok := profiles[t]; ok && len(p.descriptions) > 0 {
		return entropy.Pick(src, p.descriptions)
	}
	return entropy.Pick(src, genericDescriptions)
}

// ExpectedAttendance returns the baseline headcount for an event type.
func ExpectedAttendance(t EventType) int {
	if p, ok := profiles[t]; ok {
		return p.attendance
	}
	return 50
}

// ActualAttendance applies up to ±30% variance to the expected headcount. Draws once.
func ActualAttendance(src entropy.Source, expected int) int {
	variance := entropy.Between(src, -0.3, 0.3)
	n := int(float64(expected) * (1 + variance))
	if n < 1 {
		n = 1
	}
	return n
}

// PressChance is the chance of press at a stop, scaled by office tier.
func PressChance(t EventType, officeTier int) float64 {
	base := 0.3
	if p, ok := profiles[t]; ok {
		base = p.pressChance
	}
	return Clamp(base+0.1*float64(officeTier-1), 0, 0.95)
}
