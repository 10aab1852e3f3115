// Package press builds headlines for resolved encounters and the campaign
// chronicle a host can print at the end of a run.
package press

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/talgya/campaign-trail/internal/citizens"
	"github.com/talgya/campaign-trail/internal/entropy"
)

// Slant selects the headline template set for a resolved encounter. Exposed
// secrets bypass slants and use SecretHeadline.
type Slant uint8

const (
	SlantDefault Slant = iota
	SlantTrustGain
	SlantDisaster
)

// Tone is the overall mood of a campaign stop.
type Tone uint8

const (
	ToneFlat Tone = iota
	ToneGood
	ToneBad
)

// Templates take the candidate, the citizen, then the location.
var encounterTemplates = map[Slant][]string{
	SlantDisaster: {
		"%[1]s Campaign Stop In %[3]s Goes Off The Rails",
		"Watch: %[1]s Meltdown With %[2]s",
		"%[3]s Voters Left Shaking Heads After %[1]s Blunder",
	},
	SlantTrustGain: {
		"%[1]s Wins Over %[3]s With Heartfelt Moment",
		"%[2]s: \"%[1]s Actually Listened\"",
		"%[1]s Connects With Voters In %[3]s",
	},
	SlantDefault: {
		"%[1]s Makes The Rounds In %[3]s",
		"Candidate %[1]s Meets %[2]s In %[3]s",
		"%[1]s Hits The Trail In %[3]s",
	},
}

var secretHeadlines = map[citizens.SecretKind]string{
	citizens.SecretAffair:          "Witness Claims %s Carried On Secret Affair",
	citizens.SecretTaxEvasion:      "Offshore Accounts? Voter Accuses %s Of Dodging Taxes",
	citizens.SecretBribery:         "Envelope Full Of Cash: %s Bribery Allegation Surfaces",
	citizens.SecretDrunkDriving:    "%s Drunk Driving Incident Revealed At Campaign Stop",
	citizens.SecretCollegeCheating: "Ghostwriter Says They Wrote %s's Thesis",
	citizens.SecretHiddenChild:     "Does %s Have A Secret Child?",
	citizens.SecretDebt:            "%s Hiding Mountain Of Debt, Creditor Says",
	citizens.SecretDrugUse:         "College Friend Alleges %s Drug Use",
	citizens.SecretPastArrest:      "Sealed Arrest Record Haunts %s",
	citizens.SecretForeignDonation: "Foreign Money Flowed To %s Campaign, Witness Claims",
}

var dayHeadlines = map[Tone]string{
	ToneGood: "%s Rides Wave Of Goodwill Out Of %s",
	ToneBad:  "Rough Day For %s In %s",
	ToneFlat: "%s Spends Quiet Afternoon In %s",
}

// EncounterHeadline picks one template from the slant's set and fills it.
// It draws exactly once.
func EncounterHeadline(src entropy.Source, slant Slant, candidate, subject, location string) string {
	tmpls, ok := encounterTemplates[slant]
	if !ok {
		tmpls = encounterTemplates[SlantDefault]
	}
	return Title(fmt.Sprintf(entropy.Pick(src, tmpls), candidate, subject, location))
}

// SecretHeadline returns the lookup headline for an exposed secret. Unknown
// kinds get a generic headline.
func SecretHeadline(kind citizens.SecretKind, candidate string) string {
	tmpl, ok := secretHeadlines[kind]
	if !ok {
		tmpl = "Scandal Erupts Around %s On The Campaign Trail"
	}
	return Title(fmt.Sprintf(tmpl, candidate))
}

// DayHeadline is the fallback headline of the day for a stop that produced
// none of its own.
func DayHeadline(tone Tone, candidate, location string) string {
	tmpl, ok := dayHeadlines[tone]
	if !ok {
		tmpl = dayHeadlines[ToneFlat]
	}
	return Title(fmt.Sprintf(tmpl, candidate, location))
}

// Title applies headline casing without lowercasing the rest of each word,
// so names like McAllister survive.
func Title(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}
