package reporter

var reporterNames = []string{
	"Dana Sharp", "Miles Holloway", "Renata Cruz", "Jack Brannigan",
	"Nadia Petrov", "Curtis Vance", "Helen Marsh", "Sam Okoro",
}

var outlets = []string{
	"The Daily Ledger", "Channel 7 Action News", "The Capitol Beacon",
	"Tri-County Tribune", "The Morning Dispatch", "WKRT Newsradio",
}

var personalities = []string{
	"relentless and humorless",
	"folksy until the last question",
	"polite, precise and deeply patient",
	"theatrical, always playing to the camera",
}

var catchphrases = []string{
	"Just one more question.",
	"The people have a right to know.",
	"I'll take that as a yes.",
	"Funny, that's not what your staff told me.",
}

var storyLines = map[ResponseType]string{
	ResponseDirectAnswer: "%s files a fair piece: the candidate took the tough questions head-on.",
	ResponseDeflect:      "%s notes the candidate stuck to talking points when pressed.",
	ResponseAttack:       "%s writes up the candidate's attack on the press.",
	ResponseNoComment:    "%s reports the candidate had no comment.",
	ResponseEvade:        "%s runs a story on the candidate's non-answers.",
	ResponseLie:          "%s flags a candidate statement for fact-checking.",
	ResponseDefer:        "%s says the campaign has promised a statement.",
	ResponseWalkAway:     "%s leads with footage of the candidate walking away.",
}

// Contexts take the reporter, the outlet, then the location.
var ambushContexts = []string{
	"%s of %s steps out from behind a news van at %s.",
	"Halfway across %[3]s, a familiar voice cuts through the crowd: %[1]s, %[2]s.",
	"%s has been waiting at %[3]s since dawn, and %[2]s has a camera rolling.",
}

var sourceRevelations = []string{
	"\"I have a source inside your campaign,\" %s adds quietly. \"They've been very helpful.\"",
	"%s flips open a notebook. \"Someone close to you called me last night.\"",
}

type angleBank struct {
	questions   []string
	accusations []string
	followUps   []string
}

func bankFor(a Angle) angleBank {
	b, ok := angleBanks[a]
	if !ok {
		return angleBanks[AngleFinances]
	}
	return b
}

var angleBanks = map[Angle]angleBank{
	AngleFinances: {
		questions: []string{
			"Can you explain the gap between your disclosed income and your spending?",
			"Who paid for the lake house renovation?",
			"Why did you amend your tax filings three times last year?",
			"Will you release your full tax returns today?",
			"What exactly does your consulting firm consult on?",
		},
		accusations: []string{
			"Public records don't add up.",
			"Your finances have more holes than a screen door.",
		},
		followUps: []string{
			"That's not what I asked. Yes or no?",
			"So you're confirming the numbers are wrong?",
		},
	},
	AngleCampaignDonors: {
		questions: []string{
			"Why did a single developer bundle forty percent of your donations?",
			"Did you meet with donors the week before the zoning vote?",
			"Will you return the money from the shell PAC?",
			"How many of your donors live in this state?",
		},
		accusations: []string{
			"Your donor list reads like a lobbyist directory.",
			"Follow the money and it leads straight to your office.",
		},
		followUps: []string{
			"Is that a no on returning the money?",
			"Do you even know who your donors are?",
		},
	},
	AnglePastStatements: {
		questions: []string{
			"In 2014 you called this town 'a lost cause.' Do you stand by that?",
			"Why did you delete your old blog?",
			"You once said you'd never run for office. What changed?",
			"Do you still believe what you said in that radio interview?",
		},
		accusations: []string{
			"You've said a lot of things over the years.",
			"The internet never forgets.",
		},
		followUps: []string{
			"So were you lying then or now?",
			"Is that an apology?",
		},
	},
	AnglePersonalLife: {
		questions: []string{
			"Where were you on the night of the fundraiser gala?",
			"Why did your first marriage end?",
			"Is it true you haven't spoken to your brother in ten years?",
			"Who is the person in the photo from the Reno casino?",
		},
		accusations: []string{
			"Voters deserve to know who you really are.",
			"Your story keeps changing.",
		},
		followUps: []string{
			"You didn't answer the question.",
			"Should I ask your spouse instead?",
		},
	},
	AnglePolicyFlipFlops: {
		questions: []string{
			"You opposed the highway bill last spring. Why support it now?",
			"Which of your three positions on the minimum wage is the real one?",
			"Your website changed its energy plan overnight. Why?",
			"Did your pollster write your new position?",
			"Will you still hold this view after the primary?",
		},
		accusations: []string{
			"You've flipped more times than a diner pancake.",
			"Your positions shift with the polls.",
		},
		followUps: []string{
			"So which is it?",
			"Will it change again next week?",
		},
	},
	AngleStaffTurmoil: {
		questions: []string{
			"Why have you gone through three campaign managers in six months?",
			"Is it true staffers signed nondisclosure agreements?",
			"Did you throw a stapler at your communications director?",
			"Why is your former chief of staff talking to prosecutors?",
		},
		accusations: []string{
			"Your own people are heading for the exits.",
			"Former staff describe a toxic workplace.",
		},
		followUps: []string{
			"Are you calling your former staff liars?",
			"How many more will quit this month?",
		},
	},
}
