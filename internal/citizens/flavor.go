package citizens

// Flavor pools for the archetype layer.
var quirks = []string{
	"answers every question with a question",
	"keeps checking a pocket watch",
	"refers to the candidate by a wrong first name",
	"narrates their own actions in the third person",
	"has strong opinions about the local minor league team",
	"is eating a corn dog with great concentration",
	"laughs a beat too late at everything",
	"insists on a firm handshake contest",
}

var visualTraits = []string{
	"a tattoo of the state outline",
	"sunglasses pushed up on a bald head",
	"a lanyard covered in enamel pins",
	"a hand-knit scarf in July",
	"mismatched campaign buttons from three different elections",
	"a cowboy hat with a feather",
	"a t-shirt printed with their own face",
}

var genericCatchphrases = []string{
	"Just saying what everybody's thinking.",
	"You people never listen.",
	"I've been voting since before you were born.",
	"Put that in your speech.",
}

var archetypeCatchphrases = map[Archetype][]string{
	ArchSuperFan: {
		"I've been to every single rally!",
		"Can you sign my forehead?",
		"You're even taller in person!",
	},
	ArchProudVeteran: {
		"Served twenty-two years, son.",
		"Respect the flag.",
		"The VA still hasn't called me back.",
	},
	ArchNostalgicRetiree: {
		"Back in my day a loaf of bread cost a nickel.",
		"This used to be a Woolworth's.",
		"Nobody writes letters anymore.",
	},
	ArchPolicyWonk: {
		"Per page forty-seven of your white paper...",
		"What's the CBO score on that?",
		"Define 'affordable.'",
	},
	ArchWorriedParent: {
		"Think of the children.",
		"Have you seen what they teach now?",
		"Daycare costs more than my mortgage.",
	},
	ArchAngryTaxpayer: {
		"I pay your salary!",
		"Where's my money going?",
		"Cut the waste!",
	},
	ArchProfessionalHeckler: {
		"BOOOOO!",
		"Answer the question!",
		"Shame! Shame!",
		"Read the room!",
	},
	ArchScornedStaffer: {
		"I know where the bodies are buried.",
		"Tell them about the retreat.",
		"You still owe me overtime.",
	},
	ArchTimeTraveler: {
		"It's not safe here.",
		"What year is it? Exactly?",
		"Your future self sends regards.",
	},
	ArchMarriageProposer: {
		"We were meant to be.",
		"I already picked out the venue.",
		"Say yes!",
	},
	ArchProphet: {
		"The signs are clear.",
		"It was written.",
		"Beware the third Tuesday.",
	},
	ArchConspiracyTheorist: {
		"Wake up, people!",
		"Follow the money.",
		"Ask yourself who benefits.",
	},
}

var genericBackstories = []string{
	"%s has worked as a %s in this town for most of their life and knows everybody's business.",
	"%s took the afternoon off from being a %s just to see what all the fuss was about.",
	"%s, a %s, has written eleven letters to the editor this year alone.",
}

var archetypeBackstories = map[Archetype][]string{
	ArchSuperFan: {
		"%s quit a job as a %s to follow the campaign bus across three states.",
	},
	ArchProudVeteran: {
		"%s came home from two deployments and now works as a %s.",
	},
	ArchScornedStaffer: {
		"%s worked on the candidate's first campaign before a messy exit; now a %s.",
	},
	ArchTimeTraveler: {
		"%s claims to have been a %s in a timeline that no longer exists.",
	},
	ArchMarriageProposer: {
		"%s, a %s, has watched every one of the candidate's televised debates twice.",
	},
	ArchProphet: {
		"%s gave up life as a %s after a vision in a grocery store parking lot.",
	},
	ArchConspiracyTheorist: {
		"%s runs a late-night podcast when not working as a %s.",
	},
}

var futureWarnings = []string{
	"do not eat the shrimp at the debate",
	"never trust the lieutenant governor",
	"don't say 'in this economy' in the October interview",
	"stay away from the bowling alley photo op",
}

var proposals = []string{
	"Will you make me the happiest constituent alive?",
	"I've loved you since your first attack ad.",
	"Marry me and I'll knock on every door in this county.",
}

var prophecies = []string{
	"You will win by eleven votes and lose your voice.",
	"A goat will decide the primary.",
	"The polls are wrong, but not in the way you hope.",
	"Beware the man with two clipboards.",
}

var dossiers = []string{
	"It's all in here. The water tower, the mayor, the pigeons.",
	"Page three explains why the streetlights blink in Morse code.",
	"Read this before they read it for you.",
}

var serenades = []string{
	"an original ballad about the candidate's infrastructure plan",
	"a slowed-down cover of the campaign jingle",
	"a protest song with a surprisingly catchy chorus",
}
