package citizens

// Name pools for procedural generation.
var firstNames = []string{
	"Linda", "Gary", "Darlene", "Marcus", "Brenda", "Tyler", "Shirley", "Dwayne",
	"Kayla", "Ron", "Deb", "Hector", "Patricia", "Cody", "Mabel", "Jerome",
	"Tanya", "Earl", "Priya", "Walt", "Rosa", "Chet", "Keisha", "Dale",
	"Maureen", "Travis", "Yolanda", "Bud", "Connie", "Ramon", "Gladys", "Kevin",
}

var lastNames = []string{
	"Kowalski", "Henderson", "Ortiz", "McAllister", "Pruitt", "Nguyen", "Baker",
	"Delgado", "Fitzgerald", "Haskins", "Lindqvist", "Okafor", "Pettigrew",
	"Rourke", "Schmidt", "Thibodeaux", "Underwood", "Vasquez", "Whitfield",
	"Yoder", "Abernathy", "Brennan", "Castellano", "Dunleavy", "Esposito",
}

var childNames = []string{
	"Emma", "Liam", "Sophie", "Noah", "Maya", "Eli", "Zoe", "Mateo", "Lily", "Owen",
}

var occupations = []string{
	"Retired Mail Carrier", "Dental Hygienist", "Long-Haul Trucker", "Substitute Teacher",
	"Insurance Adjuster", "Hair Stylist", "Small Business Owner", "Nurse",
	"Software Developer", "Plumber", "Barista", "Accountant", "Pastor",
	"Landscaper", "Real Estate Agent", "Unemployed", "Veteran", "Bartender",
}

var appearances = []string{
	"wearing a faded trucker hat",
	"in a neatly pressed cardigan",
	"with a sunburn and a lawn chair",
	"wearing a bowling shirt two sizes too big",
	"in hospital scrubs, clearly on break",
	"wearing a flag-print bandana",
	"holding an oversized iced coffee",
	"in a suit that has seen better decades",
	"with a fanny pack and a visor",
	"wearing a band t-shirt from 1987",
}

var supportiveSigns = []string{
	"FOUR MORE YEARS (OF YOU)",
	"HONK IF YOU'RE VOTING FOR US",
	"MY DOG ENDORSES THIS CANDIDATE",
}

var hostileSigns = []string{
	"LIAR LIAR",
	"WHERE'S THE MONEY?",
	"RECALL NOW",
	"YOU FORGOT US",
}

var neutralSigns = []string{
	"FIX THE POTHOLES",
	"WHAT ABOUT THE BRIDGE?",
	"ASK ME ABOUT MY PETITION",
}

var secretDetails = map[SecretKind][]string{
	SecretAffair: {
		"saw the candidate leaving a motel with someone who was not their spouse",
		"worked at the hotel where the candidate kept a standing Thursday reservation",
	},
	SecretTaxEvasion: {
		"did the candidate's books and remembers the offshore account",
		"knows the lake house was listed as a business expense",
	},
	SecretBribery: {
		"delivered an envelope to the candidate's office from a zoning developer",
		"watched a contractor hand over cash after a city council vote",
	},
	SecretDrunkDriving: {
		"towed the candidate's car out of a ditch at 2 a.m.",
		"was the bartender who called the candidate a cab that never got used",
	},
	SecretCollegeCheating: {
		"wrote the candidate's senior thesis for two hundred dollars",
		"proctored the exam where the candidate was caught with notes",
	},
	SecretHiddenChild: {
		"claims to be the candidate's secret half-sibling's guardian",
		"has a birth certificate with the candidate's name on it",
	},
	SecretDebt: {
		"holds the candidate's unpaid gambling marker",
		"knows about the second mortgage nobody disclosed",
	},
	SecretDrugUse: {
		"partied with the candidate in college and has photos",
		"sold the candidate something other than oregano",
	},
	SecretPastArrest: {
		"was in the same holding cell as the candidate in 1998",
		"has the police report from the candidate's sealed arrest",
	},
	SecretForeignDonation: {
		"processed a wire from an overseas shell company to the campaign",
		"was paid to be a straw donor for a foreign businessman",
	},
}
