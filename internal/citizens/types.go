// Package citizens provides the townsfolk data model, the weighted-table
// citizen generator, and the archetype layer that gives citizens color.
package citizens

// Disposition is a citizen's baseline attitude toward the candidate.
// The order runs from most loyal to most disruptive.
type Disposition uint8

const (
	DispositionTrueBeliever Disposition = iota
	DispositionSupporter
	DispositionLeaning
	DispositionUndecided
	DispositionSkeptical
	DispositionOpponent
	DispositionHostileOpponent
	DispositionHeckler
)

// NumDispositions is the number of dispositions.
const NumDispositions = 8

// String returns a human-readable disposition name.
func (d Disposition) String() string {
	switch d {
	case DispositionTrueBeliever:
		return "True Believer"
	case DispositionSupporter:
		return "Supporter"
	case DispositionLeaning:
		return "Leaning"
	case DispositionUndecided:
		return "Undecided"
	case DispositionSkeptical:
		return "Skeptical"
	case DispositionOpponent:
		return "Opponent"
	case DispositionHostileOpponent:
		return "Hostile Opponent"
	case DispositionHeckler:
		return "Heckler"
	default:
		return "Unknown"
	}
}

// Group folds dispositions into the three attitude groups that drive dialogue
// and choice sets.
type Group uint8

const (
	GroupUnknown Group = iota
	GroupSupportive
	GroupPersuadable
	GroupHostile
)

// Group returns the attitude group. Out-of-range dispositions map to GroupUnknown.
func (d Disposition) Group() Group {
	switch d {
	case DispositionTrueBeliever, DispositionSupporter, DispositionLeaning:
		return GroupSupportive
	case DispositionUndecided, DispositionSkeptical:
		return GroupPersuadable
	case DispositionOpponent, DispositionHostileOpponent, DispositionHeckler:
		return GroupHostile
	default:
		return GroupUnknown
	}
}

// VoterBloc tags the demographic a citizen votes with.
type VoterBloc uint8

const (
	BlocWorkers VoterBloc = iota
	BlocBusiness
	BlocSeniors
	BlocYouth
	BlocSuburban
	BlocRural
	BlocUrban
	BlocFaith
)

// NumBlocs is the number of voter blocs.
const NumBlocs = 8

// String returns the bloc name.
func (b VoterBloc) String() string {
	switch b {
	case BlocWorkers:
		return "Workers"
	case BlocBusiness:
		return "Business"
	case BlocSeniors:
		return "Seniors"
	case BlocYouth:
		return "Youth"
	case BlocSuburban:
		return "Suburban"
	case BlocRural:
		return "Rural"
	case BlocUrban:
		return "Urban"
	case BlocFaith:
		return "Faith"
	default:
		return "Unaffiliated"
	}
}

// SecretKind is the category of damaging information a citizen may hold.
type SecretKind uint8

const (
	SecretAffair SecretKind = iota
	SecretTaxEvasion
	SecretBribery
	SecretDrunkDriving
	SecretCollegeCheating
	SecretHiddenChild
	SecretDebt
	SecretDrugUse
	SecretPastArrest
	SecretForeignDonation
)

// NumSecretKinds is the number of secret kinds.
const NumSecretKinds = 10

// String returns the secret kind name.
func (k SecretKind) String() string {
	switch k {
	case SecretAffair:
		return "Affair"
	case SecretTaxEvasion:
		return "Tax Evasion"
	case SecretBribery:
		return "Bribery"
	case SecretDrunkDriving:
		return "Drunk Driving"
	case SecretCollegeCheating:
		return "College Cheating"
	case SecretHiddenChild:
		return "Hidden Child"
	case SecretDebt:
		return "Secret Debt"
	case SecretDrugUse:
		return "Drug Use"
	case SecretPastArrest:
		return "Past Arrest"
	case SecretForeignDonation:
		return "Foreign Donation"
	default:
		return "Unknown Secret"
	}
}

// ProjectileKind is what an armed citizen intends to throw.
type ProjectileKind uint8

const (
	ProjectileNone ProjectileKind = iota
	ProjectileEgg
	ProjectileTomato
	ProjectileMilkshake
	ProjectileCustardPie
	ProjectileShoe
	ProjectileGlitter
)

// String returns the projectile name.
func (p ProjectileKind) String() string {
	switch p {
	case ProjectileEgg:
		return "egg"
	case ProjectileTomato:
		return "tomato"
	case ProjectileMilkshake:
		return "milkshake"
	case ProjectileCustardPie:
		return "custard pie"
	case ProjectileShoe:
		return "shoe"
	case ProjectileGlitter:
		return "fistful of glitter"
	default:
		return "object"
	}
}

// Secret is damaging information a citizen carries.
type Secret struct {
	Kind        SecretKind `json:"kind"`
	Detail      string     `json:"detail"`
	Credibility int        `json:"credibility"` // 0–100

	// Evidence the witness brought along.
	HasPhoto     bool `json:"has_photo"`
	HasDocuments bool `json:"has_documents"`
	HasWitnesses bool `json:"has_witnesses"`
}

// Citizen is a prospective voter encountered on the trail.
type Citizen struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Occupation string    `json:"occupation"`
	Appearance string    `json:"appearance"`
	Bloc       VoterBloc `json:"bloc"`

	// Psychological sliders, 0–100.
	Enthusiasm     int `json:"enthusiasm"`
	Volatility     int `json:"volatility"`
	Articulateness int `json:"articulateness"`

	TrustInCandidate int         `json:"trust_in_candidate"` // -100 to 100
	Disposition      Disposition `json:"disposition"`

	Intoxicated    bool `json:"intoxicated"`
	Angry          bool `json:"angry"`
	HasProjectile  bool `json:"has_projectile"`
	Recording      bool `json:"recording"`
	HasSign        bool `json:"has_sign"`
	KnowsCandidate bool `json:"knows_candidate"`
	CarryingBaby   bool `json:"carrying_baby"`

	Projectile ProjectileKind `json:"projectile,omitempty"`
	SignText   string         `json:"sign_text,omitempty"`

	Secret *Secret `json:"secret,omitempty"`
}

// HasSecret reports whether the citizen carries a secret.
func (c *Citizen) HasSecret() bool {
	return c != nil && c.Secret != nil
}

// Snapshot returns a deep copy so encounters can hold a citizen without
// sharing mutable state with the roster.
func (c *Citizen) Snapshot() Citizen {
	cp := *c
	if c.Secret != nil {
		s := *c.Secret
		cp.Secret = &s
	}
	return cp
}
