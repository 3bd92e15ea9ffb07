package orion

// Economy identifies this economy in icon paths and API routes
const Economy = "orion"

// NumUpgrades is the fixed number of upgrade slots
const NumUpgrades = 9

// Upgrade indices
const (
	FeatherGeneration = iota
	BonusesOfOrion
	FeatherMultiplier
	FeatherCheapener
	FeatherRestart
	SuperFeatherProduction
	ShinyFeathers
	SuperFeatherCheapener
	MegaReset
)

// Mega reset levels that unlock permanent effects
const (
	MegaTenfoldGeneration = 1 // Generation x10
	MegaSelfDiscount      = 3 // Feather Generation levels discount every cost
	MegaCheapenersProduce = 5 // Cheapeners generate feathers
	MegaRestartBoost      = 7 // Restart multiplier base 3 -> 5
	MegaCheaperGeneration = 9 // Feather Generation cost factor 1.1 -> 1.075
)

// MaxLookaheadSteps caps the greedy purchase simulation
const MaxLookaheadSteps = 100

// BaseCosts is the level-0 cost of each upgrade
var BaseCosts = [NumUpgrades]float64{5, 350, 500, 3000, 1e6, 2e6, 5e6, 5e7, 2.5e11}

// BaseFactors is the per-level cost growth of each upgrade
var BaseFactors = [NumUpgrades]float64{1.1, 25, 1.11, 1.16, 14, 1.12, 1.4, 1.27, 20}

// Names are the in-game display names
var Names = [NumUpgrades]string{
	"Feather Generation", "Bonuses of Orion", "Feather Multiplier",
	"Feather Cheapener", "Feather Restart", "Super Feather Production",
	"Shiny Feathers", "Super Feather Cheapener", "The Great Mega Reset",
}

// lookaheadCandidates are the upgrades the lookahead may buy; resets and
// the permanent bonus are never auto-purchased.
var lookaheadCandidates = []int{
	FeatherGeneration, FeatherMultiplier, FeatherCheapener,
	SuperFeatherProduction, ShinyFeathers, SuperFeatherCheapener,
}

// excludedFromBest are never recommended: the permanent bonus has no
// in-economy value and the two resets are the targets themselves.
var excludedFromBest = map[int]bool{
	BonusesOfOrion: true,
	FeatherRestart: true,
	MegaReset:      true,
}
