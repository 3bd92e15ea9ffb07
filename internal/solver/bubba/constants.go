package bubba

// Economy identifies this economy in icon paths and API routes
const Economy = "bubba"

// NumUpgrades is the fixed number of main upgrade slots
const NumUpgrades = 28

// Upgrade indices
const (
	FirstSlice = iota
	HappiBoi
	GoodMeat
	BubbaBoon
	Bargain
	BuyerGrin
	Charisma
	SecondSlice
	Megaflesh
	FunGifts
	OpenGift
	GreatMeat
	DiceRoll
	SuperChart
	MoreDice
	Smoker
	MoreSides
	UberGifts
	CostSaver
	BestMeat
	RealLove
	SpareCoins
	LoadedDice
	ThirdSlice
	Crossover
	TwoXSmoke
	PermaSale
	BigOlCoin
)

// Charisma slots
const (
	Hustle = iota
	Rizz
	Joy
	Swagger
	Mindful
	Aura
	CharismaSlots
)

// Gift choices. Each of the two gift slots holds one of these or NoGift.
const (
	NoGift        = -1
	GiftBeegSlice = 0
	GiftHappy     = 1
)

// NotEmulsified marks that no charisma slot is emulsified
const NotEmulsified = -1

// TargetIndex is the milestone every ranking is measured against
const TargetIndex = Megaflesh

// Game mechanics constants
const (
	// EmulsifyFactor multiplies the emulsified charisma bonus
	EmulsifyFactor = 3.0

	// EmulsifyMegafleshLevel is the Megaflesh level that unlocks emulsify
	EmulsifyMegafleshLevel = 6

	// CharismaCap is the level past which a charisma slot has no room left
	CharismaCap = 120

	// ActivityWeightPats is the pat count at which activity weights saturate
	ActivityWeightPats = 2300.0

	// DefaultPatsPerHour is the pat rate assumed when none is configured
	DefaultPatsPerHour = 10.0

	// RealLoveGiftBonus is the flat seconds credited to Real Love with the happy gift
	RealLoveGiftBonus = 300.0

	// BuyerGrinScale keeps the cosmetic Buyer Grin from ever leading the ranking
	BuyerGrinScale = 0.00001

	// BaseDieSides is the side count of an unmodified die
	BaseDieSides = 6

	// HighRollCompression flattens die values above BaseDieSides
	HighRollCompression = 0.4
)

// Factors is the per-level exponential cost base of each upgrade
var Factors = [NumUpgrades]float64{
	1.07, 1.3, 1.07, 10, 1.12, 1.5, 1.1, 1.1, 125, 3000,
	3, 1.1, 25, 1.8, 75000, 1.2, 1000, 1.6, 1.23, 1.12,
	1.5, 1.8, 1.3, 1.22, 1.75, 1.12, 1.3, 1.5,
}

// CostMultipliers scales the cost of specific upgrades
var CostMultipliers = [NumUpgrades]float64{
	1, 1, 0.6, 1, 1, 1.3, 1, 1, 1.6, 0.4,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
}

// Names are the in-game display names
var Names = [NumUpgrades]string{
	"1st Slice", "Happi Boi", "Good Meat", "Bubba Boon", "Bargain",
	"Buyer Grin", "Charisma", "2nd Slice", "Megaflesh", "Fun Gifts",
	"Open Gift", "Great Meat", "Dice Roll", "Super Chart", "More Dice",
	"Smoker", "More Sides", "Uber Gifts", "Cost Saver", "Best Meat",
	"Real Love", "Spare Coins", "Loaded Dice", "3rd Slice", "Crossover",
	"2X Smoke", "Perma Sale", "Big Ol Coin",
}

// CharismaNames are the display names of the charisma slots
var CharismaNames = [CharismaSlots]string{"Hustle", "Rizz", "Joy", "Swagger", "Mindful", "Aura"}

// MindfulRestricted lists upgrades that never receive mindful offsets
var MindfulRestricted = []int{BubbaBoon, Megaflesh, FunGifts, OpenGift, DiceRoll, MoreDice, Smoker, MoreSides}

// excludedFromBest are never recommended: Bubba Boon is never worth buying
// and Megaflesh is the target itself.
var excludedFromBest = map[int]bool{
	BubbaBoon: true,
	Megaflesh: true,
}

// slotWeight weights one charisma slot; activity weights are further scaled
// by how engaged the player is.
type slotWeight struct {
	slot     int
	weight   float64
	activity bool
}

// capacityWeights weight the remaining room of the non-hustle charisma slots
// when valuing extra charisma.
var capacityWeights = []slotWeight{
	{Rizz, 0.8, false},
	{Joy, 1.2, true},
	{Mindful, 2.0, true},
	{Aura, 1.0, false},
}

// metaWeights weight the four charisma bonuses Super Chart accelerates
var metaWeights = []slotWeight{
	{Hustle, 1.0, false},
	{Rizz, 0.8, false},
	{Joy, 1.2, true},
	{Mindful, 2.0, true},
}
