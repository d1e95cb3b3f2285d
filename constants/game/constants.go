package game_constants

import "time"

const MinPlayers = 3
const MaxPlayers = 8
const InitialBottleCaps = 10
const SuitcasesPerTraveler = 5
const LuggageCardsPerTraveler = 2

const InitialGeneralStock = 80
const DefaultLegalLimit = 1

const RoomCodeLength = 6

// Unambiguous alphabet: no I, O, 0 or 1
const RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Suitcase deck composition (36 cards total)
const (
	ZeroBottleCards  = 5
	OneBottleCards   = 12
	TwoBottleCards   = 12
	ThreeBottleCards = 7
	DeckSize         = ZeroBottleCards + OneBottleCards + TwoBottleCards + ThreeBottleCards
)

// Probability of drawing an event card on the first round.
// From round 2 onwards an event card is always drawn.
const FirstRoundEventChance = 0.7

// Delay between entering the scoring phase and rotating the border guard
const ScoringRotationDelay = 3 * time.Second

const WrongfulArrestPenalty = 2
const SingleBottleBonus = 1
const BirthdayGuardPayout = 2

// TokenBudget is the base action token allotment for a given player count,
// before event card modifiers are applied.
type TokenBudget struct {
	AcceptBribe int
	Inspect     int
	Arrest      int
}

var ActionTokensByPlayerCount = map[int]TokenBudget{
	3: {AcceptBribe: 1, Inspect: 1, Arrest: 1},
	4: {AcceptBribe: 1, Inspect: 1, Arrest: 1},
	5: {AcceptBribe: 1, Inspect: 1, Arrest: 2},
	6: {AcceptBribe: 1, Inspect: 2, Arrest: 2},
	7: {AcceptBribe: 2, Inspect: 2, Arrest: 2},
	8: {AcceptBribe: 2, Inspect: 2, Arrest: 3},
}
