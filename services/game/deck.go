package game

import (
	"fmt"
	"math/rand"

	game_constants "Qishui/constants/game"
	game_models "Qishui/models/game"
)

// BuildSuitcaseDeck returns a freshly shuffled 36-card deck with the fixed
// composition 5x0, 12x1, 12x2, 7x3 bottles.
func BuildSuitcaseDeck() []game_models.SuitcaseCard {
	deck := make([]game_models.SuitcaseCard, 0, game_constants.DeckSize)
	id := 0

	appendCards := func(count, bottles int) {
		for i := 0; i < count; i++ {
			deck = append(deck, game_models.SuitcaseCard{
				ID:      fmt.Sprintf("suitcase_%d", id),
				Bottles: bottles,
			})
			id++
		}
	}

	appendCards(game_constants.ZeroBottleCards, 0)
	appendCards(game_constants.OneBottleCards, 1)
	appendCards(game_constants.TwoBottleCards, 2)
	appendCards(game_constants.ThreeBottleCards, 3)

	ShuffleDeck(deck)
	return deck
}

// ShuffleDeck permutes the deck in place with a uniform Fisher-Yates shuffle.
func ShuffleDeck(deck []game_models.SuitcaseCard) {
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// DrawSuitcase removes and returns the top card of the room's deck. An empty
// deck is transparently replenished by reshuffling the discard pile. If both
// piles are empty the draw yields nothing and the caller deals short.
func DrawSuitcase(room *game_models.Room) (game_models.SuitcaseCard, bool) {
	if len(room.SuitcaseDeck) == 0 {
		if len(room.DiscardPile) == 0 {
			return game_models.SuitcaseCard{}, false
		}
		room.SuitcaseDeck = room.DiscardPile
		room.DiscardPile = nil
		ShuffleDeck(room.SuitcaseDeck)
	}

	last := len(room.SuitcaseDeck) - 1
	card := room.SuitcaseDeck[last]
	room.SuitcaseDeck = room.SuitcaseDeck[:last]
	return card, true
}
