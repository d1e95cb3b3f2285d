package game

import (
	"testing"

	game_constants "Qishui/constants/game"
	game_models "Qishui/models/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSuitcaseDeckComposition(t *testing.T) {
	deck := BuildSuitcaseDeck()

	require.Len(t, deck, game_constants.DeckSize)

	byBottles := make(map[int]int)
	seenIDs := make(map[string]bool)
	for _, card := range deck {
		byBottles[card.Bottles]++
		assert.False(t, seenIDs[card.ID], "duplicate card id %s", card.ID)
		seenIDs[card.ID] = true
	}

	assert.Equal(t, game_constants.ZeroBottleCards, byBottles[0])
	assert.Equal(t, game_constants.OneBottleCards, byBottles[1])
	assert.Equal(t, game_constants.TwoBottleCards, byBottles[2])
	assert.Equal(t, game_constants.ThreeBottleCards, byBottles[3])
}

func TestDrawSuitcaseFromDeck(t *testing.T) {
	room := &game_models.Room{SuitcaseDeck: BuildSuitcaseDeck()}

	card, ok := DrawSuitcase(room)
	require.True(t, ok)
	assert.NotEmpty(t, card.ID)
	assert.Len(t, room.SuitcaseDeck, game_constants.DeckSize-1)
}

func TestDrawSuitcaseReshufflesDiscard(t *testing.T) {
	room := &game_models.Room{
		DiscardPile: []game_models.SuitcaseCard{
			{ID: "suitcase_1", Bottles: 1},
			{ID: "suitcase_2", Bottles: 2},
			{ID: "suitcase_3", Bottles: 3},
		},
	}

	card, ok := DrawSuitcase(room)
	require.True(t, ok)
	assert.Contains(t, []string{"suitcase_1", "suitcase_2", "suitcase_3"}, card.ID)

	// Discard became the new deck and was emptied
	assert.Empty(t, room.DiscardPile)
	assert.Len(t, room.SuitcaseDeck, 2)
}

func TestDrawSuitcaseBothPilesEmpty(t *testing.T) {
	room := &game_models.Room{}

	_, ok := DrawSuitcase(room)
	assert.False(t, ok, "draw from empty deck and discard must deal short")
}
