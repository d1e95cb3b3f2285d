package game

import (
	game_models "Qishui/models/game"
)

// RoomView is the per-viewer snapshot broadcast after every mutation. It is
// the full room state except that each player's hand is present only in the
// view sent to that player; for everyone else the field is omitted entirely.
// Revealed vs. hidden luggage needs no filtering here: TravelerState only
// ever exposes revealed cards through RevealedLuggage.
type RoomView struct {
	ID                   string                                `json:"id"`
	Code                 string                                `json:"code"`
	Players              []game_models.Player                  `json:"players"`
	Phase                game_models.Phase                     `json:"phase"`
	Round                int                                   `json:"round"`
	MaxRounds            int                                   `json:"maxRounds"`
	CurrentBorderGuardID string                                `json:"currentBorderGuardId"`
	EventCard            *game_models.EventCard                `json:"eventCard"`
	SuitcaseDeck         []game_models.SuitcaseCard            `json:"suitcaseDeck"`
	DiscardPile          []game_models.SuitcaseCard            `json:"discardPile"`
	TravelerStates       map[string]*game_models.TravelerState `json:"travelerStates"`
	ActionTokens         []*game_models.ActionToken            `json:"actionTokens"`
	GeneralStock         int                                   `json:"generalStock"`
	LegalLimit           int                                   `json:"legalLimit"`
}

// ProjectRoomFor derives the filtered view of a room for one viewer.
func ProjectRoomFor(room *game_models.Room, viewerID string) *RoomView {
	players := make([]game_models.Player, len(room.Players))
	for i, p := range room.Players {
		players[i] = *p
		if p.ID != viewerID {
			players[i].Hand = nil
		}
	}

	return &RoomView{
		ID:                   room.ID,
		Code:                 room.Code,
		Players:              players,
		Phase:                room.Phase,
		Round:                room.Round,
		MaxRounds:            room.MaxRounds,
		CurrentBorderGuardID: room.CurrentBorderGuardID,
		EventCard:            room.EventCard,
		SuitcaseDeck:         room.SuitcaseDeck,
		DiscardPile:          room.DiscardPile,
		TravelerStates:       room.TravelerStates,
		ActionTokens:         room.ActionTokens,
		GeneralStock:         room.GeneralStock,
		LegalLimit:           room.LegalLimit,
	}
}
