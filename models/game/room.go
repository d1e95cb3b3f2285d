package game_models

import (
	"sync"
	"time"
)

// Phase is the closed set of room phases. Transitions only follow the
// directed cycle waiting -> setup -> event -> selecting -> bribe_reveal ->
// guard_action -> scoring -> (event | game_end).
type Phase string

const (
	PhaseWaiting     Phase = "waiting"
	PhaseSetup       Phase = "setup"
	PhaseEvent       Phase = "event"
	PhaseSelecting   Phase = "selecting"
	PhaseBribeReveal Phase = "bribe_reveal"
	PhaseGuardAction Phase = "guard_action"
	PhaseScoring     Phase = "scoring"
	PhaseGameEnd     Phase = "game_end"
)

// Player is one participant of a room. The id is opaque and server-generated;
// clients keep it around but the server never re-authenticates with it.
type Player struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Avatar        string         `json:"avatar"`
	BottleCaps    int            `json:"bottleCaps"`
	IsBorderGuard bool           `json:"isBorderGuard"`
	IsReady       bool           `json:"isReady"`
	IsConnected   bool           `json:"isConnected"`
	Hand          []SuitcaseCard `json:"hand,omitempty"`
}

// TravelerState holds the per-round hidden state of a non-guard player.
// At most one of IsBribeAccepted/IsArrested/IsWavedThrough terminal outcomes
// applies per round. Once a traveler is resolved, luggage and bribe move to
// the discard pile and are cleared here; RevealedLuggage stays as the public
// record of what was shown.
type TravelerState struct {
	PlayerID        string         `json:"playerId"`
	Luggage         []SuitcaseCard `json:"luggage"`
	Bribe           *SuitcaseCard  `json:"bribe"`
	RevealedLuggage []SuitcaseCard `json:"revealedLuggage"`
	IsBribeAccepted bool           `json:"isBribeAccepted"`
	IsArrested      bool           `json:"isArrested"`
	IsWavedThrough  bool           `json:"isWavedThrough"`
}

// Room is the aggregate holding everything about one game. Players are kept
// in join order; the first player is the host.
type Room struct {
	ID                   string                    `json:"id"`
	Code                 string                    `json:"code"`
	Players              []*Player                 `json:"players"`
	Phase                Phase                     `json:"phase"`
	Round                int                       `json:"round"`
	MaxRounds            int                       `json:"maxRounds"`
	CurrentBorderGuardID string                    `json:"currentBorderGuardId"`
	EventCard            *EventCard                `json:"eventCard"`
	SuitcaseDeck         []SuitcaseCard            `json:"suitcaseDeck"`
	DiscardPile          []SuitcaseCard            `json:"discardPile"`
	TravelerStates       map[string]*TravelerState `json:"travelerStates"`
	ActionTokens         []*ActionToken            `json:"actionTokens"`
	GeneralStock         int                       `json:"generalStock"`
	LegalLimit           int                       `json:"legalLimit"`

	// Guards every mutation of the room. Handlers for the same room never
	// interleave partway through a state transition.
	Mu sync.Mutex `json:"-"`

	rotationTimer *time.Timer
}

// FindPlayer returns the player with the given id, or nil.
func (r *Room) FindPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// Host returns the first player in join order, or nil for an empty room.
func (r *Room) Host() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[0]
}

// Travelers returns every player that is not the current border guard.
func (r *Room) Travelers() []*Player {
	travelers := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.IsBorderGuard {
			travelers = append(travelers, p)
		}
	}
	return travelers
}

// ScheduleRotation arms the room-owned scoring timer. Any previously armed
// timer is stopped first, so a room never has two pending rotations.
func (r *Room) ScheduleRotation(delay time.Duration, fire func()) {
	if r.rotationTimer != nil {
		r.rotationTimer.Stop()
	}
	r.rotationTimer = time.AfterFunc(delay, fire)
}

// CancelRotation stops the pending rotation task, if any. Used on room
// teardown and by tests that drive rounds deterministically.
func (r *Room) CancelRotation() {
	if r.rotationTimer != nil {
		r.rotationTimer.Stop()
		r.rotationTimer = nil
	}
}
