package game

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"

	game_constants "Qishui/constants/game"
	game_models "Qishui/models/game"

	"github.com/google/uuid"
)

// RoomRegistry owns the process-wide mapping from room code to Room. It is
// created once at startup and injected into every handler that needs it.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*game_models.Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]*game_models.Room),
	}
}

// GenerateRoomCode returns a 6-character code from the unambiguous alphabet.
// Collisions are not checked: a second room created with the same code
// silently replaces the first (documented limitation).
func GenerateRoomCode() string {
	var sb strings.Builder
	for i := 0; i < game_constants.RoomCodeLength; i++ {
		sb.WriteByte(game_constants.RoomCodeAlphabet[rand.Intn(len(game_constants.RoomCodeAlphabet))])
	}
	return sb.String()
}

func newPlayer(name string, avatar string) *game_models.Player {
	return &game_models.Player{
		ID:          fmt.Sprintf("player_%s", uuid.NewString()),
		Name:        name,
		Avatar:      avatar,
		BottleCaps:  0,
		IsConnected: true,
	}
}

// CreateRoom inserts a new room in the waiting phase with the creator as its
// sole player and host, and returns both.
func (reg *RoomRegistry) CreateRoom(hostName string, hostAvatar string) (*game_models.Room, *game_models.Player) {
	host := newPlayer(hostName, hostAvatar)

	room := &game_models.Room{
		ID:             fmt.Sprintf("room_%s", uuid.NewString()),
		Code:           GenerateRoomCode(),
		Players:        []*game_models.Player{host},
		Phase:          game_models.PhaseWaiting,
		TravelerStates: make(map[string]*game_models.TravelerState),
		GeneralStock:   game_constants.InitialGeneralStock,
		LegalLimit:     game_constants.DefaultLegalLimit,
	}

	reg.mu.Lock()
	reg.rooms[room.Code] = room
	reg.mu.Unlock()

	log.Printf("[ROOM-CREATE] Room %s created by %s", room.Code, hostName)
	return room, host
}

// GetRoom looks up a room by code.
func (reg *RoomRegistry) GetRoom(code string) (*game_models.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// JoinRoom adds a player to an existing room. Failure conditions are checked
// in a fixed order: unknown code, full room, game already in progress.
func (reg *RoomRegistry) JoinRoom(code string, name string, avatar string) (*game_models.Room, *game_models.Player, error) {
	room, ok := reg.GetRoom(strings.ToUpper(code))
	if !ok {
		return nil, nil, ErrRoomNotFound
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if len(room.Players) >= game_constants.MaxPlayers {
		return nil, nil, ErrRoomFull
	}
	if room.Phase != game_models.PhaseWaiting {
		return nil, nil, ErrGameAlreadyStarted
	}

	player := newPlayer(name, avatar)
	room.Players = append(room.Players, player)

	log.Printf("[ROOM-JOIN] %s joined room %s (%d players)", name, room.Code, len(room.Players))
	return room, player, nil
}

// RemovePlayerOnDisconnect applies the disconnect rules: before the game has
// started the player is removed outright and an emptied room is evicted; once
// the game is running the player is only marked disconnected and keeps their
// seat. Returns the room (nil if it no longer exists) and whether it was evicted.
func (reg *RoomRegistry) RemovePlayerOnDisconnect(code string, playerID string) (*game_models.Room, bool) {
	room, ok := reg.GetRoom(code)
	if !ok {
		return nil, false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	player := room.FindPlayer(playerID)
	if player == nil {
		return room, false
	}
	player.IsConnected = false

	if room.Phase != game_models.PhaseWaiting {
		log.Printf("[ROOM-DISCONNECT] %s disconnected from running room %s, seat kept", player.Name, code)
		return room, false
	}

	for i, p := range room.Players {
		if p.ID == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}
	log.Printf("[ROOM-DISCONNECT] %s removed from waiting room %s", player.Name, code)

	if len(room.Players) == 0 {
		room.CancelRotation()
		reg.mu.Lock()
		delete(reg.rooms, code)
		reg.mu.Unlock()
		log.Printf("[ROOM-EVICT] Empty room %s deleted", code)
		return nil, true
	}

	return room, false
}

// Count returns the number of live rooms (reported by the health endpoint).
func (reg *RoomRegistry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
