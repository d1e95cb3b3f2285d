package game

import (
	"strings"
	"testing"

	game_constants "Qishui/constants/game"
	game_models "Qishui/models/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomDefaults(t *testing.T) {
	registry := NewRoomRegistry()

	room, host := registry.CreateRoom("alice", "🦊")

	assert.Len(t, room.Code, game_constants.RoomCodeLength)
	for _, r := range room.Code {
		assert.Contains(t, game_constants.RoomCodeAlphabet, string(r))
	}

	assert.Equal(t, game_models.PhaseWaiting, room.Phase)
	assert.Equal(t, game_constants.InitialGeneralStock, room.GeneralStock)
	assert.Equal(t, game_constants.DefaultLegalLimit, room.LegalLimit)

	require.Len(t, room.Players, 1)
	assert.Same(t, host, room.Host())
	assert.Equal(t, "alice", host.Name)
	assert.Equal(t, 0, host.BottleCaps)
	assert.True(t, host.IsConnected)
	assert.True(t, strings.HasPrefix(host.ID, "player_"))

	assert.Equal(t, 1, registry.Count())
}

func TestJoinRoomNotFound(t *testing.T) {
	registry := NewRoomRegistry()

	_, _, err := registry.JoinRoom("NOSUCH", "bob", "🐸")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestJoinRoomLowercaseCode(t *testing.T) {
	registry := NewRoomRegistry()
	room, _ := registry.CreateRoom("alice", "🦊")

	_, _, err := registry.JoinRoom(strings.ToLower(room.Code), "bob", "🐸")
	assert.NoError(t, err)
}

func TestJoinRoomFull(t *testing.T) {
	registry := NewRoomRegistry()
	room, _ := registry.CreateRoom("alice", "🦊")

	for i := 1; i < game_constants.MaxPlayers; i++ {
		_, _, err := registry.JoinRoom(room.Code, "player", "🐸")
		require.NoError(t, err)
	}

	_, _, err := registry.JoinRoom(room.Code, "late", "🐸")
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestJoinRoomGameInProgress(t *testing.T) {
	registry := NewRoomRegistry()
	room, host := registry.CreateRoom("alice", "🦊")
	registry.JoinRoom(room.Code, "bob", "🐸")
	registry.JoinRoom(room.Code, "carol", "🐼")

	require.NoError(t, StartGame(room, host.ID))

	_, _, err := registry.JoinRoom(room.Code, "dave", "🐺")
	assert.ErrorIs(t, err, ErrGameAlreadyStarted)
}

func TestDisconnectRemovesPlayerWhileWaiting(t *testing.T) {
	registry := NewRoomRegistry()
	room, _ := registry.CreateRoom("alice", "🦊")
	_, bob, err := registry.JoinRoom(room.Code, "bob", "🐸")
	require.NoError(t, err)

	got, evicted := registry.RemovePlayerOnDisconnect(room.Code, bob.ID)
	require.NotNil(t, got)
	assert.False(t, evicted)
	assert.Len(t, room.Players, 1)
	assert.Nil(t, room.FindPlayer(bob.ID))
}

func TestDisconnectEvictsEmptyWaitingRoom(t *testing.T) {
	registry := NewRoomRegistry()
	room, host := registry.CreateRoom("alice", "🦊")

	got, evicted := registry.RemovePlayerOnDisconnect(room.Code, host.ID)
	assert.Nil(t, got)
	assert.True(t, evicted)
	assert.Equal(t, 0, registry.Count())

	_, ok := registry.GetRoom(room.Code)
	assert.False(t, ok)
}

func TestDisconnectKeepsSeatOnceStarted(t *testing.T) {
	registry := NewRoomRegistry()
	room, host := registry.CreateRoom("alice", "🦊")
	_, bob, _ := registry.JoinRoom(room.Code, "bob", "🐸")
	registry.JoinRoom(room.Code, "carol", "🐼")

	require.NoError(t, StartGame(room, host.ID))

	got, evicted := registry.RemovePlayerOnDisconnect(room.Code, bob.ID)
	require.NotNil(t, got)
	assert.False(t, evicted)

	// Player keeps their seat and all state, only the connection flag flips
	stillBob := room.FindPlayer(bob.ID)
	require.NotNil(t, stillBob)
	assert.False(t, stillBob.IsConnected)
	assert.Len(t, room.Players, 3)
}
