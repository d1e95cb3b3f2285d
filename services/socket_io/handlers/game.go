package handlers

import (
	"log"

	game_constants "Qishui/constants/game"
	game_models "Qishui/models/game"
	"Qishui/services/game"
	socketio_types "Qishui/services/socket_io/types"
	socketio_utils "Qishui/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// resolveRoom looks up the sender's session and room. Messages from sockets
// that never created or joined a room are dropped.
func resolveRoom(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) (*game_models.Room, *socketio_types.PlayerSession, bool) {
	session, ok := sio.GetSession(client.Id())
	if !ok {
		return nil, nil, false
	}
	room, ok := registry.GetRoom(session.RoomCode)
	if !ok {
		return nil, nil, false
	}
	return room, session, true
}

// HandleStartGame begins the game: host only, 3 players minimum.
func HandleStartGame(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, session, ok := resolveRoom(registry, client, sio)
		if !ok {
			return
		}

		room.Mu.Lock()
		defer room.Mu.Unlock()

		if err := game.StartGame(room, session.PlayerID); err != nil {
			log.Printf("[START-ERROR] %s could not start room %s: %v", session.PlayerID, room.Code, err)
			socketio_utils.EmitRejection(client, err)
			return
		}

		socketio_utils.BroadcastRoom(sio, room)
	}
}

// HandleSelectCards records a traveler's luggage and bribe choice.
func HandleSelectCards(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, session, ok := resolveRoom(registry, client, sio)
		if !ok {
			return
		}

		payload := socketio_utils.PayloadOf(args)
		luggageIDs := socketio_utils.StringSliceField(payload, "luggageIds")
		bribeID := socketio_utils.StringField(payload, "bribeId")

		room.Mu.Lock()
		defer room.Mu.Unlock()

		if err := game.SelectCards(room, session.PlayerID, luggageIDs, bribeID); err != nil {
			log.Printf("[SELECT-ERROR] %s in room %s: %v", session.PlayerID, room.Code, err)
			socketio_utils.EmitRejection(client, err)
			return
		}

		socketio_utils.BroadcastRoom(sio, room)
	}
}

// HandleUseActionToken resolves one guard action against a target traveler.
// Invalid or spent token indexes are silent no-ops.
func HandleUseActionToken(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, session, ok := resolveRoom(registry, client, sio)
		if !ok {
			return
		}

		payload := socketio_utils.PayloadOf(args)
		tokenIndex, hasIndex := socketio_utils.IntField(payload, "tokenIndex")
		if !hasIndex {
			return
		}
		targetPlayerID := socketio_utils.StringField(payload, "targetPlayerId")

		room.Mu.Lock()
		defer room.Mu.Unlock()

		if err := game.UseActionToken(room, session.PlayerID, tokenIndex, targetPlayerID); err != nil {
			socketio_utils.EmitRejection(client, err)
			return
		}

		socketio_utils.BroadcastRoom(sio, room)
	}
}

// HandleFinishGuardActions waves through the unresolved travelers, enters
// scoring and arms the room's rotation timer. The timer callback re-locks
// the room and behaves like any other handler; stale messages arriving
// during the delay fail their own phase checks.
func HandleFinishGuardActions(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, session, ok := resolveRoom(registry, client, sio)
		if !ok {
			return
		}

		room.Mu.Lock()
		defer room.Mu.Unlock()

		if err := game.FinishGuardActions(room, session.PlayerID); err != nil {
			socketio_utils.EmitRejection(client, err)
			return
		}

		socketio_utils.BroadcastRoom(sio, room)

		room.ScheduleRotation(game_constants.ScoringRotationDelay, func() {
			room.Mu.Lock()
			defer room.Mu.Unlock()

			game.AdvanceRound(room)
			socketio_utils.BroadcastRoom(sio, room)
			if room.Phase == game_models.PhaseGameEnd {
				socketio_utils.BroadcastGameEnd(sio, room)
			}
		})
	}
}
