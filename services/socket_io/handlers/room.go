package handlers

import (
	"log"

	"Qishui/services/game"
	socketio_types "Qishui/services/socket_io/types"
	socketio_utils "Qishui/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleCreateRoom allocates a fresh room with the sender as host. Creation
// always succeeds; the code is not checked for collisions.
func HandleCreateRoom(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadOf(args)
		playerName := socketio_utils.StringField(payload, "playerName")
		avatar := socketio_utils.StringField(payload, "avatar")

		room, host := registry.CreateRoom(playerName, avatar)

		client.Join(socket.Room(room.Code))
		sio.AddConnection(host.ID, client)
		sio.BindSession(client.Id(), &socketio_types.PlayerSession{
			PlayerID: host.ID,
			RoomCode: room.Code,
		})

		client.Emit("room_created", gin.H{
			"code":     room.Code,
			"playerId": host.ID,
		})

		room.Mu.Lock()
		socketio_utils.BroadcastRoom(sio, room)
		room.Mu.Unlock()

		log.Printf("[CREATE-ROOM] Room %s created by %s (socket %s)", room.Code, playerName, client.Id())
	}
}

// HandleJoinRoom seats the sender in an existing waiting room.
func HandleJoinRoom(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload := socketio_utils.PayloadOf(args)
		code := socketio_utils.StringField(payload, "code")
		playerName := socketio_utils.StringField(payload, "playerName")
		avatar := socketio_utils.StringField(payload, "avatar")

		room, player, err := registry.JoinRoom(code, playerName, avatar)
		if err != nil {
			log.Printf("[JOIN-ERROR] %s could not join room %s: %v", playerName, code, err)
			socketio_utils.EmitRejection(client, err)
			return
		}

		client.Join(socket.Room(room.Code))
		sio.AddConnection(player.ID, client)
		sio.BindSession(client.Id(), &socketio_types.PlayerSession{
			PlayerID: player.ID,
			RoomCode: room.Code,
		})

		client.Emit("room_joined", gin.H{
			"code":     room.Code,
			"playerId": player.ID,
		})

		room.Mu.Lock()
		socketio_utils.BroadcastRoom(sio, room)
		room.Mu.Unlock()

		log.Printf("[JOIN-ROOM] %s joined room %s (socket %s)", playerName, room.Code, client.Id())
	}
}

// HandleDisconnecting marks the player disconnected and, while the room is
// still in the waiting phase, removes them outright (evicting the room if it
// empties). Once a game has started the seat is kept, disconnected or not.
func HandleDisconnecting(registry *game.RoomRegistry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		session, ok := sio.GetSession(client.Id())
		if !ok {
			return
		}

		sio.RemoveSession(client.Id())
		sio.RemoveConnection(session.PlayerID)

		room, evicted := registry.RemovePlayerOnDisconnect(session.RoomCode, session.PlayerID)
		if room == nil {
			if evicted {
				log.Printf("[DISCONNECT] Room %s evicted after last player left", session.RoomCode)
			}
			return
		}

		room.Mu.Lock()
		socketio_utils.BroadcastRoom(sio, room)
		room.Mu.Unlock()

		log.Printf("[DISCONNECT] Player %s disconnected from room %s", session.PlayerID, session.RoomCode)
	}
}
