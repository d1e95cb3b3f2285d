package socketio_utils

import (
	"log"

	game_models "Qishui/models/game"
	"Qishui/services/game"
	socketio_types "Qishui/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// BroadcastRoom pushes a per-viewer filtered room_update to every connected
// player of the room. Called after every successful mutation, with the room
// mutex held by the caller.
func BroadcastRoom(sio *socketio_types.SocketServer, room *game_models.Room) {
	for _, player := range room.Players {
		client, ok := sio.GetConnection(player.ID)
		if !ok {
			continue
		}
		client.Emit("room_update", game.ProjectRoomFor(room, player.ID))
	}
}

// BroadcastGameEnd announces the final ranking to the whole room. The sort
// is stable, so players tied on bottle caps keep their join order.
func BroadcastGameEnd(sio *socketio_types.SocketServer, room *game_models.Room) {
	ranking := game.FinalRanking(room)

	rankingData := make([]gin.H, 0, len(ranking))
	for i, player := range ranking {
		rankingData = append(rankingData, gin.H{
			"rank":       i + 1,
			"playerId":   player.ID,
			"name":       player.Name,
			"avatar":     player.Avatar,
			"bottleCaps": player.BottleCaps,
		})
	}

	sio.Sio_server.To(socket.Room(room.Code)).Emit("game_end", gin.H{
		"ranking": rankingData,
	})

	log.Printf("[GAME-END] Final ranking broadcast for room %s, winner %s with %d caps",
		room.Code, ranking[0].Name, ranking[0].BottleCaps)
}

// rejectionMessages maps the rejection reasons that are reported back to the
// requester onto their wire messages. The join/start/selection texts are kept
// verbatim for compatibility with existing clients.
var rejectionMessages = map[error]string{
	game.ErrRoomNotFound:         "房间不存在",
	game.ErrRoomFull:             "房间已满",
	game.ErrGameAlreadyStarted:   "游戏已开始",
	game.ErrNotHost:              "只有房主可以开始游戏",
	game.ErrInsufficientPlayers:  "至少需要3名玩家",
	game.ErrInvalidCardSelection: "无效的卡片选择",
}

// EmitRejection is the single funnel for rejected messages. Reasons with a
// defined wire message are emitted to the requester; everything else (wrong
// phase, bad token index, non-guard senders) stays a silent no-op, matching
// the behavior existing clients expect.
func EmitRejection(client *socket.Socket, err error) {
	message, ok := rejectionMessages[err]
	if !ok {
		log.Printf("[REJECT-SILENT] %v", err)
		return
	}
	client.Emit("error", gin.H{"message": message})
}
