package socket_io

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"Qishui/services/game"
	"Qishui/services/socket_io/handlers"
	socketio_types "Qishui/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, registry *game.RoomRegistry) {
	log.DEBUG = os.Getenv("SIO_DEBUG") == "true"
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the maps, otherwise it panics
	sio.PlayerConnections = make(map[string]*socket.Socket)
	sio.Sessions = make(map[socket.SocketId]*socketio_types.PlayerSession)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		s := (*socketio_types.SocketServer)(sio)

		// Room lifecycle
		client.On("create_room", handlers.HandleCreateRoom(registry, client, s))
		client.On("join_room", handlers.HandleJoinRoom(registry, client, s))

		// Game flow
		client.On("start_game", handlers.HandleStartGame(registry, client, s))
		client.On("select_cards", handlers.HandleSelectCards(registry, client, s))
		client.On("use_action_token", handlers.HandleUseActionToken(registry, client, s))
		client.On("finish_guard_actions", handlers.HandleFinishGuardActions(registry, client, s))

		// NOTE: will remove the sio connection and session from the maps
		client.On("disconnecting", handlers.HandleDisconnecting(registry, client, s))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()
}
