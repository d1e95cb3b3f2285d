package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// PlayerSession links a live socket to the player seat it controls. It is
// created by create_room/join_room; there is no re-authentication, so a new
// connection can never resume an existing playerId's seat.
type PlayerSession struct {
	PlayerID string
	RoomCode string
}

// SocketServer contains the socket.io server plus the maps tracking which
// player sits behind which connection.
type SocketServer struct {
	Sio_server *socket.Server
	// playerId -> socket, for per-viewer room_update emission
	PlayerConnections map[string]*socket.Socket
	// socket id -> session, for resolving inbound messages
	Sessions map[socket.SocketId]*PlayerSession
	mutex    sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		PlayerConnections: make(map[string]*socket.Socket),
		Sessions:          make(map[socket.SocketId]*PlayerSession),
	}
}

func (s *SocketServer) AddConnection(playerID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.PlayerConnections[playerID] = client
}

func (s *SocketServer) RemoveConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.PlayerConnections, playerID)
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.PlayerConnections[playerID]
	return client, exists
}

func (s *SocketServer) BindSession(socketID socket.SocketId, session *PlayerSession) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Sessions[socketID] = session
}

func (s *SocketServer) GetSession(socketID socket.SocketId) (*PlayerSession, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	session, exists := s.Sessions[socketID]
	return session, exists
}

func (s *SocketServer) RemoveSession(socketID socket.SocketId) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Sessions, socketID)
}
