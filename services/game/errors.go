package game

import "errors"

// Rejection reasons for inbound player messages. Every rejection is a no-op:
// a rejected message never leaves a partial mutation behind. The socket layer
// decides which of these are reported back to the requester and which are
// silently ignored (see socketio_utils.EmitRejection).
var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomFull             = errors.New("room is full")
	ErrGameAlreadyStarted   = errors.New("game already started")
	ErrNotHost              = errors.New("only the host can start the game")
	ErrInsufficientPlayers  = errors.New("not enough players to start")
	ErrInvalidCardSelection = errors.New("invalid card selection")
	ErrWrongPhaseForAction  = errors.New("action not allowed in current phase")
	ErrInvalidOrUsedToken   = errors.New("invalid or already used action token")
	ErrNotBorderGuard       = errors.New("player is not the border guard")
)
