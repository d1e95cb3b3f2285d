package game

import (
	game_models "Qishui/models/game"
)

// MessageType identifies an inbound player message.
type MessageType string

const (
	MsgJoinRoom           MessageType = "join_room"
	MsgStartGame          MessageType = "start_game"
	MsgSelectCards        MessageType = "select_cards"
	MsgUseActionToken     MessageType = "use_action_token"
	MsgFinishGuardActions MessageType = "finish_guard_actions"
)

// allowedPhases is the explicit (message type -> phase) permission table.
// Anything not listed here is rejected, which also guarantees that no message
// can ever move a room backwards in the phase cycle. use_action_token is
// accepted during bribe_reveal because the guard's first token use implicitly
// advances the room to guard_action.
var allowedPhases = map[MessageType]map[game_models.Phase]bool{
	MsgJoinRoom: {
		game_models.PhaseWaiting: true,
	},
	MsgStartGame: {
		game_models.PhaseWaiting: true,
	},
	MsgSelectCards: {
		game_models.PhaseSelecting: true,
	},
	MsgUseActionToken: {
		game_models.PhaseBribeReveal: true,
		game_models.PhaseGuardAction: true,
	},
	MsgFinishGuardActions: {
		game_models.PhaseGuardAction: true,
	},
}

// PhaseAllows reports whether a message type may act on a room in the given phase.
func PhaseAllows(phase game_models.Phase, msg MessageType) bool {
	return allowedPhases[msg][phase]
}
