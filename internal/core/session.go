package core

// Role identifies which side of a room a channel registered as.
type Role int

const (
	RoleNone Role = iota
	RoleSender
	RoleReceiver
)

func (r Role) String() string {
	switch r {
	case RoleSender:
		return "sender"
	case RoleReceiver:
		return "receiver"
	default:
		return "none"
	}
}

// State is the position of one control channel in the pairing protocol.
type State int

const (
	// StateUnregistered is the initial state: connected, no room bound.
	StateUnregistered State = iota
	// StateAwaitingReceiver: sender holds a code, no receiver yet.
	StateAwaitingReceiver
	// StateRelaying: receiver joined, sender is expected to upload.
	StateRelaying
	// StateDone: payload stored, nothing left for the sender to do.
	StateDone
	// StateAwaitingPayload: receiver bound, waiting for the upload.
	StateAwaitingPayload
	// StateReadyToFetch: payload stored, receiver may download.
	StateReadyToFetch
)

// Input is a protocol event applied to a session.
type Input int

const (
	// InputRequestRoom: the channel asks for a fresh room as sender.
	InputRequestRoom Input = iota
	// InputJoinRoom: the channel presents a code as receiver.
	InputJoinRoom
	// InputReceiverJoined: the counterpart receiver bound to the room.
	InputReceiverJoined
	// InputPayloadStored: the room's payload was uploaded.
	InputPayloadStored
	// InputPeerLost: the counterpart disconnected; room is gone.
	InputPeerLost
)

// nextState is the pairing state machine as a pure function, so the
// protocol is testable without a live transport. A rejected join leaves
// the state untouched via the error return; peer loss resets the
// session so the same channel can start over.
func nextState(role Role, state State, in Input) (Role, State, error) {
	if in == InputPeerLost {
		return RoleNone, StateUnregistered, nil
	}

	switch {
	case role == RoleNone && state == StateUnregistered && in == InputRequestRoom:
		return RoleSender, StateAwaitingReceiver, nil
	case role == RoleNone && state == StateUnregistered && in == InputJoinRoom:
		return RoleReceiver, StateAwaitingPayload, nil
	case role == RoleSender && state == StateAwaitingReceiver && in == InputReceiverJoined:
		return RoleSender, StateRelaying, nil
	case role == RoleSender && state == StateRelaying && in == InputPayloadStored:
		return RoleSender, StateDone, nil
	case role == RoleReceiver && state == StateAwaitingPayload && in == InputPayloadStored:
		return RoleReceiver, StateReadyToFetch, nil
	}
	return role, state, ErrInvalidTransition
}
