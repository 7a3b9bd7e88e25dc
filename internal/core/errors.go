package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeRoomNotFound     = "room_not_found"
	ErrCodeReceiverBound    = "receiver_bound"
	ErrCodeNoReceiver       = "no_receiver"
	ErrCodeEmptyPayload     = "empty_payload"
	ErrCodePayloadNotFound  = "payload_not_found"
	ErrCodePeerDisconnected = "peer_disconnected"
	ErrCodeBadRequest       = "bad_request"
	ErrCodeCodesExhausted   = "code_space_exhausted"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrReceiverBound      = errors.New("receiver already bound")
	ErrNoReceiver         = errors.New("no receiver bound")
	ErrEmptyPayload       = errors.New("empty payload")
	ErrPayloadNotFound    = errors.New("payload not found")
	ErrCodeSpaceExhausted = errors.New("code space exhausted")
	ErrInvalidTransition  = errors.New("invalid transition")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

// AsCoreError maps a domain error to the code and message surfaced to peers.
func AsCoreError(err error) *CoreError {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return coreError(ErrCodeRoomNotFound, "Invalid or expired code.")
	case errors.Is(err, ErrReceiverBound):
		return coreError(ErrCodeReceiverBound, "Invalid or expired code.")
	case errors.Is(err, ErrNoReceiver):
		return coreError(ErrCodeNoReceiver, "Receiver not connected.")
	case errors.Is(err, ErrEmptyPayload):
		return coreError(ErrCodeEmptyPayload, "No selected file.")
	case errors.Is(err, ErrPayloadNotFound):
		return coreError(ErrCodePayloadNotFound, "File not found or link expired.")
	case errors.Is(err, ErrCodeSpaceExhausted):
		return coreError(ErrCodeCodesExhausted, "Could not allocate a room code.")
	default:
		return coreError(ErrCodeBadRequest, err.Error())
	}
}
