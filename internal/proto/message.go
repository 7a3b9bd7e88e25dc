// Package proto defines the JSON messages exchanged over the control
// channel. The schema is flat: every message is a type tag plus the
// fields that type uses.
package proto

// Control-channel message types.
const (
	// InboundTypeRegisterSender requests a fresh room as sender.
	InboundTypeRegisterSender = "register_sender"
	// InboundTypeRegisterReceiver joins a room by code as receiver.
	InboundTypeRegisterReceiver = "register_receiver"

	// OutboundTypeCodeGenerated carries the allocated room code.
	OutboundTypeCodeGenerated = "code_generated"
	// OutboundTypeWaitingForFile confirms a join; upload is pending.
	OutboundTypeWaitingForFile = "waiting_for_file"
	// OutboundTypeReceiverJoined tells the sender a receiver bound.
	OutboundTypeReceiverJoined = "receiver_joined"
	// OutboundTypeFileReady tells the receiver the payload is uploaded.
	OutboundTypeFileReady = "file_ready"
	// OutboundTypeError carries a rejection or disconnect notice.
	OutboundTypeError = "error"
)

// Inbound is a message coming from the peer.
type Inbound struct {
	Type string `json:"type"`
	Code string `json:"code,omitempty"`
}

// Outbound is a message sent to the peer.
type Outbound struct {
	Type     string `json:"type"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
	Filesize int64  `json:"filesize,omitempty"`
}
