package core

// Room pairs a sender and a receiver channel under one code. The hub
// exclusively owns rooms; a room only references its peers' channels,
// which belong to the transport layer.
type Room struct {
	Code     string
	Sender   *Client
	Receiver *Client
}

// peerOf returns the counterpart of c, or nil if none is bound.
func (r *Room) peerOf(c *Client) *Client {
	switch c {
	case r.Sender:
		return r.Receiver
	case r.Receiver:
		return r.Sender
	default:
		return nil
	}
}
