package core

// Client is one peer's control channel as seen by the hub. Role, Code
// and State are mutated only under the hub lock; the transport layer
// drains Events and never touches the rest.
type Client struct {
	ID     string
	Role   Role
	Code   string
	State  State
	Events chan *Event
}

// NewClient constructs an unregistered client with a buffered event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Role:   RoleNone,
		State:  StateUnregistered,
		Events: make(chan *Event, 8),
	}
}

// Push delivers an event without blocking. A slow or vanished consumer
// drops the event; pushes are best-effort and never fail the caller.
func (c *Client) Push(event *Event) {
	select {
	case c.Events <- event:
	default:
	}
}

func (c *Client) reset() {
	c.Role = RoleNone
	c.Code = ""
	c.State = StateUnregistered
}
