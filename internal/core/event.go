package core

// EventKind is a notification the hub pushes to a client.
type EventKind int

const (
	// EventCodeGenerated delivers a freshly allocated room code to the sender.
	EventCodeGenerated EventKind = iota
	// EventWaitingForFile confirms a receiver's join; upload is pending.
	EventWaitingForFile
	// EventReceiverJoined tells the sender its counterpart has bound.
	EventReceiverJoined
	// EventFileReady tells the receiver the payload is ready to download.
	EventFileReady
	// EventError carries a domain error or peer-disconnect notice.
	EventError
)

// Event describes to a client what happened in the system.
type Event struct {
	Kind     EventKind
	Code     string
	Filename string
	Filesize int64
	Error    *CoreError
}

// ErrorEvent wraps a domain error for pushing to a client.
func ErrorEvent(err error) *Event {
	return &Event{Kind: EventError, Error: AsCoreError(err)}
}
