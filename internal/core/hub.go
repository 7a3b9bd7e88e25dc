package core

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/peerdrop/peerdrop/internal/store"
)

// Hub is the room registry. It owns every live room and serializes all
// mutations behind one lock: code allocation, receiver binding, payload
// attachment and teardown all race against each other across
// connection goroutines and relay requests.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]*Room
	blobs store.Store
	log   *zerolog.Logger
}

// NewHub creates a hub backed by the given blob store.
func NewHub(blobs store.Store, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		rooms: make(map[string]*Room),
		blobs: blobs,
		log:   logger,
	}
}

// RegisterSender allocates a fresh code, inserts a room with c bound as
// sender and pushes the code back over c's channel.
func (h *Hub) RegisterSender(c *Client) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	role, state, err := nextState(c.Role, c.State, InputRequestRoom)
	if err != nil {
		return "", err
	}

	code, err := generateCode(func(candidate string) bool {
		_, live := h.rooms[candidate]
		return live
	})
	if err != nil {
		return "", err
	}

	h.rooms[code] = &Room{Code: code, Sender: c}
	c.Role, c.State, c.Code = role, state, code
	c.Push(&Event{Kind: EventCodeGenerated, Code: code})

	h.log.Info().Str("client_id", c.ID).Str("code", code).Msg("sender registered")
	return code, nil
}

// RegisterReceiver binds c to the room identified by code. Exactly one
// of two concurrent joins with the same code wins; the loser observes
// ErrReceiverBound. On success the sender is nudged to start relaying
// and the receiver is told to wait for the file. On failure c stays
// unregistered and may retry with another code.
func (h *Hub) RegisterReceiver(c *Client, code string) error {
	code = NormalizeCode(code)

	h.mu.Lock()
	defer h.mu.Unlock()

	role, state, err := nextState(c.Role, c.State, InputJoinRoom)
	if err != nil {
		return err
	}

	room, ok := h.rooms[code]
	if !ok {
		return ErrRoomNotFound
	}
	if room.Receiver != nil {
		return ErrReceiverBound
	}

	room.Receiver = c
	c.Role, c.State, c.Code = role, state, code

	if sender := room.Sender; sender != nil {
		if r, s, err := nextState(sender.Role, sender.State, InputReceiverJoined); err == nil {
			sender.Role, sender.State = r, s
		}
		sender.Push(&Event{Kind: EventReceiverJoined})
	}
	c.Push(&Event{Kind: EventWaitingForFile})

	h.log.Info().Str("client_id", c.ID).Str("code", code).Msg("receiver joined")
	return nil
}

// AttachPayload stores the uploaded payload for the room and notifies
// the receiver it is ready. Upload is refused until a receiver has
// joined, and an empty payload is never stored.
func (h *Hub) AttachPayload(code, name string, data []byte) error {
	code = NormalizeCode(code)

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(data) == 0 {
		return ErrEmptyPayload
	}

	room, ok := h.rooms[code]
	if !ok {
		return ErrRoomNotFound
	}
	if room.Receiver == nil {
		return ErrNoReceiver
	}

	h.blobs.Put(code, name, data)

	if sender := room.Sender; sender != nil {
		if r, s, err := nextState(sender.Role, sender.State, InputPayloadStored); err == nil {
			sender.Role, sender.State = r, s
		}
	}
	if r, s, err := nextState(room.Receiver.Role, room.Receiver.State, InputPayloadStored); err == nil {
		room.Receiver.Role, room.Receiver.State = r, s
	}
	room.Receiver.Push(&Event{
		Kind:     EventFileReady,
		Filename: name,
		Filesize: int64(len(data)),
	})

	h.log.Info().Str("code", code).Str("filename", name).Int("size", len(data)).Msg("payload attached")
	return nil
}

// TakePayload returns the stored payload for code. The read is
// idempotent: repeated downloads succeed until the room is torn down.
func (h *Hub) TakePayload(code string) (string, []byte, error) {
	code = NormalizeCode(code)

	h.mu.Lock()
	defer h.mu.Unlock()

	name, data, ok := h.blobs.Get(code)
	if !ok {
		return "", nil, ErrPayloadNotFound
	}
	return name, data, nil
}

// Disconnect is the single teardown path for a control channel. If c
// was bound to a room, the surviving counterpart gets a best-effort
// disconnect notice and is reset so it can start over on the same
// channel; the room and its payload are removed unconditionally.
// Safe to call more than once and for channels that never registered.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	code := c.Code
	if code == "" {
		return
	}
	c.reset()

	room, ok := h.rooms[code]
	if !ok {
		return
	}

	if survivor := room.peerOf(c); survivor != nil {
		msg := "Receiver disconnected."
		if c == room.Sender {
			msg = "Sender disconnected."
		}
		survivor.Push(&Event{Kind: EventError, Error: coreError(ErrCodePeerDisconnected, msg)})
		survivor.reset()
	}

	h.removeRoomLocked(code)
	h.log.Info().Str("client_id", c.ID).Str("code", code).Msg("room torn down")
}

// RoomCount reports the number of live rooms.
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

func (h *Hub) removeRoomLocked(code string) {
	delete(h.rooms, code)
	h.blobs.Delete(code)
}
