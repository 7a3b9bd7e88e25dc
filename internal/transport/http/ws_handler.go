package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peerdrop/peerdrop/internal/core"
	"github.com/peerdrop/peerdrop/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to core.Client.
type WSHandler struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: hub, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	client := core.NewClient(uuid.NewString())
	// Teardown must run on every exit path, exactly once per effect:
	// Disconnect is idempotent and notifies the surviving peer.
	defer h.hub.Disconnect(client)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var inbound proto.Inbound
		if err := json.Unmarshal(data, &inbound); err != nil {
			// Malformed frames are not fatal to the channel.
			h.log.Debug().Err(err).Str("client_id", client.ID).Msg("ignoring malformed control frame")
			continue
		}

		h.dispatch(client, inbound)
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		select {
		case event, ok := <-client.Events:
			if !ok {
				return nil
			}
			if err := wsjson.Write(ctx, conn, outboundFromEvent(event)); err != nil {
				h.log.Error().Err(err).Str("client_id", client.ID).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// dispatch applies one inbound message to the pairing state machine.
// Failures are replied to the requesting client only; success events
// are pushed by the hub to whichever side they concern.
func (h *WSHandler) dispatch(client *core.Client, inbound proto.Inbound) {
	switch inbound.Type {
	case proto.InboundTypeRegisterSender:
		if _, err := h.hub.RegisterSender(client); err != nil {
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("register sender rejected")
			client.Push(core.ErrorEvent(err))
		}
	case proto.InboundTypeRegisterReceiver:
		if inbound.Code == "" {
			client.Push(&core.Event{
				Kind:  core.EventError,
				Error: &core.CoreError{Code: core.ErrCodeBadRequest, Message: "code is required"},
			})
			return
		}
		if err := h.hub.RegisterReceiver(client, inbound.Code); err != nil {
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("register receiver rejected")
			client.Push(core.ErrorEvent(err))
		}
	default:
		client.Push(&core.Event{
			Kind:  core.EventError,
			Error: &core.CoreError{Code: core.ErrCodeBadRequest, Message: "unknown message type"},
		})
	}
}
