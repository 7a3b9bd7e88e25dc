package http

import (
	"errors"
	"fmt"
	"io"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/peerdrop/peerdrop/internal/core"
)

// RelayHandlers serves the payload boundary: the sender uploads here
// once its receiver has joined, the receiver downloads here after the
// file_ready push.
type RelayHandlers struct {
	hub            *core.Hub
	maxUploadBytes int64
	log            *zerolog.Logger
}

// NewRelayHandlers creates a new relay handlers instance.
func NewRelayHandlers(hub *core.Hub, maxUploadBytes int64, logger *zerolog.Logger) *RelayHandlers {
	return &RelayHandlers{
		hub:            hub,
		maxUploadBytes: maxUploadBytes,
		log:            logger,
	}
}

// Upload handles the payload upload from the sender.
// POST /upload, multipart form fields: code, file.
func (h *RelayHandlers) Upload(c *gin.Context) {
	c.Request.Body = stdhttp.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	code := c.PostForm("code")
	if code == "" {
		c.String(stdhttp.StatusBadRequest, "code is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *stdhttp.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.String(stdhttp.StatusRequestEntityTooLarge, "file too large")
			return
		}
		c.String(stdhttp.StatusBadRequest, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.log.Error().Err(err).Str("code", code).Msg("failed to open uploaded file")
		c.String(stdhttp.StatusBadRequest, "could not read file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.log.Error().Err(err).Str("code", code).Msg("failed to read uploaded file")
		c.String(stdhttp.StatusBadRequest, "could not read file")
		return
	}

	switch err := h.hub.AttachPayload(code, fileHeader.Filename, data); {
	case err == nil:
		c.String(stdhttp.StatusOK, "file uploaded and receiver notified")
	case errors.Is(err, core.ErrRoomNotFound):
		c.String(stdhttp.StatusNotFound, "invalid or expired code")
	case errors.Is(err, core.ErrNoReceiver):
		c.String(stdhttp.StatusConflict, "receiver not connected")
	case errors.Is(err, core.ErrEmptyPayload):
		c.String(stdhttp.StatusBadRequest, "no selected file")
	default:
		h.log.Error().Err(err).Str("code", code).Msg("upload failed")
		c.String(stdhttp.StatusInternalServerError, "internal server error")
	}
}

// Download serves the stored payload to the receiver.
// GET /download?code=...
func (h *RelayHandlers) Download(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.String(stdhttp.StatusBadRequest, "code is required")
		return
	}

	name, data, err := h.hub.TakePayload(code)
	if err != nil {
		c.String(stdhttp.StatusNotFound, "file not found or link expired")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(stdhttp.StatusOK, "application/octet-stream", data)
}
