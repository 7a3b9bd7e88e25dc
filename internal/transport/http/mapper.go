package http

import (
	"github.com/peerdrop/peerdrop/internal/core"
	"github.com/peerdrop/peerdrop/internal/proto"
)

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventCodeGenerated:
		return proto.Outbound{
			Type: proto.OutboundTypeCodeGenerated,
			Code: event.Code,
		}
	case core.EventWaitingForFile:
		return proto.Outbound{Type: proto.OutboundTypeWaitingForFile}
	case core.EventReceiverJoined:
		return proto.Outbound{Type: proto.OutboundTypeReceiverJoined}
	case core.EventFileReady:
		return proto.Outbound{
			Type:     proto.OutboundTypeFileReady,
			Filename: event.Filename,
			Filesize: event.Filesize,
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Message: "unknown error"}
		}
		return proto.Outbound{
			Type:    proto.OutboundTypeError,
			Message: event.Error.Message,
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeError, Message: "unknown event"}
	}
}
