package http

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/wirematch-server/internal/core"
	"github.com/vovakirdan/wirematch-server/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. A non-nil
// error means the message was malformed; the caller logs and drops it
// without closing the connection.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, fmt.Errorf("decode join: %w", err)
		}
		mode := core.ChatMode(join.Mode)
		if !mode.Valid() {
			return nil, fmt.Errorf("unknown mode %q", join.Mode)
		}
		return &core.Command{
			Kind:      core.CommandJoin,
			Mode:      mode,
			Interests: join.Interests,
		}, nil
	case proto.InboundTypeChatMessage:
		var msg proto.ChatMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		return &core.Command{Kind: core.CommandChatMessage, Text: msg.Text}, nil
	case proto.InboundTypeTyping:
		var typing proto.TypingData
		if err := json.Unmarshal(inbound.Data, &typing); err != nil {
			return nil, fmt.Errorf("decode typing: %w", err)
		}
		return &core.Command{Kind: core.CommandTyping, Typing: typing.Flag}, nil
	case proto.InboundTypeMedia:
		var media proto.MediaData
		if err := json.Unmarshal(inbound.Data, &media); err != nil {
			return nil, fmt.Errorf("decode media: %w", err)
		}
		return &core.Command{
			Kind: core.CommandMedia,
			Media: &core.MediaItem{
				Type:     media.MediaType,
				Filename: media.Filename,
				Data:     media.Data,
				Size:     media.Size,
			},
		}, nil
	case proto.InboundTypeOffer, proto.InboundTypeAnswer, proto.InboundTypeICECandidate:
		// Signaling payloads are opaque and forwarded verbatim.
		return &core.Command{
			Kind:    core.CommandSignal,
			Signal:  core.SignalKind(inbound.Type),
			Payload: inbound.Data,
		}, nil
	case proto.InboundTypeModeration:
		var mod proto.ModerationData
		if err := json.Unmarshal(inbound.Data, &mod); err != nil {
			return nil, fmt.Errorf("decode moderation signal: %w", err)
		}
		return &core.Command{Kind: core.CommandModerationSignal, Confidence: mod.Confidence}, nil
	case proto.InboundTypeSkip:
		return &core.Command{Kind: core.CommandSkip}, nil
	case proto.InboundTypeLeave:
		return &core.Command{Kind: core.CommandLeave}, nil
	case proto.InboundTypePing:
		var ping proto.PingData
		if err := json.Unmarshal(inbound.Data, &ping); err != nil {
			return nil, fmt.Errorf("decode heartbeat: %w", err)
		}
		return &core.Command{Kind: core.CommandPing, Timestamp: ping.Timestamp}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", inbound.Type)
	}
}

// outboundFromEvent maps a core event to its wire envelope.
func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventPresenceCount:
		return proto.Outbound{
			Type: proto.OutboundTypePresenceCount,
			Data: proto.PresenceCountData{Count: event.Count},
		}
	case core.EventSearching:
		return proto.Outbound{Type: proto.OutboundTypeSearching}
	case core.EventPaired:
		return proto.Outbound{
			Type: proto.OutboundTypePaired,
			Data: proto.PairedData{
				Mode:            string(event.Mode),
				CommonInterests: event.CommonInterests,
			},
		}
	case core.EventChatMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeChatMessage,
			Data: proto.ChatMessageData{Text: event.Text},
		}
	case core.EventTyping:
		return proto.Outbound{
			Type: proto.OutboundTypeTyping,
			Data: proto.TypingData{Flag: event.Typing, Timestamp: event.Timestamp},
		}
	case core.EventMedia:
		return proto.Outbound{
			Type: proto.OutboundTypeMedia,
			Data: proto.MediaData{
				MediaType: event.Media.Type,
				Filename:  event.Media.Filename,
				Data:      event.Media.Data,
				Size:      event.Media.Size,
			},
		}
	case core.EventSignal:
		return proto.Outbound{
			Type: string(event.Signal),
			Data: event.Payload,
		}
	case core.EventPartnerDisconnected:
		return proto.Outbound{Type: proto.OutboundTypePartnerDisconnected}
	case core.EventContentBlocked:
		return proto.Outbound{Type: proto.OutboundTypeContentBlocked}
	case core.EventModerationWarning:
		return proto.Outbound{
			Type: proto.OutboundTypeModerationWarning,
			Data: proto.ModerationWarningData{ViolationCount: event.Violations},
		}
	case core.EventValidationError:
		return proto.Outbound{
			Type: proto.OutboundTypeValidationError,
			Data: proto.ValidationErrorData{Reason: event.Reason},
		}
	case core.EventPong:
		return proto.Outbound{
			Type: proto.OutboundTypePong,
			Data: proto.PingData{Timestamp: event.Timestamp},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeValidationError, Data: proto.ValidationErrorData{Reason: "internal"}}
	}
}
