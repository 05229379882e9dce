package core

// Validation failure categories reported back to the sender.
const (
	ReasonEmptyMessage     = "empty_message"
	ReasonMessageTooLong   = "message_too_long"
	ReasonRateLimited      = "rate_limited"
	ReasonInvalidMode      = "invalid_mode"
	ReasonInvalidMediaType = "invalid_media_type"
	ReasonInvalidFilename  = "invalid_filename"
	ReasonInvalidPayload   = "invalid_payload"
	ReasonMimeMismatch     = "mime_mismatch"
	ReasonMediaTooLarge    = "media_too_large"
)

func validationError(reason string) *Event {
	return &Event{Kind: EventValidationError, Reason: reason}
}
