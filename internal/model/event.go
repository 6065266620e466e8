package model

import "time"

// EventKind is the kind of an inbound webhook event.
type EventKind string

const (
	KindMessage EventKind = "message"
	KindFollow  EventKind = "follow"
	KindUnknown EventKind = "unknown"
)

// InboundEvent is the normalized inbound event the core consumes.
// Unknown kinds and non-text messages arrive with empty Text and are
// no-ops.
type InboundEvent struct {
	Kind       EventKind
	Text       string // raw user text, empty for non-text events
	ReplyToken string // reply capability for this event
	SenderID   string // platform user id, may be empty
	RequestID  string // per-event id for log correlation
	ReceivedAt time.Time
}

// SuggestedAction is one follow-up query offered with a reply.
type SuggestedAction struct {
	Label string
	Text  string
}

// Reply is the single outgoing reply produced for one event.
type Reply struct {
	Text    string
	Actions []SuggestedAction // at most 4 are delivered
}
