package line

// WebhookRequest is the body LINE posts to the webhook endpoint.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is a single LINE webhook event.
type Event struct {
	Type       string        `json:"type"` // "message", "follow", "unfollow", ...
	ReplyToken string        `json:"replyToken,omitempty"`
	Source     *EventSource  `json:"source,omitempty"`
	Message    *EventMessage `json:"message,omitempty"`
	Timestamp  int64         `json:"timestamp"`
}

// EventSource identifies the sender of an event.
type EventSource struct {
	Type    string `json:"type"` // "user", "group", "room"
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
}

// EventMessage is the message payload of a message event.
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"` // "text", "sticker", "image", ...
	Text string `json:"text,omitempty"`
}

// Message is an outgoing text message.
type Message struct {
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

// QuickReply holds the quick-reply buttons attached to a message.
type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

// QuickReplyItem is a single quick-reply button.
type QuickReplyItem struct {
	Type   string `json:"type"` // always "action"
	Action Action `json:"action"`
}

// Action is a message action triggered by a quick-reply button.
type Action struct {
	Type  string `json:"type"` // "message"
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuickAction is a label/text pair suggested as a follow-up query.
type QuickAction struct {
	Label string
	Text  string
}

// ReplyRequest is the payload for the LINE reply API.
type ReplyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// PushRequest is the payload for the LINE push API.
type PushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

// APIResponse is the LINE API error response body.
type APIResponse struct {
	Message string `json:"message,omitempty"`
}
