package line

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// MaxMessageRunes is the safe length for one outgoing text message.
	// Bodies longer than this are cut and marked, never silently dropped.
	MaxMessageRunes = 4500

	// TruncationMarker is appended when a message is cut at MaxMessageRunes.
	TruncationMarker = "\n…（訊息過長，已截斷）"

	// MaxQuickActions is the LINE cap we honor for quick-reply buttons.
	MaxQuickActions = 4

	maxQuickLabelRunes = 20
)

// Client is the LINE Messaging API client.
type Client struct {
	accessToken string
	apiURL      string
	httpClient  *http.Client
}

// NewClient creates a new LINE Messaging API client with the given
// channel access token.
func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		apiURL:      "https://api.line.me/v2/bot",
		httpClient:  &http.Client{},
	}
}

// SetAPIURL overrides the default LINE API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// ReplyText answers an event via its reply token, attaching up to
// MaxQuickActions quick-reply buttons. Oversized text is truncated.
func (c *Client) ReplyText(replyToken, text string, actions []QuickAction) error {
	payload := ReplyRequest{
		ReplyToken: replyToken,
		Messages:   []Message{buildTextMessage(text, actions)},
	}
	return c.post("/message/reply", payload)
}

// PushText sends a message directly to a user id. Used when no reply
// token is available.
func (c *Client) PushText(to, text string, actions []QuickAction) error {
	payload := PushRequest{
		To:       to,
		Messages: []Message{buildTextMessage(text, actions)},
	}
	return c.post("/message/push", payload)
}

func (c *Client) post(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal line payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create line request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call line API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func buildTextMessage(text string, actions []QuickAction) Message {
	msg := Message{Type: "text", Text: Truncate(text)}

	if len(actions) > MaxQuickActions {
		actions = actions[:MaxQuickActions]
	}
	if len(actions) > 0 {
		items := make([]QuickReplyItem, 0, len(actions))
		for _, a := range actions {
			label := a.Label
			if r := []rune(label); len(r) > maxQuickLabelRunes {
				label = string(r[:maxQuickLabelRunes])
			}
			items = append(items, QuickReplyItem{
				Type:   "action",
				Action: Action{Type: "message", Label: label, Text: a.Text},
			})
		}
		msg.QuickReply = &QuickReply{Items: items}
	}
	return msg
}

// Truncate cuts text to MaxMessageRunes and appends TruncationMarker
// when the limit is exceeded.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxMessageRunes {
		return text
	}
	marker := []rune(TruncationMarker)
	cut := MaxMessageRunes - len(marker)
	return strings.TrimRight(string(runes[:cut]), "\n") + TruncationMarker
}
