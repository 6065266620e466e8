package line

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"laborlaw-line-bot/internal/answer"
	"laborlaw-line-bot/internal/model"
	pkgLine "laborlaw-line-bot/pkg/line"
	pkgLog "laborlaw-line-bot/pkg/log"
	pkgResponse "laborlaw-line-bot/pkg/response"
)

type handler struct {
	l      pkgLog.Logger
	uc     answer.UseCase
	client *pkgLine.Client
	sec    *SecurityValidator
}

// HandleWebhook is the Gin handler for incoming LINE webhook requests.
// It validates the signature, responds with HTTP 200 immediately and
// processes each event in a background goroutine: the resolver may call
// the AI gateway, which can take far longer than LINE's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := c.GetRawData()
	if err != nil {
		h.l.Errorf(ctx, "line handler: failed to read body: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	if err := h.sec.ValidateSignature(body, c.GetHeader("X-Line-Signature")); err != nil {
		h.l.Warnf(ctx, "line handler: signature rejected: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var req pkgLine.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.l.Errorf(ctx, "line handler: failed to parse webhook body: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// LINE sends an empty events array on webhook verification.
	if len(req.Events) == 0 {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	for _, ev := range req.Events {
		// Snapshot per iteration before spawning the goroutine.
		inbound := toInboundEvent(ev)

		if inbound.SenderID != "" {
			if err := h.sec.CheckRateLimit(inbound.SenderID); err != nil {
				h.l.Warnf(ctx, "line handler: %v", err)
				continue
			}
		}

		// Process in goroutine, return 200 immediately to LINE. Each
		// event is isolated: a panic in one must not lose the others.
		go func() {
			// Detach from the request context, which is cancelled
			// once the 200 is written.
			bgCtx := context.Background()
			defer func() {
				if r := recover(); r != nil {
					h.l.Errorf(bgCtx, "line handler: panic processing event %s: %v", inbound.RequestID, r)
				}
			}()
			h.processEvent(bgCtx, inbound)
		}()
	}

	// LINE acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processEvent resolves one inbound event and delivers the reply.
func (h *handler) processEvent(ctx context.Context, event model.InboundEvent) {
	reply, err := h.uc.Resolve(ctx, event)
	if err != nil {
		h.l.Errorf(ctx, "line handler: resolve failed for event %s: %v", event.RequestID, err)
		if event.ReplyToken != "" {
			_ = h.client.ReplyText(event.ReplyToken, answer.FallbackGuidanceText, nil)
		}
		return
	}
	if reply == nil {
		return
	}

	if err := h.client.ReplyText(event.ReplyToken, reply.Text, toQuickActions(reply.Actions)); err != nil {
		h.l.Errorf(ctx, "line handler: reply failed for event %s: %v", event.RequestID, err)
	}
}

// toInboundEvent maps a raw LINE event to the normalized form the
// resolver consumes. Non-text messages keep empty Text and become
// no-ops downstream.
func toInboundEvent(ev pkgLine.Event) model.InboundEvent {
	inbound := model.InboundEvent{
		Kind:       model.KindUnknown,
		ReplyToken: ev.ReplyToken,
		RequestID:  uuid.NewString(),
		ReceivedAt: time.UnixMilli(ev.Timestamp),
	}
	if ev.Source != nil {
		inbound.SenderID = ev.Source.UserID
	}

	switch ev.Type {
	case "message":
		inbound.Kind = model.KindMessage
		if ev.Message != nil && ev.Message.Type == "text" {
			inbound.Text = ev.Message.Text
		}
	case "follow":
		inbound.Kind = model.KindFollow
	}
	return inbound
}

func toQuickActions(actions []model.SuggestedAction) []pkgLine.QuickAction {
	if len(actions) == 0 {
		return nil
	}
	out := make([]pkgLine.QuickAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, pkgLine.QuickAction{Label: a.Label, Text: a.Text})
	}
	return out
}
