package usecase

import (
	"context"
	"strings"

	"laborlaw-line-bot/internal/answer"
	"laborlaw-line-bot/internal/model"
	"laborlaw-line-bot/pkg/textnorm"
)

// Reply tokens LINE sends for webhook verification and console test
// pushes. They cannot be replied to, so matching events are no-ops.
var sentinelReplyTokens = map[string]struct{}{
	"00000000000000000000000000000000": {},
	"ffffffffffffffffffffffffffffffff": {},
}

// Resolve drives the matcher chain for one inbound event and produces
// exactly one reply, or nil for events that need none.
func (u *usecase) Resolve(ctx context.Context, event model.InboundEvent) (*model.Reply, error) {
	switch event.Kind {
	case model.KindFollow:
		return &model.Reply{Text: answer.WelcomeText, Actions: answer.DefaultActions}, nil
	case model.KindMessage:
		// handled below
	default:
		return nil, nil
	}

	if _, isSentinel := sentinelReplyTokens[strings.ToLower(event.ReplyToken)]; isSentinel {
		u.l.Infof(ctx, "resolver: skipping verify sentinel event %s", event.RequestID)
		return nil, nil
	}

	text := strings.TrimSpace(event.Text)
	if text == "" {
		return nil, nil
	}

	in := MatchInput{
		Raw:        text,
		Normalized: textnorm.Normalize(textnorm.FoldDigits(text)),
	}

	for _, m := range u.matchers {
		if reply, ok := m.TryMatch(ctx, in); ok {
			return reply, nil
		}
	}

	// Unreachable: the fallback matcher always yields a reply.
	return &model.Reply{Text: answer.FallbackGuidanceText, Actions: answer.DefaultActions}, nil
}
