package answer

import (
	"context"

	"laborlaw-line-bot/internal/gateway"
	"laborlaw-line-bot/internal/model"
)

// UseCase resolves one inbound event to at most one reply. A nil reply
// means the event is a no-op (unknown kind, non-text message, verify
// sentinel).
type UseCase interface {
	Resolve(ctx context.Context, event model.InboundEvent) (*model.Reply, error)
}

// Gateway is the external-answer collaborator as the resolver sees it.
type Gateway interface {
	Ask(ctx context.Context, question string, mode gateway.Mode) (string, error)
}
