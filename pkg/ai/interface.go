package ai

import "context"

// Client is the external text-generation collaborator. It knows nothing
// about LINE, articles, or retry policy — one prompt in, one answer out.
type Client interface {
	Generate(ctx context.Context, in GenerateInput) (string, error)
}
