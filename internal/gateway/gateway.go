package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/pkg/ai"
	pkgLog "laborlaw-line-bot/pkg/log"
)

// Gateway wraps the external text-generation collaborator with bounded
// retry and a sequential degradation ladder. It never caches and holds
// no per-request shared state.
type Gateway struct {
	client    ai.Client
	citations *article.Index
	cfg       Config
	l         pkgLog.Logger
}

// New creates a gateway. The article index is used only to filter and
// format citation links appended to successful answers.
func New(client ai.Client, citations *article.Index, cfg Config, l pkgLog.Logger) *Gateway {
	return &Gateway{
		client:    client,
		citations: citations,
		cfg:       cfg,
		l:         l,
	}
}

// Ask runs one logical request through the degradation ladder:
// detailed -> reduced-token detailed -> concise for ModeDetailed,
// concise only for ModeConcise. Tiers run strictly sequentially. When
// every tier exhausts, ErrNoAnswer is returned.
func (g *Gateway) Ask(ctx context.Context, question string, mode Mode) (string, error) {
	var tiers []tierAttempt
	switch mode {
	case ModeDetailed:
		tiers = []tierAttempt{
			{cfg: g.cfg.Detailed, prompt: systemPromptDetailed},
			{cfg: g.cfg.Reduced, prompt: systemPromptDetailed},
			{cfg: g.cfg.Concise, prompt: systemPromptConcise},
		}
	default:
		tiers = []tierAttempt{{cfg: g.cfg.Concise, prompt: systemPromptConcise}}
	}

	for _, tier := range tiers {
		text, err := g.askWithRetry(ctx, tier, question)
		if err == nil {
			g.l.Infof(ctx, "gateway: answered at tier %s (%d chars)", tier.cfg.Name, len(text))
			return g.appendCitations(text), nil
		}
		g.l.Warnf(ctx, "gateway: tier %s exhausted: %v", tier.cfg.Name, err)

		if ctx.Err() != nil {
			break
		}
	}

	return "", ErrNoAnswer
}

// tierAttempt pairs a tier budget with the system prompt it uses.
type tierAttempt struct {
	cfg    TierConfig
	prompt string
}

// askWithRetry issues one tier's attempt chain: the first call plus up
// to MaxRetries retries with exponential backoff and jitter. A
// non-transient failure exhausts the tier immediately.
func (g *Gateway) askWithRetry(ctx context.Context, tier tierAttempt, question string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= g.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(g.backoff(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := g.client.Generate(ctx, ai.GenerateInput{
			SystemPrompt: tier.prompt,
			UserPrompt:   question,
			MaxTokens:    tier.cfg.MaxTokens,
			Temperature:  tier.cfg.Temperature,
			Timeout:      tier.cfg.Timeout,
		})
		if err == nil {
			return text, nil
		}

		if !ai.IsTransient(err) {
			return "", fmt.Errorf("tier %s permanent failure: %w", tier.cfg.Name, err)
		}
		lastErr = err
	}

	return "", fmt.Errorf("tier %s retries exhausted: %w", tier.cfg.Name, lastErr)
}

// backoff doubles BackoffBase per retry and adds random jitter of up to
// half the base delay.
func (g *Gateway) backoff(attempt int) time.Duration {
	base := g.cfg.BackoffBase
	if base <= 0 {
		base = time.Millisecond
	}
	delay := base << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(base)/2 + 1))
	return delay + jitter
}

// appendCitations adds a reference-link block for every 第N條 mentioned
// in the answer that exists in the article index.
func (g *Gateway) appendCitations(text string) string {
	if g.citations == nil {
		return text
	}

	var lines []string
	for _, n := range article.ExtractAll(text) {
		rec, ok := g.citations.LookupByNumber(n)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("・第%d條 %s\n　%s", rec.Number, rec.Title, fmt.Sprintf(citationURLFormat, rec.Number)))
	}
	if len(lines) == 0 {
		return text
	}
	return text + citationHeader + "\n" + strings.Join(lines, "\n")
}
