package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"laborlaw-line-bot/internal/answer"
	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/internal/faq"
	"laborlaw-line-bot/internal/gateway"
	"laborlaw-line-bot/internal/model"
	"laborlaw-line-bot/internal/overtime"
	pkgLog "laborlaw-line-bot/pkg/log"
)

const articleURLFormat = "https://law.moj.gov.tw/LawClass/LawSingle.aspx?pcode=N0030001&flno=%d"

// ── 1. exact commands ──────────────────────────────────────────────────

var commandReplies = map[string]string{
	"選單":   answer.MenuText,
	"menu": answer.MenuText,
	"條文範例": answer.ArticleExamplesText,
	"計算範例": answer.CalcExamplesText,
	"功能":   answer.MenuText,
	"help": answer.MenuText,
}

type commandMatcher struct{}

func (m *commandMatcher) TryMatch(_ context.Context, in MatchInput) (*model.Reply, bool) {
	text, ok := commandReplies[in.Normalized]
	if !ok {
		return nil, false
	}
	return &model.Reply{Text: text, Actions: answer.DefaultActions}, true
}

// ── 2. explicit AI mode ────────────────────────────────────────────────

type aiModeMatcher struct {
	gw answer.Gateway
	l  pkgLog.Logger
}

func (m *aiModeMatcher) TryMatch(ctx context.Context, in MatchInput) (*model.Reply, bool) {
	question, mode, ok := parseAICommand(in.Raw)
	if !ok {
		return nil, false
	}
	if question == "" {
		return &model.Reply{Text: answer.AskAIPromptText, Actions: answer.DefaultActions}, true
	}

	text, err := m.gw.Ask(ctx, question, mode)
	if err != nil {
		m.l.Warnf(ctx, "resolver: ai-mode answer unavailable: %v", err)
		return &model.Reply{Text: answer.AIUnavailableText, Actions: answer.DefaultActions}, true
	}
	return &model.Reply{Text: text, Actions: answer.DefaultActions}, true
}

// parseAICommand recognizes the ai/ and ai+ prefixes. ai+ requests
// detailed mode directly; a leading 詳細/detailed marker token after
// either prefix does the same.
func parseAICommand(raw string) (question string, mode gateway.Mode, ok bool) {
	lowered := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lowered, "ai/"):
		question, mode = strings.TrimSpace(raw[len("ai/"):]), gateway.ModeConcise
	case strings.HasPrefix(lowered, "ai+"):
		question, mode = strings.TrimSpace(raw[len("ai+"):]), gateway.ModeDetailed
	default:
		return "", "", false
	}

	for _, marker := range []string{"詳細", "detailed"} {
		if rest, found := strings.CutPrefix(question, marker); found {
			question, mode = strings.TrimSpace(rest), gateway.ModeDetailed
			break
		}
	}
	return question, mode, true
}

// ── 3. overtime calculator ─────────────────────────────────────────────

type calcMatcher struct{}

func (m *calcMatcher) TryMatch(_ context.Context, in MatchInput) (*model.Reply, bool) {
	args, ok := overtime.MatchCommand(in.Raw)
	if !ok {
		return nil, false
	}

	breakdown, err := overtime.Compute(overtime.ParseArgs(args))
	if err != nil {
		if errors.Is(err, overtime.ErrInvalidWage) {
			return &model.Reply{
				Text:    "⚠️ 請提供有效的時薪（正數）。\n\n" + overtime.UsageText,
				Actions: answer.DefaultActions,
			}, true
		}
		return &model.Reply{Text: overtime.UsageText, Actions: answer.DefaultActions}, true
	}
	return &model.Reply{Text: overtime.FormatBreakdown(breakdown), Actions: answer.DefaultActions}, true
}

// ── 4. article-number reference ────────────────────────────────────────

type articleNumberMatcher struct {
	articles *article.Index
	gw       answer.Gateway
	l        pkgLog.Logger
}

func (m *articleNumberMatcher) TryMatch(ctx context.Context, in MatchInput) (*model.Reply, bool) {
	number, ok := article.ExtractFirst(in.Raw)
	if !ok {
		return nil, false
	}

	if rec, found := m.articles.LookupByNumber(number); found {
		return &model.Reply{Text: formatArticle(rec), Actions: answer.DefaultActions}, true
	}

	// Not in the local index: ask for a concise AI explanation.
	question := fmt.Sprintf("請簡要說明勞動基準法第%d條的內容。", number)
	text, err := m.gw.Ask(ctx, question, gateway.ModeConcise)
	if err != nil {
		m.l.Warnf(ctx, "resolver: article %d not collected, ai fallback failed: %v", number, err)
		return &model.Reply{Text: answer.ArticleNotCollectedText, Actions: answer.DefaultActions}, true
	}
	return &model.Reply{Text: text, Actions: answer.DefaultActions}, true
}

// ── 5. FAQ keyword match ───────────────────────────────────────────────

type faqMatcher struct {
	faqs *faq.Index
}

func (m *faqMatcher) TryMatch(_ context.Context, in MatchInput) (*model.Reply, bool) {
	rec, ok := m.faqs.FindBest(in.Raw)
	if !ok {
		return nil, false
	}
	text := fmt.Sprintf("❓ %s\n\n%s", rec.Question, rec.Answer)
	return &model.Reply{Text: text, Actions: answer.DefaultActions}, true
}

// ── 6. article keyword match ───────────────────────────────────────────

type articleKeywordMatcher struct {
	articles *article.Index
}

func (m *articleKeywordMatcher) TryMatch(_ context.Context, in MatchInput) (*model.Reply, bool) {
	rec, ok := m.articles.LookupByKeyword(in.Raw)
	if !ok {
		return nil, false
	}
	return &model.Reply{Text: formatArticle(rec), Actions: answer.DefaultActions}, true
}

// ── 7. AI fallback (always matches) ────────────────────────────────────

type fallbackMatcher struct {
	gw answer.Gateway
	l  pkgLog.Logger
}

func (m *fallbackMatcher) TryMatch(ctx context.Context, in MatchInput) (*model.Reply, bool) {
	text, err := m.gw.Ask(ctx, in.Raw, gateway.ModeConcise)
	if err != nil {
		m.l.Warnf(ctx, "resolver: fallback answer unavailable: %v", err)
		return &model.Reply{Text: answer.FallbackGuidanceText, Actions: answer.DefaultActions}, true
	}
	return &model.Reply{Text: text, Actions: answer.DefaultActions}, true
}

func formatArticle(rec article.Record) string {
	return fmt.Sprintf("📘 勞動基準法第%d條（%s）\n\n%s\n\n%s",
		rec.Number, rec.Title, rec.Summary, fmt.Sprintf(articleURLFormat, rec.Number))
}
