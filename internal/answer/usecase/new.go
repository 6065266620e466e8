package usecase

import (
	"context"

	"laborlaw-line-bot/internal/answer"
	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/internal/faq"
	"laborlaw-line-bot/internal/model"
	pkgLog "laborlaw-line-bot/pkg/log"
)

// Matcher is one branch of the intent priority chain. Matchers are
// evaluated in fixed order; the first one that yields a reply wins and
// no other branch runs.
type Matcher interface {
	TryMatch(ctx context.Context, in MatchInput) (*model.Reply, bool)
}

// MatchInput carries both the raw text (for grammars that are
// case/whitespace sensitive, like the calculator args) and the
// normalized form (for exact-command comparison).
type MatchInput struct {
	Raw        string
	Normalized string
}

type usecase struct {
	l        pkgLog.Logger
	matchers []Matcher
}

// Ensure usecase implements the domain interface.
var _ answer.UseCase = (*usecase)(nil)

// New builds the resolver with its matcher chain in priority order:
// exact commands, AI-mode prefix, calculator, article number, FAQ
// keywords, article keywords, then the AI fallback (which always
// matches).
func New(l pkgLog.Logger, articles *article.Index, faqs *faq.Index, gw answer.Gateway) answer.UseCase {
	return &usecase{
		l: l,
		matchers: []Matcher{
			&commandMatcher{},
			&aiModeMatcher{gw: gw, l: l},
			&calcMatcher{},
			&articleNumberMatcher{articles: articles, gw: gw, l: l},
			&faqMatcher{faqs: faqs},
			&articleKeywordMatcher{articles: articles},
			&fallbackMatcher{gw: gw, l: l},
		},
	}
}
