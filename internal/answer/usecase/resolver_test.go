package usecase_test

import (
	"context"
	"strings"
	"testing"

	"laborlaw-line-bot/internal/answer"
	"laborlaw-line-bot/internal/answer/usecase"
	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/internal/faq"
	"laborlaw-line-bot/internal/gateway"
	"laborlaw-line-bot/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockGateway struct {
	asked    []string
	modes    []gateway.Mode
	response string
	err      error
}

func (g *mockGateway) Ask(ctx context.Context, question string, mode gateway.Mode) (string, error) {
	g.asked = append(g.asked, question)
	g.modes = append(g.modes, mode)
	return g.response, g.err
}

func newResolver(gw answer.Gateway) answer.UseCase {
	articles := article.NewIndex([]article.Record{
		{Number: 24, Title: "延長工作時間之加給", Summary: "加班費加給標準。", Keywords: []string{"延長工時"}},
		{Number: 38, Title: "特別休假", Summary: "特休天數規定。", Keywords: []string{"特休", "特別休假"}},
	})
	faqs := faq.NewIndex([]faq.Record{
		{Question: "資遣費怎麼算？", Answer: "每滿一年發給二分之一個月平均工資。", Keywords: []string{"資遣費", "資遣"}},
		{Question: "選單在哪？", Answer: "輸入選單即可。", Keywords: []string{"選單"}},
	})
	return usecase.New(&mockLogger{}, articles, faqs, gw)
}

func messageEvent(text string) model.InboundEvent {
	return model.InboundEvent{
		Kind:       model.KindMessage,
		Text:       text,
		ReplyToken: "valid-reply-token",
		SenderID:   "U123",
	}
}

func resolve(t *testing.T, uc answer.UseCase, text string) *model.Reply {
	t.Helper()
	reply, err := uc.Resolve(context.Background(), messageEvent(text))
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", text, err)
	}
	if reply == nil {
		t.Fatalf("Resolve(%q) returned no reply", text)
	}
	return reply
}

func TestResolveFollowEvent(t *testing.T) {
	uc := newResolver(&mockGateway{})
	reply, err := uc.Resolve(context.Background(), model.InboundEvent{Kind: model.KindFollow, ReplyToken: "tok"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if reply == nil || reply.Text != answer.WelcomeText {
		t.Errorf("follow event must get the welcome message")
	}
}

func TestResolveNoOps(t *testing.T) {
	gw := &mockGateway{response: "should not be called"}
	uc := newResolver(gw)

	events := []model.InboundEvent{
		{Kind: model.KindUnknown},
		{Kind: model.KindMessage, Text: "", ReplyToken: "tok"},
		{Kind: model.KindMessage, Text: "   ", ReplyToken: "tok"},
		{Kind: model.KindMessage, Text: "hello", ReplyToken: "00000000000000000000000000000000"},
		{Kind: model.KindMessage, Text: "hello", ReplyToken: "ffffffffffffffffffffffffffffffff"},
	}
	for _, ev := range events {
		reply, err := uc.Resolve(context.Background(), ev)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if reply != nil {
			t.Errorf("event %+v should be a no-op, got %q", ev, reply.Text)
		}
	}
	if len(gw.asked) != 0 {
		t.Errorf("no-op events must not reach the gateway: %v", gw.asked)
	}
}

func TestResolveExactCommands(t *testing.T) {
	uc := newResolver(&mockGateway{})

	tests := []struct {
		text string
		want string
	}{
		{text: "選單", want: answer.MenuText},
		{text: " 選 單 ", want: answer.MenuText},
		{text: "MENU", want: answer.MenuText},
		{text: "條文範例", want: answer.ArticleExamplesText},
		{text: "計算範例", want: answer.CalcExamplesText},
	}
	for _, tt := range tests {
		if got := resolve(t, uc, tt.text); got.Text != tt.want {
			t.Errorf("Resolve(%q) = %q, want command reply", tt.text, got.Text)
		}
	}
}

func TestResolveCommandPrecedesFAQ(t *testing.T) {
	// 選單 is both an exact command and a FAQ keyword; the command
	// branch must win.
	gw := &mockGateway{}
	uc := newResolver(gw)
	if got := resolve(t, uc, "選單"); got.Text != answer.MenuText {
		t.Errorf("command branch must precede FAQ, got %q", got.Text)
	}
}

func TestResolveAIMode(t *testing.T) {
	gw := &mockGateway{response: "AI 的回答"}
	uc := newResolver(gw)

	reply := resolve(t, uc, "ai/特休沒休完怎麼辦")
	if reply.Text != "AI 的回答" {
		t.Errorf("unexpected reply %q", reply.Text)
	}
	if len(gw.asked) != 1 || gw.asked[0] != "特休沒休完怎麼辦" {
		t.Errorf("unexpected question: %v", gw.asked)
	}
	if gw.modes[0] != gateway.ModeConcise {
		t.Errorf("ai/ without marker should be concise, got %s", gw.modes[0])
	}
}

func TestResolveAIModeDetailedMarker(t *testing.T) {
	gw := &mockGateway{response: "詳細回答"}
	uc := newResolver(gw)

	resolve(t, uc, "ai/詳細 特休沒休完怎麼辦")
	if gw.modes[0] != gateway.ModeDetailed {
		t.Errorf("詳細 marker should request detailed mode, got %s", gw.modes[0])
	}
	if gw.asked[0] != "特休沒休完怎麼辦" {
		t.Errorf("marker must be stripped from the question: %q", gw.asked[0])
	}

	gw2 := &mockGateway{response: "詳細回答"}
	uc2 := newResolver(gw2)
	resolve(t, uc2, "ai+加班上限是多少")
	if gw2.modes[0] != gateway.ModeDetailed {
		t.Errorf("ai+ prefix should request detailed mode, got %s", gw2.modes[0])
	}
}

func TestResolveAIModeEmptyQuestion(t *testing.T) {
	gw := &mockGateway{}
	uc := newResolver(gw)

	reply := resolve(t, uc, "ai/")
	if reply.Text != answer.AskAIPromptText {
		t.Errorf("empty ai question should prompt for one, got %q", reply.Text)
	}
	if len(gw.asked) != 0 {
		t.Error("gateway must not be called for an empty question")
	}
}

func TestResolveAIModeGatewayUnavailable(t *testing.T) {
	gw := &mockGateway{err: gateway.ErrNoAnswer}
	uc := newResolver(gw)

	reply := resolve(t, uc, "ai/問題")
	if reply.Text != answer.AIUnavailableText {
		t.Errorf("expected local degradation message, got %q", reply.Text)
	}
}

func TestResolveAIModePrecedesArticleExtraction(t *testing.T) {
	gw := &mockGateway{response: "AI 的回答"}
	uc := newResolver(gw)

	reply := resolve(t, uc, "ai/第38條是什麼")
	if reply.Text != "AI 的回答" {
		t.Errorf("ai/ prefix must win over article extraction, got %q", reply.Text)
	}
	if len(gw.asked) != 1 {
		t.Errorf("expected one gateway call, got %d", len(gw.asked))
	}
}

func TestResolveCalculator(t *testing.T) {
	gw := &mockGateway{}
	uc := newResolver(gw)

	reply := resolve(t, uc, "加班費 時薪=183 平日=2")
	if !strings.Contains(reply.Text, "487") {
		t.Errorf("expected computed subtotal in reply:\n%s", reply.Text)
	}

	reply = resolve(t, uc, "加班費 平日=2")
	if !strings.Contains(reply.Text, "時薪") || !strings.Contains(reply.Text, "⚠️") {
		t.Errorf("invalid wage should get usage guidance:\n%s", reply.Text)
	}
	if len(gw.asked) != 0 {
		t.Error("calculator branch must not reach the gateway")
	}
}

func TestResolveArticleNumber(t *testing.T) {
	gw := &mockGateway{}
	uc := newResolver(gw)

	reply := resolve(t, uc, "勞基法第38條")
	if !strings.Contains(reply.Text, "特別休假") || !strings.Contains(reply.Text, "flno=38") {
		t.Errorf("expected stored article reply:\n%s", reply.Text)
	}
	if len(gw.asked) != 0 {
		t.Error("indexed article must not reach the gateway")
	}
}

func TestResolveArticleNumberNotCollected(t *testing.T) {
	gw := &mockGateway{response: "第90條的說明"}
	uc := newResolver(gw)

	reply := resolve(t, uc, "第90條")
	if reply.Text != "第90條的說明" {
		t.Errorf("expected AI explanation, got %q", reply.Text)
	}
	if len(gw.asked) != 1 || !strings.Contains(gw.asked[0], "第90條") {
		t.Errorf("expected synthesized explain prompt, got %v", gw.asked)
	}
	if gw.modes[0] != gateway.ModeConcise {
		t.Errorf("article explanation should be concise, got %s", gw.modes[0])
	}

	gwFail := &mockGateway{err: gateway.ErrNoAnswer}
	ucFail := newResolver(gwFail)
	reply = resolve(t, ucFail, "第90條")
	if reply.Text != answer.ArticleNotCollectedText {
		t.Errorf("expected not-collected message, got %q", reply.Text)
	}
}

func TestResolveFAQ(t *testing.T) {
	gw := &mockGateway{}
	uc := newResolver(gw)

	reply := resolve(t, uc, "資遣費怎麼算啊")
	if !strings.Contains(reply.Text, "二分之一個月") {
		t.Errorf("expected FAQ answer:\n%s", reply.Text)
	}
	if len(gw.asked) != 0 {
		t.Error("FAQ branch must not reach the gateway")
	}
}

func TestResolveArticleKeyword(t *testing.T) {
	gw := &mockGateway{}
	uc := newResolver(gw)

	// 延長工時 is an article keyword but not a FAQ keyword.
	reply := resolve(t, uc, "延長工時的規定")
	if !strings.Contains(reply.Text, "第24條") {
		t.Errorf("expected article keyword match:\n%s", reply.Text)
	}
}

func TestResolveFallback(t *testing.T) {
	gw := &mockGateway{response: "一般回答"}
	uc := newResolver(gw)

	reply := resolve(t, uc, "今天天氣如何")
	if reply.Text != "一般回答" {
		t.Errorf("expected gateway fallback, got %q", reply.Text)
	}
	if gw.modes[0] != gateway.ModeConcise {
		t.Errorf("fallback should be concise, got %s", gw.modes[0])
	}

	gwFail := &mockGateway{err: gateway.ErrNoAnswer}
	ucFail := newResolver(gwFail)
	reply = resolve(t, ucFail, "今天天氣如何")
	if reply.Text != answer.FallbackGuidanceText {
		t.Errorf("expected static guidance, got %q", reply.Text)
	}
}

func TestResolveQuickActionLimit(t *testing.T) {
	uc := newResolver(&mockGateway{response: "回答"})
	reply := resolve(t, uc, "選單")
	if len(reply.Actions) > 4 {
		t.Errorf("at most 4 suggested actions, got %d", len(reply.Actions))
	}
}
