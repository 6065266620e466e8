package refdata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"laborlaw-line-bot/internal/refdata"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadArticles(t *testing.T) {
	path := writeTemp(t, "articles.json", `[
		{"number": 38, "title": "特別休假", "summary": "特休規定。", "keywords": ["特休"]},
		{"number": 24, "title": "延長工時加給", "summary": "加班費標準。", "keywords": ["加班費"]}
	]`)

	records := refdata.LoadArticles(context.Background(), &mockLogger{}, path)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Number != 38 || records[0].Title != "特別休假" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
}

func TestLoadArticlesMissingFile(t *testing.T) {
	records := refdata.LoadArticles(context.Background(), &mockLogger{}, filepath.Join(t.TempDir(), "nope.json"))
	if len(records) != 0 {
		t.Errorf("missing file should degrade to empty, got %d records", len(records))
	}
}

func TestLoadArticlesMalformed(t *testing.T) {
	path := writeTemp(t, "articles.json", `{not json`)
	records := refdata.LoadArticles(context.Background(), &mockLogger{}, path)
	if len(records) != 0 {
		t.Errorf("malformed file should degrade to empty, got %d records", len(records))
	}
}

func TestLoadFAQs(t *testing.T) {
	path := writeTemp(t, "faq.json", `[
		{"question": "資遣費怎麼算？", "answer": "依年資計算。", "keywords": ["資遣費"]}
	]`)

	records := refdata.LoadFAQs(context.Background(), &mockLogger{}, path)
	if len(records) != 1 || records[0].Question != "資遣費怎麼算？" {
		t.Fatalf("unexpected records: %+v", records)
	}
}
