package refdata

import (
	"context"
	"encoding/json"
	"os"

	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/internal/faq"
	pkgLog "laborlaw-line-bot/pkg/log"
)

// LoadArticles reads the article collection from a JSON file. A missing
// or malformed file degrades to an empty collection: lookups then miss
// and the resolver falls through to its AI branches, so startup never
// fails on bad reference data.
func LoadArticles(ctx context.Context, l pkgLog.Logger, path string) []article.Record {
	var records []article.Record
	if err := loadJSON(path, &records); err != nil {
		l.Warnf(ctx, "refdata: articles unavailable from %s: %v", path, err)
		return nil
	}
	l.Infof(ctx, "refdata: loaded %d articles from %s", len(records), path)
	return records
}

// LoadFAQs reads the FAQ collection from a JSON file, with the same
// degrade-to-empty behavior as LoadArticles.
func LoadFAQs(ctx context.Context, l pkgLog.Logger, path string) []faq.Record {
	var records []faq.Record
	if err := loadJSON(path, &records); err != nil {
		l.Warnf(ctx, "refdata: faqs unavailable from %s: %v", path, err)
		return nil
	}
	l.Infof(ctx, "refdata: loaded %d faq entries from %s", len(records), path)
	return records
}

func loadJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
