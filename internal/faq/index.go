package faq

import (
	"laborlaw-line-bot/internal/article"
	"laborlaw-line-bot/pkg/textnorm"
)

// Record is a canned question/answer pair with keyword tags.
// Immutable after load.
type Record struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// Index is an in-memory read-only lookup over FAQ records. Safe for
// concurrent readers.
type Index struct {
	records []Record
}

// NewIndex builds an index over the given records, preserving order.
func NewIndex(records []Record) *Index {
	return &Index{records: records}
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// FindBest applies the same keyword scoring rule as the article index:
// count keyword substring hits against the normalized query, strictly
// highest score wins, ties keep the first record, zero score is no
// match.
func (idx *Index) FindBest(text string) (Record, bool) {
	query := textnorm.Normalize(textnorm.FoldDigits(text))
	if query == "" {
		return Record{}, false
	}

	bestIdx, bestScore := 0, 0
	for i, r := range idx.records {
		score := article.ScoreKeywords(query, r.Keywords)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestScore == 0 {
		return Record{}, false
	}
	return idx.records[bestIdx], true
}
