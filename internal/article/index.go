package article

import (
	"strings"

	"laborlaw-line-bot/pkg/textnorm"
)

// Index is an in-memory read-only lookup over article records.
// Safe for concurrent readers: nothing mutates after NewIndex.
type Index struct {
	records  []Record
	byNumber map[int]int // article number -> position in records
}

// NewIndex builds an index over the given records. Insertion order is
// preserved; keyword ties resolve to the earliest record.
func NewIndex(records []Record) *Index {
	idx := &Index{
		records:  records,
		byNumber: make(map[int]int, len(records)),
	}
	for i, r := range records {
		if _, exists := idx.byNumber[r.Number]; !exists {
			idx.byNumber[r.Number] = i
		}
	}
	return idx
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Has reports whether an article with the given number is indexed.
func (idx *Index) Has(number int) bool {
	_, ok := idx.byNumber[number]
	return ok
}

// LookupByNumber returns the record with the given article number.
func (idx *Index) LookupByNumber(number int) (Record, bool) {
	i, ok := idx.byNumber[number]
	if !ok {
		return Record{}, false
	}
	return idx.records[i], true
}

// LookupByKeyword scores every record by how many of its keywords occur
// in the normalized query text and returns the strictly best one.
// Zero best score means no match.
func (idx *Index) LookupByKeyword(text string) (Record, bool) {
	i, ok := bestByKeywords(text, len(idx.records), func(j int) []string {
		return idx.records[j].Keywords
	})
	if !ok {
		return Record{}, false
	}
	return idx.records[i], true
}

// bestByKeywords is the shared scoring rule for article and FAQ lookup:
// count keyword substring hits against the normalized query, keep the
// strictly highest score, first record wins ties.
func bestByKeywords(text string, n int, keywordsAt func(int) []string) (int, bool) {
	query := textnorm.Normalize(textnorm.FoldDigits(text))
	if query == "" {
		return 0, false
	}

	bestIdx, bestScore := 0, 0
	for i := 0; i < n; i++ {
		score := ScoreKeywords(query, keywordsAt(i))
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestScore == 0 {
		return 0, false
	}
	return bestIdx, true
}

// ScoreKeywords counts how many keywords occur as substrings of the
// already-normalized query.
func ScoreKeywords(normalizedQuery string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		kw = textnorm.Normalize(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(normalizedQuery, kw) {
			score++
		}
	}
	return score
}
