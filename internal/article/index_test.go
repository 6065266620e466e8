package article_test

import (
	"testing"

	"laborlaw-line-bot/internal/article"
)

func testRecords() []article.Record {
	return []article.Record{
		{Number: 24, Title: "延長工作時間之加給", Summary: "加班費加給標準。", Keywords: []string{"加班", "加班費", "延長工時"}},
		{Number: 36, Title: "例假與休息日", Summary: "七休一規定。", Keywords: []string{"例假", "休息日", "七休一"}},
		{Number: 38, Title: "特別休假", Summary: "特休天數規定。", Keywords: []string{"特休", "特別休假", "年假"}},
		{Number: 39, Title: "假日工資", Summary: "假日出勤工資加倍。", Keywords: []string{"假日", "加倍", "出勤"}},
	}
}

func TestLookupByNumber(t *testing.T) {
	idx := article.NewIndex(testRecords())

	rec, ok := idx.LookupByNumber(38)
	if !ok {
		t.Fatal("expected article 38 to exist")
	}
	if rec.Title != "特別休假" {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, ok := idx.LookupByNumber(999); ok {
		t.Error("expected no match for absent number")
	}
	if _, ok := idx.LookupByNumber(-1); ok {
		t.Error("expected no match for negative number")
	}
}

func TestLookupByKeyword(t *testing.T) {
	idx := article.NewIndex(testRecords())

	tests := []struct {
		name       string
		text       string
		wantNumber int
		found      bool
	}{
		{name: "Single keyword", text: "特休可以休幾天", wantNumber: 38, found: true},
		{name: "Higher score wins", text: "加班費跟延長工時的加班規定", wantNumber: 24, found: true},
		{name: "Whitespace-insensitive", text: "特 休 天數", wantNumber: 38, found: true},
		{name: "No keyword hit", text: "今天天氣如何", found: false},
		{name: "Empty text", text: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := idx.LookupByKeyword(tt.text)
			if ok != tt.found {
				t.Fatalf("LookupByKeyword(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if ok && rec.Number != tt.wantNumber {
				t.Errorf("LookupByKeyword(%q) = article %d, want %d", tt.text, rec.Number, tt.wantNumber)
			}
		})
	}
}

func TestLookupByKeywordTieIsStable(t *testing.T) {
	records := []article.Record{
		{Number: 1, Keywords: []string{"工資"}},
		{Number: 2, Keywords: []string{"工資"}},
	}
	idx := article.NewIndex(records)

	// Equal scores must always resolve to the first record in insertion
	// order, on every call.
	for i := 0; i < 20; i++ {
		rec, ok := idx.LookupByKeyword("工資怎麼算")
		if !ok {
			t.Fatal("expected a match")
		}
		if rec.Number != 1 {
			t.Fatalf("tie resolved to article %d on call %d, want 1", rec.Number, i)
		}
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := article.NewIndex(nil)
	if idx.Len() != 0 {
		t.Errorf("expected empty index")
	}
	if _, ok := idx.LookupByKeyword("加班"); ok {
		t.Error("empty index must never match")
	}
	if _, ok := idx.LookupByNumber(1); ok {
		t.Error("empty index must never match")
	}
}
