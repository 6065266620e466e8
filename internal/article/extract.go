package article

import (
	"regexp"
	"sort"
	"strconv"

	"laborlaw-line-bot/pkg/textnorm"
)

// Anchored patterns for user-typed article references, checked in order.
// A typed query is assumed to reference exactly one article, so the
// first pattern that matches wins.
var anchoredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`勞動基準法第?\s*(\d{1,3})\s*條?`),
	regexp.MustCompile(`勞基法第?\s*(\d{1,3})\s*條?`),
	regexp.MustCompile(`第\s*(\d{1,3})\s*條`),
}

// globalPattern matches the bare 第N條 form anywhere in generated prose.
var globalPattern = regexp.MustCompile(`第\s*(\d{1,3})\s*條`)

// ExtractFirst returns the article number referenced in user text, if
// any. Full-width digits are folded before matching.
func ExtractFirst(text string) (int, bool) {
	text = textnorm.FoldDigits(text)
	for _, p := range anchoredPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		return n, true
	}
	return 0, false
}

// ExtractAll collects every distinct 第N條 reference in the text,
// sorted ascending. Used to append citation links to generated prose,
// which may legitimately cite several articles.
func ExtractAll(text string) []int {
	text = textnorm.FoldDigits(text)

	seen := make(map[int]struct{})
	for _, m := range globalPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		seen[n] = struct{}{}
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
