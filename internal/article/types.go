package article

// Record is one numbered provision of the Labor Standards Act with a
// plain-language summary and keyword tags. Records are immutable after
// load.
type Record struct {
	Number   int      `json:"number"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}
