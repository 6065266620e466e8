package gateway

// System prompts per tier. The reduced tier reuses the detailed prompt
// with a smaller token budget.
const (
	systemPromptDetailed = `你是台灣勞動法令助理，熟悉勞動基準法。請用繁體中文詳細回答使用者的勞動權益問題：先給結論，再說明依據與例外情況。引用條文時使用「第N條」格式。若問題與勞動法令無關，請禮貌說明你只回答勞動權益問題。`

	systemPromptConcise = `你是台灣勞動法令助理。請用繁體中文在三句話內簡要回答使用者的勞動權益問題，引用條文時使用「第N條」格式。`
)

// citationURLFormat links a cited article to the official statute text.
const citationURLFormat = "https://law.moj.gov.tw/LawClass/LawSingle.aspx?pcode=N0030001&flno=%d"

const citationHeader = "\n\n📖 相關條文："
