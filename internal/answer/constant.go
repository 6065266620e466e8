package answer

import "laborlaw-line-bot/internal/model"

// Static reply texts. Presentation only — the decision of which text to
// send lives in the resolver.
const (
	WelcomeText = `👋 歡迎使用勞基法小幫手！

我可以回答勞動權益問題：
・輸入「第38條」查詢條文
・輸入「特休」「加班費」等關鍵字
・輸入「加班費 時薪=183 平日=2」試算加班費
・輸入「ai/你的問題」讓 AI 詳細回答

輸入「選單」看完整功能。`

	MenuText = `📋 功能選單
1️⃣ 條文查詢：輸入「第N條」或「勞基法第N條」
2️⃣ 關鍵字查詢：輸入「特休」「資遣費」等
3️⃣ 加班費試算：輸入「加班費 時薪=183 平日=2」
4️⃣ AI 問答：輸入「ai/你的問題」（加「詳細」取得完整說明）

輸入「條文範例」或「計算範例」看使用範例。`

	ArticleExamplesText = `🔍 條文查詢範例：
・第38條
・勞基法第24條
・勞動基準法30條

也可以用關鍵字，例如「特休有幾天」。`

	CalcExamplesText = `🧮 加班費試算範例：
・加班費 時薪=183 平日=2
・加班費 時薪=160 平日=3 休息日=8
・加班費 時薪=200 假日=8

參數說明請輸入「加班費」。`

	AskAIPromptText = `請在 ai/ 後面輸入你的問題，例如：
ai/試用期被資遣有資遣費嗎
加上「詳細」可取得完整說明：
ai/詳細 特休沒休完怎麼辦`

	AIUnavailableText = `抱歉，AI 回覆服務暫時無法使用，請稍後再試 🙏
你也可以輸入「選單」使用條文查詢與加班費試算。`

	ArticleNotCollectedText = `這一條我們還沒有收錄，也暫時無法取得 AI 說明 🙏
可以輸入「條文範例」看看目前支援的查詢方式。`

	FallbackGuidanceText = `抱歉，我不太確定你想問什麼 😅
可以試試：
・「第38條」查條文
・「特休」「加班費」等關鍵字
・「加班費 時薪=183 平日=2」試算
・「ai/你的問題」AI 問答`
)

// DefaultActions are the quick-reply buttons attached to most replies.
var DefaultActions = []model.SuggestedAction{
	{Label: "選單", Text: "選單"},
	{Label: "特休", Text: "特休有幾天"},
	{Label: "加班費試算", Text: "加班費 時薪=183 平日=2"},
	{Label: "AI問答", Text: "ai/"},
}
