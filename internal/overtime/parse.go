package overtime

import (
	"strconv"
	"strings"

	"laborlaw-line-bot/pkg/textnorm"
)

// Command keywords that start a calculator request.
var commandKeywords = []string{"加班費", "/overtime"}

// Field aliases, matched case-insensitively. Unknown keys are ignored.
var fieldAliases = map[string]string{
	"時薪": "wage", "薪資": "wage", "wage": "wage", "hourly": "wage", "hour": "wage",

	"平日": "weekday", "平日加班": "weekday", "平日時數": "weekday", "weekday": "weekday",

	"休息日": "rest", "rest": "rest", "restday": "rest",

	"國定假日": "holiday", "假日": "holiday", "holiday": "holiday",

	"平日倍率1": "rate1", "rate1": "rate1",
	"平日倍率2": "rate2", "rate2": "rate2",
	"休息日倍率": "restrate", "restrate": "restrate",
	"假日倍率": "holidayrate", "holidayrate": "holidayrate",
}

// MatchCommand reports whether text is a calculator command, returning
// the argument remainder after the command keyword.
func MatchCommand(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	lowered := strings.ToLower(trimmed)
	for _, kw := range commandKeywords {
		if strings.HasPrefix(lowered, kw) {
			return strings.TrimSpace(trimmed[len(kw):]), true
		}
	}
	return "", false
}

// ParseArgs parses the key=value remainder of a calculator command into
// a Params over defaults. Unrecognized or malformed tokens are silently
// ignored; a missing wage surfaces later as ErrInvalidWage in Compute.
func ParseArgs(args string) Params {
	params := DefaultParams()

	for _, token := range strings.Fields(textnorm.FoldDigits(args)) {
		token = strings.ReplaceAll(token, "＝", "=")
		key, value, found := strings.Cut(token, "=")
		if !found {
			continue
		}

		field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			continue
		}
		num, ok := coerceNumber(value)
		if !ok {
			continue
		}

		switch field {
		case "wage":
			params.HourlyWage = num
		case "weekday":
			params.WeekdayHours = num
		case "rest":
			params.RestDayHours = num
		case "holiday":
			params.HolidayHours = num
		case "rate1":
			params.WeekdayRate1 = num
		case "rate2":
			params.WeekdayRate2 = num
		case "restrate":
			params.RestRate = num
		case "holidayrate":
			params.HolidayRate = num
		}
	}

	return params
}

// coerceNumber extracts digits and a single decimal point from the
// value, discarding everything else ("183元" -> 183, "2.5hr" -> 2.5).
func coerceNumber(value string) (float64, bool) {
	var b strings.Builder
	sawDot := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !sawDot:
			b.WriteRune(r)
			sawDot = true
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	num, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
