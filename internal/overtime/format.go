package overtime

import (
	"fmt"
	"strings"
)

// UsageText is the guidance shown when a calculator command cannot be
// computed (missing or invalid wage).
const UsageText = `加班費試算用法：
加班費 時薪=183 平日=3 休息日=0 假日=0

參數（可省略，時薪必填）：
・時薪 — 每小時工資
・平日 — 平日加班時數
・休息日 — 休息日出勤時數
・假日 — 國定假日出勤時數

例如：加班費 時薪=183 平日=2`

const extraHoursWarning = "⚠️ 平日加班超過4小時部分仍以第二段倍率計算，請留意勞基法每日加班上限。"

// FormatBreakdown renders the breakdown as a reply message. Amounts are
// rounded to whole currency units here and nowhere else.
func FormatBreakdown(b Breakdown) string {
	p := b.Params
	var sb strings.Builder

	sb.WriteString("💰 加班費試算結果\n")
	sb.WriteString(fmt.Sprintf("時薪：%s 元\n", trimFloat(p.HourlyWage)))
	sb.WriteString("──────────\n")

	if b.WeekdayTier1Hours > 0 || b.WeekdayTier2Hours > 0 || b.WeekdayExtraHours > 0 {
		sb.WriteString(fmt.Sprintf("平日加班 %s 小時：%d 元\n", trimFloat(clampHours(p.WeekdayHours)), b.WeekdayPayRounded()))
		sb.WriteString(fmt.Sprintf("　前2小時 ×%s：%s 小時\n", trimFloat(p.WeekdayRate1), trimFloat(b.WeekdayTier1Hours)))
		if b.WeekdayTier2Hours > 0 {
			sb.WriteString(fmt.Sprintf("　第3-4小時 ×%s：%s 小時\n", trimFloat(p.WeekdayRate2), trimFloat(b.WeekdayTier2Hours)))
		}
		if b.WeekdayExtraHours > 0 {
			sb.WriteString(fmt.Sprintf("　超過4小時 ×%s：%s 小時\n", trimFloat(p.WeekdayRate2), trimFloat(b.WeekdayExtraHours)))
		}
	}
	if clampHours(p.RestDayHours) > 0 {
		sb.WriteString(fmt.Sprintf("休息日 %s 小時 ×%s：%d 元\n", trimFloat(clampHours(p.RestDayHours)), trimFloat(p.RestRate), b.RestDayPayRounded()))
	}
	if clampHours(p.HolidayHours) > 0 {
		sb.WriteString(fmt.Sprintf("國定假日 %s 小時 ×%s：%d 元\n", trimFloat(clampHours(p.HolidayHours)), trimFloat(p.HolidayRate), b.HolidayPayRounded()))
	}

	sb.WriteString("──────────\n")
	sb.WriteString(fmt.Sprintf("合計：%d 元", b.TotalRounded()))

	if b.WeekdayExtraHours > 0 {
		sb.WriteString("\n\n" + extraHoursWarning)
	}
	return sb.String()
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
