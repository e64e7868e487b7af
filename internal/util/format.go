package util

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount with thousands separators and at most two decimals.
// Example: 1234567.5 -> "1,234,567.50".
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	frac := rounded.Sub(whole).Abs()

	formatted := humanize.Comma(whole.IntPart())
	if rounded.Sign() < 0 && whole.IsZero() {
		formatted = "-" + formatted
	}
	if !frac.IsZero() {
		formatted += strings.TrimPrefix(frac.StringFixed(2), "0")
	}

	return formatted
}

// TruncateContent shortens title to maxLength runes, appending "..." when cut.
func TruncateContent(title string, maxLength int) string {
	runes := []rune(title)
	if len(runes) <= maxLength {
		return title
	}
	return string(runes[:maxLength]) + "..."
}

func StringPointer(s string) *string {
	return &s
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
