package calculator

import (
	"errors"
	"strconv"

	"github.com/mmynk/tipcalc/internal/sanitizer"
)

var cleanBill = sanitizer.Compose(
	sanitizer.KeepDecimal,
	sanitizer.MergeDecimalPoints,
	sanitizer.TruncateDecimals(2),
)

// NormalizeBill cleans raw bill text and reports whether the result may be
// committed. Text that does not parse (e.g. "" or ".") is accepted and
// counts as 0; a value above MaxBill is not.
func NormalizeBill(raw string) (string, bool) {
	cleaned := cleanBill(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && v > MaxBill) {
		return "", false
	}
	return cleaned, true
}

// SanitizeBill normalizes raw bill text. A rejected edit returns prev unchanged.
func SanitizeBill(raw, prev string) string {
	cleaned, ok := NormalizeBill(raw)
	if !ok {
		return prev
	}
	return cleaned
}

// NormalizeCustomTip keeps only digits and reports whether the result is
// empty or a percentage within [MinTipPercent, MaxTipPercent].
func NormalizeCustomTip(raw string) (string, bool) {
	cleaned := sanitizer.KeepDigits(raw)
	if cleaned == "" {
		return cleaned, true
	}

	// Overflowing digit strings fail to parse and are out of range too.
	v, err := strconv.Atoi(cleaned)
	if err != nil || !sanitizer.InRange(v, MinTipPercent, MaxTipPercent) {
		return "", false
	}
	return cleaned, true
}

// SanitizeCustomTip normalizes raw custom tip text. A rejected edit returns
// prev unchanged.
func SanitizeCustomTip(raw, prev string) string {
	cleaned, ok := NormalizeCustomTip(raw)
	if !ok {
		return prev
	}
	return cleaned
}
