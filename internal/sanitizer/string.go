package sanitizer

import "strings"

// KeepDigits removes every character that is not an ASCII digit.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// KeepDecimal removes every character that is not an ASCII digit or a decimal point.
func KeepDecimal(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}

// MergeDecimalPoints keeps the first decimal point and joins every segment
// after it, so "1.2.3" becomes "1.23".
func MergeDecimalPoints(s string) string {
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		return s
	}
	return whole + "." + strings.ReplaceAll(frac, ".", "")
}

// TruncateDecimals returns a transform that cuts the fractional part after
// places digits. Input is expected to contain at most one decimal point.
func TruncateDecimals(places int) func(string) string {
	return func(s string) string {
		whole, frac, found := strings.Cut(s, ".")
		if !found || len(frac) <= places {
			return s
		}
		return whole + "." + frac[:places]
	}
}
