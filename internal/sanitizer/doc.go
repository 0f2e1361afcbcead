// Package sanitizer provides small composable transforms for cleaning raw
// keystroke text before it is committed to calculator state.
//
// Transforms are plain func(T) T values so they can be chained:
//
//	clean := sanitizer.Compose(
//		sanitizer.KeepDecimal,
//		sanitizer.MergeDecimalPoints,
//		sanitizer.TruncateDecimals(2),
//	)
//	clean("$12.3.45") // "12.34"
package sanitizer
