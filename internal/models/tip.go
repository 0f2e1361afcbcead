package models

import (
	"fmt"
	"strconv"
)

// TipKind distinguishes a preset tip button from a user-typed percentage.
type TipKind int

const (
	// TipPreset means one of the fixed percentage buttons is selected.
	TipPreset TipKind = iota
	// TipCustom means the user is editing the custom percentage field.
	TipCustom
)

func (k TipKind) String() string {
	switch k {
	case TipPreset:
		return "preset"
	case TipCustom:
		return "custom"
	default:
		return fmt.Sprintf("TipKind(%d)", int(k))
	}
}

// TipSelection is the tip state of the calculator. It is either
// Preset(value) or Custom(text); use the constructors rather than
// building the struct by hand.
type TipSelection struct {
	// Kind is the active variant.
	Kind TipKind

	// Percent is the active tip percentage.
	// For Custom with empty text this is 0.
	Percent int

	// CustomText is the committed contents of the custom field.
	// Always empty for Preset.
	CustomText string
}

// Preset returns the preset variant for the given percentage.
func Preset(percent int) TipSelection {
	return TipSelection{Kind: TipPreset, Percent: percent}
}

// Custom returns the custom variant for already-sanitized text.
// Empty text means no custom value has been typed yet.
func Custom(text string) TipSelection {
	percent, err := strconv.Atoi(text)
	if err != nil {
		percent = 0
	}
	return TipSelection{Kind: TipCustom, Percent: percent, CustomText: text}
}

// IsCustom reports whether the custom field is active.
func (t TipSelection) IsCustom() bool {
	return t.Kind == TipCustom
}

// EffectivePercent is the percentage used in calculation.
// An active but empty custom field contributes 0, not the last preset.
func (t TipSelection) EffectivePercent() int {
	if t.Kind == TipCustom && t.CustomText == "" {
		return 0
	}
	return t.Percent
}
