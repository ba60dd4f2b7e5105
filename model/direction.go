package model

import "golang.org/x/text/unicode/bidi"

// Direction represents the writing direction of text.
// It is used to handle bidirectional text (bidi) in documents.
type Direction int

const (
	// LeftToRight for Latin, Cyrillic, etc.
	LeftToRight Direction = iota
	// RightToLeft for Arabic, Hebrew, etc.
	RightToLeft
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LTR"
	case RightToLeft:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// RuneDirection returns the inherent direction of a single Unicode
// character, derived from its Unicode bidirectional class. Strong
// left-to-right characters return LeftToRight; strong right-to-left
// characters (including Arabic letters) return RightToLeft; digits,
// punctuation, whitespace, and all other weak or neutral classes return
// Neutral.
func RuneDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LeftToRight
	case bidi.R, bidi.AL:
		return RightToLeft
	default:
		return Neutral
	}
}

// DetectDirection analyzes a string and returns its dominant text direction.
// It counts strong directional characters and returns the direction with the
// higher count, or Neutral if no strong directional characters are present.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch RuneDirection(r) {
		case LeftToRight:
			ltrCount++
		case RightToLeft:
			rtlCount++
		}
	}

	// If no strong directional characters, it's neutral
	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}

	// Return the dominant direction
	if rtlCount > ltrCount {
		return RightToLeft
	}
	return LeftToRight
}
