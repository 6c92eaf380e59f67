package richtext

import "strings"

// --- Style -------------------------------------------------------------

// Style is a set of boolean formatting flags, applicable to runs of
// characters. The zero value is the plain (unformatted) style.
//
// Style is a value type: two styles are equal iff all four flags match.
type Style struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// StyleFlag selects a single flag of a Style.
type StyleFlag int

// The four formatting flags of a Style.
const (
	FlagBold StyleFlag = iota
	FlagItalic
	FlagUnderline
	FlagStrikethrough
)

func (flag StyleFlag) String() string {
	switch flag {
	case FlagBold:
		return "bold"
	case FlagItalic:
		return "italic"
	case FlagUnderline:
		return "underline"
	case FlagStrikethrough:
		return "strikethrough"
	}
	return "unknown"
}

// Equals compares two styles flag by flag.
func (s Style) Equals(other Style) bool {
	return s == other
}

// HasFormatting is true iff any of the flags is set.
func (s Style) HasFormatting() bool {
	return s != Style{}
}

// Toggle returns a copy of s with exactly one flag flipped. All other
// flags are unchanged.
func (s Style) Toggle(flag StyleFlag) Style {
	switch flag {
	case FlagBold:
		s.Bold = !s.Bold
	case FlagItalic:
		s.Italic = !s.Italic
	case FlagUnderline:
		s.Underline = !s.Underline
	case FlagStrikethrough:
		s.Strikethrough = !s.Strikethrough
	}
	return s
}

// Has returns the value of a single flag.
func (s Style) Has(flag StyleFlag) bool {
	switch flag {
	case FlagBold:
		return s.Bold
	case FlagItalic:
		return s.Italic
	case FlagUnderline:
		return s.Underline
	case FlagStrikethrough:
		return s.Strikethrough
	}
	return false
}

// String returns an informational string for a style, e.g. "b+i" for
// bold italic text. Clients must not rely on the format of the string.
func (s Style) String() string {
	if !s.HasFormatting() {
		return "plain"
	}
	var parts []string
	if s.Bold {
		parts = append(parts, "b")
	}
	if s.Italic {
		parts = append(parts, "i")
	}
	if s.Underline {
		parts = append(parts, "u")
	}
	if s.Strikethrough {
		parts = append(parts, "s")
	}
	return strings.Join(parts, "+")
}
