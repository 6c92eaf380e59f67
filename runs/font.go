package runs

import (
	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/richtext"
)

// ErrNoSuchFace is flagged by a Synthesizer when no face with the
// requested traits exists for a font's family.
const ErrNoSuchFace = richtext.Error("no face with requested traits")

// --- Font descriptors --------------------------------------------------

// Font describes the typeface of a run of text: a family, a size in
// points, and an aspect carrying weight and slant. Fonts are value types;
// two fonts are equal iff all members match.
type Font struct {
	Family string
	Size   float64
	Aspect font.Aspect
}

// NewFont creates a font descriptor with a regular, upright aspect.
func NewFont(family string, size float64) Font {
	aspect := font.Aspect{}
	aspect.SetDefaults()
	return Font{
		Family: family,
		Size:   size,
		Aspect: aspect,
	}
}

// IsBold is true for weights of semibold and above.
func (f Font) IsBold() bool {
	return f.Aspect.Weight >= font.WeightSemibold
}

// IsItalic is true for slanted faces.
func (f Font) IsItalic() bool {
	return f.Aspect.Style != font.StyleNormal
}

// --- Trait synthesis ---------------------------------------------------

// Synthesizer derives a variant of an existing font with the requested
// bold and italic traits, preserving family and size. Synthesis may fail
// when the family offers no face with the requested trait combination;
// callers are expected to degrade to a representable variant rather than
// fail their operation.
type Synthesizer interface {
	Synthesize(f Font, bold, italic bool) (Font, error)
}

// TraitSynthesizer is the default Synthesizer. It derives variants by
// descriptor arithmetic and optionally consults a lookup for availability.
type TraitSynthesizer struct {
	// Lookup reports whether a face with the given aspect exists for a
	// family. A nil Lookup treats every variant as available.
	Lookup func(family string, aspect font.Aspect) bool
}

// Synthesize implements interface Synthesizer.
func (ts TraitSynthesizer) Synthesize(f Font, bold, italic bool) (Font, error) {
	variant := f
	if bold {
		variant.Aspect.Weight = font.WeightBold
	} else {
		variant.Aspect.Weight = font.WeightNormal
	}
	if italic {
		variant.Aspect.Style = font.StyleItalic
	} else {
		variant.Aspect.Style = font.StyleNormal
	}
	if ts.Lookup != nil && !ts.Lookup(variant.Family, variant.Aspect) {
		tracer().Infof("runs: no %v face for family %s", variant.Aspect, variant.Family)
		return f, ErrNoSuchFace
	}
	return variant, nil
}

var _ Synthesizer = TraitSynthesizer{}
