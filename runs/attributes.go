package runs

// --- Attribute keys ----------------------------------------------------

// Key names a native text attribute.
type Key string

// The attribute keys understood by the conversion layer. A run may carry
// additional keys; they travel along untouched.
const (
	// AttrFont holds a Font descriptor. Bold and italic formatting is
	// realized through the font's weight and slant.
	AttrFont Key = "font"

	// AttrUnderline and AttrStrikethrough are independent boolean
	// attributes; their presence (with value true) switches the
	// decoration on.
	AttrUnderline     Key = "underline"
	AttrStrikethrough Key = "strikethrough"

	// AttrForeground holds a text color, opaque to the conversion layer.
	AttrForeground Key = "foreground"
)

// Attributes is the attribute set of a run of text. Values must be
// comparable; runs compare their attribute sets by key-wise equality.
type Attributes map[Key]interface{}

// Equals compares two attribute sets key by key.
func (a Attributes) Equals(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		if w, ok := other[k]; !ok || v != w {
			return false
		}
	}
	return true
}

// Clone returns a copy of the attribute set. Cloning nil yields an empty,
// non-nil set.
func (a Attributes) Clone() Attributes {
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Font returns the font descriptor of the attribute set, if present.
func (a Attributes) Font() (Font, bool) {
	f, ok := a[AttrFont].(Font)
	return f, ok
}

// Flag reads a boolean attribute; absent keys read as false.
func (a Attributes) Flag(key Key) bool {
	b, ok := a[key].(bool)
	return ok && b
}
