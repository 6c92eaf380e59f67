package editor

import (
	"github.com/guiguan/caster"
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/convert"
	"github.com/npillmayer/richtext/runs"
)

// --- Session -----------------------------------------------------------

// ChangeEvent is broadcast to subscribers after a mutation completed. It
// carries the extracted document and the selection with its active styles.
type ChangeEvent struct {
	Document  richtext.Document
	Selection richtext.SelectionData
}

// Session is an editing session over an attributed text. Create sessions
// with New and release them with Close.
type Session struct {
	conv     *convert.Converter
	text     *runs.Text
	base     runs.Attributes
	baseFont runs.Font
	selFrom  int
	selTo    int
	typing   runs.Attributes // pending caret attributes; nil = inherit from context
	cast     *caster.Caster  // broadcaster for change events
	muted    int             // depth of programmatic mutations in flight
}

// New creates an empty editing session. base supplies the attributes for
// unstyled text, including the font used for trait synthesis. A nil synth
// falls back to plain trait synthesis.
func New(base runs.Attributes, synth runs.Synthesizer) *Session {
	baseFont, _ := base.Font()
	return &Session{
		conv:     convert.New(synth),
		text:     runs.New("", base),
		base:     base.Clone(),
		baseFont: baseFont,
		cast:     caster.New(nil),
	}
}

// Close shuts down the session's broadcaster. Subscriber channels are
// closed; the session must not be used afterwards.
func (s *Session) Close() {
	s.cast.Close()
}

// Subscribe registers a subscriber for change events. The returned
// channel delivers ChangeEvent values with the given buffer capacity.
func (s *Session) Subscribe(capacity uint) (<-chan interface{}, bool) {
	return s.cast.Sub(nil, capacity)
}

// --- Notification guard ------------------------------------------------

// mutate marks a programmatic mutation in flight and returns its release.
// The release must run on every exit path; the outermost release emits a
// single change event.
func (s *Session) mutate() func() {
	s.muted++
	return func() {
		s.muted--
		if s.muted == 0 {
			s.cast.Pub(ChangeEvent{
				Document:  s.Value(),
				Selection: s.SelectionData(),
			})
		}
	}
}

// --- Value -------------------------------------------------------------

// Value extracts the current document from the session's text.
func (s *Session) Value() richtext.Document {
	return s.conv.FromRuns(s.text)
}

// SetValue replaces the session's content with a document and emits a
// change event. Selection and pending typing style are reset.
func (s *Session) SetValue(doc richtext.Document) {
	defer s.mutate()()
	s.setValue(doc)
}

// SetInitialValue replaces the session's content like SetValue, but emits
// no change event. It is meant for populating a freshly created session.
func (s *Session) SetInitialValue(doc richtext.Document) {
	s.muted++
	defer func() { s.muted-- }()
	s.setValue(doc)
}

func (s *Session) setValue(doc richtext.Document) {
	s.text = s.conv.ToRuns(doc, s.base)
	s.typing = nil
	s.clampSelection()
}

// --- Text mutation -----------------------------------------------------

// ReplaceText replaces the text of [from,to) with str. An insertion at an
// empty-selection caret carries the pending typing style, if one is set;
// other insertions inherit formatting from their left context. Requests
// with an invalid range are no-ops and emit no event.
func (s *Session) ReplaceText(from, to int, str string) {
	if from < 0 || to < from || to > s.text.Len() {
		tracer().Infof("editor: ignoring replace over invalid range %d…%d", from, to)
		return
	}
	defer s.mutate()()
	var attrs runs.Attributes
	if from == to && s.typing != nil {
		attrs = s.typing
	}
	s.text.Replace(from, to, str, attrs)
	caret := from + richtext.UTF16Length(str)
	s.selFrom, s.selTo = caret, caret
}

// --- Selection ---------------------------------------------------------

// SetSelection moves the selection. Requests with an invalid range are
// no-ops. Moving the selection drops the pending typing style.
func (s *Session) SetSelection(from, to int) {
	if from < 0 || to < from || to > s.text.Len() {
		tracer().Infof("editor: ignoring selection over invalid range %d…%d", from, to)
		return
	}
	defer s.mutate()()
	s.selFrom, s.selTo = from, to
	s.typing = nil
}

// Selection returns the current selection range.
func (s *Session) Selection() (int, int) {
	return s.selFrom, s.selTo
}

// SelectionData returns the selection together with its active styles,
// ready for delivery to the host.
func (s *Session) SelectionData() richtext.SelectionData {
	return richtext.SelectionData{
		Start:        s.selFrom,
		End:          s.selTo,
		ActiveStyles: s.ActiveStyles(),
	}
}

func (s *Session) clampSelection() {
	if s.selTo > s.text.Len() {
		s.selTo = s.text.Len()
	}
	if s.selFrom > s.selTo {
		s.selFrom = s.selTo
	}
}

// --- Styles ------------------------------------------------------------

// ActiveStyles returns the styles considered active at the selection: the
// pending typing style at an empty-selection caret, or the style of the
// first character of a non-empty selection.
func (s *Session) ActiveStyles() richtext.Style {
	if s.selFrom == s.selTo {
		return s.conv.TypingStyle(s.typingAttributes())
	}
	return s.conv.StylesOfSelection(s.text, s.selFrom, s.selTo)
}

// ApplyStyle applies a style to the selection. With a non-empty selection
// the text's attributes are mutated in place; with an empty selection only
// the pending typing style changes. Either way a change event is emitted.
func (s *Session) ApplyStyle(sty richtext.Style) {
	defer s.mutate()()
	if s.selFrom == s.selTo {
		s.typing = s.conv.TypingAttributes(sty, s.typingAttributes(), s.baseFont)
		return
	}
	s.conv.ApplyStyle(s.text, s.selFrom, s.selTo, sty, s.baseFont)
}

// ToggleStyle flips a single flag of the active styles and applies the
// result to the selection.
func (s *Session) ToggleStyle(flag richtext.StyleFlag) {
	s.ApplyStyle(s.ActiveStyles().Toggle(flag))
}

// typingAttributes returns the attribute set that would apply to text
// typed at the caret now: the pending set if one is set, otherwise the
// attributes of the character left of the caret, otherwise the base.
func (s *Session) typingAttributes() runs.Attributes {
	if s.typing != nil {
		return s.typing
	}
	if s.selFrom > 0 {
		if attrs := s.text.AttributesAt(s.selFrom - 1); attrs != nil {
			return attrs
		}
	}
	if attrs := s.text.AttributesAt(s.selFrom); attrs != nil {
		return attrs
	}
	return s.base
}
