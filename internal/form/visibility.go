package form

import (
	"strings"
	"unicode"
)

// EventKind enumerates the inputs the visibility policy reacts to.
type EventKind int

const (
	EventTextChanged EventKind = iota + 1
	EventFocusChanged
	EventCommitted
	EventReset
)

// Event is one external input after the store and focus controller have
// applied it. Field is the edited, focused or committed field.
type Event struct {
	Kind  EventKind
	Field FieldID
}

// MessageVisibility says, per field, whether its error message is shown now.
type MessageVisibility struct {
	shown [fieldCount]bool
}

// Shown reports whether id's message is visible.
func (m MessageVisibility) Shown(id FieldID) bool {
	if !id.Valid() {
		return false
	}
	return m.shown[id.index()]
}

// Any reports whether at least one message is visible.
func (m MessageVisibility) Any() bool {
	for _, v := range m.shown {
		if v {
			return true
		}
	}
	return false
}

// Map returns visibility keyed by field.
func (m MessageVisibility) Map() map[FieldID]bool {
	out := make(map[FieldID]bool, fieldCount)
	for _, id := range Fields {
		out[id] = m.shown[id.index()]
	}
	return out
}

// Visibility holds the policy's mutable state for one session.
type Visibility struct {
	policy Policy

	// per-field toggles
	toggled [fieldCount]bool

	// focus-keyed: messages by committed field, looked up through lastKey
	messages [fieldCount]string
	lastKey  FieldID
}

// NewVisibility fails fast on an unknown policy.
func NewVisibility(p Policy) (*Visibility, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Visibility{policy: p}, nil
}

// Policy returns the configured policy.
func (v *Visibility) Policy() Policy {
	return v.policy
}

// Decide folds ev into the policy state and returns what is visible given the
// current validity and focus. A field that is valid never shows a message and
// any state recorded for it is dropped.
func (v *Visibility) Decide(ev Event, validity Validity, focus FieldID) MessageVisibility {
	switch ev.Kind {
	case EventReset:
		v.toggled = [fieldCount]bool{}
		v.messages = [fieldCount]string{}
		v.lastKey = NoField
	case EventCommitted:
		if ev.Field.Valid() {
			v.commit(ev.Field, validity.Valid(ev.Field))
		}
	}
	for _, id := range Fields {
		if validity.Valid(id) {
			v.toggled[id.index()] = false
			v.messages[id.index()] = ""
		}
	}

	var out MessageVisibility
	switch v.policy {
	case PolicyAlways:
		for _, id := range Fields {
			out.shown[id.index()] = !validity.Valid(id)
		}
	case PolicyPerField:
		out.shown = v.toggled
	case PolicyFocusKeyed:
		if focus.Valid() && !validity.Valid(focus) {
			msg := v.keyedMessage()
			out.shown[focus.index()] = msg != "" && mentions(msg, focus.Title())
		}
	}
	return out
}

// Text returns the message to render for id. The focus-keyed policy shows its
// stored message rather than the field's own text.
func (v *Visibility) Text(id FieldID) string {
	if v.policy == PolicyFocusKeyed {
		if msg := v.keyedMessage(); msg != "" {
			return msg
		}
	}
	return Message(id)
}

func (v *Visibility) commit(id FieldID, valid bool) {
	switch v.policy {
	case PolicyPerField:
		v.toggled[id.index()] = !valid
	case PolicyFocusKeyed:
		if valid {
			v.messages[id.index()] = ""
		} else {
			v.messages[id.index()] = "Invalid " + strings.ToLower(id.Title())
		}
		v.lastKey = id
	}
}

func (v *Visibility) keyedMessage() string {
	if !v.lastKey.Valid() {
		return ""
	}
	return v.messages[v.lastKey.index()]
}

// mentions reports whether one word of msg equals title as a whole,
// ignoring case. A multi-word title never matches a single word.
func mentions(msg, title string) bool {
	want := strings.ToLower(title)
	if want == "" {
		return false
	}
	for _, w := range tokens(msg) {
		if w == want {
			return true
		}
	}
	return false
}

func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
