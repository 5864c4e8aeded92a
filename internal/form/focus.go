package form

// FocusController tracks which field has input focus and advances it on commit.
// The zero value is unfocused.
type FocusController struct {
	current FieldID
}

// NewFocusController starts unfocused.
func NewFocusController() *FocusController {
	return &FocusController{current: NoField}
}

// Current returns the focused field, or NoField.
func (f *FocusController) Current() FieldID {
	return f.current
}

// Focused reports whether any field has focus.
func (f *FocusController) Focused() bool {
	return f.current.Valid()
}

// Focus moves focus to id. Passing NoField (or any invalid id) unfocuses.
func (f *FocusController) Focus(id FieldID) {
	if !id.Valid() {
		f.current = NoField
		return
	}
	f.current = id
}

// Commit advances focus along username, email, password, repeat, unfocused
// and returns the field that was committed. While unfocused it is a no-op
// returning false.
func (f *FocusController) Commit() (FieldID, bool) {
	if !f.current.Valid() {
		return NoField, false
	}
	prev := f.current
	f.current = prev.next()
	return prev, true
}

// Reset drops focus.
func (f *FocusController) Reset() {
	f.current = NoField
}
