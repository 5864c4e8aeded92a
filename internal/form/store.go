package form

// Validity is the derived per-field validity plus the aggregate.
type Validity struct {
	fields    [fieldCount]bool
	FormValid bool
}

// Valid reports the validity of a single field. NoField is never valid.
func (v Validity) Valid(id FieldID) bool {
	if !id.Valid() {
		return false
	}
	return v.fields[id.index()]
}

// Map returns per-field validity keyed by field.
func (v Validity) Map() map[FieldID]bool {
	out := make(map[FieldID]bool, fieldCount)
	for _, id := range Fields {
		out[id] = v.fields[id.index()]
	}
	return out
}

// Invalid lists the failing fields in focus order.
func (v Validity) Invalid() []FieldID {
	var out []FieldID
	for _, id := range Fields {
		if !v.fields[id.index()] {
			out = append(out, id)
		}
	}
	return out
}

// Store owns the field text and keeps Validity in step with it.
type Store struct {
	values   [fieldCount]string
	validity Validity
}

// NewStore returns a store with every field empty.
func NewStore() *Store {
	s := &Store{}
	s.recompute(Username, Email, Password, PasswordRepeat)
	return s
}

// SetField replaces the text of id and recomputes the affected validity flags
// before returning. Password and its repeat are recomputed together.
func (s *Store) SetField(id FieldID, text string) {
	if !id.Valid() {
		return
	}
	s.values[id.index()] = text
	switch id {
	case Password, PasswordRepeat:
		s.recompute(Password, PasswordRepeat)
	default:
		s.recompute(id)
	}
}

// Value returns the current text of id.
func (s *Store) Value(id FieldID) string {
	if !id.Valid() {
		return ""
	}
	return s.values[id.index()]
}

// Values returns a copy of all field text keyed by field.
func (s *Store) Values() map[FieldID]string {
	out := make(map[FieldID]string, fieldCount)
	for _, id := range Fields {
		out[id] = s.Value(id)
	}
	return out
}

// Validity returns the current snapshot.
func (s *Store) Validity() Validity {
	return s.validity
}

// IsFormValid is shorthand for Validity().FormValid.
func (s *Store) IsFormValid() bool {
	return s.validity.FormValid
}

// Reset clears all text.
func (s *Store) Reset() {
	s.values = [fieldCount]string{}
	s.recompute(Username, Email, Password, PasswordRepeat)
}

func (s *Store) recompute(ids ...FieldID) {
	for _, id := range ids {
		s.validity.fields[id.index()] = s.check(id)
	}
	all := true
	for _, ok := range s.validity.fields {
		all = all && ok
	}
	s.validity.FormValid = all
}

func (s *Store) check(id FieldID) bool {
	switch id {
	case Username:
		return IsValidUsername(s.Value(Username))
	case Email:
		return IsValidEmail(s.Value(Email))
	case Password:
		return IsValidPassword(s.Value(Password))
	case PasswordRepeat:
		return PasswordsMatch(s.Value(Password), s.Value(PasswordRepeat))
	}
	return false
}
