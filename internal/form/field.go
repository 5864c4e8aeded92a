package form

import (
	"fmt"
	"strings"
)

// FieldID identifies one of the four sign-up fields.
type FieldID int

const (
	NoField FieldID = iota
	Username
	Email
	Password
	PasswordRepeat
)

const fieldCount = 4

// Fields lists every field in focus order.
var Fields = [fieldCount]FieldID{Username, Email, Password, PasswordRepeat}

var fieldNames = [fieldCount]string{"username", "email", "password", "password_repeat"}

var fieldTitles = [fieldCount]string{"Username", "Email", "Password", "Repeat password"}

// Valid reports whether id names a real field.
func (id FieldID) Valid() bool {
	return id >= Username && id <= PasswordRepeat
}

func (id FieldID) String() string {
	if !id.Valid() {
		return "none"
	}
	return fieldNames[id.index()]
}

// Title is the label shown next to the input.
func (id FieldID) Title() string {
	if !id.Valid() {
		return ""
	}
	return fieldTitles[id.index()]
}

// Secret reports whether the field echoes masked input.
func (id FieldID) Secret() bool {
	return id == Password || id == PasswordRepeat
}

func (id FieldID) index() int { return int(id) - 1 }

// next returns the field after id in focus order, or NoField after the last one.
func (id FieldID) next() FieldID {
	if !id.Valid() || id == PasswordRepeat {
		return NoField
	}
	return id + 1
}

// ParseFieldID maps a field name (as printed by String) back to its id.
func ParseFieldID(s string) (FieldID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	for i, name := range fieldNames {
		if key == name {
			return FieldID(i + 1), nil
		}
	}
	if key == "repeat" || key == "passwordrepeat" {
		return PasswordRepeat, nil
	}
	return NoField, fmt.Errorf("%w: %q", ErrUnknownField, s)
}
