package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPolicy is returned when a visibility policy name is not recognized.
	ErrUnknownPolicy = errors.New("form: unknown visibility policy")
	// ErrUnknownField is returned by ParseFieldID for names outside the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrFormInvalid is wrapped by ValidationError.
	ErrFormInvalid = errors.New("form: invalid")
)

// ValidationError reports which fields blocked a submission.
type ValidationError struct {
	Invalid []FieldID
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Invalid))
	for _, id := range e.Invalid {
		names = append(names, id.String())
	}
	return fmt.Sprintf("%v: %s", ErrFormInvalid, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrFormInvalid }
