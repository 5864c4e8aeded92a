package form

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one live sign-up form. All methods must be called from a single
// goroutine; every event is fully applied before the method returns.
type Session struct {
	id         uuid.UUID
	store      *Store
	focus      FocusController
	visibility *Visibility
	shown      MessageVisibility
	suggester  *DomainSuggester
	log        *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger. Field text is never logged.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDomainHints enables the email domain suggestion.
func WithDomainHints(domains []string, maxDistance int) Option {
	return func(s *Session) {
		s.suggester = NewDomainSuggester(domains, maxDistance)
	}
}

// WithID overrides the generated session id.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession builds an empty, unfocused form. It fails on an unknown policy.
func NewSession(p Policy, opts ...Option) (*Session, error) {
	vis, err := NewVisibility(p)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:         uuid.New(),
		store:      NewStore(),
		visibility: vis,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.Stringer("session", s.id), zap.Stringer("policy", p))
	s.apply(Event{Kind: EventReset})
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// Policy returns the visibility policy.
func (s *Session) Policy() Policy { return s.visibility.Policy() }

// Focus returns the focused field, or NoField.
func (s *Session) Focus() FieldID { return s.focus.Current() }

// Validity returns the current derived validity.
func (s *Session) Validity() Validity { return s.store.Validity() }

// IsFormValid reports whether every field is valid.
func (s *Session) IsFormValid() bool { return s.store.IsFormValid() }

// OnTextChanged stores text for id and recomputes validity and visibility.
func (s *Session) OnTextChanged(id FieldID, text string) {
	if !id.Valid() {
		return
	}
	s.store.SetField(id, text)
	s.apply(Event{Kind: EventTextChanged, Field: id})
	s.log.Debug("text changed", zap.Stringer("field", id), zap.Bool("valid", s.store.Validity().Valid(id)))
}

// OnFocusChanged moves focus to id, or clears it for NoField.
func (s *Session) OnFocusChanged(id FieldID) {
	s.focus.Focus(id)
	s.apply(Event{Kind: EventFocusChanged, Field: s.focus.Current()})
	s.log.Debug("focus changed", zap.Stringer("field", s.focus.Current()))
}

// OnCommit commits the focused field and advances focus. It does nothing while
// unfocused.
func (s *Session) OnCommit() {
	prev, ok := s.focus.Commit()
	if !ok {
		return
	}
	s.apply(Event{Kind: EventCommitted, Field: prev})
	s.log.Debug("field committed",
		zap.Stringer("field", prev),
		zap.Stringer("next", s.focus.Current()),
		zap.Bool("shown", s.shown.Shown(prev)),
	)
}

// Reset empties the form and drops focus and visibility state.
func (s *Session) Reset() {
	s.store.Reset()
	s.focus.Reset()
	s.apply(Event{Kind: EventReset})
	s.log.Debug("form reset")
}

// Submission is the outcome of a successful SubmitForm.
type Submission struct {
	SessionID uuid.UUID
	Username  string
	Email     string
}

// SubmitForm succeeds only when every field is valid. Otherwise it returns a
// *ValidationError naming the invalid fields.
func (s *Session) SubmitForm() (Submission, error) {
	v := s.store.Validity()
	if !v.FormValid {
		invalid := v.Invalid()
		s.log.Info("submit rejected", zap.Stringers("invalid", invalid))
		return Submission{}, &ValidationError{Invalid: invalid}
	}
	s.log.Info("submit accepted")
	return Submission{
		SessionID: s.id,
		Username:  s.store.Value(Username),
		Email:     s.store.Value(Email),
	}, nil
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	ID         uuid.UUID
	Policy     Policy
	Values     map[FieldID]string
	Validity   map[FieldID]bool
	Focus      FieldID
	Visible    map[FieldID]bool
	Messages   map[FieldID]string // visible messages only
	FormValid  bool
	Suggestion string
}

// Snapshot returns the current state. Maps are fresh copies.
func (s *Session) Snapshot() Snapshot {
	v := s.store.Validity()
	msgs := make(map[FieldID]string)
	for _, id := range Fields {
		if s.shown.Shown(id) {
			msgs[id] = s.visibility.Text(id)
		}
	}
	return Snapshot{
		ID:         s.id,
		Policy:     s.visibility.Policy(),
		Values:     s.store.Values(),
		Validity:   v.Map(),
		Focus:      s.focus.Current(),
		Visible:    s.shown.Map(),
		Messages:   msgs,
		FormValid:  v.FormValid,
		Suggestion: s.suggester.Suggest(s.store.Value(Email)),
	}
}

func (s *Session) apply(ev Event) {
	s.shown = s.visibility.Decide(ev, s.store.Validity(), s.focus.Current())
}
