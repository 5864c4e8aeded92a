package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/signup/internal/form"
)

// ErrSessionNotFound is returned for ids that were never opened or are closed.
var ErrSessionNotFound = errors.New("session not found")

// SessionService hands out isolated form sessions. The registry is safe for
// concurrent use; each session is not, and must stay on one goroutine.
type SessionService struct {
	Policy          form.Policy
	KnownDomains    []string
	SuggestDistance int
	Logger          *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*form.Session
}

// Open creates and registers a fresh session.
func (s *SessionService) Open() (*form.Session, error) {
	opts := []form.Option{form.WithLogger(s.logger())}
	if len(s.KnownDomains) > 0 {
		opts = append(opts, form.WithDomainHints(s.KnownDomains, s.SuggestDistance))
	}
	sess, err := form.NewSession(s.Policy, opts...)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[uuid.UUID]*form.Session)
	}
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	s.logger().Debug("session opened", zap.Stringer("session", sess.ID()))
	return sess, nil
}

// Get returns an open session.
func (s *SessionService) Get(id uuid.UUID) (*form.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// Close discards a session.
func (s *SessionService) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	s.logger().Debug("session closed", zap.Stringer("session", id))
	return nil
}

// Submit submits the session's form and closes it on success. A failed
// submission leaves the session open for correction.
func (s *SessionService) Submit(id uuid.UUID) (form.Submission, error) {
	sess, err := s.Get(id)
	if err != nil {
		return form.Submission{}, err
	}
	sub, err := sess.SubmitForm()
	if err != nil {
		return form.Submission{}, err
	}
	if err := s.Close(id); err != nil {
		return form.Submission{}, err
	}
	return sub, nil
}

// Len reports how many sessions are open.
func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
