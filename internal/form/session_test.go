package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fillValid(s *Session) {
	s.OnTextChanged(Username, "abcde")
	s.OnTextChanged(Email, "x@y.com")
	s.OnTextChanged(Password, "Abcd1234")
	s.OnTextChanged(PasswordRepeat, "Abcd1234")
}

func TestNewSessionRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Policy(0))
	require.ErrorIs(t, err, ErrUnknownPolicy)
	require.Nil(t, s)
}

func TestSessionSnapshotInitial(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c1f5e-8d1e-4c57-9b0e-1d4c1b8a2f10")
	s, err := NewSession(DefaultPolicy, WithID(id))
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Equal(t, id, snap.ID)
	require.Equal(t, PolicyPerField, snap.Policy)
	require.Equal(t, NoField, snap.Focus)
	require.False(t, snap.FormValid)
	require.Empty(t, snap.Messages)
	require.Empty(t, snap.Suggestion)

	wantValues := map[FieldID]string{Username: "", Email: "", Password: "", PasswordRepeat: ""}
	if diff := cmp.Diff(wantValues, snap.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantValidity := map[FieldID]bool{Username: false, Email: false, Password: false, PasswordRepeat: true}
	if diff := cmp.Diff(wantValidity, snap.Validity); diff != "" {
		t.Fatalf("validity mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionSubmitReportsInvalidFields(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnTextChanged(Username, "abcd")
	s.OnTextChanged(Email, "x@y.com")
	s.OnTextChanged(Password, "Abcd1234")
	s.OnTextChanged(PasswordRepeat, "Abcd1234")

	_, err := s.SubmitForm()
	require.ErrorIs(t, err, ErrFormInvalid)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []FieldID{Username}, verr.Invalid)
	require.Equal(t, "form: invalid: username", err.Error())
}

func TestSessionSubmitSucceeds(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyAlways)
	fillValid(s)
	require.True(t, s.IsFormValid())

	sub, err := s.SubmitForm()
	require.NoError(t, err)
	require.Equal(t, s.ID(), sub.SessionID)
	require.Equal(t, "abcde", sub.Username)
	require.Equal(t, "x@y.com", sub.Email)
}

func TestSessionReset(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnFocusChanged(Email)
	s.OnTextChanged(Email, "bad")
	s.OnCommit()
	require.True(t, s.Snapshot().Visible[Email])

	s.Reset()
	snap := s.Snapshot()
	require.Equal(t, NoField, snap.Focus)
	require.Equal(t, "", snap.Values[Email])
	require.Empty(t, snap.Messages)
}

func TestSessionCommitWhileUnfocused(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnTextChanged(Username, "ab")
	before := s.Snapshot()
	s.OnCommit()
	s.OnCommit()
	require.Equal(t, before, s.Snapshot())
}

func TestSessionFocusWalk(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnFocusChanged(Username)
	var seen []FieldID
	for i := 0; i < 4; i++ {
		s.OnCommit()
		seen = append(seen, s.Focus())
	}
	require.Equal(t, []FieldID{Email, Password, PasswordRepeat, NoField}, seen)
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyAlways)
	s.OnTextChanged(Username, "abcdef")
	snap := s.Snapshot()
	snap.Values[Username] = "x"
	snap.Validity[Username] = false
	require.Equal(t, "abcdef", s.Snapshot().Values[Username])
	require.True(t, s.Snapshot().Validity[Username])
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	a := newTestSession(t, PolicyPerField)
	b := newTestSession(t, PolicyPerField)
	require.NotEqual(t, a.ID(), b.ID())

	fillValid(a)
	a.OnFocusChanged(Email)
	require.True(t, a.IsFormValid())
	require.False(t, b.IsFormValid())
	require.Equal(t, NoField, b.Focus())
	require.Equal(t, "", b.Snapshot().Values[Username])
}

func TestSessionOnTextChangedIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	for _, id := range Fields {
		s.OnTextChanged(id, "same")
		first := s.Snapshot()
		s.OnTextChanged(id, "same")
		if diff := cmp.Diff(first, s.Snapshot()); diff != "" {
			t.Fatalf("snapshot changed on repeated %s write (-first +second):\n%s", id, diff)
		}
	}
}

func TestSessionSuggestion(t *testing.T) {
	t.Parallel()

	s, err := NewSession(PolicyPerField, WithDomainHints(DefaultKnownDomains, 2))
	require.NoError(t, err)

	s.OnTextChanged(Email, "bob@gmial.com")
	snap := s.Snapshot()
	require.True(t, snap.Validity[Email], "hints never change validity")
	require.Equal(t, "bob@gmail.com", snap.Suggestion)

	s.OnTextChanged(Email, "bob@gmail.com")
	require.Empty(t, s.Snapshot().Suggestion)
}

func TestSessionLogsWithoutFieldText(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	s, err := NewSession(PolicyPerField, WithLogger(zap.New(core)))
	require.NoError(t, err)

	s.OnFocusChanged(Password)
	s.OnTextChanged(Password, "Secret123")
	s.OnCommit()
	_, err = s.SubmitForm()
	require.Error(t, err)

	require.NotZero(t, logs.FilterMessage("field committed").Len())
	require.Equal(t, 1, logs.FilterMessage("submit rejected").Len())
	for _, entry := range logs.All() {
		for k, v := range entry.ContextMap() {
			require.NotContains(t, k, "Secret123")
			if str, ok := v.(string); ok {
				require.NotContains(t, str, "Secret123")
			}
		}
	}
}
