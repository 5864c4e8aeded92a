package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, p Policy) *Session {
	t.Helper()
	s, err := NewSession(p)
	require.NoError(t, err)
	return s
}

func TestPolicyAlwaysTracksValidity(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyAlways)
	vis := s.Snapshot().Visible
	require.True(t, vis[Username])
	require.True(t, vis[Email])
	require.True(t, vis[Password])
	require.False(t, vis[PasswordRepeat])

	s.OnTextChanged(Email, "x@y.com")
	require.False(t, s.Snapshot().Visible[Email])

	s.OnTextChanged(PasswordRepeat, "nope")
	snap := s.Snapshot()
	require.True(t, snap.Visible[PasswordRepeat])
	require.Equal(t, "Passwords don't match", snap.Messages[PasswordRepeat])
}

func TestPolicyPerFieldCommitToggles(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	require.False(t, s.Snapshot().Visible[Email])

	s.OnFocusChanged(Email)
	s.OnTextChanged(Email, "bad")
	require.False(t, s.Snapshot().Visible[Email], "hidden until committed")

	s.OnCommit()
	snap := s.Snapshot()
	require.True(t, snap.Visible[Email])
	require.Equal(t, "Invalid email", snap.Messages[Email])
	require.Equal(t, Password, snap.Focus)

	s.OnTextChanged(Email, "good@x.com")
	s.OnFocusChanged(Email)
	s.OnCommit()
	require.False(t, s.Snapshot().Visible[Email])
}

func TestPolicyPerFieldPersistsUntilOwnCommit(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnFocusChanged(Email)
	s.OnTextChanged(Email, "bad")
	s.OnCommit()

	s.OnFocusChanged(Username)
	s.OnCommit()
	snap := s.Snapshot()
	require.True(t, snap.Visible[Email])
	require.True(t, snap.Visible[Username])

	s.OnTextChanged(Email, "still bad")
	require.True(t, s.Snapshot().Visible[Email])
}

func TestPolicyPerFieldClearsWhenFieldBecomesValid(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnFocusChanged(Email)
	s.OnTextChanged(Email, "bad")
	s.OnCommit()
	require.True(t, s.Snapshot().Visible[Email])

	s.OnTextChanged(Email, "ok@x.io")
	require.False(t, s.Snapshot().Visible[Email])

	s.OnTextChanged(Email, "bad again")
	require.False(t, s.Snapshot().Visible[Email], "needs a fresh commit")
}

func TestPolicyPerFieldRepeatClearedByPasswordEdit(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyPerField)
	s.OnTextChanged(Password, "Abcd1234")
	s.OnFocusChanged(PasswordRepeat)
	s.OnTextChanged(PasswordRepeat, "Abcd12345")
	s.OnCommit()
	require.True(t, s.Snapshot().Visible[PasswordRepeat])

	s.OnTextChanged(Password, "Abcd12345")
	require.False(t, s.Snapshot().Visible[PasswordRepeat])
}

func TestPolicyFocusKeyedShowsOnlyOnProducingField(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyFocusKeyed)
	s.OnFocusChanged(Email)
	s.OnTextChanged(Email, "bad")
	s.OnCommit()

	// focus advanced to password, whose title is not in "Invalid email"
	snap := s.Snapshot()
	require.Equal(t, Password, snap.Focus)
	require.False(t, snap.Visible[Email])
	require.False(t, snap.Visible[Password])

	s.OnFocusChanged(Email)
	snap = s.Snapshot()
	require.True(t, snap.Visible[Email])
	require.Equal(t, "Invalid email", snap.Messages[Email])

	s.OnTextChanged(Email, "fine@x.com")
	require.False(t, s.Snapshot().Visible[Email])
}

func TestPolicyFocusKeyedLeaksAcrossSharedWords(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyFocusKeyed)
	s.OnTextChanged(Password, "short")
	s.OnFocusChanged(PasswordRepeat)
	s.OnTextChanged(PasswordRepeat, "other")
	s.OnCommit()
	require.Equal(t, NoField, s.Focus())

	// the repeat message mentions "password", so it surfaces on the password field
	s.OnFocusChanged(Password)
	snap := s.Snapshot()
	require.True(t, snap.Visible[Password])
	require.Equal(t, "Invalid repeat password", snap.Messages[Password])

	s.OnFocusChanged(Username)
	require.False(t, s.shown.Any())
}

func TestPolicyFocusKeyedNeverShowsOnRepeatField(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyFocusKeyed)
	s.OnTextChanged(Password, "Abcd1234")
	s.OnFocusChanged(PasswordRepeat)
	s.OnTextChanged(PasswordRepeat, "Abcd9999")
	s.OnCommit()

	// "Repeat password" is two words and never equals a single message word
	s.OnFocusChanged(PasswordRepeat)
	snap := s.Snapshot()
	require.False(t, snap.Validity[PasswordRepeat])
	require.False(t, snap.Visible[PasswordRepeat])
	require.Empty(t, snap.Messages)
}

func TestPolicyFocusKeyedValidCommitClears(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, PolicyFocusKeyed)
	s.OnFocusChanged(Username)
	s.OnTextChanged(Username, "abc")
	s.OnCommit()
	s.OnFocusChanged(Username)
	require.True(t, s.Snapshot().Visible[Username])

	s.OnTextChanged(Username, "abcdef")
	s.OnCommit()
	s.OnTextChanged(Username, "ab")
	s.OnFocusChanged(Username)
	require.False(t, s.Snapshot().Visible[Username])
}

func TestVisibilityNeverShowsValidField(t *testing.T) {
	t.Parallel()

	for _, p := range Policies() {
		s := newTestSession(t, p)
		s.OnFocusChanged(Username)
		for _, id := range Fields {
			s.OnTextChanged(id, "junk")
			s.OnCommit()
		}
		s.OnTextChanged(Username, "valid-name")
		s.OnTextChanged(Email, "a@b.co")
		s.OnTextChanged(Password, "Abcd1234")
		s.OnTextChanged(PasswordRepeat, "Abcd1234")
		for _, id := range Fields {
			s.OnFocusChanged(id)
			require.False(t, s.Snapshot().Visible[id], "policy %s field %s", p, id)
		}
	}
}

func TestMentions(t *testing.T) {
	t.Parallel()

	require.True(t, mentions("Invalid email", "Email"))
	require.True(t, mentions("invalid EMAIL!", "Email"))
	require.True(t, mentions("Invalid repeat password", "Password"))
	require.False(t, mentions("Invalid repeat password", "Repeat password"))
	require.False(t, mentions("Invalid password", "Repeat password"))
	require.False(t, mentions("Invalid emails", "Email"))
	require.False(t, mentions("", "Email"))
	require.False(t, mentions("Invalid email", ""))
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for _, p := range Policies() {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	got, err := ParsePolicy(" V2 ")
	require.NoError(t, err)
	require.Equal(t, PolicyFocusKeyed, got)

	got, err = ParsePolicy("per_field")
	require.NoError(t, err)
	require.Equal(t, PolicyPerField, got)

	_, err = ParsePolicy("sometimes")
	require.ErrorIs(t, err, ErrUnknownPolicy)
	_, err = ParsePolicy("")
	require.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestNewVisibilityRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	_, err := NewVisibility(Policy(0))
	require.ErrorIs(t, err, ErrUnknownPolicy)
	_, err = NewVisibility(Policy(17))
	require.ErrorIs(t, err, ErrUnknownPolicy)
}
