package csscribe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActions(t *testing.T, ed *fakeEditor, completer Completer, apiKey string) *Actions {
	t.Helper()
	return &Actions{
		Editor:   ed,
		Session:  &Session{},
		Recorder: NewRecorder(t.TempDir()),
		Dispatcher: &Dispatcher{
			settings:  func(context.Context) TransformSettings { return TransformSettings{APIKey: apiKey} },
			newClient: func(TransformSettings) Completer { return completer },
		},
	}
}

func TestActions_ToggleRegistrationMode(t *testing.T) {
	ed := newFakeEditor(0, "x")
	a := newTestActions(t, ed, nil, "")

	require.NoError(t, a.ToggleRegistrationMode(context.Background()))
	assert.True(t, a.Session.RegistrationMode())
	require.NoError(t, a.ToggleRegistrationMode(context.Background()))
	assert.False(t, a.Session.RegistrationMode())

	assert.Equal(t, []string{"Registration mode: on", "Registration mode: off"}, ed.infos)
}

func TestActions_RegistrationModeDoesNotGateActions(t *testing.T) {
	ed := newFakeEditor(0, ".card")
	a := newTestActions(t, ed, &stubCompleter{text: ".card {}"}, "k")

	require.NoError(t, a.Record(context.Background()))
	require.NoError(t, a.ToggleRegistrationMode(context.Background()))
	require.NoError(t, a.Transform(context.Background()))

	assert.Equal(t, []string{".card {}"}, ed.lines)
	assert.Contains(t, ed.infos, "Registered class .card")
}

func TestActions_NoActiveLineIsSilent(t *testing.T) {
	ed := newFakeEditor(-1)
	a := newTestActions(t, ed, &stubCompleter{text: "x"}, "k")

	assert.NoError(t, a.Record(context.Background()))
	assert.NoError(t, a.Transform(context.Background()))
	assert.Empty(t, ed.errors)
	assert.Empty(t, ed.infos)
}

func TestActions_MissingCredentialReported(t *testing.T) {
	ed := newFakeEditor(0, "red")
	a := newTestActions(t, ed, &stubCompleter{text: "x"}, "")

	err := a.Transform(context.Background())
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, []string{MsgMissingCredential}, ed.errors)
	assert.Equal(t, []string{"red"}, ed.lines)
}

func TestActions_ServiceFailureReported(t *testing.T) {
	ed := newFakeEditor(0, "red")
	a := newTestActions(t, ed, &stubCompleter{err: errors.New("timeout")}, "k")

	err := a.Transform(context.Background())
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Equal(t, []string{MsgServiceFailure}, ed.errors)
	assert.Equal(t, []string{"red"}, ed.lines)
}

func TestUserMessage_Fallback(t *testing.T) {
	assert.Equal(t, "csscribe: disk full", UserMessage(errors.New("disk full")))
	assert.False(t, IsReported(errors.New("plain")))
}
