package csscribe

import (
	"context"
	"errors"
)

// Actions are the three commands a host registers. Each runs to completion,
// reports terminal failures through the editor, and returns them wrapped in
// *ReportedError. A missing active line is a silent no-op.
type Actions struct {
	Editor     Editor
	Session    *Session
	Recorder   *Recorder
	Dispatcher *Dispatcher
}

// ToggleRegistrationMode flips the session's registration mode.
func (a *Actions) ToggleRegistrationMode(_ context.Context) error {
	if a.Session.ToggleRegistrationMode() {
		a.Editor.ShowInfo("Registration mode: on")
	} else {
		a.Editor.ShowInfo("Registration mode: off")
	}
	return nil
}

// Record merges the active line into the dictionary.
func (a *Actions) Record(ctx context.Context) error {
	_, err := a.Recorder.Record(ctx, a.Editor)
	return a.report(err)
}

// Transform replaces the active line with the completion service's CSS.
func (a *Actions) Transform(ctx context.Context) error {
	return a.report(a.Dispatcher.Transform(ctx, a.Editor))
}

func (a *Actions) report(err error) error {
	if err == nil || errors.Is(err, ErrNoActiveLine) {
		return nil
	}
	a.Editor.ShowError(UserMessage(err))
	return &ReportedError{Err: err}
}
