package csscribe

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned by Transform when no API key is configured.
	ErrMissingCredential = errors.New("api key is not configured")
	// ErrServiceFailure wraps network errors and malformed completion responses.
	ErrServiceFailure = errors.New("completion service failed")
)

// User-visible messages for terminal failures.
const (
	MsgMissingCredential = "csscribe: API key is not set. Configure transform.api-key or CSSCRIBE_TRANSFORM__API_KEY."
	MsgServiceFailure    = "csscribe: the completion service returned an error. The line was not changed."
	MsgStorageFailure    = "csscribe: could not save the dictionary."
)

// ReportedError marks an error that was already shown to the user through
// the editor. Hosts should not display it again.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

// UserMessage maps an action error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return MsgMissingCredential
	case errors.Is(err, ErrServiceFailure):
		return MsgServiceFailure
	case errors.Is(err, errSaveDictionary):
		return MsgStorageFailure
	default:
		return fmt.Sprintf("csscribe: %v", err)
	}
}
