package errors

import "errors"

// Common errors
var (
	ErrInternalError = errors.New("internal server error")
)

// Transcript errors
var (
	ErrInvalidURL  = errors.New("invalid video url")
	ErrSourceFetch = errors.New("transcript source fetch failed")
	ErrNotReady    = errors.New("no transcript loaded")
)

// Wrap tags err with a sentinel kind without changing its message.
// errors.Is matches both kind and anything err wraps.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }
