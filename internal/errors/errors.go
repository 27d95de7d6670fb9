package errors

import "fmt"

// ErrValidation reports a request field that failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrUpstream reports a failure talking to an external provider, such as
// the pricing API being unreachable, returning a non-success status, or
// responding with an unparsable body.
type ErrUpstream struct {
	Provider string
	Status   int
	Err      error
}

func (e *ErrUpstream) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: status %d", e.Provider, e.Status)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}
