package client

// RemoteError carries a user-facing message originating from the backend, or
// the synthetic per-action message substituted when transport fails. The CLI
// surfaces Message verbatim; callers never retry automatically.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Remote wraps a backend message as an error.
func Remote(message string) *RemoteError {
	return &RemoteError{Message: message}
}
