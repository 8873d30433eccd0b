package domain

// ValidationError reports input rejected by a service before it reaches the
// store. Handlers answer it with a 400; other service errors are server
// faults.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError from a plain reason.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
