package engine

import "fmt"

// InvalidInputError reports a caller contract violation: empty job
// description, blank skill entries, or negative experience years. These
// are surfaced rather than silently defaulted.
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		if e.Message != "" {
			return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
		}
		return fmt.Sprintf("invalid input: %v", e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}
