package errors

import "fmt"

// InputError wraps a dataset problem with context about which record caused it.
type InputError struct {
	Section string // "agents" or "tickets"
	Index   int    // position within the section
	ID      string // record id if one was present
	Err     error
}

func (e *InputError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("invalid %s record %d (%s): %v", e.Section, e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("invalid %s record %d: %v", e.Section, e.Index, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrMalformedDocument = fmt.Errorf("malformed input document")
	ErrMissingField      = fmt.Errorf("missing required field")
	ErrEmptyRoster       = fmt.Errorf("agent roster is empty")
)
