package config

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when the preference document is missing or
// unreadable. Callers treat it as "run onboarding first", not as a crash.
var ErrNotInitialized = errors.New("ccsounds is not initialized (run 'ccsounds init')")

// ValidationError reports rejected user input, such as an out-of-range
// volume. Interactive callers re-prompt on it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
