package levels

import (
	"errors"
	"fmt"
)

var ErrMapTooLarge = errors.New("levels: map too large")

// LoadError reports a map resource that could not be fetched.
// Status is the HTTP status for URL resources and 0 otherwise.
type LoadError struct {
	Resource string
	Status   int
	Err      error
}

func (e *LoadError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("levels: failed to load %s (%d): %v", e.Resource, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("levels: failed to load %s (%d)", e.Resource, e.Status)
	default:
		return fmt.Sprintf("levels: failed to load %s: %v", e.Resource, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
