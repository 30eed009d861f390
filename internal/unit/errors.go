package unit

import (
	"errors"
	"fmt"
)

// ErrUnitNotFound is wrapped by LoadError when a required unit file is absent.
var ErrUnitNotFound = errors.New("unit not found")

// LoadError reports a unit that could not be located or evaluated.
type LoadError struct {
	Unit string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unable to load unit %q from %s: %v", e.Unit, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
