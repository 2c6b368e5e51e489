package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit reports a negative path limit.
var ErrInvalidLimit = errors.New("path limit must not be negative")

// UnknownCountryError reports a name that has no node in the graph.
type UnknownCountryError struct {
	Name string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Name)
}
