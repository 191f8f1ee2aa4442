// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a name does not resolve in any search root.
	ErrNotFound = errors.New("not found in any search root")
	// ErrInvalidArgument is returned for malformed listing arguments, such as
	// the literal wildcard combined with other patterns.
	ErrInvalidArgument = errors.New("invalid argument")
)

type (
	// UnknownModuleError is returned when an exact module name fails to
	// resolve. It wraps ErrNotFound for errors.Is() compatibility.
	UnknownModuleError struct {
		Name string
	}

	// UnknownCommandError is returned when a command name (possibly dotted)
	// fails to resolve. It wraps ErrNotFound for errors.Is() compatibility.
	UnknownCommandError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module: %s", e.Name)
}

// Unwrap returns ErrNotFound so callers can match with errors.Is.
func (e *UnknownModuleError) Unwrap() error {
	return ErrNotFound
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// Unwrap returns ErrNotFound so callers can match with errors.Is.
func (e *UnknownCommandError) Unwrap() error {
	return ErrNotFound
}
