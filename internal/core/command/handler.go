// Package command defines the contract every plugin command implements and
// the per-invocation context the runtime hands it.
package command

import (
	"context"
	"fmt"

	"github.com/SergeiGolos/open-tasks/internal/core/reference"
)

// RefSet is the resolved --ref lookups for one invocation, keyed by token.
// Every entry was resolved before Execute was called.
type RefSet map[string]*reference.Handle

// Get returns the handle registered under token.
func (r RefSet) Get(token string) (*reference.Handle, bool) {
	handle, ok := r[token]
	return handle, ok
}

// Handler is the capability every plugin command implements. Execute
// computes a value, persists it through the execution context's store, and
// returns the published handle so the result is chainable by construction.
// Expected user errors are signalled with a typed failure, not a panic.
type Handler interface {
	// Name returns the command name used on the command line.
	Name() string

	// Description returns a one-line description for listings.
	Description() string

	// Examples returns invocation examples for help output.
	Examples() []string

	// Execute runs the command. It may block on I/O and must honor ctx
	// cancellation.
	Execute(ctx context.Context, args []string, refs RefSet, tc *ExecutionContext) (*reference.Handle, error)
}

// ValidationError reports a command rejecting its own arguments, such as a
// missing required positional.
type ValidationError struct {
	Command string
	Reason  string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// NewValidationError creates a validation failure for the given command.
func NewValidationError(command, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Command: command,
		Reason:  fmt.Sprintf(format, args...),
	}
}
