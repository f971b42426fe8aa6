package workflow

import "fmt"

// OutputWriteError reports a failed filesystem write inside Store:
// permissions, disk full, or a path collision.
type OutputWriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing output file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
