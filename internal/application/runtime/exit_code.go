package runtime

import (
	"errors"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

// Process exit codes. The distinct codes let scripts tell a broken
// reference chain from a failed filesystem write.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidInput    = 2
	ExitRefNotFound     = 3
	ExitOutputWriteFail = 4
)

// ExitCode classifies an error from a run into a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var notFound *reference.NotFoundError
	if errors.As(err, &notFound) {
		return ExitRefNotFound
	}

	var writeErr *workflow.OutputWriteError
	if errors.As(err, &writeErr) {
		return ExitOutputWriteFail
	}

	var validation *command.ValidationError
	if errors.As(err, &validation) {
		return ExitInvalidInput
	}

	return ExitFailure
}
