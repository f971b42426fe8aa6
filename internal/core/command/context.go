package command

import (
	"time"

	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

// Settings is the run-scoped configuration commands may consult. The
// infrastructure config layer produces it; commands only read it.
type Settings struct {
	// StateDir is the project state directory holding run outputs.
	StateDir string

	// DefaultTimeout bounds one command's execution when the invocation
	// does not set its own. Zero means no timeout.
	DefaultTimeout time.Duration
}

// ExecutionContext is the read-only bundle handed to one command
// invocation: its working and output directories, the store, the reference
// registry, the run's logger, and configuration. The runtime constructs it
// once per invocation.
type ExecutionContext struct {
	// WorkDir is the directory the tool was invoked from.
	WorkDir string

	// OutputDir is this invocation's exclusive output directory. Only
	// this command's store calls write into it.
	OutputDir string

	// Token is the --token value passed through to the command, which
	// may use it to build a token-assigning decorator. Empty when unset.
	Token string

	// Workflow is this invocation's store.
	Workflow *workflow.Context

	// References is the run-scoped token registry.
	References *reference.Manager

	// Logger observes this invocation.
	Logger *output.TaskLogger

	// Config is the run configuration.
	Config Settings
}

// Publish wraps a stored value into an immutable handle, registering its
// token when one was assigned during decoration.
func (tc *ExecutionContext) Publish(ref *workflow.MemoryReference) (*reference.Handle, error) {
	return tc.References.Create(ref.ID(), ref.Content(), ref.Token(), ref.OutputFile())
}

// StoreAndPublish persists a value through the store and immediately
// publishes the resulting reference. Most commands end with this call.
func (tc *ExecutionContext) StoreAndPublish(value interface{}, decorators ...workflow.Decorator) (*reference.Handle, error) {
	ref, err := tc.Workflow.Store(value, decorators...)
	if err != nil {
		return nil, err
	}
	return tc.Publish(ref)
}
