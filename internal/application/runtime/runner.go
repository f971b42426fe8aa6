// Package runtime drives pipeline execution: it resolves reference lookups,
// prepares each command's exclusive output directory, runs commands strictly
// sequentially, and reports lifecycle events through the run's sink.
package runtime

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

// WriterFactory builds the output handler for one invocation directory.
type WriterFactory func(dir string) workflow.OutputHandler

// Invocation describes one command execution within a run.
type Invocation struct {
	// Command is the registered command name.
	Command string

	// Args are the positional arguments, already split from flags.
	Args []string

	// Refs are tokens to resolve before the command starts.
	Refs []string

	// Token is passed through to the command, which may use it to build
	// a token-assigning decorator.
	Token string

	// Timeout bounds this invocation. Zero falls back to the configured
	// default; both zero means unbounded.
	Timeout time.Duration
}

// Runner executes invocations one at a time. Commands within one run never
// overlap: the runner awaits full completion, including all store calls,
// before starting the next command. That sequencing is what keeps the token
// registry and output directory naming race-free.
type Runner struct {
	registry    *command.Registry
	references  *reference.Manager
	sink        output.Sink
	settings    command.Settings
	outputsRoot string
	workDir     string
	newWriter   WriterFactory

	now  func() time.Time
	used map[string]int
}

// NewRunner creates a runner for one pipeline run.
func NewRunner(
	registry *command.Registry,
	references *reference.Manager,
	sink output.Sink,
	settings command.Settings,
	outputsRoot string,
	workDir string,
	newWriter WriterFactory,
) *Runner {
	return &Runner{
		registry:    registry,
		references:  references,
		sink:        sink,
		settings:    settings,
		outputsRoot: outputsRoot,
		workDir:     workDir,
		newWriter:   newWriter,
		now:         time.Now,
		used:        make(map[string]int),
	}
}

// Run executes one invocation. Reference resolution happens first: an
// unknown token fails before the command starts, so no command-start event
// is emitted and no output directory is created for it.
func (r *Runner) Run(ctx context.Context, inv Invocation) (*reference.Handle, error) {
	handler, err := r.registry.Get(inv.Command)
	if err != nil {
		r.sink.Emit(output.Event{
			Kind:    output.KindError,
			Command: inv.Command,
			Message: err.Error(),
			At:      r.now(),
		})
		return nil, err
	}

	refs, err := r.resolveRefs(inv)
	if err != nil {
		r.sink.Emit(output.Event{
			Kind:    output.KindError,
			Command: inv.Command,
			Message: err.Error(),
			At:      r.now(),
		})
		return nil, err
	}

	outputDir := r.invocationDir(inv.Command)
	writer := r.newWriter(outputDir)

	logger := output.NewTaskLogger(r.sink, inv.Command)
	tc := &command.ExecutionContext{
		WorkDir:    r.workDir,
		OutputDir:  outputDir,
		Token:      inv.Token,
		Workflow:   workflow.NewContext(inv.Command, writer, logger),
		References: r.references,
		Logger:     logger,
		Config:     r.settings,
	}

	runCtx := ctx
	timeout := inv.Timeout
	if timeout == 0 {
		timeout = r.settings.DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	handle, err := handler.Execute(runCtx, inv.Args, refs, tc)
	if err == nil && handle == nil {
		err = fmt.Errorf("command %q returned no result", inv.Command)
	}
	if err != nil {
		logger.Error(err.Error(), map[string]string{"command": inv.Command})
		// Best effort: a failed invocation still leaves a report next to
		// whatever files it already wrote.
		_ = writer.WriteError(err, map[string]string{"command": inv.Command})
		logger.Complete()
		return nil, err
	}

	logger.Complete()
	return handle, nil
}

// RunAll executes invocations in order, stopping at the first failure. The
// handles of completed invocations are returned either way.
func (r *Runner) RunAll(ctx context.Context, invocations []Invocation) ([]*reference.Handle, error) {
	handles := make([]*reference.Handle, 0, len(invocations))
	for _, inv := range invocations {
		handle, err := r.Run(ctx, inv)
		if err != nil {
			return handles, err
		}
		handles = append(handles, handle)
	}
	return handles, nil
}

// resolveRefs resolves every requested token up front, before the command
// is given a chance to start.
func (r *Runner) resolveRefs(inv Invocation) (command.RefSet, error) {
	refs := make(command.RefSet, len(inv.Refs))
	for _, token := range inv.Refs {
		handle, err := r.references.Resolve(token)
		if err != nil {
			return nil, err
		}
		refs[token] = handle
	}
	return refs, nil
}

// invocationDir reserves a directory exclusive to one invocation:
// outputs/<timestamp>-<command>, with a numeric suffix when the same
// command starts twice within a second.
func (r *Runner) invocationDir(commandName string) string {
	key := fmt.Sprintf("%s-%s", r.now().Format("20060102-150405"), commandName)
	r.used[key]++
	if n := r.used[key]; n > 1 {
		key = fmt.Sprintf("%s-%d", key, n)
	}
	return filepath.Join(r.outputsRoot, key)
}
