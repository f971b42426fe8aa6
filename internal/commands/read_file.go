package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

// ReadFile stores the contents of a local file, keeping its base name for
// the persisted copy.
type ReadFile struct{}

// Name returns the command name used on the command line.
func (ReadFile) Name() string { return "read-file" }

// Description returns a one-line description for listings.
func (ReadFile) Description() string { return "Store the contents of a local file" }

// Examples returns invocation examples for help output.
func (ReadFile) Examples() []string {
	return []string{
		"open-tasks exec read-file notes.md",
		"open-tasks exec read-file --token source ./input/data.json",
	}
}

// Execute implements the command.Handler interface
func (h ReadFile) Execute(ctx context.Context, args []string, refs command.RefSet, tc *command.ExecutionContext) (*reference.Handle, error) {
	if len(args) < 1 {
		return nil, command.NewValidationError(h.Name(), "missing required argument: path")
	}
	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(tc.WorkDir, path)
	}

	tc.Logger.Progress("reading " + path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}

	decorators := []workflow.Decorator{
		workflow.WithFileName(filepath.Base(path)),
		workflow.WithMetadata(map[string]interface{}{"source": path, "bytes": len(data)}),
	}
	if tc.Token != "" {
		decorators = append(decorators, workflow.WithToken(tc.Token))
	}

	return tc.StoreAndPublish(string(data), decorators...)
}
