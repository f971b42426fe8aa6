// Package commands ships the built-in plugin commands. They are small on
// purpose: each one is a template for how a third-party command reads its
// arguments and references, stores a result, and publishes the handle.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

// Echo stores its arguments joined into a single line.
type Echo struct{}

// Name returns the command name used on the command line.
func (Echo) Name() string { return "echo" }

// Description returns a one-line description for listings.
func (Echo) Description() string { return "Store the given arguments as a text result" }

// Examples returns invocation examples for help output.
func (Echo) Examples() []string {
	return []string{
		"open-tasks exec echo HELLO",
		"open-tasks exec echo --token greeting HELLO WORLD",
	}
}

// Execute implements the command.Handler interface
func (Echo) Execute(ctx context.Context, args []string, refs command.RefSet, tc *command.ExecutionContext) (*reference.Handle, error) {
	text := strings.Join(args, " ")

	decorators := []workflow.Decorator{
		workflow.WithMetadata(map[string]interface{}{"args": len(args)}),
	}
	if tc.Token != "" {
		decorators = append(decorators, workflow.WithToken(tc.Token))
	}

	handle, err := tc.StoreAndPublish(text, decorators...)
	if err != nil {
		return nil, err
	}

	tc.Logger.Card("echo", map[string]string{
		"characters": fmt.Sprintf("%d", len(text)),
		"file":       handle.OutputFile(),
	})
	return handle, nil
}
