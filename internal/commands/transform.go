package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

// Transform derives a new result from a single referenced one: upper or
// lower cases its text content.
type Transform struct{}

// Name returns the command name used on the command line.
func (Transform) Name() string { return "transform" }

// Description returns a one-line description for listings.
func (Transform) Description() string { return "Derive a cased copy of a referenced result" }

// Examples returns invocation examples for help output.
func (Transform) Examples() []string {
	return []string{
		"open-tasks exec transform --ref greeting upper",
		"open-tasks exec transform --ref source --token lowered lower",
	}
}

// Execute implements the command.Handler interface
func (h Transform) Execute(ctx context.Context, args []string, refs command.RefSet, tc *command.ExecutionContext) (*reference.Handle, error) {
	if len(refs) != 1 {
		return nil, command.NewValidationError(h.Name(), "exactly one --ref is required, got %d", len(refs))
	}

	mode := "upper"
	if len(args) > 0 {
		mode = args[0]
	}

	var input *reference.Handle
	for _, handle := range refs {
		input = handle
	}
	text := fmt.Sprint(input.Content())

	var result string
	switch mode {
	case "upper":
		result = strings.ToUpper(text)
	case "lower":
		result = strings.ToLower(text)
	default:
		return nil, command.NewValidationError(h.Name(), "unknown mode %q (want upper or lower)", mode)
	}

	decorators := []workflow.Decorator{
		workflow.WithMetadata(map[string]interface{}{"mode": mode, "source": input.ID()}),
	}
	if tc.Token != "" {
		decorators = append(decorators, workflow.WithToken(tc.Token))
	}

	handle, err := tc.StoreAndPublish(result, decorators...)
	if err != nil {
		return nil, err
	}

	tc.Logger.Card("transform", map[string]string{
		"mode":  mode,
		"input": input.ID(),
	})
	return handle, nil
}
