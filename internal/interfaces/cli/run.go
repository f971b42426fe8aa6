package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SergeiGolos/open-tasks/internal/application/pipeline"
	apprt "github.com/SergeiGolos/open-tasks/internal/application/runtime"
	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/interfaces/tui"
)

// NewRunCommand creates the 'run' command, which executes every step of a
// YAML pipeline in order, stopping at the first failure.
func NewRunCommand(container *Container) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run <pipeline.yaml>",
		Short: "Run a YAML pipeline",
		Long: `Run every step of a YAML pipeline in order. A step failure stops the
run; completed steps keep their output directories and tokens.`,
		Example: `  open-tasks run release.yaml
  open-tasks run release.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}
			invocations := p.Invocations()

			if watch {
				return runWatched(cmd.Context(), container, p.Name, invocations)
			}

			sink := container.NewSink(runLevel(cmd, container.Config.LogLevel))
			runner := container.NewRunner(sink)
			_, err = runner.RunAll(cmd.Context(), invocations)
			return err
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Render run progress in a live view")

	return cmd
}

// runWatched executes the pipeline behind a live view. The run records at
// Verbose so the view can filter interactively; the run error, not the view
// lifecycle, decides the exit code.
func runWatched(ctx context.Context, container *Container, name string, invocations []apprt.Invocation) error {
	sink := output.NewRecordingSink(output.Verbose)
	runner := container.NewRunner(sink)

	done := make(chan error, 1)
	go func() {
		_, err := runner.RunAll(ctx, invocations)
		done <- err
	}()

	return tui.Run(name, sink, done)
}
