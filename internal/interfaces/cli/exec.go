package cli

import (
	"time"

	"github.com/spf13/cobra"

	apprt "github.com/SergeiGolos/open-tasks/internal/application/runtime"
)

// NewExecCommand creates the 'exec' command, which runs one registered
// command with optional reference lookups and a result token.
func NewExecCommand(container *Container) *cobra.Command {
	var (
		refs    []string
		token   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run one registered command",
		Long: `Run one registered command. Earlier results are passed in with --ref,
and --token names this command's result so later invocations can
reference it.`,
		Example: `  open-tasks exec echo --token greeting HELLO WORLD
  open-tasks exec transform --ref greeting lower`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := container.NewSink(runLevel(cmd, container.Config.LogLevel))
			runner := container.NewRunner(sink)

			_, err := runner.Run(cmd.Context(), apprt.Invocation{
				Command: args[0],
				Args:    args[1:],
				Refs:    refs,
				Token:   token,
				Timeout: timeout,
			})
			return err
		},
	}

	cmd.Flags().StringArrayVar(&refs, "ref", nil, "Token of a stored result to resolve for the command (repeatable)")
	cmd.Flags().StringVar(&token, "token", "", "Token to publish this command's result under")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Bound this command's execution (default from config)")

	return cmd
}
