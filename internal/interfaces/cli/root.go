// Package cli is the cobra surface of the tool. Every command constructor
// takes the Container so the commands stay wiring-free and testable.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	apprt "github.com/SergeiGolos/open-tasks/internal/application/runtime"
	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/infrastructure/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Container holds the dependencies CLI commands need. The di package
// assembles it; tests build their own.
type Container struct {
	Config     *config.Config
	Registry   *command.Registry
	References *reference.Manager

	// NewSink builds the sink one run reports through, at the given level.
	NewSink func(level output.Level) output.Sink

	// NewRunner builds the runner for one run, reporting into sink.
	NewRunner func(sink output.Sink) *apprt.Runner
}

// NewRootCommand represents the base command when called without any
// subcommands.
func NewRootCommand(container *Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "open-tasks",
		Short: "open-tasks - chainable command pipelines with stored results",
		Long: `open-tasks runs commands that persist their results to disk and publish
them under tokens, so later commands can consume earlier results by
reference instead of re-parsing output text.

Run a single command with 'exec', a YAML pipeline with 'run', and list
the available commands with 'commands'.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show progress, info, and warning output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Show only command lifecycle and file output")

	rootCmd.AddCommand(NewExecCommand(container))
	rootCmd.AddCommand(NewRunCommand(container))
	rootCmd.AddCommand(NewCommandsCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// runLevel resolves the output level for one run: --quiet wins over
// --verbose, and both win over the configured default.
func runLevel(cmd *cobra.Command, configured output.Level) output.Level {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return output.Quiet
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return output.Verbose
	}
	return configured
}

// Execute runs the root command and maps the failure, if any, to the
// process exit code.
func Execute(container *Container) int {
	return ExecuteContext(context.Background(), container)
}

// ExecuteContext is Execute with a caller-owned context, so a signal
// handler can cancel an in-flight run.
func ExecuteContext(ctx context.Context, container *Container) int {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apprt.ExitCode(err)
	}
	return apprt.ExitOK
}
