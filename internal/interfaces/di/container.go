// Package di assembles the application: configuration, the command
// registry, the run-scoped reference registry, and the factories the CLI
// uses to build a sink and runner per run.
package di

import (
	"fmt"
	"log"
	"os"

	apprt "github.com/SergeiGolos/open-tasks/internal/application/runtime"
	"github.com/SergeiGolos/open-tasks/internal/commands"
	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
	"github.com/SergeiGolos/open-tasks/internal/infrastructure/config"
	outputinfra "github.com/SergeiGolos/open-tasks/internal/infrastructure/output"
	"github.com/SergeiGolos/open-tasks/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Registry   *command.Registry
	References *reference.Manager

	// CLI
	CLIContainer *cli.Container

	// Logger
	Logger *log.Logger
}

// NewContainer creates and configures the dependency injection container
func NewContainer() (*Container, error) {
	container := &Container{
		Logger: log.New(os.Stderr, "[open-tasks] ", log.LstdFlags),
	}

	if err := container.initializeComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.Config = cfg

	c.References = reference.NewManager(cfg.TokenPolicy)

	c.Registry = command.NewRegistry()
	if err := commands.RegisterBuiltins(c.Registry); err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	c.CLIContainer = &cli.Container{
		Config:     cfg,
		Registry:   c.Registry,
		References: c.References,
		NewSink: func(level output.Level) output.Sink {
			return outputinfra.NewConsoleSink(os.Stdout, level)
		},
		NewRunner: func(sink output.Sink) *apprt.Runner {
			return apprt.NewRunner(
				c.Registry,
				c.References,
				sink,
				cfg.Settings(),
				cfg.OutputsRoot(),
				workDir,
				func(dir string) workflow.OutputHandler {
					return outputinfra.NewDirWriter(dir)
				},
			)
		},
	}

	return nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.Container {
	return c.CLIContainer
}
