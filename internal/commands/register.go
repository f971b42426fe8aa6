package commands

import "github.com/SergeiGolos/open-tasks/internal/core/command"

// RegisterBuiltins adds every built-in command to the registry.
func RegisterBuiltins(registry *command.Registry) error {
	for _, handler := range []command.Handler{
		Echo{},
		ReadFile{},
		Transform{},
	} {
		if err := registry.Register(handler); err != nil {
			return err
		}
	}
	return nil
}
