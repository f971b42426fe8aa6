package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	commandNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	exampleStyle     = lipgloss.NewStyle().Faint(true)
)

// NewCommandsCommand creates the 'commands' command, which lists every
// registered command with its description and examples.
func NewCommandsCommand(container *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List registered commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, handler := range container.Registry.All() {
				fmt.Fprintf(out, "%s  %s\n", commandNameStyle.Render(handler.Name()), handler.Description())
				for _, example := range handler.Examples() {
					fmt.Fprintf(out, "    %s\n", exampleStyle.Render(example))
				}
			}
			return nil
		},
	}
}
