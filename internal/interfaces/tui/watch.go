// Package tui renders a live view of a pipeline run for 'run --watch'. The
// model polls the run's recording sink on a timer, so the runner never
// blocks on the terminal.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SergeiGolos/open-tasks/internal/core/output"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	footerStyle  = lipgloss.NewStyle().Faint(true)

	kindStyles = map[output.Kind]lipgloss.Style{
		output.KindCommandStart: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		output.KindCommandEnd:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		output.KindFileCreated:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		output.KindWarning:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		output.KindError:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Run renders the live view until the run finishes or the user quits. The
// returned error is the run's failure, if any; view errors are reported
// separately because the run keeps its own outcome.
func Run(name string, events *output.RecordingSink, done <-chan error) error {
	program := tea.NewProgram(newModel(name, events, done))

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("live view failed: %w", err)
	}

	m := final.(model)
	if !m.finished {
		// The user quit the view before the run finished; await the run
		// so its outcome still decides the exit code.
		return <-done
	}
	return m.runErr
}

type tickMsg time.Time

// model holds the state for the Bubble Tea run view.
type model struct {
	name     string
	events   *output.RecordingSink
	done     <-chan error
	lines    []output.Event
	finished bool
	runErr   error
}

func newModel(name string, events *output.RecordingSink, done <-chan error) model {
	return model{
		name:   name,
		events: events,
		done:   done,
	}
}

// Init implements the Bubble Tea init method
func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements the Bubble Tea update method
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tickMsg:
		m.lines = m.events.Events()

		select {
		case err := <-m.done:
			m.finished = true
			m.runErr = err
			// One last snapshot so the final events render before quit.
			m.lines = m.events.Events()
			return m, tea.Quit
		default:
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View implements the Bubble Tea view method
func (m model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		titleStyle.Render("open-tasks run"),
		"  ",
		m.name,
		"  ",
		m.statusBadge(),
	)

	rows := []string{header, ""}
	for _, event := range m.lines {
		rows = append(rows, m.renderEvent(event))
	}
	rows = append(rows, "", footerStyle.Render("q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) statusBadge() string {
	switch {
	case !m.finished:
		return runningStyle.Render("RUNNING")
	case m.runErr != nil:
		return failedStyle.Render("FAILED")
	default:
		return doneStyle.Render("DONE")
	}
}

func (m model) renderEvent(event output.Event) string {
	style, ok := kindStyles[event.Kind]
	if !ok {
		style = lipgloss.NewStyle()
	}

	switch event.Kind {
	case output.KindCommandStart:
		return style.Render(fmt.Sprintf("▶ %s", event.Command))
	case output.KindCommandEnd:
		return style.Render(fmt.Sprintf("✔ %s (%s)", event.Command, event.Duration.Round(time.Millisecond)))
	case output.KindFileCreated:
		return style.Render(fmt.Sprintf("  %s wrote %s", event.Command, event.Fields["path"]))
	default:
		return style.Render(fmt.Sprintf("  %s %s", event.Command, event.Message))
	}
}
