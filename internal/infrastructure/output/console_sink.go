package outputinfra

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SergeiGolos/open-tasks/internal/core/output"
)

// Console styles, kept muted so output reads well on light and dark
// terminals.
var (
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	endStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	cardTitle     = lipgloss.NewStyle().Bold(true)
	cardBorder    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// ConsoleSink renders run events as styled lines on a terminal writer. It
// is the default sink for a run.
type ConsoleSink struct {
	mu    sync.Mutex
	out   io.Writer
	level output.Level
}

// NewConsoleSink creates a console sink writing to out at the given level.
func NewConsoleSink(out io.Writer, level output.Level) *ConsoleSink {
	return &ConsoleSink{out: out, level: level}
}

// ActiveLevel returns the level the sink currently shows.
func (s *ConsoleSink) ActiveLevel() output.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetLevel changes the level for subsequently emitted events.
func (s *ConsoleSink) SetLevel(level output.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// Emit renders one event if it is visible at the sink's level.
func (s *ConsoleSink) Emit(event output.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !output.Visible(event.Kind, s.level) {
		return
	}
	fmt.Fprintln(s.out, renderEvent(event))
}

func renderEvent(event output.Event) string {
	switch event.Kind {
	case output.KindCommandStart:
		return startStyle.Render("▶ " + event.Command)
	case output.KindCommandEnd:
		return endStyle.Render(fmt.Sprintf("✔ %s (%s)", event.Command, event.Duration.Round(time.Millisecond)))
	case output.KindFileCreated:
		return fileStyle.Render("  wrote " + event.Message)
	case output.KindCard:
		return renderCard(event)
	case output.KindProgress:
		return progressStyle.Render("  … " + event.Message)
	case output.KindInfo:
		return "  " + event.Message
	case output.KindWarning:
		return warnStyle.Render("  warning: " + event.Message)
	case output.KindError:
		return errorStyle.Render(fmt.Sprintf("  error [%s]: %s", event.Command, event.Message))
	default:
		return "  " + event.Message
	}
}

func renderCard(event output.Event) string {
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(cardTitle.Render(event.Message))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("\n%s: %s", k, event.Fields[k]))
	}
	return cardBorder.Render(b.String())
}
