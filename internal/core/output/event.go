package output

import "time"

// Kind identifies the type of an emitted event.
type Kind string

const (
	KindCommandStart Kind = "command-start"
	KindCommandEnd   Kind = "command-end"
	KindFileCreated  Kind = "file-created"
	KindCard         Kind = "card"
	KindProgress     Kind = "progress"
	KindInfo         Kind = "info"
	KindWarning      Kind = "warning"
	KindError        Kind = "error"
)

// MinLevel returns the lowest level at which events of this kind are shown.
func (k Kind) MinLevel() Level {
	switch k {
	case KindCommandStart, KindCommandEnd, KindFileCreated:
		return Quiet
	case KindCard:
		return Summary
	default:
		return Verbose
	}
}

// Visible reports whether an event of kind k is shown at level l.
func Visible(k Kind, l Level) bool {
	return l >= k.MinLevel()
}

// Event is one unit of user-visible run output. Events are emitted in the
// order the running command issued them; a sink must preserve that order.
type Event struct {
	Kind    Kind
	Command string
	Message string

	// Fields carries structured payloads: card rows, the path of a
	// file-created event, error metadata.
	Fields map[string]string

	// Duration is set on command-end events only.
	Duration time.Duration

	At time.Time
}

// Sink is the single destination for all user-visible output of a run.
// A sink is created at run start and shared by every command in the run.
type Sink interface {
	// Emit delivers one event. Implementations decide visibility by
	// comparing the event kind against their active level.
	Emit(event Event)

	// ActiveLevel returns the level the sink currently shows.
	ActiveLevel() Level
}
