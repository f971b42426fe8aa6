package output

import (
	"sync"
	"time"
)

// TaskLogger is the per-command-invocation facade over a Sink. Creating one
// emits command-start and begins timing; Complete emits command-end exactly
// once with the elapsed time. Leveled calls after Complete are dropped.
type TaskLogger struct {
	mu        sync.Mutex
	sink      Sink
	command   string
	startTime time.Time
	duration  time.Duration
	completed bool
}

// NewTaskLogger creates a logger for one command invocation and emits the
// command-start event.
func NewTaskLogger(sink Sink, command string) *TaskLogger {
	logger := &TaskLogger{
		sink:      sink,
		command:   command,
		startTime: time.Now(),
	}
	sink.Emit(Event{
		Kind:    KindCommandStart,
		Command: command,
		At:      logger.startTime,
	})
	return logger
}

// Command returns the name of the command this logger observes.
func (l *TaskLogger) Command() string {
	return l.command
}

// FileCreated reports that the command persisted a file.
func (l *TaskLogger) FileCreated(path string) {
	l.emit(Event{
		Kind:    KindFileCreated,
		Command: l.command,
		Message: path,
		Fields:  map[string]string{"path": path},
	})
}

// Card reports a structured summary: a titled set of key/value rows.
func (l *TaskLogger) Card(title string, fields map[string]string) {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	l.emit(Event{
		Kind:    KindCard,
		Command: l.command,
		Message: title,
		Fields:  copied,
	})
}

// Progress reports a free-text progress message.
func (l *TaskLogger) Progress(message string) {
	l.emit(Event{Kind: KindProgress, Command: l.command, Message: message})
}

// Info reports a free-text informational message.
func (l *TaskLogger) Info(message string) {
	l.emit(Event{Kind: KindInfo, Command: l.command, Message: message})
}

// Warning reports a free-text warning message.
func (l *TaskLogger) Warning(message string) {
	l.emit(Event{Kind: KindWarning, Command: l.command, Message: message})
}

// Error reports a failure with optional metadata.
func (l *TaskLogger) Error(message string, fields map[string]string) {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	l.emit(Event{
		Kind:    KindError,
		Command: l.command,
		Message: message,
		Fields:  copied,
	})
}

// Complete emits the command-end event with the elapsed time. Only the
// first call emits; later calls return the recorded duration.
func (l *TaskLogger) Complete() time.Duration {
	l.mu.Lock()
	if l.completed {
		duration := l.duration
		l.mu.Unlock()
		return duration
	}
	l.completed = true
	l.duration = time.Since(l.startTime)
	duration := l.duration
	l.mu.Unlock()

	l.sink.Emit(Event{
		Kind:     KindCommandEnd,
		Command:  l.command,
		Duration: duration,
		At:       time.Now(),
	})
	return duration
}

// Completed reports whether Complete has been called.
func (l *TaskLogger) Completed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.completed
}

func (l *TaskLogger) emit(event Event) {
	l.mu.Lock()
	if l.completed {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	event.At = time.Now()
	l.sink.Emit(event)
}
