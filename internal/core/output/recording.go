package output

import "sync"

// RecordingSink retains every visible event in memory, in emission order.
// It backs the live terminal view and is the sink of choice in tests.
type RecordingSink struct {
	mu     sync.RWMutex
	level  Level
	events []Event
}

// NewRecordingSink creates a recording sink showing the given level.
func NewRecordingSink(level Level) *RecordingSink {
	return &RecordingSink{level: level}
}

// Emit records the event if it is visible at the sink's level.
func (s *RecordingSink) Emit(event Event) {
	if !Visible(event.Kind, s.ActiveLevel()) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// ActiveLevel returns the level the sink currently shows.
func (s *RecordingSink) ActiveLevel() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// SetLevel changes the level for subsequently emitted events.
func (s *RecordingSink) SetLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// Events returns a copy of all recorded events.
func (s *RecordingSink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

// Kinds returns the kinds of all recorded events, in emission order.
func (s *RecordingSink) Kinds() []Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := make([]Kind, len(s.events))
	for i, e := range s.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// MultiSink fans every event out to each wrapped sink. Its active level is
// the most verbose level among them, so no wrapped sink misses an event it
// would show.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines several sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit delivers the event to every wrapped sink.
func (m *MultiSink) Emit(event Event) {
	for _, s := range m.sinks {
		s.Emit(event)
	}
}

// ActiveLevel returns the most verbose level among the wrapped sinks.
func (m *MultiSink) ActiveLevel() Level {
	level := Quiet
	for _, s := range m.sinks {
		if l := s.ActiveLevel(); l > level {
			level = l
		}
	}
	return level
}
