package command

import (
	"fmt"
	"sort"
)

// Registry maps command names to their handlers. The runtime resolves each
// pipeline step against it; the CLI uses it for listings.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler. Registering a second handler under the same
// name is a programming error and fails.
func (r *Registry) Register(handler Handler) error {
	name := handler.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("command %q is already registered", name)
	}
	r.handlers[name] = handler
	return nil
}

// Get returns the handler registered under name.
func (r *Registry) Get(name string) (Handler, error) {
	handler, exists := r.handlers[name]
	if !exists {
		return nil, fmt.Errorf("unknown command: %q", name)
	}
	return handler, nil
}

// All returns every registered handler, sorted by name.
func (r *Registry) All() []Handler {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	handlers := make([]Handler, 0, len(names))
	for _, name := range names {
		handlers = append(handlers, r.handlers[name])
	}
	return handlers
}
