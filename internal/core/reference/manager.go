package reference

import (
	"fmt"
	"sort"
	"sync"
)

// DuplicatePolicy decides what Create does when a token is already
// registered in the run.
type DuplicatePolicy int

const (
	// OverwriteDuplicates silently replaces the registry entry.
	OverwriteDuplicates DuplicatePolicy = iota

	// RejectDuplicates fails Create with a DuplicateTokenError.
	RejectDuplicates
)

// ParsePolicy converts a configuration string into a DuplicatePolicy.
func ParsePolicy(value string) (DuplicatePolicy, error) {
	switch value {
	case "overwrite", "":
		return OverwriteDuplicates, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return OverwriteDuplicates, fmt.Errorf("unknown token policy: %q", value)
	}
}

// NotFoundError reports a --ref lookup for a token no command registered.
type NotFoundError struct {
	Token string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no stored result registered under token %q", e.Token)
}

// DuplicateTokenError reports a second registration of a token under the
// RejectDuplicates policy.
type DuplicateTokenError struct {
	Token string
}

// Error implements the error interface
func (e *DuplicateTokenError) Error() string {
	return fmt.Sprintf("token %q is already registered in this run", e.Token)
}

// Manager owns the run-scoped token registry. Commands execute strictly
// sequentially, so the registry needs no coordination beyond that ordering;
// the mutex only guards against misuse from helper goroutines.
type Manager struct {
	mu      sync.RWMutex
	policy  DuplicatePolicy
	handles map[string]*Handle
}

// NewManager creates an empty registry with the given duplicate policy.
func NewManager(policy DuplicatePolicy) *Manager {
	return &Manager{
		policy:  policy,
		handles: make(map[string]*Handle),
	}
}

// Create wraps a stored value into an immutable handle. When token is
// non-empty the handle is registered for later Resolve calls; a duplicate
// token either overwrites the entry or fails, per the manager's policy.
func (m *Manager) Create(id string, content interface{}, token, outputFile string) (*Handle, error) {
	handle := &Handle{
		id:         id,
		content:    content,
		token:      token,
		outputFile: outputFile,
	}

	if token == "" {
		return handle, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.handles[token]; exists && m.policy == RejectDuplicates {
		return nil, &DuplicateTokenError{Token: token}
	}
	m.handles[token] = handle
	return handle, nil
}

// Resolve returns the handle registered under token. The runtime calls
// this for every --ref before the dependent command starts, so an unknown
// token fails fast and the command never executes.
func (m *Manager) Resolve(token string) (*Handle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	handle, exists := m.handles[token]
	if !exists {
		return nil, &NotFoundError{Token: token}
	}
	return handle, nil
}

// Tokens returns all registered tokens, sorted.
func (m *Manager) Tokens() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := make([]string, 0, len(m.handles))
	for token := range m.handles {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
