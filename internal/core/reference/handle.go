// Package reference converts stored values into immutable, shareable
// handles and maintains the run-scoped token registry that later commands
// resolve their --ref lookups against.
package reference

// Handle is a read-only view of a stored result. Any number of later
// commands may hold and read it; none may mutate it.
type Handle struct {
	id         string
	content    interface{}
	token      string
	outputFile string
}

// ID returns the identifier of the underlying stored value.
func (h *Handle) ID() string {
	return h.id
}

// Content returns the value snapshot taken when the handle was created.
func (h *Handle) Content() interface{} {
	return h.content
}

// Token returns the lookup token the handle is registered under, or empty.
func (h *Handle) Token() string {
	return h.token
}

// OutputFile returns the path of the backing file, or empty.
func (h *Handle) OutputFile() string {
	return h.outputFile
}
