package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

type tempDirHandler struct {
	dir string
}

func (h *tempDirHandler) WriteOutput(content []byte, fileName string) (string, error) {
	path := filepath.Join(h.dir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return path, err
	}
	return path, nil
}

func (h *tempDirHandler) WriteError(err error, metadata map[string]string) error {
	return nil
}

type stubHandler struct {
	name string
}

func (h *stubHandler) Name() string        { return h.name }
func (h *stubHandler) Description() string { return "stub" }
func (h *stubHandler) Examples() []string  { return nil }
func (h *stubHandler) Execute(ctx context.Context, args []string, refs RefSet, tc *ExecutionContext) (*reference.Handle, error) {
	return nil, nil
}

func newExecutionContext(t *testing.T, command string) *ExecutionContext {
	t.Helper()
	dir := t.TempDir()
	sink := output.NewRecordingSink(output.Verbose)
	logger := output.NewTaskLogger(sink, command)
	return &ExecutionContext{
		WorkDir:    dir,
		OutputDir:  dir,
		Workflow:   workflow.NewContext(command, &tempDirHandler{dir: dir}, logger),
		References: reference.NewManager(reference.OverwriteDuplicates),
		Logger:     logger,
	}
}

func TestStoreAndPublish_RegistersTokenForLaterResolution(t *testing.T) {
	tc := newExecutionContext(t, "echo")

	handle, err := tc.StoreAndPublish("HELLO", workflow.WithToken("t1"))
	require.NoError(t, err)

	assert.Equal(t, "HELLO", handle.Content())
	assert.Equal(t, "t1", handle.Token())
	assert.NotEmpty(t, handle.OutputFile())

	resolved, err := tc.References.Resolve("t1")
	require.NoError(t, err)
	assert.Same(t, handle, resolved)
}

func TestStoreAndPublish_WithoutTokenReturnsUnregisteredHandle(t *testing.T) {
	tc := newExecutionContext(t, "echo")

	handle, err := tc.StoreAndPublish("orphan")
	require.NoError(t, err)

	assert.Empty(t, handle.Token())
	assert.Empty(t, tc.References.Tokens())
}

func TestRefSet_Get(t *testing.T) {
	manager := reference.NewManager(reference.OverwriteDuplicates)
	handle, err := manager.Create("id", "X", "a", "")
	require.NoError(t, err)

	refs := RefSet{"a": handle}

	got, ok := refs.Get("a")
	assert.True(t, ok)
	assert.Same(t, handle, got)

	_, ok = refs.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicatesAndEmptyNames(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubHandler{name: "echo"}))
	assert.Error(t, registry.Register(&stubHandler{name: "echo"}))
	assert.Error(t, registry.Register(&stubHandler{name: ""}))
}

func TestRegistry_AllIsSortedByName(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"transform", "echo", "read-file"} {
		require.NoError(t, registry.Register(&stubHandler{name: name}))
	}

	var names []string
	for _, h := range registry.All() {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"echo", "read-file", "transform"}, names)

	_, err := registry.Get("echo")
	assert.NoError(t, err)
	_, err = registry.Get("missing")
	assert.Error(t, err)
}

func TestValidationError_Formatting(t *testing.T) {
	err := NewValidationError("read-file", "missing required argument: %s", "path")
	assert.Equal(t, "read-file: missing required argument: path", err.Error())
}
