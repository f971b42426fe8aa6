package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeiGolos/open-tasks/internal/core/command"
	"github.com/SergeiGolos/open-tasks/internal/core/output"
	"github.com/SergeiGolos/open-tasks/internal/core/reference"
	"github.com/SergeiGolos/open-tasks/internal/core/workflow"
)

type dirWriter struct {
	dir string
}

func (w *dirWriter) WriteOutput(content []byte, fileName string) (string, error) {
	path := filepath.Join(w.dir, fileName)
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return path, err
	}
	return path, nil
}

func (w *dirWriter) WriteError(err error, metadata map[string]string) error {
	return nil
}

func newContext(t *testing.T, name, token string) (*command.ExecutionContext, *output.RecordingSink) {
	t.Helper()
	sink := output.NewRecordingSink(output.Verbose)
	logger := output.NewTaskLogger(sink, name)
	dir := t.TempDir()
	return &command.ExecutionContext{
		WorkDir:    dir,
		OutputDir:  dir,
		Token:      token,
		Workflow:   workflow.NewContext(name, &dirWriter{dir: dir}, logger),
		References: reference.NewManager(reference.OverwriteDuplicates),
		Logger:     logger,
	}, sink
}

func TestEcho_StoresJoinedArgsAndRegistersToken(t *testing.T) {
	tc, sink := newContext(t, "echo", "greeting")

	handle, err := Echo{}.Execute(context.Background(), []string{"HELLO", "WORLD"}, nil, tc)
	require.NoError(t, err)

	assert.Equal(t, "HELLO WORLD", handle.Content())
	assert.Equal(t, "greeting", handle.Token())

	resolved, err := tc.References.Resolve("greeting")
	require.NoError(t, err)
	assert.Same(t, handle, resolved)

	assert.Contains(t, sink.Kinds(), output.KindCard)
}

func TestEcho_WithoutTokenStaysUnregistered(t *testing.T) {
	tc, _ := newContext(t, "echo", "")

	_, err := Echo{}.Execute(context.Background(), []string{"x"}, nil, tc)
	require.NoError(t, err)
	assert.Empty(t, tc.References.Tokens())
}

func TestReadFile_RequiresPathArgument(t *testing.T) {
	tc, _ := newContext(t, "read-file", "")

	_, err := ReadFile{}.Execute(context.Background(), nil, nil, tc)
	require.Error(t, err)

	var validation *command.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Contains(t, validation.Reason, "path")
}

func TestReadFile_StoresContentUnderSourceBaseName(t *testing.T) {
	tc, _ := newContext(t, "read-file", "src")
	source := filepath.Join(tc.WorkDir, "notes.txt")
	require.NoError(t, os.WriteFile(source, []byte("remember"), 0o644))

	handle, err := ReadFile{}.Execute(context.Background(), []string{"notes.txt"}, nil, tc)
	require.NoError(t, err)

	assert.Equal(t, "remember", handle.Content())
	assert.Equal(t, filepath.Join(tc.OutputDir, "notes.txt"), handle.OutputFile())
}

func TestReadFile_MissingFileFails(t *testing.T) {
	tc, _ := newContext(t, "read-file", "")

	_, err := ReadFile{}.Execute(context.Background(), []string{"absent.txt"}, nil, tc)
	assert.Error(t, err)
}

func TestTransform_DerivesCasedCopyOfReference(t *testing.T) {
	tc, _ := newContext(t, "transform", "b")
	source, err := tc.References.Create("id-a", "Hello", "a", "")
	require.NoError(t, err)

	refs := command.RefSet{"a": source}
	handle, err := Transform{}.Execute(context.Background(), []string{"upper"}, refs, tc)
	require.NoError(t, err)

	assert.Equal(t, "HELLO", handle.Content())

	resolved, err := tc.References.Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", resolved.Content())
}

func TestTransform_ValidatesRefsAndMode(t *testing.T) {
	tc, _ := newContext(t, "transform", "")

	_, err := Transform{}.Execute(context.Background(), nil, nil, tc)
	var validation *command.ValidationError
	require.True(t, errors.As(err, &validation))

	source, err := tc.References.Create("id-a", "Hello", "a", "")
	require.NoError(t, err)
	refs := command.RefSet{"a": source}

	_, err = Transform{}.Execute(context.Background(), []string{"sideways"}, refs, tc)
	require.True(t, errors.As(err, &validation))
	assert.Contains(t, validation.Reason, "sideways")
}

func TestRegisterBuiltins_RegistersAllCommands(t *testing.T) {
	registry := command.NewRegistry()
	require.NoError(t, RegisterBuiltins(registry))

	var names []string
	for _, h := range registry.All() {
		names = append(names, h.Name())
		assert.NotEmpty(t, h.Description())
		assert.NotEmpty(t, h.Examples())
	}
	assert.Equal(t, []string{"echo", "read-file", "transform"}, names)
}
