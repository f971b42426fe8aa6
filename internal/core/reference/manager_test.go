package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Create_RegistersTokenForResolve(t *testing.T) {
	manager := NewManager(OverwriteDuplicates)

	created, err := manager.Create("id-1", "HELLO", "t1", "/out/echo-output.txt")
	require.NoError(t, err)

	resolved, err := manager.Resolve("t1")
	require.NoError(t, err)
	assert.Same(t, created, resolved)
	assert.Equal(t, "HELLO", resolved.Content())
	assert.Equal(t, "t1", resolved.Token())
	assert.Equal(t, "/out/echo-output.txt", resolved.OutputFile())
}

func TestManager_Create_WithoutTokenDoesNotRegister(t *testing.T) {
	manager := NewManager(OverwriteDuplicates)

	handle, err := manager.Create("id-1", "v", "", "")
	require.NoError(t, err)
	assert.Equal(t, "id-1", handle.ID())
	assert.Empty(t, manager.Tokens())
}

func TestManager_Resolve_UnknownTokenFails(t *testing.T) {
	manager := NewManager(OverwriteDuplicates)

	handle, err := manager.Resolve("does-not-exist")
	assert.Nil(t, handle)
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "does-not-exist", notFound.Token)
}

func TestManager_DuplicateToken_OverwritePolicyReplacesEntry(t *testing.T) {
	manager := NewManager(OverwriteDuplicates)

	_, err := manager.Create("id-1", "first", "t1", "")
	require.NoError(t, err)
	_, err = manager.Create("id-2", "second", "t1", "")
	require.NoError(t, err)

	resolved, err := manager.Resolve("t1")
	require.NoError(t, err)
	assert.Equal(t, "second", resolved.Content())
	assert.Equal(t, []string{"t1"}, manager.Tokens())
}

func TestManager_DuplicateToken_RejectPolicyFails(t *testing.T) {
	manager := NewManager(RejectDuplicates)

	_, err := manager.Create("id-1", "first", "t1", "")
	require.NoError(t, err)

	handle, err := manager.Create("id-2", "second", "t1", "")
	assert.Nil(t, handle)
	require.Error(t, err)

	var duplicate *DuplicateTokenError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "t1", duplicate.Token)

	// The original registration stays intact.
	resolved, err := manager.Resolve("t1")
	require.NoError(t, err)
	assert.Equal(t, "first", resolved.Content())
}

func TestManager_Tokens_AreSorted(t *testing.T) {
	manager := NewManager(OverwriteDuplicates)

	for _, token := range []string{"zeta", "alpha", "mid"} {
		_, err := manager.Create("id-"+token, token, token, "")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, manager.Tokens())
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input       string
		expected    DuplicatePolicy
		expectError bool
	}{
		{input: "overwrite", expected: OverwriteDuplicates},
		{input: "", expected: OverwriteDuplicates},
		{input: "reject", expected: RejectDuplicates},
		{input: "panic", expectError: true},
	}

	for _, tt := range tests {
		policy, err := ParsePolicy(tt.input)
		if tt.expectError {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, policy, "input %q", tt.input)
	}
}
