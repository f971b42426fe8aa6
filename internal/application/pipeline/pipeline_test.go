package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePipeline = `name: greeting-chain
steps:
  - command: echo
    args: ["HELLO"]
    token: a
  - command: transform
    args: ["upper"]
    refs: [a]
    token: b
    timeout: 30s
`

func TestParse_ValidPipeline(t *testing.T) {
	p, err := Parse([]byte(samplePipeline))
	require.NoError(t, err)

	assert.Equal(t, "greeting-chain", p.Name)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, "echo", p.Steps[0].Command)
	assert.Equal(t, []string{"HELLO"}, p.Steps[0].Args)
	assert.Equal(t, "a", p.Steps[0].Token)
	assert.Equal(t, []string{"a"}, p.Steps[1].Refs)
}

func TestParse_RejectsInvalidPipelines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "NoSteps", input: "name: empty\n"},
		{name: "MissingCommand", input: "steps:\n  - args: [x]\n"},
		{name: "UnknownField", input: "steps:\n  - command: echo\n    arg: [x]\n"},
		{name: "BadTimeout", input: "steps:\n  - command: echo\n    timeout: soon\n"},
		{name: "NotYAML", input: "steps: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePipeline), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Steps, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvocations_CarryStepFields(t *testing.T) {
	p, err := Parse([]byte(samplePipeline))
	require.NoError(t, err)

	invocations := p.Invocations()
	require.Len(t, invocations, 2)

	assert.Equal(t, "echo", invocations[0].Command)
	assert.Equal(t, "a", invocations[0].Token)
	assert.Zero(t, invocations[0].Timeout)

	assert.Equal(t, []string{"a"}, invocations[1].Refs)
	assert.Equal(t, 30*time.Second, invocations[1].Timeout)
}
