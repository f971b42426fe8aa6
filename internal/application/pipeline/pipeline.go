// Package pipeline loads pipeline definition files: an ordered list of
// command steps executed sequentially within one run.
package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SergeiGolos/open-tasks/internal/application/runtime"
)

// Step is one command invocation in a pipeline file.
type Step struct {
	// Command is the registered command name. Required.
	Command string `yaml:"command"`

	// Args are positional arguments passed to the command.
	Args []string `yaml:"args,omitempty"`

	// Refs are tokens of earlier steps' results the command needs.
	Refs []string `yaml:"refs,omitempty"`

	// Token registers the step's result for later steps.
	Token string `yaml:"token,omitempty"`

	// Timeout bounds the step, e.g. "30s". Empty uses the configured
	// default.
	Timeout string `yaml:"timeout,omitempty"`
}

// Pipeline is a parsed pipeline file.
type Pipeline struct {
	// Name labels the pipeline in output. Optional.
	Name string `yaml:"name,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Load reads and validates a pipeline file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline file: %w", err)
	}
	return Parse(data)
}

// Parse validates pipeline YAML. Unknown fields are rejected so a typo in
// a step does not silently change its meaning.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing pipeline: %w", err)
	}

	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("pipeline has no steps")
	}
	for i, step := range p.Steps {
		if step.Command == "" {
			return nil, fmt.Errorf("step %d: command is required", i+1)
		}
		if step.Timeout != "" {
			if _, err := time.ParseDuration(step.Timeout); err != nil {
				return nil, fmt.Errorf("step %d: invalid timeout %q", i+1, step.Timeout)
			}
		}
	}
	return &p, nil
}

// Invocations converts the pipeline's steps into runner invocations.
func (p *Pipeline) Invocations() []runtime.Invocation {
	invocations := make([]runtime.Invocation, 0, len(p.Steps))
	for _, step := range p.Steps {
		timeout, _ := time.ParseDuration(step.Timeout)
		invocations = append(invocations, runtime.Invocation{
			Command: step.Command,
			Args:    step.Args,
			Refs:    step.Refs,
			Token:   step.Token,
			Timeout: timeout,
		})
	}
	return invocations
}
