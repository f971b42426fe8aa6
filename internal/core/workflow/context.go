package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/SergeiGolos/open-tasks/internal/core/output"
)

// OutputHandler persists command output for one invocation. The filesystem
// implementation lives in the infrastructure layer.
type OutputHandler interface {
	// WriteOutput writes content under the invocation's output directory
	// and returns the full path of the written file.
	WriteOutput(content []byte, fileName string) (string, error)

	// WriteError persists a failure report with optional metadata.
	WriteError(err error, metadata map[string]string) error
}

// Context owns one command invocation's output directory and is the only
// writer of the files beneath it. Store is the single way a command
// persists a value.
type Context struct {
	command string
	handler OutputHandler
	logger  *output.TaskLogger
}

// NewContext creates the store for one command invocation.
func NewContext(command string, handler OutputHandler, logger *output.TaskLogger) *Context {
	return &Context{
		command: command,
		handler: handler,
		logger:  logger,
	}
}

// Command returns the name of the command this context belongs to.
func (c *Context) Command() string {
	return c.command
}

// Store folds the decorators over a pending record in argument order,
// assigns a unique id, persists exactly one file, and returns the
// resulting reference. Decorator field conflicts resolve last-write-wins.
func (c *Context) Store(value interface{}, decorators ...Decorator) (*MemoryReference, error) {
	record := Record{
		Content:  value,
		Metadata: map[string]interface{}{},
	}
	for _, d := range decorators {
		record = d.Decorate(record)
	}

	content, err := serializeContent(record.Content)
	if err != nil {
		return nil, fmt.Errorf("serializing %s output: %w", c.command, err)
	}

	fileName := record.FileName
	if fileName == "" {
		fileName = defaultFileName(c.command, record.Content)
	}

	path, err := c.handler.WriteOutput(content, fileName)
	if err != nil {
		if path == "" {
			path = fileName
		}
		return nil, &OutputWriteError{Path: path, Err: err}
	}
	c.logger.FileCreated(path)

	return &MemoryReference{
		id:         uuid.NewString(),
		content:    snapshotContent(record.Content, content),
		fileName:   fileName,
		token:      record.Token,
		outputFile: path,
		metadata:   record.Metadata,
	}, nil
}

// defaultFileName derives the output file name when no decorator set one.
func defaultFileName(command string, content interface{}) string {
	switch content.(type) {
	case string, []byte, nil:
		return command + "-output.txt"
	default:
		return command + "-output.json"
	}
}

// serializeContent renders a value into the bytes written to disk. Text
// values are written raw; everything else is persisted as indented JSON.
func serializeContent(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return json.MarshalIndent(v, "", "  ")
	}
}

// snapshotContent returns the value a reference holds after Store. The
// snapshot is eager: mutating the original value afterwards must not be
// observable through the reference. Scalars are immutable already; byte
// slices are copied; composite values are re-read from their serialized
// form, which also fixes their shape to what the file contains.
func snapshotContent(value interface{}, serialized []byte) interface{} {
	switch v := value.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case []byte:
		copied := make([]byte, len(v))
		copy(copied, v)
		return copied
	default:
		var snapshot interface{}
		if err := json.Unmarshal(serialized, &snapshot); err != nil {
			return v
		}
		return snapshot
	}
}
