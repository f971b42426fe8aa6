// Package outputinfra provides the filesystem and terminal implementations
// behind the core output ports.
package outputinfra

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DirWriter persists command output into one invocation's exclusive output
// directory. It creates the directory lazily on first write.
type DirWriter struct {
	dir string
}

// NewDirWriter creates a writer rooted at the given invocation directory.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{dir: dir}
}

// Dir returns the invocation directory.
func (w *DirWriter) Dir() string {
	return w.dir
}

// WriteOutput writes content to dir/fileName and returns the full path.
func (w *DirWriter) WriteOutput(content []byte, fileName string) (string, error) {
	path := filepath.Join(w.dir, fileName)
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return path, err
	}
	return path, nil
}

// errorReport is the on-disk shape of a persisted failure.
type errorReport struct {
	Error    string            `json:"error"`
	Metadata map[string]string `json:"metadata,omitempty"`
	At       time.Time         `json:"at"`
}

// WriteError persists a failure report as error.json in the invocation
// directory, so a failed run leaves an inspectable trace next to whatever
// files were already written.
func (w *DirWriter) WriteError(failure error, metadata map[string]string) error {
	report := errorReport{
		Error:    failure.Error(),
		Metadata: metadata,
		At:       time.Now().UTC(),
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.dir, "error.json"), data, 0o644)
}
