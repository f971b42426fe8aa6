package workflow

// MemoryReference identifies one stored value. It is created exactly once
// per Store call, is immutable after creation, and is owned by the Context
// that wrote its backing file.
type MemoryReference struct {
	id         string
	content    interface{}
	fileName   string
	token      string
	outputFile string
	metadata   map[string]interface{}
}

// ID returns the unique identifier assigned after the decorator fold.
func (r *MemoryReference) ID() string {
	return r.id
}

// Content returns the stored value snapshot.
func (r *MemoryReference) Content() interface{} {
	return r.content
}

// FileName returns the name of the backing file.
func (r *MemoryReference) FileName() string {
	return r.fileName
}

// Token returns the lookup token assigned by a token decorator, or empty.
func (r *MemoryReference) Token() string {
	return r.token
}

// OutputFile returns the full path of the backing file.
func (r *MemoryReference) OutputFile() string {
	return r.outputFile
}

// Metadata returns a copy of the metadata attached during decoration.
func (r *MemoryReference) Metadata() map[string]interface{} {
	metadata := make(map[string]interface{}, len(r.metadata))
	for k, v := range r.metadata {
		metadata[k] = v
	}
	return metadata
}
