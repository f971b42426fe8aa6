// Package workflow implements the per-invocation store: values produced by
// a command pass through an ordered decorator pipeline, are persisted under
// the invocation's output directory, and come back as memory references.
package workflow

// Record is the pending form of a stored value while the decorator pipeline
// runs. Decorators receive a Record and return the next Record; field
// conflicts resolve silently by last-write-wins.
type Record struct {
	Content  interface{}
	FileName string
	Token    string
	Metadata map[string]interface{}
}

// Decorator is a pure transformation applied to a pending record before it
// is persisted. Decorators run synchronously, in the order supplied to
// Store, and never see the final reference id.
type Decorator interface {
	Decorate(record Record) Record
}

// DecoratorFunc adapts a plain function to the Decorator interface.
type DecoratorFunc func(record Record) Record

// Decorate implements the Decorator interface
func (f DecoratorFunc) Decorate(record Record) Record {
	return f(record)
}

// WithToken assigns the lookup token later commands resolve the stored
// value by. It does not affect the file name.
func WithToken(token string) Decorator {
	return DecoratorFunc(func(record Record) Record {
		record.Token = token
		return record
	})
}

// WithFileName assigns the explicit output file name, overriding the
// command-derived default.
func WithFileName(name string) Decorator {
	return DecoratorFunc(func(record Record) Record {
		record.FileName = name
		return record
	})
}

// WithMetadata shallow-merges the given mapping into the pending record's
// metadata. Keys merged later override earlier ones.
func WithMetadata(metadata map[string]interface{}) Decorator {
	return DecoratorFunc(func(record Record) Record {
		merged := make(map[string]interface{}, len(record.Metadata)+len(metadata))
		for k, v := range record.Metadata {
			merged[k] = v
		}
		for k, v := range metadata {
			merged[k] = v
		}
		record.Metadata = merged
		return record
	})
}
