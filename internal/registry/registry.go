// Package registry holds the process-wide, format-dispatching table the
// engine walks: a format name maps to an ordered list of container
// validators plus a table of field descriptors keyed by four-byte id.
//
// A Registry is safe for concurrent use: registration takes an exclusive
// lock, lookups used during parsing take a shared one. In practice a
// Registry is built once at program start (see id3v2.RegisterAll) and then
// only read, matching the spec's "immutable snapshot after initialization"
// resource policy.
package registry

import (
	"sync"

	"github.com/tagscan/tagscan/internal/byteutil"
)

// ContainerValidator inspects the first peekLen bytes of a candidate
// container and either declines (ok == false) or returns a freshly
// constructed, not-yet-parsed container value.
type ContainerValidator struct {
	PeekLen int
	Validate func(peek []byte) (container interface{}, ok bool)
}

// FieldValidator is the field-header analogue of ContainerValidator.
type FieldValidator struct {
	PeekLen int
	Validate func(peek []byte) (field interface{}, ok bool)
}

// FieldDescriptor binds a four-byte field id to the validators that
// recognize its header and the constructor that builds the empty field
// value once a validator matches.
type FieldDescriptor struct {
	ID          byteutil.Key
	Validators  []FieldValidator
	Constructor func(header []byte) interface{}
}

// FormatDescriptor is a named format entry: its container validators, in
// registration order, and its field-id -> FieldDescriptor table.
type FormatDescriptor struct {
	Name               string
	ContainerValidators []ContainerValidator
	Fields             map[byteutil.Key]FieldDescriptor
}

// Registry is the process-wide table described in spec.md §4.2.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]*FormatDescriptor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{formats: make(map[string]*FormatDescriptor)}
}

func (r *Registry) formatLocked(name string) *FormatDescriptor {
	f, ok := r.formats[name]
	if !ok {
		f = &FormatDescriptor{Name: name, Fields: make(map[byteutil.Key]FieldDescriptor)}
		r.formats[name] = f
	}
	return f
}

// RegisterContainer adds a container validator to the named format. A
// format name unknown until now is created implicitly. Multiple
// validators may be registered for the same name (e.g. ID3v2's v2.2,
// v2.3 and v2.4 header shapes share the format name "ID3v2").
func (r *Registry) RegisterContainer(formatName string, peekLen int, validate func([]byte) (interface{}, bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.formatLocked(formatName)
	f.ContainerValidators = append(f.ContainerValidators, ContainerValidator{PeekLen: peekLen, Validate: validate})
}

// RegisterField binds a four-byte field id to a validator and
// constructor for the named format. Registering the same id twice
// replaces the previous binding (last writer wins), deterministically.
func (r *Registry) RegisterField(formatName string, id byteutil.Key, peekLen int, validate func([]byte) (interface{}, bool), constructor func([]byte) interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := r.formatLocked(formatName)
	f.Fields[id] = FieldDescriptor{
		ID:          id,
		Validators:  []FieldValidator{{PeekLen: peekLen, Validate: validate}},
		Constructor: constructor,
	}
}

// FieldDescriptor looks up the descriptor registered for id within
// formatName. The second return value is false if no such binding exists.
func (r *Registry) FieldDescriptor(formatName string, id byteutil.Key) (FieldDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[formatName]
	if !ok {
		return FieldDescriptor{}, false
	}
	d, ok := f.Fields[id]
	return d, ok
}

// ValidatorsFor returns the container validators registered for
// formatName, in registration order.
func (r *Registry) ValidatorsFor(formatName string) []ContainerValidator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[formatName]
	if !ok {
		return nil
	}
	out := make([]ContainerValidator, len(f.ContainerValidators))
	copy(out, f.ContainerValidators)
	return out
}

// FormatNames returns every registered format name, for callers that want
// to dispatch against "all registered formats" (the default format set).
func (r *Registry) FormatNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	return names
}

// FieldTypes returns a snapshot copy of the field-id -> FieldDescriptor
// table for formatName, the introspection contract of spec.md §6.
func (r *Registry) FieldTypes(formatName string) map[byteutil.Key]FieldDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[formatName]
	if !ok {
		return nil
	}
	out := make(map[byteutil.Key]FieldDescriptor, len(f.Fields))
	for k, v := range f.Fields {
		out[k] = v
	}
	return out
}
