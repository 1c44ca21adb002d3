package tagscan

import (
	"fmt"

	"github.com/tagscan/tagscan/internal/engine"
	"github.com/tagscan/tagscan/internal/id3v2"
	"github.com/tagscan/tagscan/internal/locale"
	"github.com/tagscan/tagscan/internal/model"
	"github.com/tagscan/tagscan/internal/registry"
)

// Container, Field and Value are the public result types of spec.md §3.
// They live in internal/model so that internal/id3v2 and internal/fields
// can share them without importing this package.
type (
	Container = model.Container
	Field     = model.Field
	Value     = model.Value
	Kind      = model.Kind
	Timestamp = model.Timestamp
	Image     = model.Image
)

const (
	KindBytes     = model.KindBytes
	KindText      = model.KindText
	KindInteger   = model.KindInteger
	KindDuration  = model.KindDuration
	KindTimestamp = model.KindTimestamp
	KindImage     = model.KindImage
)

// defaultRegistry is the process-wide table every exported Scan call
// dispatches against, populated once at package init with every format
// this module ships. A caller that wants a private registry (for tests,
// or to register additional formats without touching the default one)
// can build its own with registry.New and id3v2.RegisterAll and drive it
// through ScanWith.
var defaultRegistry = registry.New()

func init() {
	id3v2.RegisterAll(defaultRegistry)
}

// bodyLenOf asks item for its declared body length, the bridge between
// registry.ContainerValidator (which only knows container shape) and
// engine.Validator (which needs to know how many more bytes to read).
// Every container constructed by this module's own validators implements
// this; a zero default would misparse, so a container without it is
// declined as a non-match rather than parsed with a guessed length.
type bodyLener interface {
	BodyLen() int
}

func validatorsFor(reg *registry.Registry, formatNames []string) []engine.Validator {
	var out []engine.Validator
	for _, name := range formatNames {
		for _, cv := range reg.ValidatorsFor(name) {
			cv := cv
			out = append(out, engine.Validator{
				PeekLen: cv.PeekLen,
				Try: func(peek []byte) (engine.Parseable, int, bool) {
					raw, ok := cv.Validate(peek)
					if !ok {
						return nil, 0, false
					}
					item, ok := raw.(engine.Parseable)
					if !ok {
						return nil, 0, false
					}
					bl, ok := raw.(bodyLener)
					if !ok {
						return nil, 0, false
					}
					return item, bl.BodyLen(), true
				},
			})
		}
	}
	return out
}

// Scan reads r from its current position and returns every container
// recognized by the default registry, in the order their headers
// appeared in the stream. A format mismatch or padding-only remainder is
// not an error; Scan returns (nil, nil) if nothing in r matched any
// registered format.
func Scan(r Source) ([]Container, error) {
	return ScanWith(defaultRegistry, r)
}

// ScanWith is Scan against an explicit registry, for callers that have
// registered additional formats of their own.
func ScanWith(reg *registry.Registry, r Source) ([]Container, error) {
	validators := validatorsFor(reg, reg.FormatNames())

	items, err := engine.Dispatch(r, validators)
	if err != nil {
		return nil, fmt.Errorf("tagscan: %w", err)
	}

	var out []Container
	for _, item := range items {
		resultOf, ok := item.(interface{ Result() *model.Container })
		if !ok {
			continue
		}
		c := resultOf.Result()
		resolveNames(c)
		out = append(out, *c)
	}
	return out, nil
}

// resolveNames fills in each field's human-readable Name from the
// default locale bundle, spec.md §6's "resolved via Lookup" contract.
// A field whose id has no bundle entry keeps Name empty rather than
// falling back to the raw id; callers that want the id have SystemName.
// APIC fields already have Name set (to the picture-category name, per
// spec.md §4.6) by internal/id3v2's container and are left untouched.
func resolveNames(c *Container) {
	for i := range c.Fields {
		f := &c.Fields[i]
		if f.Name != "" {
			continue
		}
		key := "Field_" + string(f.SystemName[:])
		if name, ok := locale.DefaultLookup(key); ok {
			f.Name = name
		}
	}
}

// RegisterAll exposes spec.md §6's `register_all` against a caller-owned
// registry, for embedders that want tagscan's formats alongside their
// own without touching the package-level default registry.
func RegisterAll(reg *registry.Registry) {
	id3v2.RegisterAll(reg)
}

// FieldTypes returns the introspection table for formatName (e.g.
// "ID3v2"), spec.md §6's `field_types`: every field id this module knows
// how to decode, independent of any particular parsed container.
func FieldTypes(formatName string) map[[4]byte]string {
	out := make(map[[4]byte]string)
	for id := range defaultRegistry.FieldTypes(formatName) {
		out[[4]byte(id)] = string(id[:])
	}
	return out
}

// FormatNames returns every format name registered in the default
// registry, e.g. []string{"ID3v2"}.
func FormatNames() []string {
	return defaultRegistry.FormatNames()
}
