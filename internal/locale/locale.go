// Package locale provides the default implementation of the `lookup(key)
// -> string?` collaborator spec.md §1 assumes is supplied externally. It
// loads an embedded TOML resource bundle at init time, grounded on
// holocm-holo-build's use of BurntSushi/toml to decode a small
// declarative resource file — here repurposed from package-build recipes
// to localized field and enum names.
package locale

import (
	_ "embed"

	"github.com/BurntSushi/toml"
)

// Lookup resolves a resource key to its localized string. It is the exact
// shape of spec.md §6's `lookup` collaborator.
type Lookup func(key string) (string, bool)

//go:embed strings.toml
var defaultStringsTOML string

// Bundle is a flat key -> string resource table.
type Bundle struct {
	strings map[string]string
}

// Load parses a TOML document shaped as a single [strings] table of
// key/value pairs.
func Load(doc string) (*Bundle, error) {
	var parsed struct {
		Strings map[string]string `toml:"strings"`
	}
	if _, err := toml.Decode(doc, &parsed); err != nil {
		return nil, err
	}
	return &Bundle{strings: parsed.Strings}, nil
}

// MustLoad is Load, panicking on error; used for the embedded default
// bundle, whose validity is a build-time invariant, not a runtime one.
func MustLoad(doc string) *Bundle {
	b, err := Load(doc)
	if err != nil {
		panic(err)
	}
	return b
}

// Default is the bundle backing the package-level DefaultLookup.
var Default = MustLoad(defaultStringsTOML)

// Get implements Lookup against the bundle's table.
func (b *Bundle) Get(key string) (string, bool) {
	s, ok := b.strings[key]
	return s, ok
}

// DefaultLookup resolves a key against the Default bundle.
func DefaultLookup(key string) (string, bool) {
	return Default.Get(key)
}
