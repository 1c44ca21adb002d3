package fields

import (
	"strings"

	"github.com/tagscan/tagscan/internal/locale"
	"github.com/tagscan/tagscan/internal/model"
)

// NewLookupKey builds the TFLT/TMED/TCMP decoder for the given field
// id: each segment resolves a localized string keyed by
// "Field_<ID>_<CODE>", with "/" and "." in the code replaced by "_";
// an unresolved code falls back to the bracketed raw value.
func NewLookupKey(fieldID string) func([]byte) ([]model.Value, string, []string) {
	return func(payload []byte) (values []model.Value, subtitle string, warnings []string) {
		segments, warnings := decodeMultiString(payload)
		for _, s := range segments {
			values = append(values, model.TextValue(renderLookupKey(fieldID, s)))
		}
		return values, "", warnings
	}
}

func renderLookupKey(fieldID, code string) string {
	sanitized := strings.NewReplacer("/", "_", ".", "_").Replace(code)
	key := "Field_" + fieldID + "_" + sanitized
	if v, ok := locale.DefaultLookup(key); ok {
		return v
	}
	return "[" + code + "]"
}
