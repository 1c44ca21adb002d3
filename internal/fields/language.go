package fields

import "github.com/tagscan/tagscan/internal/model"

// Language decodes TLAN: each segment passes through unchanged as the
// raw ISO 639-2 code. Resolving a code to a display name is the
// `language_name` collaborator's job (spec.md §6), external to this
// core decoder.
func Language(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		values = append(values, model.TextValue(s))
	}
	return values, "", warnings
}
