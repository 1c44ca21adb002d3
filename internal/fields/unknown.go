package fields

import "github.com/tagscan/tagscan/internal/model"

// RawBytes is the UnknownField fallback decoder: it performs no family-
// specific interpretation and simply carries the payload through as a
// single Bytes value. internal/id3v2's container loop does not call
// this for fields whose id isn't registered at all (those are left
// with Unknown=true and no Values), but a format can register it
// explicitly for ids it recognizes structurally yet has no richer
// decoder for.
func RawBytes(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	return []model.Value{model.BytesValue(payload)}, "", nil
}
