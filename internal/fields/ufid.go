package fields

import "github.com/tagscan/tagscan/internal/model"

// UFID decodes UFID: a Latin-1 owner string (NUL-terminated) promoted
// to Subtitle, followed by the binary id bytes as a single Bytes
// value.
func UFID(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	ownerRaw, idBytes := splitNullTerminatedRaw(model.EncodingLatin1, payload)
	owner, ok := decodeText(model.EncodingLatin1, ownerRaw)
	if !ok {
		owner = string(ownerRaw)
	}
	return []model.Value{model.BytesValue(idBytes)}, owner, nil
}
