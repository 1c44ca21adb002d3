package fields

import "github.com/tagscan/tagscan/internal/model"

// decodeMultiString applies the common "encoding byte + text" prefix
// shared by nearly every field family: resolve the encoding, decode the
// remainder, and split it on null separators. A decode failure (unknown
// encoding byte, or undecodable bytes) falls back to the raw bytes as a
// single segment with a warning, per spec.md §7's EncodingError policy.
func decodeMultiString(payload []byte) (segments []string, warnings []string) {
	if len(payload) == 0 {
		return []string{""}, nil
	}
	hint := encodingByte(payload[0])
	text, ok := decodeText(hint, payload[1:])
	if !ok {
		return []string{string(payload[1:])}, []string{"encoding error: payload left raw"}
	}
	return splitNullSep(text), nil
}

// Text decodes the plain-text family: ids beginning with "T" other than
// the specialized ones below, plus XSOA/XSOP/XSOT (which register.go
// binds to this decoder under their own ids, like TSOA/TSOP/TSOT). Each
// segment becomes a Text value.
func Text(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		values = append(values, model.TextValue(s))
	}
	return values, "", warnings
}
