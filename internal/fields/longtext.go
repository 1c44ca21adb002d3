package fields

import "github.com/tagscan/tagscan/internal/model"

// LongText decodes COMM/USLT: encoding byte, 3 raw language-code bytes,
// a null-terminated description in that encoding, then the remaining
// text body decoded as a single string (not null-separated, unlike the
// plain-text family).
func LongText(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	if len(payload) < 4 {
		return nil, "", nil
	}
	hint := encodingByte(payload[0])
	rest := payload[4:] // payload[1:4] is the 3-byte language code, unused by the core decoder

	descRaw, bodyRaw := splitNullTerminatedRaw(hint, rest)

	desc, ok := decodeText(hint, descRaw)
	if !ok {
		desc = string(descRaw)
		warnings = append(warnings, "encoding error: description left raw")
	}

	body, ok := decodeText(hint, bodyRaw)
	if !ok {
		body = string(bodyRaw)
		warnings = append(warnings, "encoding error: body left raw")
	}

	return []model.Value{model.TextValue(body)}, desc, warnings
}
