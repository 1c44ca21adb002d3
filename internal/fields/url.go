package fields

import "github.com/tagscan/tagscan/internal/model"

// URL decodes W??? fields other than WXXX: a single Latin-1 string
// with no leading encoding-indicator byte.
func URL(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	s, ok := decodeText(model.EncodingLatin1, payload)
	if !ok {
		return []model.Value{model.TextValue(string(payload))}, "", []string{"encoding error: payload left raw"}
	}
	return []model.Value{model.TextValue(s)}, "", nil
}

// UserURL decodes WXXX: an encoding byte, a null-terminated description
// in that encoding, then a Latin-1 URL for the remainder.
func UserURL(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	if len(payload) == 0 {
		return nil, "", nil
	}
	hint := encodingByte(payload[0])
	descRaw, urlRaw := splitNullTerminatedRaw(hint, payload[1:])

	desc, ok := decodeText(hint, descRaw)
	if !ok {
		desc = string(descRaw)
		warnings = append(warnings, "encoding error: description left raw")
	}

	url, ok := decodeText(model.EncodingLatin1, urlRaw)
	if !ok {
		url = string(urlRaw)
	}

	return []model.Value{model.TextValue(url)}, desc, warnings
}

// splitNullTerminatedRaw locates the encoding-width-aware null
// terminator within raw and splits it into the bytes before the
// terminator and the bytes after it. UTF-16 variants use a 2-byte
// terminator aligned to the code-unit boundary (after any leading BOM);
// everything else uses a single 0x00 byte.
func splitNullTerminatedRaw(hint model.TextEncodingHint, raw []byte) (before, after []byte) {
	if hint == model.EncodingUTF16WithBOM || hint == model.EncodingUTF16BE {
		start := 0
		if hint == model.EncodingUTF16WithBOM && len(raw) >= 2 {
			if (raw[0] == 0xFE && raw[1] == 0xFF) || (raw[0] == 0xFF && raw[1] == 0xFE) {
				start = 2
			}
		}
		for i := start; i+1 < len(raw); i += 2 {
			if raw[i] == 0x00 && raw[i+1] == 0x00 {
				return raw[:i], raw[i+2:]
			}
		}
		return raw, nil
	}

	for i, b := range raw {
		if b == 0x00 {
			return raw[:i], raw[i+1:]
		}
	}
	return raw, nil
}
