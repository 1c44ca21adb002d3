// Package fields implements the per-tag-family field decoders of
// spec.md §4.6: each decoder takes an already-preprocessed field
// payload (see internal/id3v2's common preprocessing) and produces an
// ordered list of model.Value.
package fields

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/tagscan/tagscan/internal/model"
)

// encodingByte resolves the first payload byte into a text encoding
// hint, per spec.md §4.6's table.
func encodingByte(b byte) model.TextEncodingHint {
	switch b {
	case 0x00:
		return model.EncodingLatin1
	case 0x01:
		return model.EncodingUTF16WithBOM
	case 0x02:
		return model.EncodingUTF16BE
	case 0x03:
		return model.EncodingUTF8
	default:
		return model.EncodingUnknown
	}
}

// decodeText decodes raw bytes under the given hint into a Go string,
// BOM-sniffing where the hint calls for it. ok is false when the hint
// is Unknown or the bytes can't be decoded under it, in which case the
// caller should fall back to raw bytes.
func decodeText(hint model.TextEncodingHint, raw []byte) (s string, ok bool) {
	switch hint {
	case model.EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true
	case model.EncodingUTF16WithBOM:
		return decodeBOM(raw)
	case model.EncodingUTF16BE:
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true
	case model.EncodingUTF8:
		return string(raw), true
	default:
		return "", false
	}
}

// decodeBOM sniffs the leading bytes per spec.md §4.6's BOM table.
// UTF-32 and UTF-7 are recognized but not decoded (x/text's unicode
// package, the teacher stack's only transform dependency, has no
// decoder for either); their bytes are returned as Latin-1 best-effort
// so callers still get a string rather than nothing.
func decodeBOM(raw []byte) (string, bool) {
	switch {
	case hasPrefix(raw, 0xFE, 0xFF):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true

	case hasPrefix(raw, 0xFF, 0xFE, 0x00, 0x00):
		// UTF-32LE: not decodable with the available transform stack.
		out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw[4:])
		return string(out), true

	case hasPrefix(raw, 0xFF, 0xFE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true

	case hasPrefix(raw, 0xEF, 0xBB, 0xBF):
		return string(raw[3:]), true

	case hasPrefix(raw, 0x00, 0x00, 0xFE, 0xFF):
		// UTF-32BE: same limitation as UTF-32LE above.
		out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw[4:])
		return string(out), true

	case hasPrefix(raw, 0x2B, 0x2F, 0x76) && len(raw) >= 4 &&
		(raw[3] == 0x38 || raw[3] == 0x39 || raw[3] == 0x2B || raw[3] == 0x2F):
		// UTF-7: no decoder available; keep the remainder as raw ASCII.
		out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw[4:])
		return string(out), true

	default:
		// No recognized BOM: spec.md's table has no fallback case here,
		// but a bare UTF-16BE payload without a BOM is the most common
		// real-world deviation, so that is what is attempted.
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}

func hasPrefix(b []byte, prefix ...byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if b[i] != p {
			return false
		}
	}
	return true
}

// splitNullSep implements spec.md §4.6's null-separated string split:
// segments divided by U+0000; a trailing empty segment is dropped; an
// empty input yields a single empty segment.
func splitNullSep(s string) []string {
	if s == "" {
		return []string{""}
	}
	parts := strings.Split(s, "\x00")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
