package fields

import "github.com/tagscan/tagscan/internal/model"

// Copyright decodes TCOP/TPRO: each segment is prefixed with the
// copyright (U+00A9) or sound-recording-copyright (U+2117) glyph.
func NewCopyright(glyph rune) func([]byte) ([]model.Value, string, []string) {
	return func(payload []byte) (values []model.Value, subtitle string, warnings []string) {
		segments, warnings := decodeMultiString(payload)
		for _, s := range segments {
			values = append(values, model.TextValue(string(glyph)+" "+s))
		}
		return values, "", warnings
	}
}

const (
	GlyphCopyright         = '©'
	GlyphProducedCopyright = '℗'
)
