package fields

import (
	"regexp"
	"strings"

	"github.com/tagscan/tagscan/internal/locale"
	"github.com/tagscan/tagscan/internal/model"
)

var musicalKeyPattern = regexp.MustCompile(`^[A-G][b#]?m?$`)

// MusicalKey decodes TKEY: 1-3 characters matching [A-G][b#]?m? render
// with the flat/sharp glyph substituted in; the literal "o" means
// off-key (localized); anything else is passed through bracketed.
func MusicalKey(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		values = append(values, model.TextValue(renderMusicalKey(s)))
	}
	return values, "", warnings
}

func renderMusicalKey(s string) string {
	if s == "o" {
		if off, ok := locale.DefaultLookup("MusicalKey_Off"); ok {
			return off
		}
		return "off-key"
	}
	if !musicalKeyPattern.MatchString(s) {
		return "[" + s + "]"
	}
	r := strings.ReplaceAll(s, "b", "♭")
	r = strings.ReplaceAll(r, "#", "♯")
	return r
}
