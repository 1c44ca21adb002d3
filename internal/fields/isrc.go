package fields

import (
	"strings"

	"github.com/tagscan/tagscan/internal/model"
)

// ISRC decodes TSRC: only segments that are exactly 12 characters with
// no "-" are recognized; each is re-hyphenated after indices 2, 6, 9
// (country-registrant-year-designation). Anything else is dropped.
func ISRC(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		if len(s) != 12 || strings.Contains(s, "-") {
			continue
		}
		formatted := s[0:2] + "-" + s[2:6] + "-" + s[6:9] + "-" + s[9:12]
		values = append(values, model.TextValue(formatted))
	}
	return values, "", warnings
}
