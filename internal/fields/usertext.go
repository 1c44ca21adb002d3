package fields

import "github.com/tagscan/tagscan/internal/model"

// UserText decodes TXXX: the first null-separated segment is the
// description (promoted to Subtitle), the rest are text values.
func UserText(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	if len(segments) == 0 {
		return nil, "", warnings
	}
	subtitle = segments[0]
	for _, s := range segments[1:] {
		values = append(values, model.TextValue(s))
	}
	return values, subtitle, warnings
}
