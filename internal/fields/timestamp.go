package fields

import (
	"regexp"
	"strings"
	"time"

	"github.com/tagscan/tagscan/internal/model"
)

// timestampLayouts covers the progressively more precise ID3v2.4
// timestamp forms: year, year-month, full date, date+hour, date+minute,
// full timestamp.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

func parseISO8601UTC(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var timestampSplitPattern = regexp.MustCompile(`--|/`)

// Timestamp decodes TDEN/TDOR/TDRC/TDRL/TDTG: the value is split on "/"
// or "--" into one or two halves, each parsed as a partial ISO-8601 UTC
// timestamp; a single parsed half emits a Timestamp, two emit a range,
// and a value where neither half parses emits the literal text
// "Unknown".
func Timestamp(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		values = append(values, renderTimestamp(s))
	}
	return values, "", warnings
}

func renderTimestamp(s string) model.Value {
	parts := timestampSplitPattern.Split(s, 2)

	start, startOK := parseISO8601UTC(parts[0])
	if len(parts) == 1 {
		if !startOK {
			return model.TextValue("Unknown")
		}
		return model.TimestampValue(model.Timestamp{Time: start, HasZone: true})
	}

	end, endOK := parseISO8601UTC(parts[1])
	switch {
	case startOK && endOK:
		return model.TimestampValue(model.Timestamp{Time: start, HasZone: true, End: &end})
	case startOK:
		return model.TimestampValue(model.Timestamp{Time: start, HasZone: true})
	case endOK:
		return model.TimestampValue(model.Timestamp{Time: end, HasZone: true})
	default:
		return model.TextValue("Unknown")
	}
}
