package fields

import (
	"strconv"
	"time"

	"github.com/tagscan/tagscan/internal/model"
)

// Duration decodes TDLY/TLEN: a payload parsing as a non-negative
// integer becomes a Duration value in milliseconds; otherwise it is
// emitted as raw text.
func Duration(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			values = append(values, model.TextValue(s))
			continue
		}
		values = append(values, model.DurationValue(time.Duration(n)*time.Millisecond))
	}
	return values, "", warnings
}
