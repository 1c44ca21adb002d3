package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tagscan/tagscan/internal/model"
)

// OfNumber decodes TRCK/TPOS: each null-separated segment of the form
// "a/b" renders as the text "a of b"; with no "/b" part, the bare
// number renders as an Integer value; anything non-numeric passes
// through unchanged as Text.
func OfNumber(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		values = append(values, renderOfNumber(s))
	}
	return values, "", warnings
}

func renderOfNumber(s string) model.Value {
	a, b, hasB := strings.Cut(s, "/")
	aNum, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return model.TextValue(s)
	}
	if !hasB {
		return model.IntegerValue(int64(aNum))
	}
	bNum, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return model.TextValue(s)
	}
	return model.TextValue(fmt.Sprintf("%d of %d", aNum, bNum))
}
