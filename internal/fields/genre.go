package fields

import (
	"strconv"

	"github.com/tagscan/tagscan/internal/locale"
	"github.com/tagscan/tagscan/internal/model"
)

// Genre decodes TCON: "RX" and "CR" are the Winamp remix/cover
// shorthands; an integer segment resolves through the static ID3v1
// genre table; anything else, or an out-of-range integer, passes
// through unchanged.
func Genre(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for _, s := range segments {
		values = append(values, model.TextValue(renderGenre(s)))
	}
	return values, "", warnings
}

func renderGenre(s string) string {
	switch s {
	case "RX":
		return localizedOr("Genre_Remix", "Remix")
	case "CR":
		return localizedOr("Genre_Cover", "Cover")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return s
	}
	if n == 255 {
		// 255 is reserved for "no genre"; it lies past the end of the
		// id3v1Genres table (spec.md's concrete scenario 6).
		return localizedOr("Genre_None", "None")
	}
	if name, ok := id3v1Genre(n); ok {
		return name
	}
	return s
}

func localizedOr(key, fallback string) string {
	if v, ok := locale.DefaultLookup(key); ok {
		return v
	}
	return fallback
}
