package fields

import (
	"strconv"

	"github.com/tagscan/tagscan/internal/locale"
	"github.com/tagscan/tagscan/internal/model"
)

// Image decodes APIC: encoding byte, Latin-1 MIME type (NUL-
// terminated), a category byte, an encoding-specific description (NUL-
// terminated), and the raw image bytes for the remainder. Per spec.md
// §4.6, the category is the field's human-readable Name — set by the
// caller via PictureCategoryName, since this decoder's signature has no
// room to return it — and the description is always Subtitle, empty or
// not.
func Image(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	if len(payload) < 2 {
		return nil, "", nil
	}
	hint := encodingByte(payload[0])
	rest := payload[1:]

	mimeRaw, afterMime := splitNullTerminatedRaw(model.EncodingLatin1, rest)
	mime, _ := decodeText(model.EncodingLatin1, mimeRaw)

	if len(afterMime) < 1 {
		return nil, "", []string{"truncated image field: missing category byte"}
	}
	afterCategory := afterMime[1:]

	descRaw, imgData := splitNullTerminatedRaw(hint, afterCategory)
	desc, ok := decodeText(hint, descRaw)
	if !ok {
		desc = string(descRaw)
		warnings = append(warnings, "encoding error: description left raw")
	}

	values = append(values, model.ImageValue(mime, imgData))
	return values, desc, warnings
}

// APICCategory extracts the picture-category byte from an APIC payload
// without decoding the rest of the field, for internal/id3v2's container
// to resolve Field.Name after calling Image.
func APICCategory(payload []byte) (byte, bool) {
	if len(payload) < 2 {
		return 0, false
	}
	_, afterMime := splitNullTerminatedRaw(model.EncodingLatin1, payload[1:])
	if len(afterMime) < 1 {
		return 0, false
	}
	return afterMime[0], true
}

func pictureCategoryName(category byte) string {
	key := "PictureCategory_" + strconv.Itoa(int(category))
	if v, ok := locale.DefaultLookup(key); ok {
		return v
	}
	return ""
}

// PictureCategoryName exposes the category-to-name mapping for callers
// (internal/id3v2's container) that need to set Field.Name from the
// decoded APIC category byte, which this decoder's signature has no
// room to return directly.
func PictureCategoryName(category byte) (string, bool) {
	name := pictureCategoryName(category)
	return name, name != ""
}
