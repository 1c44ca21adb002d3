package fields

import (
	"fmt"

	"github.com/tagscan/tagscan/internal/locale"
	"github.com/tagscan/tagscan/internal/model"
)

// CreditPair decodes TIPL/TMCL: successive segments pair up as
// (role, name); an unpaired trailing segment is emitted bracketed; an
// empty role renders via the localized "CreditPair_NoRole" template.
func CreditPair(payload []byte) (values []model.Value, subtitle string, warnings []string) {
	segments, warnings := decodeMultiString(payload)
	for i := 0; i+1 < len(segments); i += 2 {
		role, name := segments[i], segments[i+1]
		values = append(values, model.TextValue(renderCreditPair(role, name)))
	}
	if len(segments)%2 == 1 {
		values = append(values, model.TextValue("["+segments[len(segments)-1]+"]"))
	}
	return values, "", warnings
}

func renderCreditPair(role, name string) string {
	if role == "" {
		if tmpl, ok := locale.DefaultLookup("CreditPair_NoRole"); ok {
			return fmt.Sprintf(tmpl, name)
		}
		return ": " + name
	}
	if tmpl, ok := locale.DefaultLookup("CreditPair_Format"); ok {
		return fmt.Sprintf(tmpl, role, name)
	}
	return role + ": " + name
}
