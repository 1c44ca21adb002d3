package id3v2

import (
	"github.com/tagscan/tagscan/internal/byteutil"
	"github.com/tagscan/tagscan/internal/fields"
	"github.com/tagscan/tagscan/internal/registry"
)

// RegistryFormatName is "ID3v2" for every version; the three versions share one
// registry entry (spec.md: "ID3v2.2, v2.3 and v2.4 share a container
// parser"), distinguished by which of the three container validators
// matches.
const RegistryFormatName = "ID3v2"

// textFieldIDs are plain-text fields (spec.md §4.6's "ids beginning
// with T except the specializations") that this implementation knows
// by name, plus their legacy "X"-prefixed sort-order aliases.
var textFieldIDs = []string{
	"TALB", "TBPM", "TCOM", "TENC", "TEXT", "TIT1", "TIT2", "TIT3",
	"TMOO", "TOAL", "TOFN", "TOLY", "TOPE", "TOWN", "TPE1", "TPE2",
	"TPE3", "TPE4", "TPUB", "TRSN", "TRSO", "TSOA", "TSOP", "TSOT",
	"TSSE", "TSST",
	"XSOA", "XSOP", "XSOT",
}

var urlFieldIDs = []string{
	"WCOM", "WCOP", "WOAF", "WOAR", "WOAS", "WORS", "WPAY", "WPUB",
}

// binaryFieldIDs are frames this implementation recognizes by id (each
// has a Field_<ID> entry in the locale bundle, so resolveNames gives it
// a human name) but has no richer, structurally-aware decoder for. They
// decode via fields.RawBytes, spec.md §4.6's generic carry-through.
var binaryFieldIDs = []string{
	"AENC", "ASPI", "COMR", "ENCR", "EQU2", "ETCO", "GEOB", "GRID",
	"LINK", "MCDI", "MLLT", "OWNE", "POPM", "POSS", "PRIV", "RBUF",
	"RVA2", "RVRB", "SEEK", "SIGN", "SYLT", "SYTC", "USER",
}

// BuildFieldDecoders builds the complete id -> decoder table for every
// family in spec.md §4.6.
func BuildFieldDecoders() FieldDecoderTable {
	t := make(FieldDecoderTable)

	for _, id := range textFieldIDs {
		t[key(id)] = fields.Text
	}
	for _, id := range urlFieldIDs {
		t[key(id)] = fields.URL
	}
	for _, id := range binaryFieldIDs {
		t[key(id)] = fields.RawBytes
	}

	t[key("WXXX")] = fields.UserURL
	t[key("TXXX")] = fields.UserText
	t[key("COMM")] = fields.LongText
	t[key("USLT")] = fields.LongText
	t[key("APIC")] = fields.Image
	t[key("UFID")] = fields.UFID
	t[key("PCNT")] = fields.Counter
	t[key("TRCK")] = fields.OfNumber
	t[key("TPOS")] = fields.OfNumber
	t[key("TSRC")] = fields.ISRC
	t[key("TIPL")] = fields.CreditPair
	t[key("TMCL")] = fields.CreditPair
	t[key("TDLY")] = fields.Duration
	t[key("TLEN")] = fields.Duration
	t[key("TKEY")] = fields.MusicalKey
	t[key("TLAN")] = fields.Language
	t[key("TCON")] = fields.Genre
	t[key("TFLT")] = fields.NewLookupKey("TFLT")
	t[key("TMED")] = fields.NewLookupKey("TMED")
	t[key("TCMP")] = fields.NewLookupKey("TCMP")
	t[key("TCOP")] = fields.NewCopyright(fields.GlyphCopyright)
	t[key("TPRO")] = fields.NewCopyright(fields.GlyphProducedCopyright)
	t[key("TDEN")] = fields.Timestamp
	t[key("TDOR")] = fields.Timestamp
	t[key("TDRC")] = fields.Timestamp
	t[key("TDRL")] = fields.Timestamp
	t[key("TDTG")] = fields.Timestamp

	return t
}

func key(id string) byteutil.Key {
	return byteutil.NewKey([]byte(id))
}

// RegisterAll wires every ID3v2 container shape (v2.2, v2.3, v2.4) and
// every known field decoder into reg, implementing spec.md §6's
// `register_all`. It is idempotent only in the sense that calling it
// twice on a fresh registry produces the same bindings each time (the
// registry itself has last-writer-wins field semantics).
func RegisterAll(reg *registry.Registry) {
	decoders := BuildFieldDecoders()

	for _, v := range []Version{Version2, Version3, Version4} {
		version := v
		reg.RegisterContainer(RegistryFormatName, HeaderLen, func(peek []byte) (interface{}, bool) {
			var p [HeaderLen]byte
			copy(p[:], peek)
			header, err := parseHeader(version, p)
			if err != nil {
				return nil, false
			}
			c := NewContainer(version, header, decoders)
			c.SetFallbacks(fields.Text, fields.URL)
			return c, true
		})
	}

	for id, decoder := range decoders {
		d := decoder
		reg.RegisterField(RegistryFormatName, id, 0,
			func(peek []byte) (interface{}, bool) { return nil, true },
			func(header []byte) interface{} { return d },
		)
	}
}
