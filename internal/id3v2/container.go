package id3v2

import (
	"io"

	"github.com/tagscan/tagscan/internal/byteutil"
	"github.com/tagscan/tagscan/internal/fields"
	"github.com/tagscan/tagscan/internal/model"
)

// FieldDecoder turns an already-preprocessed field payload (group byte,
// encryption byte and data-length-indicator already stripped per
// spec.md §4.5; a family's encoding byte, if it has one, is still the
// first payload byte) into an ordered Values list plus an
// optional subtitle and any non-fatal warnings. One is registered per
// field family in internal/fields.
type FieldDecoder func(payload []byte) (values []model.Value, subtitle string, warnings []string)

// FieldDecoderTable maps a field's four-byte id to the decoder for its
// family. ID3v2 field dispatch is a direct id lookup rather than a
// peek/validate chain, so it is a plain map rather than going through
// internal/registry's validator machinery (that package is exercised
// instead for top-level container-format discovery, where several
// container shapes genuinely compete for the same stream position).
type FieldDecoderTable map[byteutil.Key]FieldDecoder

// Container parses one ID3v2 tag body. It implements engine.Parseable,
// so a container validator can hand it the tag body once the 10-byte
// header has matched.
type Container struct {
	version      Version
	header       Header
	decoders     FieldDecoderTable
	fallbackText FieldDecoder // used for unregistered ids starting with 'T'
	fallbackURL  FieldDecoder // used for unregistered ids starting with 'W'
	result       *model.Container
}

// NewContainer builds a Container ready to receive its body via Parse.
func NewContainer(version Version, header Header, decoders FieldDecoderTable) *Container {
	return &Container{
		version:  version,
		header:   header,
		decoders: decoders,
		result: &model.Container{
			Format:       formatName(version),
			VersionMajor: int(version),
			VersionMinor: int(header.Minor),
			Length:       header.Size,
			Flags:        header.Flags.byte(),
			Experimental: header.Flags.experimental,
			HasFooter:    header.Flags.footer,
		},
	}
}

// formatName renders the container-level Format string spec.md's
// concrete scenarios use: "ID3v2.2", "ID3v2.3", "ID3v2.4".
func formatName(v Version) string {
	switch v {
	case Version2:
		return "ID3v2.2"
	case Version4:
		return "ID3v2.4"
	default:
		return "ID3v2.3"
	}
}

// SetFallbacks installs the generic plain-text and URL decoders used
// for any recognized-by-prefix-only id not present in the decoder
// table (spec.md §4.6: "ids beginning with T" / "W??? ... except
// WXXX"). Either may be nil to disable that fallback.
func (c *Container) SetFallbacks(text, url FieldDecoder) {
	c.fallbackText = text
	c.fallbackURL = url
}

// Result returns the parsed container. Valid only after Parse returns.
func (c *Container) Result() *model.Container { return c.result }

// BodyLen reports how many further bytes the engine should read and hand
// to Parse: exactly the tag size declared in the 10-byte header.
func (c *Container) BodyLen() int { return c.header.Size }

func (c *Container) warn(msg string) {
	c.result.Warnings = append(c.result.Warnings, msg)
}

// Parse implements engine.Parseable. r carries exactly header.Size
// bytes: the tag body, already separated from whatever follows it in
// the stream. A zero-size tag is the exception: the engine hands it the
// live stream, so Parse reads nothing from r in that case.
func (c *Container) Parse(r io.Reader) error {
	if c.header.Size == 0 {
		return nil
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if c.header.Flags.unsync {
		decoded, uerr := unsyncDecode(body)
		if uerr != nil {
			c.warn("invalid unsynchronization in tag body; remainder lost")
		}
		body = decoded
	}

	crcSubject := body

	if c.header.Flags.extended {
		var consumed int
		var eh ExtendedHeader
		var eerr error
		switch c.version {
		case Version4:
			eh, consumed, eerr = parseExtendedHeaderV4(body)
		default:
			eh, consumed, eerr = parseExtendedHeaderV3(body)
		}
		if eerr != nil {
			c.warn("malformed extended header; fields lost")
			return nil
		}
		c.result.TagIsUpdate = eh.TagIsUpdate
		c.result.TagCRC = eh.CRC
		c.result.Restrictions = eh.Restrictions
		body = body[consumed:]
		if c.version == Version3 {
			// The v2.3 CRC covers the frames, excluding the extended
			// header and trailing padding; padding is trimmed below
			// once we know how far the field loop actually got.
			crcSubject = body
		}
	}

	fieldsEnd := c.parseFields(body)

	if c.result.TagCRC != nil {
		subject := crcSubject
		if c.version != Version4 {
			subject = body[:fieldsEnd]
		}
		if CRC32(subject) != *c.result.TagCRC {
			c.warn("CRC mismatch")
		}
	}

	return nil
}

// parseFields walks the (already de-unsynchronized, extended-header
// stripped) tag body field by field and returns how many bytes were
// consumed by recognized fields, for CRC purposes.
func (c *Container) parseFields(body []byte) int {
	offset := 0
	for offset+FieldHeaderLen <= len(body) {
		var peek [FieldHeaderLen]byte
		copy(peek[:], body[offset:offset+FieldHeaderLen])

		if isPaddingSentinel(peek) {
			break
		}

		fh, err := parseFieldHeader(c.version, peek)
		if err != nil {
			c.warn("malformed field header; remainder lost")
			break
		}

		bodyStart := offset + FieldHeaderLen
		size := fh.Size
		truncated := false
		if bodyStart+size > len(body) {
			size = len(body) - bodyStart
			truncated = true
		}
		raw := body[bodyStart : bodyStart+size]

		field := c.decodeField(fh, peek, raw)
		if truncated {
			field.Warnings = append(field.Warnings, "field truncated by end of tag body")
		}
		c.result.Fields = append(c.result.Fields, field)

		offset = bodyStart + size
	}
	return offset
}

func (c *Container) decodeField(fh FieldHeader, headerBytes [FieldHeaderLen]byte, raw []byte) model.Field {
	field := model.Field{
		Header:     append([]byte(nil), headerBytes[:]...),
		Data:       raw,
		SystemName: [4]byte(fh.ID),
		Length:     fh.Size,
		Flags:      uint16(fh.RawFlagByte0)<<8 | uint16(fh.RawFlagByte1),
	}

	pre := preprocessFieldBody(c.version, fh.Flags, raw)
	field.Group = pre.Group

	if pre.InvalidUnsync {
		field.Unknown = true
		field.Warnings = append(field.Warnings, "invalid unsynchronization in field body")
		return field
	}

	decoder, ok := c.decoders[fh.ID]
	if !ok {
		decoder, ok = c.fallbackFor(fh.ID)
	}
	if !ok {
		field.Unknown = true
		return field
	}

	values, subtitle, warnings := decoder(pre.Payload)
	field.Values = values
	field.Subtitle = subtitle
	field.Warnings = append(field.Warnings, warnings...)

	if fh.ID == apicID {
		// spec.md §4.6: APIC's Name is the category's human name, not
		// the generic "Attached picture" label resolveNames would give
		// it from SystemName alone.
		if category, ok := fields.APICCategory(pre.Payload); ok {
			if name, ok := fields.PictureCategoryName(category); ok {
				field.Name = name
			}
		}
	}

	return field
}

var apicID = byteutil.NewKey([]byte("APIC"))

// fallbackFor resolves an id not present in the decoder table against
// the generic by-prefix families of spec.md §4.6.
func (c *Container) fallbackFor(id byteutil.Key) (FieldDecoder, bool) {
	switch {
	case id[0] == 'T' && c.fallbackText != nil:
		return c.fallbackText, true
	case id[0] == 'W' && c.fallbackURL != nil:
		return c.fallbackURL, true
	default:
		return nil, false
	}
}
