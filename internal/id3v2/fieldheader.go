package id3v2

import (
	"errors"

	"github.com/tagscan/tagscan/internal/byteutil"
)

const FieldHeaderLen = 10

// ErrFieldHeaderMalformed means the 10 peeked bytes can't be decoded as
// a field header at all (a bad length field); this is distinct from
// "unrecognized id", which still parses fine and yields UnknownField.
var ErrFieldHeaderMalformed = errors.New("id3v2: malformed field header")

// FieldHeader is the decoded form of a 10-byte ID3v2 field header.
type FieldHeader struct {
	ID           byteutil.Key
	Size         int
	Flags        FieldFlags
	RawFlagByte0 byte
	RawFlagByte1 byte
}

// isPaddingSentinel reports whether the 4-byte id is all zero, which
// spec.md §4.5 defines as "stop: the remainder of the body is padding".
func isPaddingSentinel(peek [FieldHeaderLen]byte) bool {
	return peek[0] == 0 && peek[1] == 0 && peek[2] == 0 && peek[3] == 0
}

// parseFieldHeader decodes a 10-byte candidate field header for the
// given container version.
func parseFieldHeader(v Version, peek [FieldHeaderLen]byte) (FieldHeader, error) {
	if sizeBits(v) == 7 {
		for _, b := range peek[4:8] {
			if b&0x80 != 0 {
				return FieldHeader{}, ErrFieldHeaderMalformed
			}
		}
	}
	size, err := byteutil.ParseUnsignedBE(peek[4:8], sizeBits(v))
	if err != nil {
		return FieldHeader{}, ErrFieldHeaderMalformed
	}
	return FieldHeader{
		ID:           byteutil.NewKey(peek[0:4]),
		Size:         int(size),
		Flags:        decodeFieldFlags(v, peek[8], peek[9]),
		RawFlagByte0: peek[8],
		RawFlagByte1: peek[9],
	}, nil
}

// PreprocessedBody is the result of applying the common body
// preprocessing steps of spec.md §4.5, in order: v2.4 field-level
// de-unsynchronization, group-byte consumption, encryption-method-byte
// consumption, and data-length-indicator consumption.
type PreprocessedBody struct {
	Payload          []byte
	Group            *byte
	EncryptionMethod *byte
	DecompressedLen  *int
	InvalidUnsync    bool
}

// preprocessFieldBody applies the common preprocessing steps shared by
// every field decoder, regardless of family. The caller is responsible
// for routing InvalidUnsync into an UnknownField per spec.md §4.7.
func preprocessFieldBody(v Version, flags FieldFlags, body []byte) PreprocessedBody {
	var out PreprocessedBody

	if v == Version4 && flags.Unsynchronized {
		decoded, err := unsyncDecode(body)
		if err != nil {
			out.InvalidUnsync = true
			out.Payload = decoded
			return out
		}
		body = decoded
	}

	if flags.Grouped && len(body) >= 1 {
		g := body[0]
		out.Group = &g
		body = body[1:]
	}

	if flags.Encrypted && len(body) >= 1 {
		m := body[0]
		out.EncryptionMethod = &m
		body = body[1:]
	}

	if v == Version4 && flags.DataLengthIndicator && len(body) >= 4 {
		n, err := byteutil.ParseUnsignedBE(body[0:4], 7)
		if err == nil {
			length := int(n)
			out.DecompressedLen = &length
		}
		body = body[4:]
	}

	out.Payload = body
	return out
}
