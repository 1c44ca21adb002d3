package id3v2

import (
	"errors"

	"github.com/tagscan/tagscan/internal/byteutil"
)

// ErrExtendedHeaderMalformed means an extended header's declared shape
// (a sub-flag's fixed data-byte count) didn't match what spec.md §4.4
// requires.
var ErrExtendedHeaderMalformed = errors.New("id3v2: malformed extended header")

// ExtendedHeader is the decoded form of the optional ID3v2 extended
// header. Only the fields meaningful to callers are kept; padding size
// (v2.3) and the raw flag bytes (v2.4) are consumed but not retained.
type ExtendedHeader struct {
	CRC          *uint32
	TagIsUpdate  bool
	Restrictions *byte
}

const (
	extFlagV3CRCPresent = 1 << 7 // bit 0, high-bit-first within the byte
)

const (
	extFlagV4TagIsUpdate  = 1 << 6 // bit 1, high-bit-first
	extFlagV4CRCPresent   = 1 << 5 // bit 2
	extFlagV4Restrictions = 1 << 4 // bit 3
)

// parseExtendedHeaderV3 decodes the v2.3 extended header: a 4-byte plain
// big-endian size of the remainder, 2 flag bytes, a 4-byte padding size,
// and (if the CRC flag is set) a 4-byte plain stored CRC.
func parseExtendedHeaderV3(body []byte) (ExtendedHeader, int, error) {
	if len(body) < 10 {
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}
	size, err := byteutil.ParseUnsignedBE(body[0:4], 8)
	if err != nil {
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}
	flags := body[4]
	consumed := 4 + int(size)
	if consumed > len(body) {
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}

	var eh ExtendedHeader
	if flags&extFlagV3CRCPresent != 0 {
		// The CRC follows the padding size and is counted in the size of
		// the remainder.
		if consumed < 14 {
			return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
		}
		crc, err := byteutil.ParseUnsignedBE(body[10:14], 8)
		if err != nil {
			return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
		}
		eh.CRC = &crc
	}
	return eh, consumed, nil
}

// parseExtendedHeaderV4 decodes the v2.4 extended header: a 4-byte
// syncsafe size (including the size field itself), a flag-byte count
// byte, that many flag bytes, then per-flag variable-length data in bit
// order: reserved, tag-is-update (0 data bytes), CRC (5-byte syncsafe),
// restrictions (1 byte).
func parseExtendedHeaderV4(body []byte) (ExtendedHeader, int, error) {
	if len(body) < 6 {
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}
	size, err := byteutil.ParseUnsignedBE(body[0:4], 7)
	if err != nil {
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}
	numFlagBytes := int(body[4])
	if numFlagBytes != 1 {
		// The format defines exactly one flag byte; anything else is
		// not a layout this parser understands.
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}
	flags := body[5]
	pos := 6

	var eh ExtendedHeader
	if flags&extFlagV4TagIsUpdate != 0 {
		if pos >= len(body) || body[pos] != 0x00 {
			return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
		}
		eh.TagIsUpdate = true
		pos++
	}
	if flags&extFlagV4CRCPresent != 0 {
		if pos+6 > len(body) || body[pos] != 0x05 {
			return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
		}
		// Five 7-bit bytes carry 35 bits; the top three fall outside a
		// 32-bit CRC and are dropped.
		low, err := byteutil.ParseUnsignedBE(body[pos+2:pos+6], 7)
		if err != nil {
			return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
		}
		crc := uint32(body[pos+1]&0x7F)<<28 | low
		eh.CRC = &crc
		pos += 6
	}
	if flags&extFlagV4Restrictions != 0 {
		if pos+2 > len(body) || body[pos] != 0x01 {
			return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
		}
		restrictions := body[pos+1]
		eh.Restrictions = &restrictions
		pos += 2
	}

	if int(size) > len(body) {
		return ExtendedHeader{}, 0, ErrExtendedHeaderMalformed
	}
	// The v2.4 size field counts itself; the declared size is
	// authoritative for how much of the body it consumes, even if the
	// per-flag data we parsed found a shorter shape.
	consumed := int(size)
	if consumed < pos {
		consumed = pos
	}
	return eh, consumed, nil
}
