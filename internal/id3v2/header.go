package id3v2

import "errors"

const HeaderLen = 10

// ErrHeaderMismatch means the 10 peeked bytes do not describe a valid
// ID3v2 header for the version this validator handles; the engine should
// try the next validator (spec.md's HeaderMismatch error kind).
var ErrHeaderMismatch = errors.New("id3v2: header mismatch")

// Header is the decoded form of the fixed 10-byte ID3v2 header.
type Header struct {
	Version Version
	Minor   byte
	Flags   tagFlags
	Size    int // body size, in bytes, excluding this 10-byte header
}

// syncsafe decodes 4 big-endian bytes using only the low 7 bits of each,
// rejecting outright (rather than silently masking) any byte whose high
// bit is set — spec.md §4.4 requires the header be rejected in that case,
// not truncated.
func syncsafe(b []byte) (uint32, bool) {
	if b[0]&0x80 != 0 || b[1]&0x80 != 0 || b[2]&0x80 != 0 || b[3]&0x80 != 0 {
		return 0, false
	}
	return uint32(b[0])<<21 | uint32(b[1])<<14 | uint32(b[2])<<7 | uint32(b[3]), true
}

// parseHeader validates and decodes a 10-byte candidate header for the
// given version. It returns ErrHeaderMismatch for anything that should
// simply make this validator decline, per spec.md §4.4:
//   - the first 3 bytes aren't "ID3"
//   - byte 3 or byte 4 is 0xFF
//   - any length byte has its high bit set
func parseHeader(version Version, peek [HeaderLen]byte) (Header, error) {
	if string(peek[0:3]) != "ID3" {
		return Header{}, ErrHeaderMismatch
	}
	if peek[3] == 0xFF || peek[4] == 0xFF {
		return Header{}, ErrHeaderMismatch
	}
	if Version(peek[3]) != version {
		return Header{}, ErrHeaderMismatch
	}

	size, ok := syncsafe(peek[6:10])
	if !ok {
		return Header{}, ErrHeaderMismatch
	}

	return Header{
		Version: version,
		Minor:   peek[4],
		Flags:   decodeTagFlags(version, peek[5]),
		Size:    int(size),
	}, nil
}
