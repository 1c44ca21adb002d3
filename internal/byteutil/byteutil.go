// Package byteutil holds the small byte-level helpers shared by the
// registry, engine and ID3v2 packages: a short-read-tolerant reader and
// a big-endian unsigned integer decoder with a configurable bit width
// per byte (7 for syncsafe ID3v2.4 integers, 8 for plain ID3v2.3 ones).
package byteutil

import (
	"errors"
	"io"
)

// ErrOverflowTooLarge is returned by ParseUnsignedBE when the requested
// bit width and byte count cannot fit in a uint32.
var ErrOverflowTooLarge = errors.New("byteutil: integer overflows 32 bits")

// Key is a four-byte identifier, used verbatim as a map key for format
// and field names. Go's native array equality and hashing make a
// dedicated hash type unnecessary.
type Key [4]byte

// NewKey builds a Key from a byte slice of length 4. It panics if b is
// shorter than 4 bytes, since every caller in this module already knows
// the slice came from a fixed-size header.
func NewKey(b []byte) Key {
	var k Key
	copy(k[:], b[:4])
	return k
}

func (k Key) String() string {
	return string(k[:])
}

// ReadExactOrLess reads up to n bytes from r, stopping early (without
// error) if the source ends first. The caller inspects the length of the
// returned slice to tell a short read from a full one; there is no
// separate error signal for a partial read.
func ReadExactOrLess(r io.Reader, n int) []byte {
	buf := make([]byte, n)
	read, _ := io.ReadFull(r, buf)
	return buf[:read]
}

// ParseUnsignedBE combines len(data) big-endian bytes, each contributing
// only its low bitsPerByte bits, into a uint32. This covers both the
// syncsafe 7-bit-per-byte ID3v2.4 encoding and the plain 8-bit-per-byte
// ID3v2.3 encoding.
func ParseUnsignedBE(data []byte, bitsPerByte uint) (uint32, error) {
	if bitsPerByte*uint(len(data)) > 32 {
		return 0, ErrOverflowTooLarge
	}

	mask := byte(1<<bitsPerByte) - 1

	var v uint32
	for _, b := range data {
		v = v<<bitsPerByte | uint32(b&mask)
	}
	return v, nil
}
