package id3v2

import "errors"

// ErrInvalidUnsynchronization is spec.md's InvalidUnsynchronization error
// kind: a 0xFF byte followed by a byte >= 0xE0, which the unsynchronization
// scheme never produces.
var ErrInvalidUnsynchronization = errors.New("id3v2: invalid unsynchronization byte pair")

// unsyncDecode reverses the byte-stuffing scheme of spec.md §4.4: every
// 0xFF is emitted as-is; if it is followed by 0x00, that padding byte is
// dropped; if it is followed by a byte >= 0xE0, the input is malformed.
func unsyncDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		out = append(out, b)
		if b != 0xFF {
			continue
		}
		if i+1 >= len(data) {
			continue
		}
		next := data[i+1]
		if next == 0x00 {
			i++
			continue
		}
		if next >= 0xE0 {
			return out, ErrInvalidUnsynchronization
		}
	}
	return out, nil
}

// unsyncEncode applies the inverse transform: after every 0xFF, a 0x00 is
// inserted if that 0xFF is the last byte of the input, or if the next
// byte is >= 0xE0 or == 0x00 (to prevent the decoder from treating it as
// the stuffing byte or mistaking the pair for a false sync).
func unsyncEncode(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i, b := range data {
		out = append(out, b)
		if b != 0xFF {
			continue
		}

		last := i+1 >= len(data)
		if last || data[i+1] >= 0xE0 || data[i+1] == 0x00 {
			out = append(out, 0x00)
		}
	}
	return out
}
