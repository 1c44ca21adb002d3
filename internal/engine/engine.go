// Package engine implements the format-dispatching scan loop of spec §4.3:
// peek a shared scratch buffer against an ordered list of validators,
// instantiate whichever one recognizes the bytes in front of it, hand it
// its body, and repeat. Dispatch uses TryOnce for top-level container
// discovery. Field iteration inside an ID3v2 container does not go
// through this package: internal/id3v2 walks the tag body itself and
// recognizes the padding sentinel there.
package engine

import (
	"bytes"
	"io"

	"github.com/tagscan/tagscan/internal/byteutil"
)

// Parseable is produced by a validator once it recognizes the bytes in
// front of it. Parse receives either the item's fully-read body (the
// common case) or, when the validator reported a body length of zero,
// the live, unconsumed stream
// for a self-terminating format to read from directly.
type Parseable interface {
	Parse(r io.Reader) error
}

// Validator is the peek/decide primitive of spec §4.3: read PeekLen
// bytes, then either decline or return a Parseable plus the number of
// further body bytes the engine should read on its behalf (0 means the
// format is self-terminating and will read its own body from the stream).
type Validator struct {
	PeekLen int
	Try     func(peek []byte) (item Parseable, bodyLen int, ok bool)
}

// TryOnce runs the validators, in order, against r. It grows a shared
// scratch buffer only as far as each validator's PeekLen requires, so
// validators with a shorter PeekLen than their predecessor reuse the
// bytes already read. A validator whose PeekLen exceeds what remains in
// the stream is simply skipped — a short stream at peek time is not an
// error, it just means that validator cannot match.
func TryOnce(r io.Reader, validators []Validator) (item Parseable, bodyLen int, matched bool) {
	var scratch []byte

	for _, v := range validators {
		if len(scratch) < v.PeekLen {
			more := byteutil.ReadExactOrLess(r, v.PeekLen-len(scratch))
			scratch = append(scratch, more...)
			if len(scratch) < v.PeekLen {
				continue
			}
		}

		it, n, ok := v.Try(scratch[:v.PeekLen])
		if !ok {
			continue
		}

		return it, n, true
	}

	return nil, 0, false
}

// Dispatch repeatedly calls TryOnce, reading and parsing each matched
// item's body, until no validator matches. It is the top-level container
// discovery loop; it returns every container it could instantiate, plus
// an error only if reading or parsing a matched item's body failed
// outright (a partial/short body is not itself an error — see ParseBody).
func Dispatch(r io.Reader, validators []Validator) ([]Parseable, error) {
	var results []Parseable

	for {
		item, bodyLen, matched := TryOnce(r, validators)
		if !matched {
			return results, nil
		}

		if err := ParseBody(item, r, bodyLen); err != nil {
			return results, err
		}

		results = append(results, item)
	}
}

// ParseBody reads bodyLen further bytes (or, if bodyLen is 0, hands the
// live stream straight to the self-terminating item) and parses them.
func ParseBody(item Parseable, r io.Reader, bodyLen int) error {
	if bodyLen == 0 {
		return item.Parse(r)
	}

	body := byteutil.ReadExactOrLess(r, bodyLen)
	return item.Parse(bytes.NewReader(body))
}
