package id3v2

import "io"

// ProbeHeader reads the next HeaderLen bytes of r and tries each known
// tag version against them, for callers that need just the header (e.g.
// to skip a tag entirely, or to build a Container without going through
// internal/registry's validator list). ok is false, with no error, if
// the bytes don't describe any of the three known versions; that is not
// itself a failure, since a stream legitimately may not start with a tag
// at all.
func ProbeHeader(r io.Reader) (header Header, ok bool, err error) {
	var peek [HeaderLen]byte
	if _, err := io.ReadFull(r, peek[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, false, nil
		}
		return Header{}, false, err
	}

	for _, v := range []Version{Version2, Version3, Version4} {
		if h, herr := parseHeader(v, peek); herr == nil {
			return h, true, nil
		}
	}
	return Header{}, false, nil
}
