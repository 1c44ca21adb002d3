package tagscan

import "io"

// Source is anything tagscan can scan for containers. A plain io.Reader
// is enough; Scan reads only through io.Reader and does not check for
// seeking or random access, even when the source (an *os.File, an mmap
// region) offers it.
type Source interface {
	io.Reader
}
