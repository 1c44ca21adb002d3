package tagscan

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// MmapSource is a Source backed by a memory-mapped file, for scanning
// large local files without copying them into a read buffer first.
// Grounded on saferwall-pe/file.go's use of mmap.Map to back its own
// binary-format parser the same way.
type MmapSource struct {
	data mmap.MMap
	*bytes.Reader
}

// OpenMmap memory-maps name read-only and returns a Source over its
// full contents, positioned at the start. Callers must call Close when
// done to release the mapping.
func OpenMmap(name string) (*MmapSource, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	return &MmapSource{data: data, Reader: bytes.NewReader(data)}, nil
}

// Close releases the memory mapping. The MmapSource must not be used
// again afterward.
func (s *MmapSource) Close() error {
	return s.data.Unmap()
}
