package tagscan

import (
	"io"
	"os"
	"testing"
)

func TestOpenMmap_ReadsFileContents(t *testing.T) {
	f, err := os.CreateTemp("", "tagscan-mmap-*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(f.Name())

	want := []byte("ID3\x04\x00\x00\x00\x00\x00\x00")
	if _, err := f.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f.Close()

	src, err := OpenMmap(f.Name())
	if err != nil {
		t.Fatalf("OpenMmap: %v", err)
	}
	defer src.Close()

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
