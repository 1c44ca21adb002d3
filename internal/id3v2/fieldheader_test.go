package id3v2

import "testing"

func peekFieldHeader(id string, size int, byte0, byte1 byte) [FieldHeaderLen]byte {
	var p [FieldHeaderLen]byte
	copy(p[0:4], id)
	p[4] = byte(size >> 21)
	p[5] = byte(size >> 14)
	p[6] = byte(size >> 7)
	p[7] = byte(size)
	p[8] = byte0
	p[9] = byte1
	return p
}

func TestIsPaddingSentinel(t *testing.T) {
	var p [FieldHeaderLen]byte
	if !isPaddingSentinel(p) {
		t.Error("expected all-zero id to be a padding sentinel")
	}
	p[0] = 'T'
	if isPaddingSentinel(p) {
		t.Error("expected non-zero id to not be a padding sentinel")
	}
}

func TestParseFieldHeader_V4(t *testing.T) {
	peek := peekFieldHeader("TIT2", 5, 0x00, 0x00)
	fh, err := parseFieldHeader(Version4, peek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fh.ID.String() != "TIT2" {
		t.Errorf("ID = %q, want TIT2", fh.ID.String())
	}
	if fh.Size != 5 {
		t.Errorf("Size = %d, want 5", fh.Size)
	}
}

func TestParseFieldHeader_BadSize(t *testing.T) {
	peek := peekFieldHeader("TIT2", 0, 0x00, 0x00)
	peek[4] = 0x80 // high bit set, invalid for 7-bit syncsafe
	_, err := parseFieldHeader(Version4, peek)
	if err != ErrFieldHeaderMalformed {
		t.Errorf("err = %v, want ErrFieldHeaderMalformed", err)
	}
}

func TestPreprocessFieldBody_GroupedAndEncrypted(t *testing.T) {
	flags := FieldFlags{Grouped: true, Encrypted: true}
	body := []byte{0x07, 0x02, 'h', 'i'}
	out := preprocessFieldBody(Version3, flags, body)
	if out.Group == nil || *out.Group != 0x07 {
		t.Errorf("Group = %v, want 0x07", out.Group)
	}
	if out.EncryptionMethod == nil || *out.EncryptionMethod != 0x02 {
		t.Errorf("EncryptionMethod = %v, want 0x02", out.EncryptionMethod)
	}
	if string(out.Payload) != "hi" {
		t.Errorf("Payload = %q, want \"hi\"", out.Payload)
	}
}

func TestPreprocessFieldBody_V4DataLengthIndicator(t *testing.T) {
	flags := FieldFlags{DataLengthIndicator: true}
	body := []byte{0x00, 0x00, 0x00, 0x05, 'p', 'a', 'y', 'l'}
	out := preprocessFieldBody(Version4, flags, body)
	if out.DecompressedLen == nil || *out.DecompressedLen != 5 {
		t.Errorf("DecompressedLen = %v, want 5", out.DecompressedLen)
	}
	if string(out.Payload) != "payl" {
		t.Errorf("Payload = %q, want \"payl\"", out.Payload)
	}
}

func TestPreprocessFieldBody_V4Unsync(t *testing.T) {
	flags := FieldFlags{Unsynchronized: true}
	body := []byte{0xFF, 0x00, 0xFB}
	out := preprocessFieldBody(Version4, flags, body)
	if out.InvalidUnsync {
		t.Fatal("did not expect InvalidUnsync")
	}
	if string(out.Payload) != "\xFF\xFB" {
		t.Errorf("Payload = %x, want FFFB", out.Payload)
	}
}

func TestPreprocessFieldBody_V4InvalidUnsync(t *testing.T) {
	flags := FieldFlags{Unsynchronized: true}
	body := []byte{0xFF, 0xE0}
	out := preprocessFieldBody(Version4, flags, body)
	if !out.InvalidUnsync {
		t.Error("expected InvalidUnsync")
	}
}

func TestPreprocessFieldBody_NoFlagsPassesThrough(t *testing.T) {
	out := preprocessFieldBody(Version3, FieldFlags{}, []byte("plain"))
	if string(out.Payload) != "plain" {
		t.Errorf("Payload = %q, want \"plain\"", out.Payload)
	}
	if out.Group != nil || out.EncryptionMethod != nil || out.DecompressedLen != nil {
		t.Error("expected no optional fields set")
	}
}
