package id3v2

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnsyncDecode_MalformedPairFromScenario(t *testing.T) {
	got, err := unsyncDecode([]byte{0xFF, 0x00, 0xFB})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0xFF, 0xFB}) {
		t.Errorf("got %x, want FFFB", got)
	}

	_, err = unsyncDecode([]byte{0xFF, 0xE0})
	if !errors.Is(err, ErrInvalidUnsynchronization) {
		t.Errorf("err = %v, want ErrInvalidUnsynchronization", err)
	}
}

func TestUnsyncDecode_PassesThroughPlainBytes(t *testing.T) {
	got, err := unsyncDecode([]byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("got %x", got)
	}
}

func TestUnsyncDecode_TrailingFFIsPassthrough(t *testing.T) {
	got, err := unsyncDecode([]byte{0x01, 0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0xFF}) {
		t.Errorf("got %x", got)
	}
}

func TestUnsyncEncode_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0xFF, 0x00},
		{0xFF, 0xE5},
		{0xFF, 0xFF, 0xFF},
		{0x01, 0xFF, 0x02, 0xFF, 0xFF, 0x03},
		bytes.Repeat([]byte{0xFF}, 16),
	}
	for _, want := range cases {
		encoded := unsyncEncode(want)
		got, err := unsyncDecode(encoded)
		if err != nil {
			t.Fatalf("unsyncDecode(unsyncEncode(%x)) errored: %v", want, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("round trip of %x: got %x via encoded %x", want, got, encoded)
		}
	}
}

func TestUnsyncEncode_NeverProducesFalseSyncOrStrayFF00(t *testing.T) {
	// After encoding, every 0xFF byte in the output must be immediately
	// followed by either end-of-data or a byte < 0xE0 whose presence
	// the decoder can unambiguously interpret (0x00 stuffing or a
	// genuine low byte).
	input := []byte{0x00, 0xFF, 0xFF, 0xE0, 0xFF, 0x00, 0xFF}
	encoded := unsyncEncode(input)
	for i, b := range encoded {
		if b != 0xFF {
			continue
		}
		if i+1 == len(encoded) {
			continue
		}
		if encoded[i+1] >= 0xE0 {
			t.Fatalf("encoded output %x has unescaped FF at %d followed by %#x", encoded, i, encoded[i+1])
		}
	}
}
