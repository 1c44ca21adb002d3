package id3v2

import (
	"bytes"
	"testing"
)

func TestProbeHeader_MatchesV24(t *testing.T) {
	peek := []byte{'I', 'D', '3', 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x11}
	h, ok, err := ProbeHeader(bytes.NewReader(peek))
	if err != nil || !ok {
		t.Fatalf("ProbeHeader: ok=%v err=%v", ok, err)
	}
	if h.Version != Version4 || h.Size != 0x11 {
		t.Errorf("h = %+v", h)
	}
}

func TestProbeHeader_NoMatch(t *testing.T) {
	_, ok, err := ProbeHeader(bytes.NewReader([]byte("NOT AN ID3 HEADR")))
	if err != nil {
		t.Fatalf("ProbeHeader: %v", err)
	}
	if ok {
		t.Error("expected no match")
	}
}

func TestProbeHeader_ShortStreamIsNotError(t *testing.T) {
	_, ok, err := ProbeHeader(bytes.NewReader([]byte("ID3")))
	if err != nil {
		t.Fatalf("ProbeHeader: %v", err)
	}
	if ok {
		t.Error("expected no match on a short stream")
	}
}
