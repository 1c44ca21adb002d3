package tagscan

import (
	"bytes"
	"testing"
	"time"
)

func TestEstimateDuration_WithLeadingTag(t *testing.T) {
	id3Header := []byte{'I', 'D', '3', 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00} // empty v2.4 tag
	frame := []byte{0xFF, 0xFB, 0x90, 0x00}                                      // MPEG1 Layer III, 128kbps, 44100Hz, stereo
	buf := append(append([]byte{}, id3Header...), frame...)

	const totalSize = 16010 // 10-byte tag + 16000 bytes of 128kbps audio

	est, err := EstimateDuration(bytes.NewReader(buf), totalSize)
	if err != nil {
		t.Fatalf("EstimateDuration: %v", err)
	}
	if est.TagSize != 10 {
		t.Errorf("TagSize = %d, want 10", est.TagSize)
	}
	if est.Tag == nil {
		t.Fatal("expected a leading tag to be parsed")
	}
	if est.Audio.BitRate != 128 {
		t.Errorf("BitRate = %d, want 128", est.Audio.BitRate)
	}
	if est.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", est.Duration)
	}
}

func TestEstimateDuration_NoLeadingTag(t *testing.T) {
	frame := []byte{0xFF, 0xFB, 0x90, 0x00}

	est, err := EstimateDuration(bytes.NewReader(frame), 16000)
	if err != nil {
		t.Fatalf("EstimateDuration: %v", err)
	}
	if est.Tag != nil {
		t.Errorf("expected no tag, got %+v", est.Tag)
	}
	if est.TagSize != 0 {
		t.Errorf("TagSize = %d, want 0", est.TagSize)
	}
	if est.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", est.Duration)
	}
}
