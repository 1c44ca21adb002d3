package id3v2

import "testing"

func TestParseExtendedHeaderV3_NoCRC(t *testing.T) {
	body := []byte{
		0x00, 0x00, 0x00, 0x06, // size of remainder = 6
		0x00, 0x00, // flags: no CRC
		0x00, 0x00, 0x00, 0x00, // padding size
		0xAA, 0xBB, // trailing field bytes
	}
	eh, consumed, err := parseExtendedHeaderV3(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eh.CRC != nil {
		t.Errorf("expected no CRC, got %v", *eh.CRC)
	}
	if consumed != 10 {
		t.Errorf("consumed = %d, want 10", consumed)
	}
}

func TestParseExtendedHeaderV3_WithCRC(t *testing.T) {
	body := []byte{
		0x00, 0x00, 0x00, 0x0A, // size of remainder = 10 (6 + 4-byte CRC)
		0x80, 0x00, // flags: CRC present (bit 0 high-bit-first)
		0x00, 0x00, 0x00, 0x00, // padding size
		0x00, 0x00, 0x01, 0x23, // stored CRC
	}
	eh, consumed, err := parseExtendedHeaderV3(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eh.CRC == nil || *eh.CRC != 0x123 {
		t.Errorf("CRC = %v, want 0x123", eh.CRC)
	}
	if consumed != 14 {
		t.Errorf("consumed = %d, want 14", consumed)
	}
}

func TestParseExtendedHeaderV4_TagIsUpdateAndRestrictions(t *testing.T) {
	body := []byte{
		0x00, 0x00, 0x00, 0x09, // syncsafe size including itself
		0x01,       // one flag byte follows
		0x50,       // flags: bit1 tag-is-update, bit3 restrictions
		0x00,       // tag-is-update data (must be 0x00)
		0x01, 0xAB, // restrictions: data length 1, restrictions byte
	}
	eh, consumed, err := parseExtendedHeaderV4(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eh.TagIsUpdate {
		t.Error("expected TagIsUpdate = true")
	}
	if eh.Restrictions == nil || *eh.Restrictions != 0xAB {
		t.Errorf("Restrictions = %v, want 0xAB", eh.Restrictions)
	}
	if consumed != 9 {
		t.Errorf("consumed = %d, want 9", consumed)
	}
}

func TestParseExtendedHeaderV4_CRCPresent(t *testing.T) {
	body := []byte{
		0x00, 0x00, 0x00, 0x0C, // size
		0x01, // one flag byte
		0x20, // bit2 CRC present
		0x05, // data length must be 5
		0x00, 0x00, 0x00, 0x00, 0x7F, // syncsafe CRC = 0x7F
	}
	eh, consumed, err := parseExtendedHeaderV4(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eh.CRC == nil || *eh.CRC != 0x7F {
		t.Errorf("CRC = %v, want 0x7F", eh.CRC)
	}
	if consumed != 12 {
		t.Errorf("consumed = %d, want 12", consumed)
	}
}

func TestParseExtendedHeaderV4_BadCRCDataLengthByte(t *testing.T) {
	body := []byte{
		0x00, 0x00, 0x00, 0x0C,
		0x01,
		0x20,
		0x04, // wrong: must be 0x05
		0x00, 0x00, 0x00, 0x00, 0x7F,
	}
	_, _, err := parseExtendedHeaderV4(body)
	if err != ErrExtendedHeaderMalformed {
		t.Errorf("err = %v, want ErrExtendedHeaderMalformed", err)
	}
}

func TestParseExtendedHeaderV3_ShortBody(t *testing.T) {
	_, _, err := parseExtendedHeaderV3([]byte{0x00, 0x00})
	if err != ErrExtendedHeaderMalformed {
		t.Errorf("err = %v, want ErrExtendedHeaderMalformed", err)
	}
}
