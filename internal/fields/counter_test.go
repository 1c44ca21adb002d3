package fields

import "testing"

func TestParseClampedBE64_NoOverflow(t *testing.T) {
	n, overflowed := parseClampedBE64([]byte{0x00, 0x01, 0x00})
	if overflowed {
		t.Fatal("did not expect overflow")
	}
	if n != 0x0100 {
		t.Errorf("n = %d, want 256", n)
	}
}

func TestParseClampedBE64_OverflowClampsAndWarns(t *testing.T) {
	payload := make([]byte, 16)
	for i := range payload {
		payload[i] = 0xFF
	}
	values, _, warnings := Counter(payload)
	if len(warnings) == 0 {
		t.Fatal("expected an overflow warning")
	}
	if len(values) != 1 || values[0].Integer != int64(^uint64(0)) {
		t.Errorf("values = %+v", values)
	}
}

func TestParseClampedBE64_LeadingZerosIgnored(t *testing.T) {
	payload := make([]byte, 12)
	payload[11] = 0x05
	n, overflowed := parseClampedBE64(payload)
	if overflowed {
		t.Fatal("leading zero padding should not count toward overflow")
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}
