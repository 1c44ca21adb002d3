package fields

import "testing"

func TestRawBytes(t *testing.T) {
	values, subtitle, warnings := RawBytes([]byte{0x01, 0x02})
	if subtitle != "" || warnings != nil {
		t.Errorf("subtitle/warnings = %q %v", subtitle, warnings)
	}
	if len(values) != 1 || string(values[0].Bytes) != "\x01\x02" {
		t.Errorf("values = %+v", values)
	}
}
