package fields

import "testing"

func TestRenderLookupKey_Fallback(t *testing.T) {
	got := renderLookupKey("TMED", "XYZ/UNKNOWN.CODE")
	if got != "[XYZ/UNKNOWN.CODE]" {
		t.Errorf("got %q", got)
	}
}

func TestNewLookupKey_Decode(t *testing.T) {
	decode := NewLookupKey("TCMP")
	payload := append([]byte{0x00}, []byte("1")...)
	values, _, _ := decode(payload)
	if len(values) != 1 {
		t.Fatalf("values = %+v", values)
	}
}
