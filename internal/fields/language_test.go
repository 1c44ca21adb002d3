package fields

import "testing"

func TestLanguage_PassesThrough(t *testing.T) {
	payload := append([]byte{0x00}, []byte("eng")...)
	values, _, _ := Language(payload)
	if len(values) != 1 || values[0].Text != "eng" {
		t.Errorf("values = %+v", values)
	}
}
