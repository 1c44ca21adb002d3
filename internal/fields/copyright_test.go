package fields

import "testing"

func TestNewCopyright(t *testing.T) {
	decode := NewCopyright(GlyphCopyright)
	payload := append([]byte{0x00}, []byte("2024 Example Corp")...)
	values, _, _ := decode(payload)
	if len(values) != 1 || values[0].Text != "© 2024 Example Corp" {
		t.Errorf("values = %+v", values)
	}
}

func TestNewCopyright_Produced(t *testing.T) {
	decode := NewCopyright(GlyphProducedCopyright)
	payload := append([]byte{0x00}, []byte("2024 Label")...)
	values, _, _ := decode(payload)
	if len(values) != 1 || values[0].Text != "℗ 2024 Label" {
		t.Errorf("values = %+v", values)
	}
}
