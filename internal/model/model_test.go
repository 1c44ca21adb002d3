package model

import "testing"

func TestValue_AsAccessors(t *testing.T) {
	text := TextValue("hello")
	if s, ok := text.AsText(); !ok || s != "hello" {
		t.Errorf("AsText = %q, %v", s, ok)
	}
	if _, ok := text.AsInteger(); ok {
		t.Error("AsInteger should fail on a text value")
	}

	n := IntegerValue(42)
	if v, ok := n.AsInteger(); !ok || v != 42 {
		t.Errorf("AsInteger = %d, %v", v, ok)
	}
	if _, ok := n.AsText(); ok {
		t.Error("AsText should fail on an integer value")
	}
}

func TestKind_String(t *testing.T) {
	if KindText.String() != "Text" {
		t.Errorf("KindText.String() = %q", KindText.String())
	}
}
