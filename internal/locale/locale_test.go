package locale

import "testing"

func TestDefaultLookup_KnownKey(t *testing.T) {
	got, ok := DefaultLookup("Field_TIT2")
	if !ok {
		t.Fatal("expected Field_TIT2 to be present in the default bundle")
	}
	if got != "Title" {
		t.Errorf("Field_TIT2 = %q, want %q", got, "Title")
	}
}

func TestDefaultLookup_UnknownKey(t *testing.T) {
	_, ok := DefaultLookup("Field_NOPE")
	if ok {
		t.Error("expected ok=false for an unregistered key")
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load("not = valid = toml = [[[")
	if err == nil {
		t.Error("expected an error decoding malformed TOML")
	}
}

func TestLoad_CustomBundle(t *testing.T) {
	b, err := Load(`
[strings]
Greeting = "hola"
`)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := b.Get("Greeting")
	if !ok || got != "hola" {
		t.Errorf("Get(Greeting) = %q, %v", got, ok)
	}
}
