package registry

import (
	"testing"

	"github.com/tagscan/tagscan/internal/byteutil"
)

func TestRegisterField_LastWriterWins(t *testing.T) {
	r := New()
	id := byteutil.NewKey([]byte("TIT2"))

	r.RegisterField("ID3v2", id, 10, nil, func([]byte) interface{} { return "first" })
	r.RegisterField("ID3v2", id, 10, nil, func([]byte) interface{} { return "second" })

	d, ok := r.FieldDescriptor("ID3v2", id)
	if !ok {
		t.Fatal("expected descriptor to be found")
	}
	if got := d.Constructor(nil); got != "second" {
		t.Errorf("constructor = %v, want %q (last writer wins)", got, "second")
	}
}

func TestRegisterContainer_UnknownFormatIsCreated(t *testing.T) {
	r := New()
	r.RegisterContainer("Unseen", 10, func([]byte) (interface{}, bool) { return nil, false })

	vs := r.ValidatorsFor("Unseen")
	if len(vs) != 1 {
		t.Fatalf("len(ValidatorsFor) = %d, want 1", len(vs))
	}
}

func TestRegisterContainer_PreservesRegistrationOrder(t *testing.T) {
	r := New()
	r.RegisterContainer("ID3v2", 10, func([]byte) (interface{}, bool) { return "v2.2", true })
	r.RegisterContainer("ID3v2", 10, func([]byte) (interface{}, bool) { return "v2.3", true })
	r.RegisterContainer("ID3v2", 10, func([]byte) (interface{}, bool) { return "v2.4", true })

	vs := r.ValidatorsFor("ID3v2")
	want := []string{"v2.2", "v2.3", "v2.4"}
	for i, v := range vs {
		c, _ := v.Validate(nil)
		if c != want[i] {
			t.Errorf("validator[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestFieldDescriptor_UnknownFieldNotFound(t *testing.T) {
	r := New()
	_, ok := r.FieldDescriptor("ID3v2", byteutil.NewKey([]byte("ZZZZ")))
	if ok {
		t.Error("expected ok=false for unregistered field")
	}
}

func TestFieldTypes_IsASnapshotCopy(t *testing.T) {
	r := New()
	id := byteutil.NewKey([]byte("TIT2"))
	r.RegisterField("ID3v2", id, 10, nil, func([]byte) interface{} { return nil })

	snap := r.FieldTypes("ID3v2")
	delete(snap, id)

	if _, ok := r.FieldDescriptor("ID3v2", id); !ok {
		t.Error("mutating the snapshot must not affect the registry")
	}
}
