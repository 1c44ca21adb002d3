package fields

import "testing"

func TestRenderMusicalKey(t *testing.T) {
	cases := map[string]string{
		"C":   "C",
		"Cb":  "C♭",
		"C#m": "C♯m",
		"o":   "off-key",
		"Hz":  "[Hz]",
	}
	for in, want := range cases {
		if got := renderMusicalKey(in); got != want {
			t.Errorf("renderMusicalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
