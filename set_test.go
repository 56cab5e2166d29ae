package prettyplot

import (
	"testing"
)

func TestStringSet(t *testing.T) {
	a := NewStringSetFrom([]string{"svg", "pdf", "svg"})
	if len(a) != 2 {
		t.Errorf("NewStringSetFrom() = %v, want [pdf svg]", a)
	}
	if !a.Contains("pdf") {
		t.Errorf("a doesn't contain pdf")
	}
	if a.Contains("png") {
		t.Errorf("a contains png")
	}
	if b := NewStringSetFrom(nil); len(b) != 0 || b.Contains("") {
		t.Errorf("NewStringSetFrom(nil) = %v, want []", b)
	}
}

func TestStringSetElements(t *testing.T) {
	s := NewStringSetFrom([]string{"tif", "eps", "png", "eps"})
	got := s.Elements()
	want := []string{"eps", "png", "tif"}
	if len(got) != len(want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Elements()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if s.String() != "[eps png tif]" {
		t.Errorf("String() = %q, want %q", s.String(), "[eps png tif]")
	}
}

func TestFormats(t *testing.T) {
	for _, f := range []string{"png", "jpg", "jpeg", "tif", "tiff", "pdf", "svg", "eps"} {
		if !Formats.Contains(f) {
			t.Errorf("Formats.Contains(%q) = false, want true", f)
		}
	}
	if Formats.Contains("gif") {
		t.Errorf("Formats.Contains(\"gif\") = true, want false")
	}
}
