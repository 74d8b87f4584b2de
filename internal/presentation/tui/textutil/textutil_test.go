package textutil

import "testing"

func TestSingleLine(t *testing.T) {
	if got := SingleLine("  cat,\n kitten\t pet "); got != "cat, kitten pet" {
		t.Fatalf("SingleLine() = %q", got)
	}
	if got := SingleLine(""); got != "" {
		t.Fatalf("SingleLine(\"\") = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "kitten", width: 10, want: "kitten"},
		{text: "kitten", width: 5, want: "ki..."},
		{text: "kitten", width: 0, want: ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.text, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "cat, kitten, pet", want: "cat, kitten, pet"},
		{raw: " cat ,kitten,, pet ", want: "cat, kitten, pet"},
		{raw: "Cat, cat, CAT, kitten", want: "Cat, kitten"},
		{raw: "snow\n mountain, alps", want: "snow mountain, alps"},
		{raw: " , ,", want: ""},
		{raw: "", want: ""},
	}
	for _, tt := range tests {
		if got := Tags(tt.raw); got != tt.want {
			t.Errorf("Tags(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
