package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCodesAreStable(t *testing.T) {
	t.Parallel()

	codes := Codes()
	if len(codes) != 10 {
		t.Fatalf("len(Codes()) = %d, want 10", len(codes))
	}
	if codes[0] != DefaultCode {
		t.Fatalf("codes[0] = %q, want default %q", codes[0], DefaultCode)
	}
	codes[0] = "mutated"
	if Codes()[0] != DefaultCode {
		t.Fatal("Codes() must return a copy")
	}
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want bool
	}{
		{"en", true},
		{"zh", true},
		{"vi", true},
		{"pt", false},
		{"EN", false},
		{"", false},
		{"en-US", false},
	}
	for _, tc := range cases {
		if got := IsSupported(tc.code); got != tc.want {
			t.Fatalf("IsSupported(%q) = %t, want %t", tc.code, got, tc.want)
		}
	}
}

func TestParseReturnsSupportedTag(t *testing.T) {
	t.Parallel()

	tag, ok := Parse("de")
	if !ok {
		t.Fatal("Parse(de) not ok")
	}
	if tag != language.MustParse("de") {
		t.Fatalf("Parse(de) = %v", tag)
	}
	if _, ok := Parse("xx"); ok {
		t.Fatal("Parse(xx) should not be ok")
	}
}

func TestLanguagesCoverAllCodes(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, lang := range Languages() {
		seen[lang.Code] = true
		if lang.Flag == "" {
			t.Fatalf("language %q has no flag", lang.Code)
		}
	}
	for _, code := range Codes() {
		if !seen[code] {
			t.Fatalf("language metadata missing for %q", code)
		}
	}
}
