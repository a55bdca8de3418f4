package normalize

import (
	"testing"
	"unicode/utf8"
)

// FuzzNormalize checks the two contract invariants on arbitrary input:
// Normalize never panics (totality) and applying it twice changes
// nothing (idempotence).
func FuzzNormalize(f *testing.F) {
	seeds := []string{
		"",
		"hello world",
		":12.5 indexed line",
		"[12] bracketed",
		"12 34 stacked",
		"\uFEFF\u200Bzero width",
		"ＦＵＬＬＷＩＤＴＨ",
		"a\x00b\x1fc",
		"⑴ circled",
		"https://example.com",
		"�broken",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("not idempotent for %q: first %q, second %q", s, once, twice)
		}
		if !utf8.ValidString(once) && utf8.ValidString(s) {
			t.Errorf("Normalize(%q) produced invalid UTF-8 %q", s, once)
		}

		kept := NormalizeKeepCase(s)
		if twice := NormalizeKeepCase(kept); twice != kept {
			t.Errorf("NormalizeKeepCase not idempotent for %q", s)
		}
	})
}
