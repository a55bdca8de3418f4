package normalize

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "trim and collapse whitespace",
			input: "  Hello,   World!  ",
			want:  "hello, world!",
		},
		{
			name:  "lowercase fold",
			input: "HeLLo",
			want:  "hello",
		},
		{
			name:  "fullwidth folded to halfwidth",
			input: "ＡＢＣ ok",
			want:  "abc ok",
		},
		{
			name:  "ligature folded",
			input: "ﬁnal oﬀer",
			want:  "final offer",
		},
		{
			name:  "bom and zero width stripped",
			input: "\uFEFFhe\u200Bl\u200Dlo\u2060",
			want:  "hello",
		},
		{
			name:  "leading colon index",
			input: ":12.5 This is a line",
			want:  "this is a line",
		},
		{
			name:  "leading bracketed annotation",
			input: "[12] Hello there",
			want:  "hello there",
		},
		{
			name:  "leading parenthesized annotation",
			input: "(3.4) mixed content",
			want:  "mixed content",
		},
		{
			name:  "leading braced annotation",
			input: "{7} go on",
			want:  "go on",
		},
		{
			name:  "bare leading number",
			input: "12 monkeys",
			want:  "monkeys",
		},
		{
			name:  "stacked leading indices all stripped",
			input: "12 34 abc",
			want:  "abc",
		},
		{
			name:  "mid-line brackets become spaces",
			input: "foo [bar] baz",
			want:  "foo bar baz",
		},
		{
			name:  "control characters become spaces",
			input: "a\x01b\tc",
			want:  "a b c",
		},
		{
			name:  "circled number folds then strips",
			input: "⑴ one",
			want:  "one",
		},
		{
			name:  "punctuation only survives",
			input: "?!",
			want:  "?!",
		},
		{
			name:  "currency untouched",
			input: "£5.00 fee",
			want:  "£5.00 fee",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKeepCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "case preserved",
			input: "  Hello World  ",
			want:  "Hello World",
		},
		{
			name:  "fullwidth folded case preserved",
			input: "Ｈｅｌｌｏ",
			want:  "Hello",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeKeepCase(tt.input); got != tt.want {
				t.Errorf("NormalizeKeepCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizeIdempotent covers inputs where a single transform pass
// exposes fresh leading artifacts.
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"hello world",
		"  Hello,   World!  ",
		"12 34 abc",
		"\x0112 abc",
		":1 :2 x",
		"⑴ one",
		"[12](3.4){7} nested",
		"ＡＢＣ１２３ mixed ＷＩＤＥ",
		"?!...",
		"\uFEFF\u200B",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
