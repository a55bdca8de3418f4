// Package normalize canonicalizes raw corpus lines before filtering.
//
// A raw line from a web-scraped dump may carry BOM and zero-width
// characters, compatibility variants (full-width forms, ligatures),
// exporter artifacts such as a leading ":12.5" or "[12]" index, stray
// brackets, and control bytes. Normalize folds all of that into a single
// canonical form: trimmed, NFKC-normalized, index-stripped, bracket- and
// control-scrubbed, whitespace-collapsed, and (by default) lowercased.
//
// Two functions are provided:
//
//   - Normalize lowercases the result (the form the cleaning drivers use).
//   - NormalizeKeepCase preserves letter case, for case-sensitive corpora.
//
// Both are pure, total (defined for every string, including the empty
// string) and idempotent: normalize(normalize(s)) == normalize(s). The
// output may be empty; callers must handle that.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// --- Artifact patterns ------------------------------------------------------

// leadingColonNum matches the ":12.5"-style index prefix left at line start
// by certain alignment dumps.
var leadingColonNum = regexp.MustCompile(`^\s*:\d+(?:\.\d+)?\s*`)

// leadingAnnot matches a leading numeric annotation such as "[12]", "(3.4)",
// "{7}" or a bare "12". The brackets are optional on both sides, so a line
// that simply starts with a number loses it too.
var leadingAnnot = regexp.MustCompile(`^\s*[\[({]?\d+(?:\.\d+)?[\])}]?\s*`)

// zeroWidth holds the zero-width and BOM code points that show up as
// invisible junk in web dumps (stray U+FEFF prefixes and the like).
const zeroWidth = "\uFEFF\u200B\u200C\u200D\u2060"

// brackets are treated as noise wherever they survive the leading-annotation
// strip; they become spaces so the words around them stay separated.
const brackets = "[](){}"

// --- Normalization ----------------------------------------------------------

// Normalize returns the canonical lowercase form of raw.
func Normalize(raw string) string {
	return run(raw, true)
}

// NormalizeKeepCase returns the canonical form of raw with letter case
// preserved.
func NormalizeKeepCase(raw string) string {
	return run(raw, false)
}

// run applies the transform pass until it reaches a fixpoint. A single pass
// can expose a fresh leading index (a control byte scrubbed to a space, or a
// compatibility fold such as "⑴" turning into "(1)"), so one application is
// not always enough to make the result stable.
func run(raw string, lowercase bool) string {
	s := pass(raw, lowercase)
	for {
		next := pass(s, lowercase)
		if next == s {
			return s
		}
		s = next
	}
}

// pass applies the ordered transforms once. Order matters: the index strips
// assume NFKC already ran, and the whitespace collapse assumes the bracket
// and control scrubs already produced their spaces.
func pass(s string, lowercase bool) string {
	s = strings.TrimSpace(s)

	// Strip zero-width / BOM characters.
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(zeroWidth, r) {
			return -1
		}
		return r
	}, s)

	// Unicode compatibility normalization (full-width -> half-width,
	// ligatures -> base letters, composed canonical form).
	s = norm.NFKC.String(s)

	// Leading exporter artifacts: ":12.5" first, then "[12]" / "(3.4)" / "12".
	s = leadingColonNum.ReplaceAllString(s, "")
	s = leadingAnnot.ReplaceAllString(s, "")

	// Remaining brackets are noise, not content.
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(brackets, r) {
			return ' '
		}
		return r
	}, s)

	// Control characters become spaces.
	s = strings.Map(func(r rune) rune {
		if r < 0x20 {
			return ' '
		}
		return r
	}, s)

	// Collapse whitespace runs and trim.
	s = strings.Join(strings.Fields(s), " ")

	if lowercase {
		s = strings.ToLower(s)
	}
	return s
}
