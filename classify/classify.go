// Package classify provides pure predicates over normalized corpus lines.
//
// Two independent checks are exposed:
//
//   - IsMalformed flags lines that are unusable as training text in any
//     corpus: empty lines, decoding-failure markers, URLs, HTML markup,
//     and lines with no letters at all. It applies to both parallel and
//     monolingual cleaning.
//
//   - IsMonoNoise is a stricter, multi-signal spam heuristic applied only
//     to monolingual cleaning. Parallel text is cross-checked by its
//     aligned translation, which is itself a strong noise filter;
//     monolingual text has no such check and needs tighter screening.
//
// Inputs are expected to already be normalized (see package normalize).
// Both predicates are pure and total.
package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Density thresholds for IsMonoNoise. Tunable without code changes
// elsewhere; see the corpusclean command's configuration layer.
const (
	// MinLetterDensity is the minimum fraction of letter runes a
	// monolingual line must have. Lines that are mostly digits or symbols
	// fall below it.
	MinLetterDensity = 0.6

	// MaxWeirdDensity is the maximum fraction of "weird" runes (neither
	// alphanumeric, whitespace, nor standard punctuation) a monolingual
	// line may have.
	MaxWeirdDensity = 0.2
)

// standardPunct is the punctuation set that does not count as weird.
const standardPunct = `.,?!:;'"()-`

// --- Malformed-line patterns ------------------------------------------------

// urlish matches URL prefixes anywhere in the line.
var urlish = regexp.MustCompile(`(?i)(https?://|www\.)`)

// htmlish matches tags and the entity forms most common in scraped text.
// Entities beyond these two forms are caught by the unescape check below.
var htmlish = regexp.MustCompile(`(<[^>]+>|&nbsp;|&#[0-9]+;)`)

// --- Monolingual spam patterns ----------------------------------------------

// leadingPunctSpam matches two or more consecutive spam-punctuation
// characters at line start ("!!attention", "--- cut here").
var leadingPunctSpam = regexp.MustCompile(`^\s*[!?.;,:'"*_~-]{2,}`)

// templateArtifacts matches leftover template and wiki markup: "$1",
// "{{...}}", "[[...]]".
var templateArtifacts = regexp.MustCompile(`\$[0-9]+|\{\{|\}\}|\[\[|\]\]`)

// repeatedPunct matches a sentence-punctuation character repeated four or
// more times ("!!!!", "????", "....").
var repeatedPunct = regexp.MustCompile(`!{4,}|\?{4,}|\.{4,}`)

// IsMalformed reports whether a normalized line is unusable as training
// text: empty, containing the U+FFFD replacement character left by lossy
// decoding, URL- or HTML-like, or without a single letter.
func IsMalformed(line string) bool {
	if line == "" {
		return true
	}
	if strings.ContainsRune(line, '�') {
		return true
	}
	if urlish.MatchString(line) || htmlish.MatchString(line) {
		return true
	}
	// Any decodable entity (&amp;, &lt;, &eacute;, ...) means the line
	// still carries markup.
	if html.UnescapeString(line) != line {
		return true
	}
	return !strings.ContainsFunc(line, unicode.IsLetter)
}

// IsMonoNoise reports whether a normalized monolingual line looks like
// spam or markup residue. True if any single signal fires: leading spam
// punctuation, template artifacts, repeated sentence punctuation, letter
// density below MinLetterDensity, or weird-character density above
// MaxWeirdDensity.
func IsMonoNoise(line string) bool {
	if leadingPunctSpam.MatchString(line) {
		return true
	}
	if templateArtifacts.MatchString(line) {
		return true
	}
	if repeatedPunct.MatchString(line) {
		return true
	}

	var letters, weird, total int
	for _, r := range line {
		total++
		alnum := unicode.IsLetter(r) || unicode.IsNumber(r)
		if unicode.IsLetter(r) {
			letters++
		}
		if !alnum && !unicode.IsSpace(r) && !strings.ContainsRune(standardPunct, r) {
			weird++
		}
	}
	if total == 0 {
		return false
	}
	if float64(letters)/float64(total) < MinLetterDensity {
		return true
	}
	return float64(weird)/float64(total) > MaxWeirdDensity
}
