// Package clean streams noisy bilingual and monolingual corpora through
// the normalization and classification filters, writing aligned, cleaned
// line files for downstream tokenizer/model training.
//
// Three drivers are provided:
//
//   - Parallel cleans a positionally aligned pair of line files.
//   - ParallelScored does the same with a third file of per-pair
//     alignment-confidence scores gating each record.
//   - Mono cleans a single (optionally compressed) line file with the
//     stricter monolingual noise heuristics.
//
// All drivers stream line by line in O(1) memory, except the optional
// dedup set which remembers every distinct accepted key for the lifetime
// of the call. Per-record problems (malformed text, unparsable scores)
// are counted as drops and never abort a run; only file-level failures
// return errors.
package clean

import (
	"strings"

	"corpusclean/classify"
)

// Default filter thresholds. Documented behavior:
//
//   - DefaultMinScore: pairs scoring below this alignment confidence are
//     dropped (the boundary itself is kept). 1.1 suits LASER-style mining
//     scores where > 1 indicates likely mutual translations.
//   - DefaultMaxWords: either side longer than this many whitespace
//     tokens is dropped.
//   - DefaultMaxRatio: pairs whose longer/shorter word-count ratio
//     exceeds this are dropped as probable misalignments.
const (
	DefaultMinScore = 1.1
	DefaultMaxWords = 80
	DefaultMaxRatio = 3.0
)

// ParallelConfig carries the thresholds for parallel cleaning. Start from
// DefaultParallelConfig; the zero value drops everything.
type ParallelConfig struct {
	// MinScore is the inclusive score floor, used by ParallelScored only.
	MinScore float64
	// MaxWords is the per-side word-count cap.
	MaxWords int
	// MaxRatio is the word-count ratio cap.
	MaxRatio float64
	// Dedup drops repeated (source, target) pairs within the run.
	Dedup bool
	// Reporter receives progress callbacks; nil means stdout.
	Reporter Reporter
}

// DefaultParallelConfig returns the documented default thresholds with
// dedup disabled.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		MinScore: DefaultMinScore,
		MaxWords: DefaultMaxWords,
		MaxRatio: DefaultMaxRatio,
	}
}

// MonoConfig carries the thresholds for monolingual cleaning. Start from
// DefaultMonoConfig; the zero value drops everything.
type MonoConfig struct {
	// MaxWords is the word-count cap.
	MaxWords int
	// Dedup drops repeated normalized lines within the run.
	Dedup bool
	// Reporter receives progress callbacks; nil means stdout.
	Reporter Reporter
}

// DefaultMonoConfig returns the documented default thresholds with dedup
// disabled.
func DefaultMonoConfig() MonoConfig {
	return MonoConfig{MaxWords: DefaultMaxWords}
}

// keepPair decides keep/drop for an already-normalized pair in fixed
// precedence order: malformed lines, then the word-count cap, then the
// length ratio, then dedup. The first failing check wins. seen belongs to
// the calling driver; nil means dedup is off. A kept pair's key is
// recorded as a side effect.
func keepPair(src, tgt string, cfg ParallelConfig, seen seenSet) bool {
	if classify.IsMalformed(src) || classify.IsMalformed(tgt) {
		return false
	}

	sw := len(strings.Fields(src))
	tw := len(strings.Fields(tgt))
	if sw > cfg.MaxWords || tw > cfg.MaxWords {
		return false
	}

	longer, shorter := sw, tw
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if shorter < 1 {
		shorter = 1
	}
	if float64(longer)/float64(shorter) > cfg.MaxRatio {
		return false
	}

	return seen.insert(src + pairKeySep + tgt)
}
