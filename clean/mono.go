package clean

import (
	"fmt"
	"strings"

	"corpusclean/classify"
	"corpusclean/normalize"
)

// Mono cleans a monolingual corpus: inPath is a line file, transparently
// decompressed when it ends in ".gz" or ".bz2", and surviving lines are
// written to outPath one per line. Each line is normalized, then screened
// by the malformed-line check, the monolingual noise heuristics, the
// word-count cap, and (when enabled) dedup by normalized line. Output
// parent directories are created as needed.
func Mono(inPath, outPath string, cfg MonoConfig) (Summary, error) {
	in, err := openMaybeCompressed(inPath)
	if err != nil {
		return Summary{}, fmt.Errorf("open %q: %w", inPath, err)
	}
	defer in.Close()

	outFile, out, err := createOutput(outPath)
	if err != nil {
		return Summary{}, fmt.Errorf("create %q: %w", outPath, err)
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = stdoutReporter("mono")
	}
	seen := newSeenSet(cfg.Dedup)

	var sum Summary
	sc := newLineScanner(in)
	for sc.Scan() {
		sum.Processed++

		s := normalize.Normalize(scanText(sc))
		switch {
		case classify.IsMalformed(s):
			sum.Dropped++
		case classify.IsMonoNoise(s):
			sum.Dropped++
		case len(strings.Fields(s)) > cfg.MaxWords:
			sum.Dropped++
		case !seen.insert(s):
			sum.Dropped++
		default:
			out.WriteString(s)
			out.WriteByte('\n')
			sum.Kept++
		}

		if sum.Processed%ProgressEvery == 0 {
			reporter.Progress(sum.Counters)
		}
	}

	if err := sc.Err(); err != nil {
		outFile.Close()
		return sum, fmt.Errorf("read %q: %w", inPath, err)
	}

	if err := out.Flush(); err != nil {
		outFile.Close()
		return sum, fmt.Errorf("write %q: %w", outPath, err)
	}
	if err := outFile.Close(); err != nil {
		return sum, fmt.Errorf("close %q: %w", outPath, err)
	}

	reporter.Done(sum)
	return sum, nil
}
