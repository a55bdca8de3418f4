package clean

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"corpusclean/normalize"
)

// Parallel cleans an unscored parallel corpus: srcPath and tgtPath are
// read in lockstep (line N of one pairs with line N of the other), each
// pair is normalized and filtered, and surviving pairs are appended to
// outSrcPath / outTgtPath in the same aligned order. Iteration stops at
// the shortest input; unread trailing lines are counted in the summary
// rather than treated as an error. Output parent directories are created
// as needed.
func Parallel(srcPath, tgtPath, outSrcPath, outTgtPath string, cfg ParallelConfig) (Summary, error) {
	pio, err := openParallelIO(srcPath, tgtPath, outSrcPath, outTgtPath)
	if err != nil {
		return Summary{}, err
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = stdoutReporter("parallel")
	}
	seen := newSeenSet(cfg.Dedup)

	var sum Summary
	for pio.src.Scan() {
		if !pio.tgt.Scan() {
			sum.TrailingSource++ // the source line just read goes unconsumed
			break
		}
		sum.Processed++

		src := normalize.Normalize(scanText(pio.src))
		tgt := normalize.Normalize(scanText(pio.tgt))

		if keepPair(src, tgt, cfg, seen) {
			pio.write(src, tgt)
			sum.Kept++
		} else {
			sum.Dropped++
		}

		if sum.Processed%ProgressEvery == 0 {
			reporter.Progress(sum.Counters)
		}
	}

	return finishParallel(pio, nil, sum, reporter)
}

// ParallelScored cleans a parallel corpus gated by per-pair alignment
// scores: scorePath holds one floating-point score per line, positionally
// aligned with the sentence files. A pair whose score is unparsable or
// below cfg.MinScore is dropped before any normalization work; a score
// exactly at the floor is kept. Everything else behaves as Parallel.
func ParallelScored(srcPath, tgtPath, scorePath, outSrcPath, outTgtPath string, cfg ParallelConfig) (Summary, error) {
	pio, err := openParallelIO(srcPath, tgtPath, outSrcPath, outTgtPath)
	if err != nil {
		return Summary{}, err
	}

	scoreFile, err := openMaybeCompressed(scorePath)
	if err != nil {
		pio.abort()
		return Summary{}, fmt.Errorf("open %q: %w", scorePath, err)
	}
	scores := newLineScanner(scoreFile)
	pio.closers = append(pio.closers, scoreFile)

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = stdoutReporter("parallel")
	}
	seen := newSeenSet(cfg.Dedup)

	var sum Summary
	for pio.src.Scan() {
		if !pio.tgt.Scan() {
			sum.TrailingSource++
			break
		}
		if !scores.Scan() {
			sum.TrailingSource++
			sum.TrailingTarget++
			break
		}
		sum.Processed++

		// Score gate first: no point normalizing a pair that is already
		// disqualified.
		score, err := strconv.ParseFloat(strings.TrimSpace(scores.Text()), 64)
		if err != nil || score < cfg.MinScore {
			sum.Dropped++
		} else {
			src := normalize.Normalize(scanText(pio.src))
			tgt := normalize.Normalize(scanText(pio.tgt))

			if keepPair(src, tgt, cfg, seen) {
				pio.write(src, tgt)
				sum.Kept++
			} else {
				sum.Dropped++
			}
		}

		if sum.Processed%ProgressEvery == 0 {
			reporter.Progress(sum.Counters)
		}
	}

	return finishParallel(pio, scores, sum, reporter)
}

// finishParallel drains the trailing-line counts, surfaces any read/write
// errors, closes everything and fires the Done callback.
func finishParallel(pio *parallelIO, scores *bufio.Scanner, sum Summary, reporter Reporter) (Summary, error) {
	sum.TrailingSource += drainCount(pio.src)
	sum.TrailingTarget += drainCount(pio.tgt)
	if scores != nil {
		sum.TrailingScores += drainCount(scores)
	}

	scanners := []*bufio.Scanner{pio.src, pio.tgt}
	if scores != nil {
		scanners = append(scanners, scores)
	}
	for _, sc := range scanners {
		if err := sc.Err(); err != nil {
			pio.abort()
			return sum, fmt.Errorf("read: %w", err)
		}
	}

	if err := pio.finish(); err != nil {
		return sum, err
	}

	reporter.Done(sum)
	return sum, nil
}

// parallelIO bundles the open streams of one parallel run.
type parallelIO struct {
	src, tgt       *bufio.Scanner
	outSrc, outTgt *bufio.Writer
	closers        []io.Closer
}

// openParallelIO opens both inputs and creates both outputs. On any
// failure, everything opened so far is closed and a wrapped error
// naming the offending path is returned.
func openParallelIO(srcPath, tgtPath, outSrcPath, outTgtPath string) (*parallelIO, error) {
	pio := &parallelIO{}

	srcFile, err := openMaybeCompressed(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", srcPath, err)
	}
	pio.closers = append(pio.closers, srcFile)
	pio.src = newLineScanner(srcFile)

	tgtFile, err := openMaybeCompressed(tgtPath)
	if err != nil {
		pio.abort()
		return nil, fmt.Errorf("open %q: %w", tgtPath, err)
	}
	pio.closers = append(pio.closers, tgtFile)
	pio.tgt = newLineScanner(tgtFile)

	outSrcFile, outSrc, err := createOutput(outSrcPath)
	if err != nil {
		pio.abort()
		return nil, fmt.Errorf("create %q: %w", outSrcPath, err)
	}
	pio.closers = append(pio.closers, outSrcFile)
	pio.outSrc = outSrc

	outTgtFile, outTgt, err := createOutput(outTgtPath)
	if err != nil {
		pio.abort()
		return nil, fmt.Errorf("create %q: %w", outTgtPath, err)
	}
	pio.closers = append(pio.closers, outTgtFile)
	pio.outTgt = outTgt

	return pio, nil
}

// write appends one kept pair to the aligned output streams. Write errors
// latch inside the buffered writers and surface in finish.
func (p *parallelIO) write(src, tgt string) {
	p.outSrc.WriteString(src)
	p.outSrc.WriteByte('\n')
	p.outTgt.WriteString(tgt)
	p.outTgt.WriteByte('\n')
}

// finish flushes both outputs and closes every stream, returning the
// first error encountered.
func (p *parallelIO) finish() error {
	var firstErr error
	for _, w := range []*bufio.Writer{p.outSrc, p.outTgt} {
		if err := w.Flush(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write: %w", err)
		}
	}
	for _, c := range p.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close: %w", err)
		}
	}
	return firstErr
}

// abort closes every stream, ignoring errors. Used on the failure paths.
func (p *parallelIO) abort() {
	for _, c := range p.closers {
		c.Close()
	}
}
