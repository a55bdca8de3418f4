package clean

import (
	"fmt"
	"io"
	"os"
)

// ProgressEvery is the number of processed records between Progress
// callbacks.
const ProgressEvery = 1_000_000

// Counters are the running totals of one driver run. Processed counts
// every record read in lockstep; every record is either kept or dropped.
type Counters struct {
	Processed int64
	Kept      int64
	Dropped   int64
}

// Summary is the end-of-run report for one corpus. The Trailing fields
// count lines left unread in each input stream when lockstep iteration
// stopped at the shortest stream; nonzero values usually mean the inputs
// were not aligned line-for-line. Truncation is tolerated, not an error.
type Summary struct {
	Counters
	TrailingSource int64
	TrailingTarget int64
	TrailingScores int64
}

// A Reporter receives progress callbacks from a driver: Progress every
// ProgressEvery processed records, and Done once with the final summary.
// Implementations must not retain the arguments past the call.
type Reporter interface {
	Progress(c Counters)
	Done(s Summary)
}

// ConsoleReporter writes the classic one-line progress format:
//
//	[tag] processed=12000000 kept=9817233 dropped=2182767
//
// and a final summary, to W. A warning line is added when the summary
// carries unconsumed trailing input lines.
type ConsoleReporter struct {
	W   io.Writer
	Tag string
}

func (r ConsoleReporter) Progress(c Counters) {
	fmt.Fprintf(r.W, "[%s] processed=%d kept=%d dropped=%d\n", r.Tag, c.Processed, c.Kept, c.Dropped)
}

func (r ConsoleReporter) Done(s Summary) {
	fmt.Fprintf(r.W, "[%s] kept=%d dropped=%d\n", r.Tag, s.Kept, s.Dropped)
	if n := s.TrailingSource + s.TrailingTarget + s.TrailingScores; n > 0 {
		fmt.Fprintf(r.W, "[%s] warning: %d trailing input line(s) not consumed (source=%d target=%d scores=%d)\n",
			r.Tag, n, s.TrailingSource, s.TrailingTarget, s.TrailingScores)
	}
}

// stdoutReporter returns the default reporter for a driver when none was
// injected.
func stdoutReporter(tag string) Reporter {
	return ConsoleReporter{W: os.Stdout, Tag: tag}
}
