package clean

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// openMaybeCompressed opens a local file, transparently decompressing it
// when the path ends with ".gz" or ".bz2". The returned ReadCloser always
// closes the underlying file.
func openMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		// Close the gzip reader first, then the file.
		return struct {
			io.Reader
			io.Closer
		}{
			Reader: zr,
			Closer: closerFunc(func() error {
				if err := zr.Close(); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			}),
		}, nil
	case strings.HasSuffix(strings.ToLower(path), ".bz2"):
		return struct {
			io.Reader
			io.Closer
		}{
			Reader: bzip2.NewReader(f),
			Closer: f,
		}, nil
	}

	return f, nil
}

// closerFunc adapts a function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// newLineScanner wraps r in a Scanner sized for long corpus lines: 64 KiB
// initial buffer, 4 MiB maximum.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 4*1024*1024)
	return sc
}

// scanText returns the scanner's current line with invalid UTF-8 byte
// sequences replaced by U+FFFD. The malformed-line check downstream drops
// any line carrying that marker, so a decode problem costs one record,
// never the run.
func scanText(sc *bufio.Scanner) string {
	return strings.ToValidUTF8(sc.Text(), "�")
}

// drainCount consumes the rest of a scanner, returning the number of lines
// that were still unread.
func drainCount(sc *bufio.Scanner) int64 {
	var n int64
	for sc.Scan() {
		n++
	}
	return n
}

// createOutput creates path's parent directories as needed and opens the
// file for writing through a buffered writer.
func createOutput(path string) (*os.File, *bufio.Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, bufio.NewWriter(f), nil
}
