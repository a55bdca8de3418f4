package clean

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeGzipLines writes a gzip-compressed line file.
func writeGzipLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	for _, l := range lines {
		_, err := zw.Write([]byte(l + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestMonoGzip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	in := filepath.Join(dir, "mono.en.txt.gz")
	out := filepath.Join(dir, "out", "mono_clean.en")

	writeGzipLines(t, in,
		"The quick brown fox jumps",
		"!!! buy now !!!!",
		"1234",
		"Visit https://spam.example now",
		"The quick brown fox jumps",
	)

	cfg := DefaultMonoConfig()
	rep := &recordingReporter{}
	cfg.Reporter = rep

	sum, err := Mono(in, out, cfg)
	require.NoError(t, err)

	require.Equal(t, int64(5), sum.Processed)
	require.Equal(t, int64(2), sum.Kept)
	require.Equal(t, int64(3), sum.Dropped)
	require.Equal(t,
		[]string{"the quick brown fox jumps", "the quick brown fox jumps"},
		readLines(t, out))

	require.Empty(t, rep.progress)
	require.Equal(t, []Summary{sum}, rep.done)
}

func TestMonoDedup(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	in := filepath.Join(dir, "mono.txt.gz")
	out := filepath.Join(dir, "out.txt")

	// Same sentence in different surface forms: dedup works on the
	// normalized line.
	writeGzipLines(t, in,
		"The quick brown fox jumps",
		"  the QUICK brown fox jumps ",
		"a different sentence entirely",
	)

	cfg := DefaultMonoConfig()
	cfg.Dedup = true
	cfg.Reporter = &recordingReporter{}

	sum, err := Mono(in, out, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(2), sum.Kept)
	require.Equal(t, int64(1), sum.Dropped)
}

func TestMonoMaxWords(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	in := filepath.Join(dir, "mono.txt.gz")
	out := filepath.Join(dir, "out.txt")

	long := strings.TrimSpace(strings.Repeat("word ", DefaultMaxWords+1))
	writeGzipLines(t, in, long, "short enough line")

	cfg := DefaultMonoConfig()
	cfg.Reporter = &recordingReporter{}

	sum, err := Mono(in, out, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(1), sum.Kept)
	require.Equal(t, int64(1), sum.Dropped)
	require.Equal(t, []string{"short enough line"}, readLines(t, out))
}

func TestMonoPlainInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	in := filepath.Join(dir, "mono.txt")
	out := filepath.Join(dir, "out.txt")
	writeLines(t, in, "an uncompressed sentence")

	cfg := DefaultMonoConfig()
	cfg.Reporter = &recordingReporter{}

	sum, err := Mono(in, out, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(1), sum.Kept)
}

func TestMonoMissingInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := Mono(filepath.Join(dir, "missing.gz"), filepath.Join(dir, "out.txt"), DefaultMonoConfig())
	require.Error(t, err)
	require.ErrorContains(t, err, "missing.gz")
}

func TestMonoInvalidUTF8Dropped(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	in := filepath.Join(dir, "mono.txt")
	out := filepath.Join(dir, "out.txt")

	// \xff is not valid UTF-8; scan-time repair turns it into U+FFFD and
	// the malformed check drops the line.
	require.NoError(t, os.WriteFile(in, []byte("broken \xff byte\ngood clean line\n"), 0o644))

	cfg := DefaultMonoConfig()
	cfg.Reporter = &recordingReporter{}

	sum, err := Mono(in, out, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(1), sum.Kept)
	require.Equal(t, int64(1), sum.Dropped)
	require.Equal(t, []string{"good clean line"}, readLines(t, out))
}
