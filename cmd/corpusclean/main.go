// The command "corpusclean" filters and normalizes machine-translation
// training corpora.
//
// It applies the normalize/classify/clean pipeline to either a parallel
// corpus (two positionally aligned sentence files, with an optional third
// file of alignment-confidence scores) or a monolingual corpus (a single,
// optionally gzip/bzip2-compressed line file), writing cleaned UTF-8 line
// files for downstream tokenizer and model training.
//
// Example usages:
//
//	# Scored parallel corpus (score gate at the default 1.1):
//	corpusclean parallel --scores corpus.scores corpus.en corpus.sw out/train.clean.en out/train.clean.sw
//
//	# Unscored parallel corpus with dedup:
//	corpusclean parallel --dedup corpus.en corpus.sw out/train.clean.en out/train.clean.sw
//
//	# Monolingual corpus from a gzip stream:
//	corpusclean mono mono.en.txt.gz out/mono_clean.en
//
// Thresholds may also be set through the environment (CLEAN_MIN_SCORE,
// CLEAN_MAX_WORDS, CLEAN_MAX_RATIO, CLEAN_DEDUP) or a YAML file named by
// CONFIG_PATH; command-line flags take precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"corpusclean/clean"
	"corpusclean/internal/config"
)

// --- CLI help / usage -------------------------------------------------------

const helpText = `corpusclean - training-corpus cleaning pipeline

Usage:
  corpusclean help
      Print this help message.

  corpusclean parallel [flags] <source> <target> <out-source> <out-target>
      Clean a positionally aligned parallel corpus. Line N of <source>
      pairs with line N of <target>; kept pairs are written to the two
      output files in the same aligned order. Iteration stops at the
      shortest input; a warning reports any unconsumed trailing lines.

  corpusclean mono [flags] <input> <output>
      Clean a monolingual corpus. <input> is decompressed transparently
      when it ends in ".gz" or ".bz2".

Flags for "parallel":
  --scores PATH
      Optional file of one floating-point alignment score per line,
      aligned with the sentence files. When given, pairs with unparsable
      scores or scores below --min-score are dropped before any other
      work.
  --min-score N
      Inclusive score floor (default 1.1). Only meaningful with --scores.
  --max-words N
      Drop pairs where either side exceeds N words (default 80).
  --max-ratio N
      Drop pairs whose longer/shorter word-count ratio exceeds N
      (default 3.0).
  --dedup
      Drop repeated (source, target) pairs within this run.

Flags for "mono":
  --max-words N
      Drop lines exceeding N words (default 80).
  --dedup
      Drop repeated normalized lines within this run.

Progress is reported on stdout every 1,000,000 records, followed by a
final kept/dropped summary per corpus.
`

// printUsage writes the CLI help text to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// --- Subcommands ------------------------------------------------------------

// runParallelFromArgs parses flags/positional arguments for the
// "parallel" subcommand and runs the matching driver.
func runParallelFromArgs(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("parallel", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	scorePath := fs.String("scores", "", "optional per-pair alignment score file")
	minScore := fs.Float64("min-score", cfg.MinScore, "inclusive score floor (with --scores)")
	maxWords := fs.Int("max-words", cfg.MaxWords, "per-side word-count cap")
	maxRatio := fs.Float64("max-ratio", cfg.MaxRatio, "word-count ratio cap")
	dedup := fs.Bool("dedup", cfg.Dedup, "drop repeated pairs within this run")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}

	rest := fs.Args()
	if len(rest) != 4 {
		return errors.New(`"parallel" expects <source> <target> <out-source> <out-target>`)
	}

	pc := clean.ParallelConfig{
		MinScore: *minScore,
		MaxWords: *maxWords,
		MaxRatio: *maxRatio,
		Dedup:    *dedup,
	}

	var err error
	if *scorePath != "" {
		_, err = clean.ParallelScored(rest[0], rest[1], *scorePath, rest[2], rest[3], pc)
	} else {
		_, err = clean.Parallel(rest[0], rest[1], rest[2], rest[3], pc)
	}
	return err
}

// runMonoFromArgs parses flags/positional arguments for the "mono"
// subcommand and runs the monolingual driver.
func runMonoFromArgs(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("mono", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	maxWords := fs.Int("max-words", cfg.MaxWords, "word-count cap")
	dedup := fs.Bool("dedup", cfg.Dedup, "drop repeated lines within this run")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return errors.New(`"mono" expects <input> <output>`)
	}

	_, err := clean.Mono(rest[0], rest[1], clean.MonoConfig{
		MaxWords: *maxWords,
		Dedup:    *dedup,
	})
	return err
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	case "parallel", "mono":
		cfg, err := config.Load()
		if err != nil {
			log.Fatal(err)
		}
		if os.Args[1] == "parallel" {
			err = runParallelFromArgs(os.Args[2:], cfg)
		} else {
			err = runMonoFromArgs(os.Args[2:], cfg)
		}
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Printf("Unknown subcommand %q\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
}
