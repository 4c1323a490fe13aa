// Command writerbot generates text from an n-gram Markov chain.
//
// Usage:
//
//	writerbot [-config lvtree.yaml] [-n N] [-words K] [-seed S] [-per-line L] [source]
//
// Without a source argument three lines are read from standard input: the
// source file name, the prefix length n and the number of words to generate.
// Flags and the config file are ignored for the values given that way.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtree/internal/config"
	"github.com/katalvlaran/lvtree/internal/tracing"
	"github.com/katalvlaran/lvtree/markov"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("writerbot: ")

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run resolves the settings, builds the chain and prints the generated text.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("writerbot", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML configuration file")
	order := fs.Int("n", 0, "prefix length (overrides config)")
	count := fs.Int("words", -1, "number of words to generate (overrides config)")
	seed := fs.Int64("seed", 0, "random seed (overrides config)")
	perLine := fs.Int("per-line", 0, "words per output line (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["n"] {
		cfg.Markov.Order = *order
	}
	if set["words"] {
		cfg.Markov.Words = *count
	}
	if set["seed"] {
		cfg.Markov.Seed = *seed
	}
	if set["per-line"] {
		cfg.Markov.PerLine = *perLine
	}

	source := fs.Arg(0)
	if source == "" {
		if source, err = readInteractive(stdin, &cfg.Markov); err != nil {
			return err
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	_, span := tracing.StartSpan(ctx, "WriterBot")
	defer span.End()

	f, err := os.Open(source)
	if err != nil {
		return tracing.Fail(span, err, "open failed")
	}
	defer f.Close()

	words, err := markov.ReadWords(f)
	if err != nil {
		return tracing.Fail(span, err, "read failed")
	}
	chain, err := markov.NewChain(words, cfg.Markov.Order)
	if err != nil {
		return tracing.Fail(span, err, "chain failed")
	}
	text, err := chain.Generate(cfg.Markov.Words, markov.WithSeed(cfg.Markov.Seed))
	if err != nil {
		return tracing.Fail(span, err, "generate failed")
	}

	_, err = fmt.Fprintln(stdout, markov.Format(text, cfg.Markov.PerLine))

	return err
}

// readInteractive reads the source name, n and the word count, one per line.
func readInteractive(in io.Reader, m *config.Markov) (string, error) {
	sc := bufio.NewScanner(in)
	var lines []string
	for len(lines) < 3 && sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	if len(lines) < 3 {
		return "", fmt.Errorf("expected source, n and word count on stdin, got %d line(s)", len(lines))
	}

	n, err := strconv.Atoi(lines[1])
	if err != nil {
		return "", fmt.Errorf("n: %w", err)
	}
	words, err := strconv.Atoi(lines[2])
	if err != nil {
		return "", fmt.Errorf("word count: %w", err)
	}
	m.Order, m.Words = n, words

	return lines[0], nil
}
