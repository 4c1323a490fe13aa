// SPDX-License-Identifier: MIT
// Package: lvtree/markov
//
// chain.go — prefix table construction, generation and formatting.

package markov

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// NonWord pads the start of the source text. It never appears in generated output
// unless the source itself contains it.
const NonWord = "NONWORD"

// DefaultSeed seeds the generator when no option overrides it.
const DefaultSeed int64 = 8

// DefaultPerLine is the number of words Format puts on each line.
const DefaultPerLine = 10

// prefixSep joins prefix words into a map key; words never contain whitespace.
const prefixSep = " "

var (
	// ErrBadOrder indicates a prefix length below 1.
	ErrBadOrder = errors.New("markov: prefix length must be at least 1")

	// ErrNegativeCount indicates a negative number of words to generate.
	ErrNegativeCount = errors.New("markov: word count must not be negative")
)

// Chain is an n-gram successor table. It is immutable once built.
type Chain struct {
	n        int
	suffixes map[string][]string
}

// ReadWords splits r into whitespace-separated words, skipping blank lines.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, strings.Fields(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("markov: ReadWords: %w", err)
	}

	return words, nil
}

// NewChain builds the successor table of order n over words.
//
// Complexity: O(len(words)·n) time and memory.
func NewChain(words []string, n int) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("markov: NewChain(n=%d): %w", n, ErrBadOrder)
	}

	padded := make([]string, 0, n+len(words))
	for i := 0; i < n; i++ {
		padded = append(padded, NonWord)
	}
	padded = append(padded, words...)

	c := &Chain{n: n, suffixes: make(map[string][]string)}
	for i := 0; i+n < len(padded); i++ {
		key := strings.Join(padded[i:i+n], prefixSep)
		c.suffixes[key] = append(c.suffixes[key], padded[i+n])
	}

	return c, nil
}

// Order returns the prefix length n.
func (c *Chain) Order() int { return c.n }

// Len returns the number of distinct prefixes.
func (c *Chain) Len() int { return len(c.suffixes) }

// Suffixes returns the words that followed prefix, in source order.
// The result is nil when len(prefix) != Order() or the prefix is unknown.
func (c *Chain) Suffixes(prefix ...string) []string {
	if len(prefix) != c.n {
		return nil
	}

	return c.suffixes[strings.Join(prefix, prefixSep)]
}

// Generate produces up to count words starting from the all-NonWord prefix.
func (c *Chain) Generate(count int, opts ...Option) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("markov: Generate(count=%d): %w", count, ErrNegativeCount)
	}
	cfg := newConfig(opts)

	prefix := make([]string, c.n)
	for i := range prefix {
		prefix[i] = NonWord
	}

	out := make([]string, 0, count)
	for len(out) < count {
		choices := c.suffixes[strings.Join(prefix, prefixSep)]
		if len(choices) == 0 {
			break
		}
		word := choices[0]
		if len(choices) > 1 {
			word = choices[cfg.rng.Intn(len(choices))]
		}
		out = append(out, word)

		copy(prefix, prefix[1:])
		prefix[c.n-1] = word
	}

	return out, nil
}

// Format writes words separated by single spaces and starts a new line after
// every perLine words. A perLine below 1 selects DefaultPerLine.
// Lines carry no trailing space.
func Format(words []string, perLine int) string {
	if perLine < 1 {
		perLine = DefaultPerLine
	}

	var sb strings.Builder
	for i, w := range words {
		switch {
		case i == 0:
		case i%perLine == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}

	return sb.String()
}

// Option configures Generate.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithSeed draws from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("markov: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}
