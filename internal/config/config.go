// Package config loads the YAML configuration shared by the lvtree commands.
//
// Example file:
//
//	decode:
//	  stuck: reset
//	markov:
//	  order: 2
//	  words: 120
//	  seed: 8
//	  per_line: 10
//
// Missing keys keep their defaults. Command-line flags override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/decode"
	"github.com/katalvlaran/lvtree/markov"
)

// ErrInvalid marks a configuration that parsed but holds unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the configuration file.
type Config struct {
	Decode Decode `yaml:"decode"`
	Markov Markov `yaml:"markov"`
}

// Decode configures the huffdecode command.
type Decode struct {
	// Stuck is one of "discard", "fail" or "reset".
	Stuck string `yaml:"stuck"`
}

// Markov configures the writerbot command.
type Markov struct {
	Order   int   `yaml:"order"`
	Words   int   `yaml:"words"`
	Seed    int64 `yaml:"seed"`
	PerLine int   `yaml:"per_line"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Decode: Decode{Stuck: decode.DiscardRemaining.String()},
		Markov: Markov{
			Order:   2,
			Words:   100,
			Seed:    markov.DefaultSeed,
			PerLine: markov.DefaultPerLine,
		},
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := decode.ParseStuckPolicy(c.Decode.Stuck); err != nil {
		return fmt.Errorf("%w: decode.stuck: %w", ErrInvalid, err)
	}
	if c.Markov.Order < 1 {
		return fmt.Errorf("%w: markov.order=%d, need >= 1", ErrInvalid, c.Markov.Order)
	}
	if c.Markov.Words < 0 {
		return fmt.Errorf("%w: markov.words=%d, need >= 0", ErrInvalid, c.Markov.Words)
	}
	if c.Markov.PerLine < 1 {
		return fmt.Errorf("%w: markov.per_line=%d, need >= 1", ErrInvalid, c.Markov.PerLine)
	}

	return nil
}

// StuckPolicy returns the parsed decode.stuck value. Call after Validate.
func (c Config) StuckPolicy() decode.StuckPolicy {
	p, _ := decode.ParseStuckPolicy(c.Decode.Stuck)

	return p
}
