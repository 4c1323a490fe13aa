// SPDX-License-Identifier: MIT
// Package: lvtree/decode
//
// types.go — sentinel errors, stuck policies and functional options.

package decode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilTree indicates a decoder was requested for an empty tree.
	ErrNilTree = errors.New("decode: tree is nil")

	// ErrInvalidBit indicates a bit string character other than '0' or '1'.
	ErrInvalidBit = errors.New("decode: invalid bit")

	// ErrStuck indicates a move to a missing child under FailOnStuck.
	ErrStuck = errors.New("decode: no child for bit")

	// ErrUnknownPolicy indicates a stuck policy name ParseStuckPolicy does not know.
	ErrUnknownPolicy = errors.New("decode: unknown stuck policy")
)

// StuckPolicy selects what the decoder does after a move to a missing child.
type StuckPolicy int

const (
	// DiscardRemaining leaves the cursor off the tree; the rest of the input
	// is validated but produces no output.
	DiscardRemaining StuckPolicy = iota
	// FailOnStuck aborts decoding with ErrStuck.
	FailOnStuck
	// ResetToRoot ends the current epoch without output.
	ResetToRoot
)

// String returns the policy name as accepted by ParseStuckPolicy.
func (p StuckPolicy) String() string {
	switch p {
	case DiscardRemaining:
		return "discard"
	case FailOnStuck:
		return "fail"
	case ResetToRoot:
		return "reset"
	default:
		return fmt.Sprintf("StuckPolicy(%d)", int(p))
	}
}

// ParseStuckPolicy maps "discard", "fail" or "reset" (case-insensitive) to a
// policy. The empty string selects DiscardRemaining.
func ParseStuckPolicy(s string) (StuckPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "discard":
		return DiscardRemaining, nil
	case "fail":
		return FailOnStuck, nil
	case "reset":
		return ResetToRoot, nil
	default:
		return DiscardRemaining, fmt.Errorf("decode: ParseStuckPolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// Options configures a Decoder.
type Options struct {
	// Stuck chooses the behaviour after a move to a missing child.
	Stuck StuckPolicy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with DiscardRemaining.
func DefaultOptions() Options {
	return Options{Stuck: DiscardRemaining}
}

// WithStuckPolicy sets the stuck policy. Panics on an unknown policy.
func WithStuckPolicy(p StuckPolicy) Option {
	if p < DiscardRemaining || p > ResetToRoot {
		panic(fmt.Sprintf("decode: WithStuckPolicy(%d)", int(p)))
	}

	return func(o *Options) {
		o.Stuck = p
	}
}
