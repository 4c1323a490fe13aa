// SPDX-License-Identifier: MIT
// Package: lvtree/decode
//
// decoder.go — the cursor state machine and one-shot helpers.

package decode

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvtree/bintree"
)

// Decoder holds a cursor over a fixed tree. It is not safe for concurrent use.
type Decoder[T constraints.Integer] struct {
	root   *bintree.Node[T]
	cursor *bintree.Node[T] // nil while stuck
	opts   Options
	offset int // bits consumed so far
	values []T
}

// New returns a decoder positioned at root.
func New[T constraints.Integer](root *bintree.Node[T], opts ...Option) (*Decoder[T], error) {
	if root == nil {
		return nil, ErrNilTree
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Decoder[T]{root: root, cursor: root, opts: o}, nil
}

// Step consumes one bit. It reports the emitted value when the bit completes
// an epoch.
func (d *Decoder[T]) Step(bit byte) (value T, emitted bool, err error) {
	pos := d.offset
	if bit != '0' && bit != '1' {
		return value, false, fmt.Errorf("decode: bit %d is %q: %w", pos, bit, ErrInvalidBit)
	}
	d.offset++

	// Single-node tree: the root is the leaf of every epoch.
	if d.root.IsLeaf() {
		return d.emit(d.root), true, nil
	}

	if d.cursor == nil {
		// Only reachable under DiscardRemaining.
		return value, false, nil
	}

	d.cursor = d.cursor.Child(bit)
	if d.cursor == nil {
		switch d.opts.Stuck {
		case FailOnStuck:
			return value, false, fmt.Errorf("decode: bit %d: %w", pos, ErrStuck)
		case ResetToRoot:
			d.cursor = d.root
		}

		return value, false, nil
	}

	if d.cursor.IsLeaf() {
		return d.emit(d.cursor), true, nil
	}

	return value, false, nil
}

// emit records leaf and moves the cursor back to the root.
func (d *Decoder[T]) emit(leaf *bintree.Node[T]) T {
	v := leaf.Value()
	d.values = append(d.values, v)
	d.cursor = d.root

	return v
}

// Feed passes every byte of bits through Step and stops at the first error.
func (d *Decoder[T]) Feed(bits string) error {
	for i := 0; i < len(bits); i++ {
		if _, _, err := d.Step(bits[i]); err != nil {
			return err
		}
	}

	return nil
}

// Reset returns the cursor to the root and clears the emitted values.
func (d *Decoder[T]) Reset() {
	d.cursor = d.root
	d.offset = 0
	d.values = nil
}

// Stuck reports whether the cursor has fallen off the tree.
func (d *Decoder[T]) Stuck() bool { return d.cursor == nil }

// Pending reports whether an epoch is in progress, i.e. the cursor is below the root.
func (d *Decoder[T]) Pending() bool { return d.cursor != nil && d.cursor != d.root }

// Offset returns the number of bits consumed since the last Reset.
func (d *Decoder[T]) Offset() int { return d.offset }

// Values returns a copy of the emitted leaf values in epoch order.
func (d *Decoder[T]) Values() []T { return slices.Clone(d.values) }

// String returns the emitted values concatenated in decimal.
func (d *Decoder[T]) String() string {
	var sb strings.Builder
	for _, v := range d.values {
		sb.WriteString(bintree.FormatValue(v))
	}

	return sb.String()
}

// Values decodes bits against root and returns the emitted leaf values.
// An empty bit string yields no values, even for a nil root.
func Values[T constraints.Integer](root *bintree.Node[T], bits string, opts ...Option) ([]T, error) {
	d, err := newFor(root, bits, opts)
	if err != nil || d == nil {
		return nil, err
	}

	return d.Values(), nil
}

// Decode decodes bits against root and returns the emitted values
// concatenated in decimal.
func Decode[T constraints.Integer](root *bintree.Node[T], bits string, opts ...Option) (string, error) {
	d, err := newFor(root, bits, opts)
	if err != nil || d == nil {
		return "", err
	}

	return d.String(), nil
}

// newFor runs a fresh decoder over bits. It returns (nil, nil) for empty input.
func newFor[T constraints.Integer](root *bintree.Node[T], bits string, opts []Option) (*Decoder[T], error) {
	if bits == "" {
		return nil, nil
	}
	d, err := New(root, opts...)
	if err != nil {
		return nil, err
	}
	if err = d.Feed(bits); err != nil {
		return nil, err
	}

	return d, nil
}
