// SPDX-License-Identifier: MIT
// Package: lvtree/bintree
//
// build.go — tree reconstruction from preorder + inorder.
//
// Invariants:
//   • preorder is read through a single cursor shared by every recursive call;
//     the left subtree consumes its whole share before the right one starts.
//   • inorder is never sliced or copied; subtrees are index ranges [lo, hi].
//   • every node is created exactly once with its final children.

package bintree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// preorderCursor hands out preorder values front to back.
type preorderCursor[T constraints.Integer] struct {
	values []T
	pos    int
}

// next returns the value under the cursor and advances it.
func (c *preorderCursor[T]) next() (T, bool) {
	if c.pos >= len(c.values) {
		var zero T
		return zero, false
	}
	v := c.values[c.pos]
	c.pos++

	return v, true
}

// builder carries the state of one Build call.
type builder[T constraints.Integer] struct {
	opts    Options[T]
	pre     *preorderCursor[T]
	inIndex map[T]int // value -> position in inorder
}

// Build reconstructs the binary tree whose preorder traversal is preorder and
// whose inorder traversal is inorder. Values must be unique.
//
// Empty sequences yield a nil root and no error.
// Input slices are not modified.
//
// Complexity: O(n) time, O(n) memory.
func Build[T constraints.Integer](preorder, inorder []T, opts ...Option[T]) (*Node[T], error) {
	// 1. Shape checks
	if len(preorder) != len(inorder) {
		return nil, fmt.Errorf("bintree: Build: preorder has %d values, inorder has %d: %w",
			len(preorder), len(inorder), ErrLengthMismatch)
	}
	if len(inorder) == 0 {
		return nil, nil
	}

	// 2. Index inorder once
	index := make(map[T]int, len(inorder))
	for i, v := range inorder {
		if j, dup := index[v]; dup {
			return nil, fmt.Errorf("bintree: Build: value %v at inorder positions %d and %d: %w",
				v, j, i, ErrDuplicateValue)
		}
		index[v] = i
	}

	b := &builder[T]{
		opts:    resolveOptions(opts),
		pre:     &preorderCursor[T]{values: preorder},
		inIndex: index,
	}

	// 3. Recurse over the full inorder range
	root, err := b.build(0, len(inorder)-1)
	if err != nil {
		return nil, err
	}

	// 4. Every preorder value must have become a node
	if b.pre.pos != len(preorder) {
		return nil, fmt.Errorf("bintree: Build: %d of %d preorder values used: %w",
			b.pre.pos, len(preorder), ErrTrailingPreorder)
	}

	return root, nil
}

// build returns the subtree whose inorder traversal is inorder[lo..hi].
func (b *builder[T]) build(lo, hi int) (*Node[T], error) {
	if lo > hi {
		return nil, nil
	}

	select {
	case <-b.opts.Ctx.Done():
		return nil, b.opts.Ctx.Err()
	default:
	}

	pos := b.pre.pos
	v, ok := b.pre.next()
	if !ok {
		// Unreachable with equal lengths and unique values.
		return nil, fmt.Errorf("bintree: Build: preorder exhausted with inorder[%d:%d] pending: %w",
			lo, hi+1, ErrValueNotFound)
	}

	k, ok := b.inIndex[v]
	if !ok || k < lo || k > hi {
		return nil, fmt.Errorf("bintree: Build: preorder[%d]=%v not in inorder[%d:%d]: %w",
			pos, v, lo, hi+1, ErrValueNotFound)
	}

	left, err := b.build(lo, k-1)
	if err != nil {
		return nil, err
	}
	right, err := b.build(k+1, hi)
	if err != nil {
		return nil, err
	}

	return NewNode(v, left, right), nil
}
