// SPDX-License-Identifier: MIT
// Package: lvtree/bintree
//
// types.go — Node, traversal order, sentinel errors and functional options.

package bintree

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors. Callers branch with errors.Is; call sites attach context
// with %w.
var (
	// ErrStructuralMismatch is the umbrella class for every error that means
	// "these two sequences are not the traversals of one tree".
	ErrStructuralMismatch = errors.New("bintree: preorder and inorder do not describe one tree")

	// ErrLengthMismatch indicates len(preorder) != len(inorder).
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrStructuralMismatch)

	// ErrDuplicateValue indicates a value occurs more than once in inorder,
	// which makes the root split ambiguous.
	ErrDuplicateValue = fmt.Errorf("%w: duplicate value", ErrStructuralMismatch)

	// ErrValueNotFound indicates a preorder value that is absent from inorder
	// or lies outside the inorder segment of the subtree being built.
	ErrValueNotFound = fmt.Errorf("%w: value not found in inorder segment", ErrStructuralMismatch)

	// ErrTrailingPreorder indicates preorder values left over after the tree
	// was complete.
	ErrTrailingPreorder = fmt.Errorf("%w: preorder not fully consumed", ErrStructuralMismatch)
)

// Node is a binary tree node holding a value of an integer type T.
// Children are fixed at construction; a built tree is read-only.
type Node[T constraints.Integer] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// NewNode returns a node with the given value and children. Either child may
// be nil.
func NewNode[T constraints.Integer](value T, left, right *Node[T]) *Node[T] {
	return &Node[T]{value: value, left: left, right: right}
}

// Value returns the value stored in n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }

// Child returns the left child for bit '0' and the right child otherwise.
func (n *Node[T]) Child(bit byte) *Node[T] {
	if bit == '0' {
		return n.left
	}

	return n.right
}

// String renders n recursively: a leaf prints its value, an inner node prints
// "v [left, right]" with "<nil>" standing in for a missing child.
func (n *Node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprint(n.value)
	}

	return fmt.Sprintf("%v [%s, %s]", n.value, n.left.String(), n.right.String())
}

// Order selects the visit order of Walk.
type Order int

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder
	// PostOrder visits the left subtree, the right subtree, then the node.
	PostOrder
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Options holds the knobs shared by Build and Walk.
type Options[T constraints.Integer] struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked by Walk when a node is emitted in the
	// requested order. Returning an error aborts the walk.
	OnVisit func(n *Node[T], depth int) error
}

// Option configures Build or Walk.
type Option[T constraints.Integer] func(*Options[T])

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions[T constraints.Integer]() Options[T] {
	return Options[T]{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext sets the context checked for cancellation.
// A nil context has no effect.
func WithContext[T constraints.Integer](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook for Walk. Build ignores it.
func WithOnVisit[T constraints.Integer](fn func(n *Node[T], depth int) error) Option[T] {
	return func(o *Options[T]) {
		o.OnVisit = fn
	}
}

func resolveOptions[T constraints.Integer](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
