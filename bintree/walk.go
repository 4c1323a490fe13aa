// SPDX-License-Identifier: MIT
// Package: lvtree/bintree
//
// walk.go — depth-first traversals in the three classic orders.

package bintree

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// WalkResult captures the outcome of Walk.
type WalkResult[T constraints.Integer] struct {
	// Order lists node values in the requested visit order.
	Order []T

	// Depth maps each value to its distance (#edges) from the root.
	Depth map[T]int

	// Leaves counts nodes without children.
	Leaves int
}

// walker encapsulates state during Walk.
type walker[T constraints.Integer] struct {
	order Order
	opts  Options[T]
	res   *WalkResult[T]
}

// Walk traverses the tree rooted at root in the given order.
// A nil root yields an empty result. If the OnVisit hook or the context aborts
// the walk, the partial result is returned together with the error.
func Walk[T constraints.Integer](root *Node[T], order Order, opts ...Option[T]) (*WalkResult[T], error) {
	if order < PreOrder || order > PostOrder {
		return nil, fmt.Errorf("bintree: Walk: unknown %v", order)
	}

	w := &walker[T]{
		order: order,
		opts:  resolveOptions(opts),
		res:   &WalkResult[T]{Depth: make(map[T]int)},
	}
	if err := w.visit(root, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// visit walks the subtree at n, recording n at the position given by w.order.
func (w *walker[T]) visit(n *Node[T], depth int) error {
	if n == nil {
		return nil
	}

	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.order == PreOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.visit(n.left, depth+1); err != nil {
		return err
	}
	if w.order == InOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.visit(n.right, depth+1); err != nil {
		return err
	}
	if w.order == PostOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}

	return nil
}

// emit runs the hook and appends n to the result.
func (w *walker[T]) emit(n *Node[T], depth int) error {
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("bintree: OnVisit hook for %v: %w", n.value, err)
		}
	}
	w.res.Order = append(w.res.Order, n.value)
	w.res.Depth[n.value] = depth
	if n.IsLeaf() {
		w.res.Leaves++
	}

	return nil
}

// Preorder returns the values of the tree at root in preorder.
func Preorder[T constraints.Integer](root *Node[T]) []T {
	return collect(root, PreOrder)
}

// Inorder returns the values of the tree at root in inorder.
func Inorder[T constraints.Integer](root *Node[T]) []T {
	return collect(root, InOrder)
}

// Postorder returns the values of the tree at root in postorder.
// Nil subtrees contribute nothing.
func Postorder[T constraints.Integer](root *Node[T]) []T {
	return collect(root, PostOrder)
}

// collect walks without hooks or cancellation, so it cannot fail.
func collect[T constraints.Integer](root *Node[T], order Order) []T {
	res, _ := Walk(root, order)

	return res.Order
}

// Size returns the number of nodes in the tree at root.
func Size[T constraints.Integer](root *Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + Size(root.left) + Size(root.right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// The empty tree has height 0.
func Height[T constraints.Integer](root *Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + max(Height(root.left), Height(root.right))
}

// Join renders values in decimal separated by sep, with no trailing separator.
func Join[T constraints.Integer](values []T, sep string) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(FormatValue(v))
	}

	return sb.String()
}

// FormatValue renders v in base 10 for any signed or unsigned integer type.
func FormatValue[T constraints.Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
