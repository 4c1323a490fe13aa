// Package bintree rebuilds immutable binary trees from their preorder and
// inorder traversals and walks them back out in any of the three classic orders.
//
// What:
//
//   - Build: reconstructs the unique tree whose preorder and inorder traversals
//     equal the given sequences. Values must be unique integers.
//   - Walk: depth-first traversal in PreOrder, InOrder or PostOrder with a
//     visit hook, cancellation and per-node depth bookkeeping.
//   - Preorder, Inorder, Postorder: plain value sequences.
//   - Join: renders a value sequence as decimal text with a separator.
//
// Why:
//   - Bit-path decoders (see package decode) need a tree whose shape is fixed by
//     two traversals rather than by key order.
//   - Round-tripping traversals is a cheap structural check of a tree.
//
// Key Types:
//
//   - Node[T]: a node with a value and fixed children. Children are set once by
//     NewNode and never change afterwards; there is no insert or splice API.
//   - Order: PreOrder, InOrder, PostOrder.
//   - WalkResult[T]: visit order, depth per value and leaf count.
//
// Complexity:
//
//   - Build:  Time O(n), Memory O(n) (one value→index map over inorder,
//     recursion depth equals tree height).
//   - Walk:   Time O(n), Memory O(h).
//
// Errors:
//
//   - ErrLengthMismatch     preorder and inorder differ in length
//   - ErrDuplicateValue     a value appears twice in inorder
//   - ErrValueNotFound      a preorder value is missing from its inorder segment
//   - ErrTrailingPreorder   preorder was not fully consumed
//   - ErrStructuralMismatch matched by errors.Is for all four above
//   - context.Canceled      build or walk canceled via context
//   - hook errors           propagated from OnVisit
package bintree
