// Package lvtree is a small in-memory toolkit for binary trees rebuilt from
// their traversals, bit-path decoding over those trees, and n-gram Markov text.
//
// Packages:
//
//	bintree/   — immutable Node[T], Build(preorder, inorder), Walk in pre/in/post order
//	decode/    — bit-by-bit leaf decoder with configurable stuck policy
//	input/     — parser for the preorder / inorder / bits text format
//	huffman/   — the full read → build → decode → postorder pipeline
//	markov/    — n-gram successor table, seeded generator, line formatter
//	cmd/       — huffdecode and writerbot command-line front-ends
//
// Quick ASCII example:
//
//	    1          preorder  1 2 3
//	   / \         inorder   2 1 3
//	  2   3        bits      01  →  "23"
//
// Bit '0' goes left, '1' goes right; every leaf reached emits its value and the
// walk restarts at the root.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
