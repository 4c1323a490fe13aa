package bintree_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/bintree"
)

// BenchmarkBuild_Balanced10000 rebuilds a balanced tree of 10,000 nodes.
// The traversals are computed once from a BST over 0..n-1, so inorder is sorted.
func BenchmarkBuild_Balanced10000(b *testing.B) {
	const n = 10000
	in := make([]int, n)
	for i := range in {
		in[i] = i
	}
	pre := make([]int, 0, n)
	var fill func(lo, hi int)
	fill = func(lo, hi int) {
		if lo > hi {
			return
		}
		mid := (lo + hi) / 2
		pre = append(pre, mid)
		fill(lo, mid-1)
		fill(mid+1, hi)
	}
	fill(0, n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bintree.Build(pre, in)
	}
}

// BenchmarkBuild_Chain10000 rebuilds a right-leaning chain, the worst case for
// recursion depth.
func BenchmarkBuild_Chain10000(b *testing.B) {
	const n = 10000
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bintree.Build(seq, seq)
	}
}
