package huffman_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvtree/huffman"
)

// ExampleRun feeds the pipeline a three-line document:
// preorder, inorder and the bit string.
func ExampleRun() {
	doc := "1 2 3\n2 1 3\n01\n"

	if err := huffman.Run(context.Background(), strings.NewReader(doc), os.Stdout); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// 2 3 1
	// 23
}
