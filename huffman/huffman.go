// SPDX-License-Identifier: MIT
// Package: lvtree/huffman

// Package huffman runs the full traversal-decode pipeline: read a traversal
// file, rebuild the tree, decode the bit string, and print the postorder
// traversal followed by the decoded text.
//
// Output is produced only after every stage has succeeded, so malformed input
// never leaves a partial first line behind.
package huffman

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtree/bintree"
	"github.com/katalvlaran/lvtree/decode"
	"github.com/katalvlaran/lvtree/input"
	"github.com/katalvlaran/lvtree/internal/tracing"
)

// Result holds both output lines before they are written.
type Result struct {
	Postorder string // postorder values joined by single spaces
	Decoded   string // decoded leaf values, concatenated
}

// Option configures Run and Process.
type Option func(*options)

type options struct {
	decodeOpts []decode.Option
}

// WithStuckPolicy forwards p to the decoder.
func WithStuckPolicy(p decode.StuckPolicy) Option {
	opt := decode.WithStuckPolicy(p)

	return func(o *options) {
		o.decodeOpts = append(o.decodeOpts, opt)
	}
}

// Run reads a traversal document from r, processes it and writes the two
// result lines to w.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	ctx, span := tracing.StartSpan(ctx, "Run")
	defer span.End()

	doc, err := input.Read(r)
	if err != nil {
		return tracing.Fail(span, err, "read failed")
	}

	return processAndWrite(ctx, span, doc, w, opts)
}

// RunFile is Run over the file at path. Open and read failures match
// input.ErrIO.
func RunFile(ctx context.Context, path string, w io.Writer, opts ...Option) error {
	ctx, span := tracing.StartSpan(ctx, "RunFile", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	doc, err := input.ReadFile(path)
	if err != nil {
		return tracing.Fail(span, err, "read failed")
	}

	return processAndWrite(ctx, span, doc, w, opts)
}

// processAndWrite writes both lines only after Process has succeeded.
func processAndWrite(ctx context.Context, span trace.Span, doc *input.Document, w io.Writer, opts []Option) error {
	res, err := Process(ctx, doc, opts...)
	if err != nil {
		return tracing.Fail(span, err, "process failed")
	}

	if _, err = fmt.Fprintf(w, "%s\n%s\n", res.Postorder, res.Decoded); err != nil {
		return tracing.Fail(span, fmt.Errorf("huffman: write: %w", err), "write failed")
	}

	return nil
}

// Process builds the tree described by doc and computes both output lines.
func Process(ctx context.Context, doc *input.Document, opts ...Option) (*Result, error) {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}

	ctx, span := tracing.StartSpan(ctx, "Process", trace.WithAttributes(
		attribute.Int("nodes", len(doc.Inorder)),
		attribute.Int("bits", len(doc.Bits)),
	))
	defer span.End()

	root, err := bintree.Build(doc.Preorder, doc.Inorder, bintree.WithContext[int](ctx))
	if err != nil {
		return nil, tracing.Fail(span, err, "build failed")
	}
	span.AddEvent("tree_built", trace.WithAttributes(attribute.Int("height", bintree.Height(root))))

	decoded, err := decode.Decode(root, doc.Bits, o.decodeOpts...)
	if err != nil {
		return nil, tracing.Fail(span, err, "decode failed")
	}

	post, err := bintree.Walk(root, bintree.PostOrder, bintree.WithContext[int](ctx))
	if err != nil {
		return nil, tracing.Fail(span, err, "walk failed")
	}
	span.SetAttributes(attribute.Int("leaves", post.Leaves))

	return &Result{
		Postorder: bintree.Join(post.Order, " "),
		Decoded:   decoded,
	}, nil
}
