// SPDX-License-Identifier: MIT
// Package: lvtree/input

// Package input reads the three-segment traversal file consumed by the
// huffman pipeline:
//
//	line 1      whitespace-separated integers, the preorder traversal
//	line 2      whitespace-separated integers, the inorder traversal
//	lines 3..   whitespace-separated tokens joined into one bit string
//
// Bit tokens are not validated here; the decoder rejects bad characters.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrParse is the class of every *ParseError.
	ErrParse = errors.New("input: malformed traversal")

	// ErrMissingLine indicates the file ended before the inorder line.
	ErrMissingLine = errors.New("input: missing traversal line")

	// ErrIO wraps failures to open or read the input.
	ErrIO = errors.New("input: i/o failure")
)

// ParseError locates a token that is not an integer.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending token
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input: line %d: %q is not an integer: %v", e.Line, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the strconv error to errors.Is.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Document is the parsed content of one input file.
type Document struct {
	Preorder []int
	Inorder  []int
	Bits     string
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a document from r.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	var bits strings.Builder

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())

		var err error
		switch line {
		case 1:
			doc.Preorder, err = parseInts(line, fields)
		case 2:
			doc.Inorder, err = parseInts(line, fields)
		default:
			for _, tok := range fields {
				bits.WriteString(tok)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if line < 2 {
		return nil, fmt.Errorf("input: %d line(s) read, need preorder and inorder: %w", line, ErrMissingLine)
	}
	doc.Bits = bits.String()

	return doc, nil
}

func parseInts(line int, fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Line: line, Token: tok, Err: err}
		}
		out = append(out, v)
	}

	return out, nil
}
