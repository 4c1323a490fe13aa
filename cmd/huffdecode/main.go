// Command huffdecode rebuilds a binary tree from a traversal file and decodes
// its bit string.
//
// Usage:
//
//	huffdecode [-config lvtree.yaml] [-stuck discard|fail|reset] [input]
//
// Without an input argument the file name is read from standard input after
// the prompt "Input file: ".
//
// Output: the postorder traversal on the first line and the decoded values on
// the second.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/lvtree/decode"
	"github.com/katalvlaran/lvtree/huffman"
	"github.com/katalvlaran/lvtree/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffdecode: ")

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses args, resolves the input path and executes the pipeline.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("huffdecode", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML configuration file")
	stuck := fs.String("stuck", "", "policy when a bit has no child: discard, fail or reset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	policy := cfg.StuckPolicy()
	if *stuck != "" {
		if policy, err = decode.ParseStuckPolicy(*stuck); err != nil {
			return err
		}
	}

	path := fs.Arg(0)
	if path == "" {
		if path, err = prompt(stdin, stdout, "Input file: "); err != nil {
			return err
		}
	}

	return huffman.RunFile(ctx, path, stdout, huffman.WithStuckPolicy(policy))
}

// prompt writes label and returns the next trimmed line of in.
func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading file name: %w", err)
	}

	return strings.TrimSpace(line), nil
}
