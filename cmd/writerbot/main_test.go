package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/internal/config"
)

func source(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_LinearSource(t *testing.T) {
	// Every prefix has one successor, so the output is the source itself.
	src := source(t, "one two three four five\n\nsix seven\n")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-n", "1", "-words", "100", "-per-line", "3", src}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "one two three\nfour five six\nseven\n", out.String())
}

func TestRun_Interactive(t *testing.T) {
	src := source(t, "a b c d e f g h i j k l\n")

	var out bytes.Buffer
	err := run(context.Background(), nil, strings.NewReader(src+"\n2\n11\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "a b c d e f g h i j\nk\n", out.String())
}

func TestRun_Deterministic(t *testing.T) {
	src := source(t, "the cat sat on the mat and the cat ate the rat on the mat\n")
	args := []string{"-n", "1", "-words", "40", "-seed", "5", src}

	var a, b bytes.Buffer
	require.NoError(t, run(context.Background(), args, strings.NewReader(""), &a))
	require.NoError(t, run(context.Background(), args, strings.NewReader(""), &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_Errors(t *testing.T) {
	src := source(t, "a b\n")
	var out bytes.Buffer

	err := run(context.Background(), []string{"-n", "0", src}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, config.ErrInvalid)

	err = run(context.Background(), nil, strings.NewReader(src+"\ntwo\n5\n"), &out)
	assert.Error(t, err)

	err = run(context.Background(), nil, strings.NewReader(src+"\n"), &out)
	assert.Error(t, err)

	err = run(context.Background(), []string{filepath.Join(t.TempDir(), "none")}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
