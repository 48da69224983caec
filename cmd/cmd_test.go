package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/darthshadow/exactjoin/fs"
	"github.com/darthshadow/exactjoin/lib/join"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(fs.NewConfig())
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunArgs(t *testing.T) {
	out, err := execute(t, "", "-s", "shrt", "abc", "def", "foo")
	require.NoError(t, err)
	assert.Equal(t, "abcshrtdefshrtfoo", out)
}

func TestRunDefaultSeparator(t *testing.T) {
	out, err := execute(t, "", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a b", out)
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "gabaäœ吃\n\n\r\nfoo\n", "-s", "中文", "--newline")
	require.NoError(t, err)
	assert.Equal(t, "gabaäœ吃中文中文中文foo\n", out)
}

func TestRunStdinEmpty(t *testing.T) {
	out, err := execute(t, "", "-s", "looooooong")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRunZero(t *testing.T) {
	out, err := execute(t, "one\x00two\nlines\x00three", "-z", "-s", "|")
	require.NoError(t, err)
	assert.Equal(t, "one|two\nlines|three", out)
}

func TestRunEscape(t *testing.T) {
	out, err := execute(t, "", "-e", "-s", `\t`, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a\tb", out)

	_, err = execute(t, "", "-e", "-s", `\q`, "a", "b")
	assert.Error(t, err)
}

func TestRunSkipEmptyAndSort(t *testing.T) {
	out, err := execute(t, "pear\n\napple\nfig\n", "--skip-empty", "--sort", "-s", ",")
	require.NoError(t, err)
	assert.Equal(t, "apple,fig,pear", out)
}

func TestRunNormalize(t *testing.T) {
	out, err := execute(t, "", "--normalize", "nfc", "-s", "", "e\u0301", "a\u0308")
	require.NoError(t, err)
	assert.Equal(t, "\u00e9\u00e4", out)

	_, err = execute(t, "", "--normalize", "nfx", "a")
	assert.ErrorContains(t, err, "unknown normalization")
}

func TestRunCheckUTF8(t *testing.T) {
	_, err := execute(t, "", "--check-utf8", "ok", "bad\xff")
	assert.ErrorIs(t, err, join.ErrInvalidUTF8)

	out, err := execute(t, "", "bad\xff", "still")
	require.NoError(t, err)
	assert.Equal(t, "bad\xff still", out)
}

func TestRunBadFlags(t *testing.T) {
	_, err := execute(t, "", "-v", "--log-level", "DEBUG", "a")
	assert.Error(t, err)

	_, err = execute(t, "", "--log-format", "xml", "a")
	assert.Error(t, err)

	_, err = execute(t, "", "--gc-percent", "-5", "a")
	assert.Error(t, err)
}

func TestRunDebugLog(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewRootCommand(fs.NewConfig())
	root.SetArgs([]string{"-vv", "-s", "/", "🇩🇪", "x"})
	root.SetOut(&out)
	root.SetErr(&errOut)
	require.NoError(t, root.Execute())
	assert.Equal(t, "🇩🇪/x", out.String())
	assert.Contains(t, errOut.String(), "Joined 2 elements with a 1 byte separator into 10 B (3 graphemes)")
}
