package cmd

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/darthshadow/exactjoin/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadElementsLines(t *testing.T) {
	elems, err := readElements(context.Background(), strings.NewReader("a\r\nb\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, elems)

	elems, err = readElements(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestReadElementsZero(t *testing.T) {
	ctx, ci := fs.AddConfig(context.Background())
	ci.Zero = true
	elems, err := readElements(ctx, strings.NewReader("a\nb\x00\x00c\x00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a\nb", "", "c"}, elems)
}

func TestReadElementsLong(t *testing.T) {
	long := strings.Repeat("x", 3*scanBufferSize)
	elems, err := readElements(context.Background(), strings.NewReader(long+"\nshort\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{long, "short"}, elems)
}

func TestScanNUL(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("x\x00y"))
	scanner.Split(scanNUL)
	var got []string
	for scanner.Scan() {
		got = append(got, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"x", "y"}, got)
}
