package cmd

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"github.com/darthshadow/exactjoin/fs"
	bufferPool "github.com/libp2p/go-buffer-pool"
	"github.com/mattn/go-isatty"
)

const (
	// scanBufferSize is the initial scanner buffer taken from the pool.
	scanBufferSize = 64 * 1024

	// maxElementSize is the longest single element which can be read.
	maxElementSize = 64 * 1024 * 1024
)

// readElements reads one element per line, or per NUL with --zero, from in.
func readElements(ctx context.Context, in io.Reader) ([]string, error) {
	ci := fs.GetConfig(ctx)

	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fs.Logf(nil, "Reading elements from stdin, one per line, finish with EOF")
	}

	buf := bufferPool.Get(scanBufferSize)
	defer bufferPool.Put(buf)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(buf, maxElementSize)
	if ci.Zero {
		scanner.Split(scanNUL)
	}

	var elems []string
	for scanner.Scan() {
		elems = append(elems, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return elems, nil
}

// scanNUL is a bufio.SplitFunc for NUL terminated records. A final record
// without a terminator is still returned.
func scanNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
