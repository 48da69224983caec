package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeResult writes result to out, followed by a newline if asked.
func writeResult(out io.Writer, result string, newline bool) error {
	if _, err := io.WriteString(out, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if newline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// unescape interprets Go style backslash escapes in s. Bytes outside
// escapes are copied through unchanged, even if they are not valid UTF-8.
func unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	in := s
	for len(in) > 0 {
		i := strings.IndexByte(in, '\\')
		if i < 0 {
			b.WriteString(in)
			break
		}
		b.WriteString(in[:i])
		in = in[i:]
		value, multibyte, tail, err := strconv.UnquoteChar(in, 0)
		if err != nil {
			return "", fmt.Errorf("bad escape in separator %q: %w", s, err)
		}
		if multibyte {
			b.WriteRune(value)
		} else {
			b.WriteByte(byte(value))
		}
		in = tail
	}
	return b.String(), nil
}
