// Package join concatenates runs of units (strings, byte slices or slices of
// any element type) with a separator using exactly one allocation.
//
// The output length is planned first with overflow-checked arithmetic. Only
// when it is known to fit in an int is the buffer allocated, and then it is
// filled by a copy loop specialised on the separator length.
package join

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

const (
	// maxInt - maximum value of int.
	maxInt = int(^uint(0) >> 1)

	// unixSlashSeparator - slash separator for unix.
	unixSlashSeparator = "/"
)

// Join concatenates the elements of elems placing sep between each
// consecutive pair, like strings.Join, but for any string type.
//
// The elements and the separator are assumed to be valid UTF-8 if the result
// is to be; no validation is done. Use JoinUTF8 for a checked variant.
//
// Join panics with ErrCapacityOverflow if the result would be longer than
// the largest int. The panic happens before anything is allocated.
func Join[S ~string](elems []S, sep S) S {
	s, err := TryJoin(elems, sep)
	if err != nil {
		panic(err)
	}
	return s
}

// Concat concatenates the elements of elems. It is Join with an empty
// separator.
func Concat[S ~string](elems []S) S {
	return Join(elems, "")
}

// TryJoin is like Join except that it returns ErrCapacityOverflow instead of
// panicking.
func TryJoin[S ~string](elems []S, sep S) (S, error) {
	switch len(elems) {
	case 0:
		return "", nil
	case 1:
		return elems[0], nil
	}

	n, err := PlanLength(elems, len(sep))
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	checkWritten(n, fillString(buf, elems, sep))

	// buf is never touched again so it can back the string directly.
	return S(unsafe.String(unsafe.SliceData(buf), n)), nil
}

// JoinUTF8 joins like Join and then checks that the result is valid UTF-8.
//
// A result assembled from valid elements and a valid separator is always
// valid, so this only fails when one of the inputs was not.
func JoinUTF8(elems []string, sep string) (string, error) {
	s, err := TryJoin(elems, sep)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w at byte %d", ErrInvalidUTF8, firstInvalid(s))
	}
	return s, nil
}

// JoinBytes joins byte slices with a byte slice separator. The result has
// capacity equal to its length.
func JoinBytes(elems [][]byte, sep []byte) []byte {
	return JoinSlices(elems, sep)
}

// firstInvalid returns the offset of the first byte of s which does not
// start a valid UTF-8 sequence, or -1.
func firstInvalid(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// checkWritten asserts that the copy engine filled the buffer exactly.
func checkWritten(planned, written int) {
	if written != planned {
		panic(fmt.Sprintf("join: wrote %d units into a buffer planned for %d", written, planned))
	}
}
