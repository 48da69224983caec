package join

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzJoin splits data on NUL into elements and checks Join and
// JoinSlices against the standard library.
func FuzzJoin(f *testing.F) {
	f.Add("shrt", "abc\x00def\x00foo")
	f.Add("looooooong", "")
	f.Add("", "abc")
	f.Add("中文", "gabaäœ吃\x00\x00\x00foo")
	f.Add("_", "\x00")

	f.Fuzz(func(t *testing.T, sep, data string) {
		var elems []string
		if data != "" {
			elems = strings.Split(data, "\x00")
		}

		got := Join(elems, sep)
		assert.Equal(t, strings.Join(elems, sep), got)

		want, err := PlanLength(elems, len(sep))
		assert.NoError(t, err)
		assert.Equal(t, want, len(got))

		runs := make([][]byte, len(elems))
		for i, e := range elems {
			runs[i] = []byte(e)
		}
		gotBytes := JoinSlices(runs, []byte(sep))
		assert.True(t, bytes.Equal(bytes.Join(runs, []byte(sep)), gotBytes))
		assert.Equal(t, len(gotBytes), cap(gotBytes))
	})
}
