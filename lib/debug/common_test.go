package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemoryLimit(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
		err  bool
	}{
		{"", NoMemoryLimit, false},
		{"off", NoMemoryLimit, false},
		{" OFF ", NoMemoryLimit, false},
		{"512MiB", 512 << 20, false},
		{"1GB", 1000000000, false},
		{"4096", 4096, false},
		{"lots", 0, true},
		{"20EiB", 0, true},
	} {
		got, err := ParseMemoryLimit(test.in)
		if test.err {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestApply(t *testing.T) {
	restore, err := Apply(50, "1GiB")
	require.NoError(t, err)
	assert.Equal(t, 50, SetGCPercent(50))
	assert.Equal(t, int64(1<<30), SetMemoryLimit(-1))
	restore()

	_, err = Apply(-2, "off")
	assert.Error(t, err)

	_, err = Apply(100, "plenty")
	assert.Error(t, err)
}
