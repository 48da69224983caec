//go:build !unix && !(js && wasm) && !wasip1

package join

import (
	"path/filepath"
)

// Volume names and backslash separators need the full filepath.Join rules,
// so there is no single-allocation fast path here.
func filePathJoin(elements ...string) string {
	return filepath.Join(elements...)
}
