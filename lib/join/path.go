package join

import (
	"path"
)

// PathJoin - like path.Join(), but the joined path is built by Join in a
// single allocation before being cleaned.
func PathJoin(elements ...string) string {
	return cleanJoin(path.Clean, elements)
}

// FilePathJoin - like filepath.Join().
func FilePathJoin(elements ...string) string {
	return filePathJoin(elements...)
}

// cleanJoin skips leading empty elements, joins the rest with a slash and
// cleans the result. An all-empty input gives "".
func cleanJoin(clean func(string) string, elements []string) string {
	for i, e := range elements {
		if e != "" {
			return clean(Join(elements[i:], unixSlashSeparator))
		}
	}
	return ""
}
