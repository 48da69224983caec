package join

// The fill functions write elems separated by sep into dst, which must be
// exactly as long as the planned length, and return the number of units
// written.
//
// Loops for separators of a constant small length compile to fixed stores
// instead of a runtime-sized copy, so the common cases get their own branch.
// Every branch produces the same output as the default one.

func fillString[S ~string](dst []byte, elems []S, sep S) int {
	rest := dst[copy(dst, elems[0]):]
	switch len(sep) {
	case 0:
		for _, elem := range elems[1:] {
			rest = rest[copy(rest, elem):]
		}
	case 1:
		s0 := sep[0]
		for _, elem := range elems[1:] {
			rest[0] = s0
			rest = rest[1:]
			rest = rest[copy(rest, elem):]
		}
	case 2:
		s0, s1 := sep[0], sep[1]
		for _, elem := range elems[1:] {
			_ = rest[1]
			rest[0], rest[1] = s0, s1
			rest = rest[2:]
			rest = rest[copy(rest, elem):]
		}
	case 3:
		s0, s1, s2 := sep[0], sep[1], sep[2]
		for _, elem := range elems[1:] {
			_ = rest[2]
			rest[0], rest[1], rest[2] = s0, s1, s2
			rest = rest[3:]
			rest = rest[copy(rest, elem):]
		}
	case 4:
		s0, s1, s2, s3 := sep[0], sep[1], sep[2], sep[3]
		for _, elem := range elems[1:] {
			_ = rest[3]
			rest[0], rest[1], rest[2], rest[3] = s0, s1, s2, s3
			rest = rest[4:]
			rest = rest[copy(rest, elem):]
		}
	default:
		for _, elem := range elems[1:] {
			rest = rest[copy(rest, sep):]
			rest = rest[copy(rest, elem):]
		}
	}
	return len(dst) - len(rest)
}

func fillSlice[E ~[]U, U any](dst []U, elems []E, sep []U) int {
	rest := dst[copy(dst, elems[0]):]
	switch len(sep) {
	case 0:
		for _, elem := range elems[1:] {
			rest = rest[copy(rest, elem):]
		}
	case 1:
		s0 := sep[0]
		for _, elem := range elems[1:] {
			rest[0] = s0
			rest = rest[1:]
			rest = rest[copy(rest, elem):]
		}
	case 2:
		s0, s1 := sep[0], sep[1]
		for _, elem := range elems[1:] {
			_ = rest[1]
			rest[0], rest[1] = s0, s1
			rest = rest[2:]
			rest = rest[copy(rest, elem):]
		}
	case 3:
		s0, s1, s2 := sep[0], sep[1], sep[2]
		for _, elem := range elems[1:] {
			_ = rest[2]
			rest[0], rest[1], rest[2] = s0, s1, s2
			rest = rest[3:]
			rest = rest[copy(rest, elem):]
		}
	case 4:
		s0, s1, s2, s3 := sep[0], sep[1], sep[2], sep[3]
		for _, elem := range elems[1:] {
			_ = rest[3]
			rest[0], rest[1], rest[2], rest[3] = s0, s1, s2, s3
			rest = rest[4:]
			rest = rest[copy(rest, elem):]
		}
	default:
		for _, elem := range elems[1:] {
			rest = rest[copy(rest, sep):]
			rest = rest[copy(rest, elem):]
		}
	}
	return len(dst) - len(rest)
}
