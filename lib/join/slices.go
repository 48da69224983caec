package join

// JoinSlices concatenates the elements of elems placing sep between each
// consecutive pair. The result is a new slice whose capacity equals its
// length; the inputs are never aliased. An empty elems gives nil.
//
// JoinSlices panics with ErrCapacityOverflow if the result would hold more
// than the largest int units. The panic happens before anything is allocated.
func JoinSlices[E ~[]U, U any](elems []E, sep E) E {
	s, err := joinSlices[E, U](elems, sep)
	if err != nil {
		panic(err)
	}
	return s
}

// JoinUnit is JoinSlices with a separator of a single unit.
func JoinUnit[E ~[]U, U any](elems []E, sep U) E {
	one := [1]U{sep}
	s, err := joinSlices[E, U](elems, one[:])
	if err != nil {
		panic(err)
	}
	return s
}

// ConcatSlices concatenates the elements of elems into a new slice.
func ConcatSlices[E ~[]U, U any](elems []E) E {
	return JoinSlices[E, U](elems, nil)
}

// TryJoinSlices is like JoinSlices except that it returns
// ErrCapacityOverflow instead of panicking.
func TryJoinSlices[E ~[]U, U any](elems []E, sep E) (E, error) {
	return joinSlices[E, U](elems, sep)
}

func joinSlices[E ~[]U, U any](elems []E, sep []U) (E, error) {
	if len(elems) == 0 {
		return nil, nil
	}
	n, err := PlanSliceLength(elems, len(sep))
	if err != nil {
		return nil, err
	}
	buf := make(E, n)
	checkWritten(n, fillSlice[E, U](buf, elems, sep))
	return buf, nil
}
