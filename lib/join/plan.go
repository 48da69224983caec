package join

// PlanLength returns the exact length in bytes of joining elems with a
// separator sepLen bytes long.
//
// It returns ErrCapacityOverflow if that length does not fit in an int.
func PlanLength[S ~string](elems []S, sepLen int) (int, error) {
	if len(elems) == 0 {
		return 0, nil
	}
	size, ok := mulInt(sepLen, len(elems)-1)
	if !ok {
		return 0, ErrCapacityOverflow
	}
	for _, elem := range elems {
		if size, ok = addInt(size, len(elem)); !ok {
			return 0, ErrCapacityOverflow
		}
	}
	return size, nil
}

// PlanSliceLength is PlanLength for slices of any unit type. The result
// counts units, not bytes.
func PlanSliceLength[E ~[]U, U any](elems []E, sepLen int) (int, error) {
	if len(elems) == 0 {
		return 0, nil
	}
	size, ok := mulInt(sepLen, len(elems)-1)
	if !ok {
		return 0, ErrCapacityOverflow
	}
	for _, elem := range elems {
		if size, ok = addInt(size, len(elem)); !ok {
			return 0, ErrCapacityOverflow
		}
	}
	return size, nil
}

// mulInt returns a*b for non-negative a and b, and whether it fitted.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > maxInt/b {
		return 0, false
	}
	return a * b, true
}

// addInt returns a+b for non-negative a and b, and whether it fitted.
func addInt(a, b int) (int, bool) {
	if b > maxInt-a {
		return 0, false
	}
	return a + b, true
}
