package join

import "errors"

var (
	// ErrCapacityOverflow is returned (or panicked with) when the joined
	// result would be longer than the largest int.
	ErrCapacityOverflow = errors.New("join: attempt to build a sequence longer than the addressable size")

	// ErrInvalidUTF8 is returned by JoinUTF8 when the result is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("join: result is not valid UTF-8")
)
