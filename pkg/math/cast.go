package math

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrOutOfRange = errors.New("value out of range")

// SafeCastTo converts from to T and fails when the value does not survive the
// conversion.
func SafeCastTo[T, F constraints.Integer](from F) (T, error) {
	to := T(from)
	if F(to) != from || (to < 0) != (from < 0) {
		return T(0), fmt.Errorf("%w: value(%v) does not fit into %T", ErrOutOfRange, from, to)
	}
	return to, nil
}

func MustSafeCastTo[T, F constraints.Integer](from F) T {
	to, err := SafeCastTo[T](from)
	if err != nil {
		panic(err)
	}
	return to
}
