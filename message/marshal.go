package message

import (
	"fmt"

	pkgMath "github.com/javimudi/coap/pkg/math"
)

/*
     0   1   2   3   4   5   6   7
   +---------------+---------------+
   |               |               |
   |  Option Delta | Option Length |   1 byte
   |               |               |
   +---------------+---------------+
   \                               \
   /         Option Delta          /   0-2 bytes
   \          (extended)           \
   +-------------------------------+
   \                               \
   /         Option Length         /   0-2 bytes
   \          (extended)           \
   +-------------------------------+
   \                               \
   /                               /
   \                               \
   /         Option Value          /   0 or more bytes
   \                               \
   /                               /
   \                               \
   +-------------------------------+
*/

// MarshalOption encodes o relative to the number of the previously encoded option.
func MarshalOption(o Option, previousID OptionID) ([]byte, error) {
	return AppendOption(nil, o, previousID)
}

// AppendOption appends the encoded option to buf. On error buf is returned unchanged.
func AppendOption(buf []byte, o Option, previousID OptionID) ([]byte, error) {
	if o.ID() < previousID {
		return buf, fmt.Errorf("%w: %v follows %v", ErrInvalidOrdering, o.ID(), previousID)
	}
	value, err := o.Value()
	if err != nil {
		return buf, fmt.Errorf("cannot marshal value of %v: %w", o.ID(), err)
	}
	if def, ok := CoapOptionDefs[o.ID()]; ok && !def.LenValid(len(value)) {
		return buf, fmt.Errorf("%w: %v length %v out of range [%v, %v]", ErrInvalidValue, o.ID(), len(value), def.MinLen, def.MaxLen)
	}
	length, err := pkgMath.SafeCastTo[uint32](len(value))
	if err != nil {
		return buf, fmt.Errorf("%w: %v", ErrEncodingOverflow, err)
	}

	d, dx, err := EncodeExtended(uint32(o.ID() - previousID))
	if err != nil {
		return buf, fmt.Errorf("cannot marshal delta of %v: %w", o.ID(), err)
	}
	l, lx, err := EncodeExtended(length)
	if err != nil {
		return buf, fmt.Errorf("cannot marshal length of %v: %w", o.ID(), err)
	}

	buf = append(buf, d<<4|l)
	buf = append(buf, dx...)
	buf = append(buf, lx...)
	return append(buf, value...), nil
}
