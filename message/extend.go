package message

import (
	"encoding/binary"
	"fmt"
)

const (
	ExtendOptionByteCode   = 13
	ExtendOptionByteAddend = 13
	ExtendOptionWordCode   = 14
	ExtendOptionWordAddend = 269
	ExtendOptionError      = 15

	// MaxExtendedValue is the largest delta or length the header can carry.
	MaxExtendedValue = 0xffff + ExtendOptionWordAddend
)

// EncodeExtended splits v into the 4-bit header marker and its extension bytes.
func EncodeExtended(v uint32) (byte, []byte, error) {
	switch {
	case v < ExtendOptionByteAddend:
		return byte(v), nil, nil
	case v < ExtendOptionWordAddend:
		return ExtendOptionByteCode, []byte{byte(v - ExtendOptionByteAddend)}, nil
	case v <= MaxExtendedValue:
		ext := make([]byte, 2)
		binary.BigEndian.PutUint16(ext, uint16(v-ExtendOptionWordAddend))
		return ExtendOptionWordCode, ext, nil
	}
	return 0, nil, fmt.Errorf("%w: %v exceeds %v", ErrEncodingOverflow, v, MaxExtendedValue)
}

// DecodeExtended reads the value announced by marker from the front of data
// and returns it with the unconsumed bytes.
func DecodeExtended(marker byte, data []byte) (uint32, []byte, error) {
	switch {
	case marker < ExtendOptionByteCode:
		return uint32(marker), data, nil
	case marker == ExtendOptionByteCode:
		if len(data) < 1 {
			return 0, data, fmt.Errorf("%w: no space for 1B extended value", ErrTruncatedInput)
		}
		return uint32(data[0]) + ExtendOptionByteAddend, data[1:], nil
	case marker == ExtendOptionWordCode:
		if len(data) < 2 {
			return 0, data, fmt.Errorf("%w: no space for 2B extended value", ErrTruncatedInput)
		}
		return uint32(binary.BigEndian.Uint16(data[:2])) + ExtendOptionWordAddend, data[2:], nil
	}
	return 0, data, fmt.Errorf("%w: unexpected extend marker %v", ErrMalformedHeader, marker)
}
