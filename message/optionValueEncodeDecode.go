package message

import (
	"encoding/binary"
	"fmt"
)

const (
	max1ByteNumber = uint32(^uint8(0))
	max2ByteNumber = uint32(^uint16(0))
	max3ByteNumber = uint32(0xffffff)
)

// EncodeUint32 returns the minimal big-endian encoding of value; zero is empty
// (RFC7252 section 3.2).
func EncodeUint32(value uint32) []byte {
	switch {
	case value == 0:
		return []byte{}
	case value <= max1ByteNumber:
		return []byte{byte(value)}
	case value <= max2ByteNumber:
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(value))
		return buf
	case value <= max3ByteNumber:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, value)
		return buf[1:]
	}
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, value)
	return buf
}

func DecodeUint32(buf []byte) (uint32, error) {
	if len(buf) > 4 {
		return 0, fmt.Errorf("%w: uint value length %v exceeds 4", ErrInvalidValue, len(buf))
	}
	tmp := []byte{0, 0, 0, 0}
	copy(tmp[4-len(buf):], buf)
	return binary.BigEndian.Uint32(tmp), nil
}
