package message

import (
	"fmt"
	"strconv"
)

//  0
//  0 1 2 3 4 5 6 7
// +-+-+-+-+-+-+-+-+
// |  NUM  |M| SZX |
// +-+-+-+-+-+-+-+-+
//  0                   1
//  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |          NUM          |M| SZX |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//  0                   1                   2
//  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                   NUM                 |M| SZX |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

const (
	// MaxBlockNumber is 20bits (NUM)
	MaxBlockNumber = 0xfffff
	// moreBlocksFollowingMask is represented by one bit (M)
	moreBlocksFollowingMask = 0x8
	// szxMask last 3bits represents SZX (SZX)
	szxMask = 0x7
)

// SZX enum representation for the size of the block: https://tools.ietf.org/html/rfc7959#section-2.2
type SZX uint8

const (
	// SZX16 block of size 16bytes
	SZX16 SZX = 0
	// SZX32 block of size 32bytes
	SZX32 SZX = 1
	// SZX64 block of size 64bytes
	SZX64 SZX = 2
	// SZX128 block of size 128bytes
	SZX128 SZX = 3
	// SZX256 block of size 256bytes
	SZX256 SZX = 4
	// SZX512 block of size 512bytes
	SZX512 SZX = 5
	// SZX1024 block of size 1024bytes
	SZX1024 SZX = 6
	// SZXBERT block of size n*1024bytes
	SZXBERT SZX = 7
)

// Size number of bytes, -1 for an invalid SZX.
func (s SZX) Size() int64 {
	switch {
	case s < SZXBERT:
		return 1 << (uint(s) + 4)
	case s == SZXBERT:
		return 1024
	}
	return -1
}

// Block is the value shared by the Block1 and Block2 options.
type Block struct {
	Num  uint32
	More bool
	SZX  SZX
}

func NewBlock(num uint32, more bool, szx SZX) (Block, error) {
	b := Block{Num: num, More: more, SZX: szx}
	if err := b.validate(); err != nil {
		return Block{}, err
	}
	return b, nil
}

func (b Block) validate() error {
	if b.SZX > SZXBERT {
		return fmt.Errorf("%w: invalid SZX %d", ErrInvalidValue, b.SZX)
	}
	if b.Num > MaxBlockNumber {
		return fmt.Errorf("%w: block number %d exceeds %d", ErrInvalidValue, b.Num, MaxBlockNumber)
	}
	return nil
}

// Encode packs the block into the shortest of 1, 2 or 3 bytes.
func (b Block) Encode() ([]byte, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	last := byte(b.Num&0xf)<<4 | byte(b.SZX)
	if b.More {
		last |= moreBlocksFollowingMask
	}
	switch {
	case b.Num <= 0xf:
		return []byte{last}, nil
	case b.Num <= 0xfff:
		return []byte{byte(b.Num >> 4), last}, nil
	}
	return []byte{byte(b.Num >> 12), byte(b.Num >> 4), last}, nil
}

// DecodeBlock unpacks a 1, 2 or 3 bytes block value.
func DecodeBlock(value []byte) (Block, error) {
	if len(value) < 1 || len(value) > 3 {
		return Block{}, fmt.Errorf("%w: unexpected block length %v", ErrMalformedHeader, len(value))
	}
	var num uint32
	for _, v := range value[:len(value)-1] {
		num = num<<8 | uint32(v)
	}
	last := value[len(value)-1]
	return Block{
		Num:  num<<4 | uint32(last>>4),
		More: last&moreBlocksFollowingMask != 0,
		SZX:  SZX(last & szxMask), // masking for the SZX
	}, nil
}

func (b Block) String() string {
	return "num=" + strconv.FormatUint(uint64(b.Num), 10) +
		", m=" + strconv.FormatBool(b.More) +
		", szx=" + strconv.FormatInt(b.SZX.Size(), 10)
}
