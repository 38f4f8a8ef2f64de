package message

import (
	"fmt"
	"unicode/utf8"
)

// Option is a single typed option of a message. The option number and length
// are encoded by MarshalOption; an implementation only produces its value.
type Option interface {
	ID() OptionID
	Value() ([]byte, error)
}

const maxPathValue = 255

// URIPathOption carries one segment of the request path.
type URIPathOption struct {
	Segment string
}

func NewURIPath(segment string) (URIPathOption, error) {
	if len(segment) > maxPathValue {
		return URIPathOption{}, fmt.Errorf("%w: uri-path segment length %v exceeds %v", ErrInvalidValue, len(segment), maxPathValue)
	}
	return URIPathOption{Segment: segment}, nil
}

func URIPathFromBytes(value []byte) (URIPathOption, error) {
	if !utf8.Valid(value) {
		return URIPathOption{}, fmt.Errorf("%w: uri-path is not valid utf-8", ErrInvalidValue)
	}
	return NewURIPath(string(value))
}

func (o URIPathOption) ID() OptionID { return URIPath }

func (o URIPathOption) Value() ([]byte, error) {
	if len(o.Segment) > maxPathValue {
		return nil, fmt.Errorf("%w: uri-path segment length %v exceeds %v", ErrInvalidValue, len(o.Segment), maxPathValue)
	}
	return []byte(o.Segment), nil
}

func (o URIPathOption) String() string {
	return "URIPath(" + o.Segment + ")"
}

// ContentFormatOption is encoded as a single byte, so only registered media
// types up to 255 are accepted.
type ContentFormatOption struct {
	Format MediaType
}

func validContentFormat(mt MediaType) error {
	if mt > 0xff || !mt.IsRegistered() {
		return fmt.Errorf("%w: content format %d", ErrInvalidValue, mt)
	}
	return nil
}

func NewContentFormat(mt MediaType) (ContentFormatOption, error) {
	if err := validContentFormat(mt); err != nil {
		return ContentFormatOption{}, err
	}
	return ContentFormatOption{Format: mt}, nil
}

func ContentFormatFromBytes(value []byte) (ContentFormatOption, error) {
	if len(value) != 1 {
		return ContentFormatOption{}, fmt.Errorf("%w: content format length %v", ErrInvalidValue, len(value))
	}
	return NewContentFormat(MediaType(value[0]))
}

func (o ContentFormatOption) ID() OptionID { return ContentFormat }

func (o ContentFormatOption) Value() ([]byte, error) {
	if err := validContentFormat(o.Format); err != nil {
		return nil, err
	}
	return []byte{byte(o.Format)}, nil
}

func (o ContentFormatOption) String() string {
	return "ContentFormat(" + o.Format.String() + ")"
}

// Block2Option controls the blockwise transfer of a response payload (RFC7959).
type Block2Option struct {
	Block
}

func Block2FromFields(num uint32, more bool, szx SZX) (Block2Option, error) {
	b, err := NewBlock(num, more, szx)
	if err != nil {
		return Block2Option{}, err
	}
	return Block2Option{Block: b}, nil
}

func Block2FromBytes(value []byte) (Block2Option, error) {
	b, err := DecodeBlock(value)
	if err != nil {
		return Block2Option{}, err
	}
	return Block2Option{Block: b}, nil
}

func (o Block2Option) ID() OptionID { return Block2 }

func (o Block2Option) Value() ([]byte, error) { return o.Block.Encode() }

func (o Block2Option) String() string { return "Block2(" + o.Block.String() + ")" }

// Block1Option controls the blockwise transfer of a request payload (RFC7959).
type Block1Option struct {
	Block
}

func Block1FromFields(num uint32, more bool, szx SZX) (Block1Option, error) {
	b, err := NewBlock(num, more, szx)
	if err != nil {
		return Block1Option{}, err
	}
	return Block1Option{Block: b}, nil
}

func Block1FromBytes(value []byte) (Block1Option, error) {
	b, err := DecodeBlock(value)
	if err != nil {
		return Block1Option{}, err
	}
	return Block1Option{Block: b}, nil
}

func (o Block1Option) ID() OptionID { return Block1 }

func (o Block1Option) Value() ([]byte, error) { return o.Block.Encode() }

func (o Block1Option) String() string { return "Block1(" + o.Block.String() + ")" }

// UintOption is any option of uint format, e.g. MaxAge or URIPort.
type UintOption struct {
	OptionID OptionID
	Number   uint32
}

func (o UintOption) ID() OptionID { return o.OptionID }

func (o UintOption) Value() ([]byte, error) { return EncodeUint32(o.Number), nil }

func (o UintOption) String() string {
	return fmt.Sprintf("%v(%d)", o.OptionID, o.Number)
}

// StringOption is any option of string format, e.g. URIHost or URIQuery.
type StringOption struct {
	OptionID OptionID
	Str      string
}

func (o StringOption) ID() OptionID { return o.OptionID }

func (o StringOption) Value() ([]byte, error) { return []byte(o.Str), nil }

func (o StringOption) String() string {
	return fmt.Sprintf("%v(%s)", o.OptionID, o.Str)
}

// OpaqueOption carries the value without interpretation. Payload produced by
// the parser references the parsed buffer.
type OpaqueOption struct {
	OptionID OptionID
	Payload  []byte
}

func (o OpaqueOption) ID() OptionID { return o.OptionID }

func (o OpaqueOption) Value() ([]byte, error) { return o.Payload, nil }

func (o OpaqueOption) String() string {
	return fmt.Sprintf("%v(%#x)", o.OptionID, o.Payload)
}
