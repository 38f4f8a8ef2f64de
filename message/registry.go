package message

import (
	"fmt"
	"unicode/utf8"
)

// DecodeFunc builds a typed option from its raw value.
type DecodeFunc func(id OptionID, value []byte) (Option, error)

type Entry struct {
	Def    OptionDef
	Decode DecodeFunc
}

// Registry maps option numbers to their definition and decoder.
type Registry map[OptionID]Entry

// DefaultRegistry returns a fresh registry of all options of CoapOptionDefs.
func DefaultRegistry() Registry {
	r := make(Registry, len(CoapOptionDefs))
	for id, def := range CoapOptionDefs {
		r[id] = Entry{Def: def, Decode: decodeByFormat(def)}
	}
	r[URIPath] = Entry{Def: CoapOptionDefs[URIPath], Decode: func(_ OptionID, value []byte) (Option, error) {
		return URIPathFromBytes(value)
	}}
	r[ContentFormat] = Entry{Def: CoapOptionDefs[ContentFormat], Decode: func(_ OptionID, value []byte) (Option, error) {
		return ContentFormatFromBytes(value)
	}}
	r[Block2] = Entry{Def: CoapOptionDefs[Block2], Decode: func(_ OptionID, value []byte) (Option, error) {
		return Block2FromBytes(value)
	}}
	r[Block1] = Entry{Def: CoapOptionDefs[Block1], Decode: func(_ OptionID, value []byte) (Option, error) {
		return Block1FromBytes(value)
	}}
	return r
}

// Register returns a copy of the registry with the entry for id replaced.
// A nil decode falls back to the decoder of the definition's value format.
func (r Registry) Register(id OptionID, def OptionDef, decode DecodeFunc) Registry {
	if decode == nil {
		decode = decodeByFormat(def)
	}
	n := make(Registry, len(r)+1)
	for k, v := range r {
		n[k] = v
	}
	n[id] = Entry{Def: def, Decode: decode}
	return n
}

func (r Registry) Lookup(id OptionID) (Entry, bool) {
	e, ok := r[id]
	return e, ok
}

func decodeByFormat(def OptionDef) DecodeFunc {
	return func(id OptionID, value []byte) (Option, error) {
		if !def.LenValid(len(value)) {
			return nil, fmt.Errorf("%w: %v length %v out of range [%v, %v]", ErrInvalidValue, id, len(value), def.MinLen, def.MaxLen)
		}
		switch def.ValueFormat {
		case ValueUint:
			v, err := DecodeUint32(value)
			if err != nil {
				return nil, err
			}
			return UintOption{OptionID: id, Number: v}, nil
		case ValueString:
			if !utf8.Valid(value) {
				return nil, fmt.Errorf("%w: %v is not valid utf-8", ErrInvalidValue, id)
			}
			return StringOption{OptionID: id, Str: string(value)}, nil
		}
		return OpaqueOption{OptionID: id, Payload: value}, nil
	}
}
