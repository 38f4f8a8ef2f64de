package message

import (
	"fmt"
	"math"
)

// PayloadMarker separates the options from the payload.
const PayloadMarker = 0xff

// ResultKind is the outcome of parsing one option.
type ResultKind uint8

const (
	ResultOption ResultKind = iota
	ResultEndOfOptions
	ResultPayloadMarker
)

func (k ResultKind) String() string {
	switch k {
	case ResultOption:
		return "Option"
	case ResultEndOfOptions:
		return "EndOfOptions"
	case ResultPayloadMarker:
		return "PayloadMarker"
	}
	return "ResultKind(" + fmt.Sprint(uint8(k)) + ")"
}

// ParseResult holds the option when Kind is ResultOption.
type ParseResult struct {
	Kind   ResultKind
	Option Option
}

// Parser extracts options using Registry.
//
// A registered option is decoded by its entry. An unregistered elective
// option is returned as OpaqueOption and an unregistered critical option
// fails with ErrUnknownOption. Strict only changes the handling of
// unregistered options: each of them fails with ErrUnknownOption. Registered
// options are decoded by their entry either way.
type Parser struct {
	Registry Registry
	Strict   bool
}

var defaultParser = DefaultParser()

// DefaultParser returns a non-strict parser over a fresh DefaultRegistry.
func DefaultParser() Parser {
	return Parser{Registry: DefaultRegistry()}
}

// ParseOption extracts one option from data with the default registry.
func ParseOption(data []byte, previousID OptionID) (ParseResult, []byte, error) {
	return defaultParser.ParseOption(data, previousID)
}

// ParseOption extracts the first option of data, whose number is relative to
// previousID, and returns the rest of data. On an empty data it returns
// ResultEndOfOptions, on the payload marker ResultPayloadMarker with the
// payload as rest.
func (p Parser) ParseOption(data []byte, previousID OptionID) (ParseResult, []byte, error) {
	if len(data) == 0 {
		return ParseResult{Kind: ResultEndOfOptions}, nil, nil
	}
	if data[0] == PayloadMarker {
		return ParseResult{Kind: ResultPayloadMarker}, data[1:], nil
	}

	id, value, rest, err := SplitOption(data, previousID)
	if err != nil {
		return ParseResult{}, data, err
	}
	o, err := p.Decode(id, value)
	if err != nil {
		return ParseResult{}, data, err
	}
	return ParseResult{Kind: ResultOption, Option: o}, rest, nil
}

// SplitOption reads the header of the option at the front of data and returns
// its number, its raw value and the rest of data. The value references data.
func SplitOption(data []byte, previousID OptionID) (OptionID, []byte, []byte, error) {
	if len(data) == 0 {
		return 0, nil, data, fmt.Errorf("%w: no space for option header", ErrTruncatedInput)
	}
	delta, rest, err := DecodeExtended(data[0]>>4, data[1:])
	if err != nil {
		return 0, nil, data, fmt.Errorf("cannot parse option delta: %w", err)
	}
	length, rest, err := DecodeExtended(data[0]&0x0f, rest)
	if err != nil {
		return 0, nil, data, fmt.Errorf("cannot parse option length: %w", err)
	}
	if uint32(len(rest)) < length {
		return 0, nil, data, fmt.Errorf("%w: no space for %vB option value, %vB left", ErrTruncatedInput, length, len(rest))
	}
	number := uint32(previousID) + delta
	if number > math.MaxUint16 {
		return 0, nil, data, fmt.Errorf("%w: option number %v exceeds %v", ErrMalformedHeader, number, math.MaxUint16)
	}
	return OptionID(number), rest[:length:length], rest[length:], nil
}

// Decode builds the typed option id from its raw value.
func (p Parser) Decode(id OptionID, value []byte) (Option, error) {
	e, ok := p.Registry.Lookup(id)
	if !ok {
		if p.Strict || id.Critical() {
			return nil, fmt.Errorf("%w: %v", ErrUnknownOption, id)
		}
		return OpaqueOption{OptionID: id, Payload: value}, nil
	}
	if e.Decode == nil {
		return OpaqueOption{OptionID: id, Payload: value}, nil
	}
	o, err := e.Decode(id, value)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %v: %w", id, err)
	}
	return o, nil
}
