package message

import "errors"

var (
	// ErrTruncatedInput buffer ends before a declared field completes.
	ErrTruncatedInput = errors.New("option is truncated")
	// ErrMalformedHeader invalid extend marker or a value length a fixed-shape option cannot hold.
	ErrMalformedHeader = errors.New("malformed option header")
	// ErrUnknownOption option number is not present in the registry.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidValue option value violates the constraints of its option.
	ErrInvalidValue = errors.New("invalid option value")
	// ErrEncodingOverflow delta or length exceeds the extended field range.
	ErrEncodingOverflow = errors.New("extended field overflow")
	// ErrInvalidOrdering options are not in ascending order of their numbers.
	ErrInvalidOrdering = errors.New("options are not in ascending order")
	// ErrOptionNotFound option is not present in the options.
	ErrOptionNotFound = errors.New("option not found")
)
