package message

import (
	"fmt"
	"sort"
	"strings"
)

// Options is an ordered list of options of one message.
type Options []Option

// Sort orders options by number and keeps the order of repeated options.
func (options Options) Sort() {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].ID() < options[j].ID()
	})
}

func (options Options) findPosition(id OptionID) int {
	return sort.Search(len(options), func(i int) bool {
		return options[i].ID() > id
	})
}

// Add inserts o after all options with a number lower or equal to o.ID().
func (options Options) Add(o Option) Options {
	idx := options.findPosition(o.ID())
	options = append(options, nil)
	copy(options[idx+1:], options[idx:])
	options[idx] = o
	return options
}

// Remove drops all options with the number id.
func (options Options) Remove(id OptionID) Options {
	n := options[:0]
	for _, o := range options {
		if o.ID() != id {
			n = append(n, o)
		}
	}
	for i := len(n); i < len(options); i++ {
		options[i] = nil
	}
	return n
}

// Get returns the first option with the number id.
func (options Options) Get(id OptionID) (Option, error) {
	for _, o := range options {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrOptionNotFound, id)
}

func (options Options) HasOption(id OptionID) bool {
	_, err := options.Get(id)
	return err == nil
}

// SetPath returns a copy of options with all URIPath options replaced by the
// segments of path.
func (options Options) SetPath(path string) (Options, error) {
	o := append(make(Options, 0, len(options)), options...).Remove(URIPath)
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		opt, err := NewURIPath(segment)
		if err != nil {
			return options, err
		}
		o = o.Add(opt)
	}
	return o, nil
}

// Path joins URIPath options to an absolute path.
func (options Options) Path() (string, error) {
	var b strings.Builder
	for _, o := range options {
		p, ok := o.(URIPathOption)
		if !ok {
			continue
		}
		b.WriteByte('/')
		b.WriteString(p.Segment)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %v", ErrOptionNotFound, URIPath)
	}
	return b.String(), nil
}

func (options Options) ContentFormat() (MediaType, error) {
	o, err := options.Get(ContentFormat)
	if err != nil {
		return 0, err
	}
	cf, ok := o.(ContentFormatOption)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected type %T of %v", ErrInvalidValue, o, ContentFormat)
	}
	return cf.Format, nil
}

func (options Options) Block2() (Block2Option, error) {
	o, err := options.Get(Block2)
	if err != nil {
		return Block2Option{}, err
	}
	b, ok := o.(Block2Option)
	if !ok {
		return Block2Option{}, fmt.Errorf("%w: unexpected type %T of %v", ErrInvalidValue, o, Block2)
	}
	return b, nil
}

func (options Options) Block1() (Block1Option, error) {
	o, err := options.Get(Block1)
	if err != nil {
		return Block1Option{}, err
	}
	b, ok := o.(Block1Option)
	if !ok {
		return Block1Option{}, fmt.Errorf("%w: unexpected type %T of %v", ErrInvalidValue, o, Block1)
	}
	return b, nil
}

// Marshal encodes options, which must be in ascending order of their numbers.
func (options Options) Marshal() ([]byte, error) {
	var buf []byte
	previousID := OptionID(0)
	for _, o := range options {
		var err error
		buf, err = AppendOption(buf, o, previousID)
		if err != nil {
			return nil, err
		}
		previousID = o.ID()
	}
	return buf, nil
}

// ParseOptions parses options from data until the end of data or the payload
// marker. It returns the payload, nil when data ends without the marker.
func ParseOptions(data []byte, p Parser) (Options, []byte, error) {
	var options Options
	previousID := OptionID(0)
	for {
		r, rest, err := p.ParseOption(data, previousID)
		if err != nil {
			return nil, nil, err
		}
		switch r.Kind {
		case ResultEndOfOptions:
			return options, nil, nil
		case ResultPayloadMarker:
			return options, rest, nil
		}
		options = append(options, r.Option)
		previousID = r.Option.ID()
		data = rest
	}
}
