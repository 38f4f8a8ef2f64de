// Package codec encodes and decodes the whole options section of a message
// with a configurable policy for unknown and invalid options.
package codec

import (
	"errors"
	"fmt"

	"github.com/javimudi/coap/message"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrTooManyOptions = errors.New("too many options")

// Stats counts options processed by a Codec.
type Stats struct {
	Encoded uint64
	Decoded uint64
	Skipped uint64
	Failed  uint64
}

// Codec is safe for concurrent use.
type Codec struct {
	cfg    Config
	parser message.Parser

	encoded atomic.Uint64
	decoded atomic.Uint64
	skipped atomic.Uint64
	failed  atomic.Uint64
}

func New(opts ...Option) *Codec {
	cfg := DefaultConfig()
	for _, o := range opts {
		o.CodecApply(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Errors == nil {
		logger := cfg.Logger
		cfg.Errors = func(err error) {
			logger.Warn("option skipped", zap.Error(err))
		}
	}
	return &Codec{
		cfg: cfg,
		parser: message.Parser{
			Registry: cfg.Registry,
			Strict:   cfg.Strict,
		},
	}
}

// EncodeOptions sorts a copy of options by number and encodes it.
func (c *Codec) EncodeOptions(options message.Options) ([]byte, error) {
	sorted := append(make(message.Options, 0, len(options)), options...)
	sorted.Sort()
	data, err := sorted.Marshal()
	if err != nil {
		c.failed.Inc()
		return nil, fmt.Errorf("cannot encode options: %w", err)
	}
	c.encoded.Add(uint64(len(sorted)))
	c.cfg.Logger.Debug("options encoded", zap.Int("count", len(sorted)), zap.Int("length", len(data)))
	return data, nil
}

// DecodeOptions decodes options until the end of data or the payload marker
// and returns them with the payload.
//
// A lenient codec returns the decoded options together with the combined
// errors of the skipped options; any other error aborts the decoding and no
// options are returned.
func (c *Codec) DecodeOptions(data []byte) (message.Options, []byte, error) {
	var options message.Options
	var skipped error
	previousID := message.OptionID(0)
	for {
		r, rest, err := c.parser.ParseOption(data, previousID)
		if err != nil {
			id, next, ok := c.skip(data, previousID, err)
			if !ok {
				c.failed.Inc()
				return nil, nil, err
			}
			skipped = multierr.Append(skipped, err)
			previousID = id
			data = next
			continue
		}
		switch r.Kind {
		case message.ResultEndOfOptions:
			return options, nil, skipped
		case message.ResultPayloadMarker:
			c.cfg.Logger.Debug("payload marker", zap.Int("payload", len(rest)))
			return options, rest, skipped
		}
		if c.cfg.MaxOptions > 0 && len(options) >= c.cfg.MaxOptions {
			c.failed.Inc()
			return nil, nil, fmt.Errorf("%w: limit %v", ErrTooManyOptions, c.cfg.MaxOptions)
		}
		c.decoded.Inc()
		c.cfg.Logger.Debug("option decoded", zap.Stringer("id", r.Option.ID()), zap.Int("remaining", len(rest)))
		options = append(options, r.Option)
		previousID = r.Option.ID()
		data = rest
	}
}

func (c *Codec) skip(data []byte, previousID message.OptionID, err error) (message.OptionID, []byte, bool) {
	if !c.cfg.Lenient {
		return 0, nil, false
	}
	if !errors.Is(err, message.ErrUnknownOption) && !errors.Is(err, message.ErrInvalidValue) {
		return 0, nil, false
	}
	id, _, rest, splitErr := message.SplitOption(data, previousID)
	if splitErr != nil {
		return 0, nil, false
	}
	c.skipped.Inc()
	c.cfg.Errors(err)
	return id, rest, true
}

// Lenient reports whether c skips unknown and invalid options.
func (c *Codec) Lenient() bool {
	return c.cfg.Lenient
}

func (c *Codec) Stats() Stats {
	return Stats{
		Encoded: c.encoded.Load(),
		Decoded: c.decoded.Load(),
		Skipped: c.skipped.Load(),
		Failed:  c.failed.Load(),
	}
}
