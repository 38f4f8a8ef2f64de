package codec_test

import (
	"context"
	"testing"

	"github.com/javimudi/coap/codec"
	"github.com/javimudi/coap/message"
	"github.com/javimudi/coap/options"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func testOptions(t *testing.T) message.Options {
	opts, err := message.Options{}.SetPath("/sensors/temp")
	require.NoError(t, err)
	b2, err := message.Block2FromFields(5, true, message.SZX256)
	require.NoError(t, err)
	return append(message.Options{
		b2,
		message.ContentFormatOption{Format: message.AppJSON},
	}, opts...)
}

func TestCodecEncodeDecode(t *testing.T) {
	c := codec.New()
	opts := testOptions(t)
	data, err := c.EncodeOptions(opts)
	require.NoError(t, err)

	decoded, payload, err := c.DecodeOptions(append(data, message.PayloadMarker, 'h', 'i'))
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), payload)
	path, err := decoded.Path()
	require.NoError(t, err)
	require.Equal(t, "/sensors/temp", path)
	b2, err := decoded.Block2()
	require.NoError(t, err)
	require.Equal(t, opts[0], b2)
	require.Len(t, decoded, 4)

	// the input is not reordered
	require.Equal(t, message.Block2, opts[0].ID())

	require.Equal(t, codec.Stats{Encoded: 4, Decoded: 4}, c.Stats())
}

func TestCodecEncodeInvalid(t *testing.T) {
	c := codec.New()
	_, err := c.EncodeOptions(message.Options{message.ContentFormatOption{Format: 2}})
	require.ErrorIs(t, err, message.ErrInvalidValue)
	require.Equal(t, uint64(1), c.Stats().Failed)
}

// 0x11 0x03: content-format 3 is not registered
// 0xe0 0x02 0xd0: unknown critical option 1001 with empty value
// 0x31 0x01: unknown elective option 1004
var invalidOptions = []byte{0xb1, 'a', 0x11, 0x03, 0xe0, 0x02, 0xd0, 0x31, 0x01}

func TestCodecDecodeStrictFailure(t *testing.T) {
	c := codec.New()
	opts, payload, err := c.DecodeOptions(invalidOptions)
	require.ErrorIs(t, err, message.ErrInvalidValue)
	require.Nil(t, opts)
	require.Nil(t, payload)
	require.Equal(t, uint64(1), c.Stats().Failed)
}

func TestCodecDecodeLenient(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := codec.New(options.WithLenient(), options.WithLogger(zap.New(core)))
	require.True(t, c.Lenient())
	require.False(t, codec.New().Lenient())
	opts, payload, err := c.DecodeOptions(invalidOptions)
	require.ErrorIs(t, err, message.ErrInvalidValue)
	require.ErrorIs(t, err, message.ErrUnknownOption)
	require.Nil(t, payload)
	require.Equal(t, message.Options{
		message.URIPathOption{Segment: "a"},
		message.OpaqueOption{OptionID: 1004, Payload: []byte{0x01}},
	}, opts)
	require.Equal(t, codec.Stats{Decoded: 2, Skipped: 2}, c.Stats())
	require.Equal(t, 2, logs.FilterMessage("option skipped").Len())
}

func TestCodecDecodeLenientKeepsHeaderErrors(t *testing.T) {
	var reported []error
	c := codec.New(options.WithLenient(), options.WithErrors(func(err error) {
		reported = append(reported, err)
	}))
	_, _, err := c.DecodeOptions([]byte{0xc1, 0x03, 0x1d})
	require.ErrorIs(t, err, message.ErrTruncatedInput)
	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], message.ErrInvalidValue)
}

func TestCodecDecodeStrictRegistry(t *testing.T) {
	data, err := message.MarshalOption(message.OpaqueOption{OptionID: 2048, Payload: []byte{1}}, 0)
	require.NoError(t, err)

	opts, _, err := codec.New().DecodeOptions(data)
	require.NoError(t, err)
	require.Len(t, opts, 1)

	_, _, err = codec.New(options.WithStrict()).DecodeOptions(data)
	require.ErrorIs(t, err, message.ErrUnknownOption)
}

func TestDefaultConfigIsFresh(t *testing.T) {
	cfg := codec.DefaultConfig()
	cfg.Registry[2052] = message.Entry{Def: message.OptionDef{ValueFormat: message.ValueOpaque, MaxLen: 4}}
	_, ok := codec.DefaultConfig().Registry.Lookup(2052)
	require.False(t, ok)
}

func TestCodecDecodeMaxOptions(t *testing.T) {
	c := codec.New(options.WithMaxOptions(2))
	_, _, err := c.DecodeOptions([]byte{0xb1, 'a', 0x01, 'b', 0x01, 'c'})
	require.ErrorIs(t, err, codec.ErrTooManyOptions)

	opts, _, err := codec.New(options.WithMaxOptions(0)).DecodeOptions([]byte{0xb1, 'a', 0x01, 'b', 0x01, 'c'})
	require.NoError(t, err)
	require.Len(t, opts, 3)
}

func TestCodecConcurrent(t *testing.T) {
	c := codec.New()
	opts := testOptions(t)
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				data, err := c.EncodeOptions(opts)
				if err != nil {
					return err
				}
				if _, _, err = c.DecodeOptions(data); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, codec.Stats{Encoded: 16 * 100 * 4, Decoded: 16 * 100 * 4}, c.Stats())
}
