package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/javimudi/coap/codec"
	"github.com/javimudi/coap/message"
	"github.com/javimudi/coap/options"
	pkgMath "github.com/javimudi/coap/pkg/math"
	"github.com/urfave/cli/v2"
)

var encodeCommand = &cli.Command{
	Name:  "encode",
	Usage: "Encode an options section.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "path",
			Usage: "request `path`, one Uri-Path option per segment",
		},
		&cli.IntFlag{
			Name:  "content-format",
			Value: -1,
			Usage: "content format `id`",
		},
		&cli.StringFlag{
			Name:  "block2",
			Usage: "Block2 as `num:more:szx`",
		},
		&cli.StringSliceFlag{
			Name:  "option",
			Usage: "opaque option as `id=hex`, repeatable",
		},
	},
	Action: func(c *cli.Context) error {
		req := encodeRequest{
			Path:          c.String("path"),
			ContentFormat: c.Int("content-format"),
			Block2:        c.String("block2"),
			Opaque:        c.StringSlice("option"),
		}
		return encodeHex(c.App.Writer, req, codec.New(options.WithLogger(logger)))
	},
}

type encodeRequest struct {
	Path          string
	ContentFormat int
	Block2        string
	Opaque        []string
}

func (r encodeRequest) options() (message.Options, error) {
	opts, e := message.Options{}.SetPath(r.Path)
	if e != nil {
		return nil, e
	}
	if r.ContentFormat >= 0 {
		mt, e := pkgMath.SafeCastTo[message.MediaType](r.ContentFormat)
		if e != nil {
			return nil, fmt.Errorf("invalid content format: %w", e)
		}
		cf, e := message.NewContentFormat(mt)
		if e != nil {
			return nil, e
		}
		opts = opts.Add(cf)
	}
	if r.Block2 != "" {
		b2, e := parseBlock2(r.Block2)
		if e != nil {
			return nil, e
		}
		opts = opts.Add(b2)
	}
	for _, o := range r.Opaque {
		op, e := parseOpaque(o)
		if e != nil {
			return nil, e
		}
		opts = opts.Add(op)
	}
	return opts, nil
}

func parseBlock2(s string) (message.Block2Option, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return message.Block2Option{}, fmt.Errorf("invalid block2 %q: expected num:more:szx", s)
	}
	num, e := strconv.ParseUint(fields[0], 10, 32)
	if e != nil {
		return message.Block2Option{}, fmt.Errorf("invalid block2 num: %w", e)
	}
	more, e := strconv.ParseBool(fields[1])
	if e != nil {
		return message.Block2Option{}, fmt.Errorf("invalid block2 more: %w", e)
	}
	szx, e := strconv.ParseUint(fields[2], 10, 8)
	if e != nil {
		return message.Block2Option{}, fmt.Errorf("invalid block2 szx: %w", e)
	}
	return message.Block2FromFields(uint32(num), more, message.SZX(szx))
}

func parseOpaque(s string) (message.OpaqueOption, error) {
	id, value, ok := strings.Cut(s, "=")
	if !ok {
		return message.OpaqueOption{}, fmt.Errorf("invalid option %q: expected id=hex", s)
	}
	n, e := strconv.ParseUint(id, 10, 16)
	if e != nil {
		return message.OpaqueOption{}, fmt.Errorf("invalid option id: %w", e)
	}
	payload, e := hex.DecodeString(value)
	if e != nil {
		return message.OpaqueOption{}, fmt.Errorf("invalid option value: %w", e)
	}
	return message.OpaqueOption{OptionID: message.OptionID(n), Payload: payload}, nil
}

func encodeHex(w io.Writer, req encodeRequest, cc *codec.Codec) error {
	opts, e := req.options()
	if e != nil {
		return e
	}
	data, e := cc.EncodeOptions(opts)
	if e != nil {
		return e
	}
	_, e = fmt.Fprintln(w, hex.EncodeToString(data))
	return e
}
