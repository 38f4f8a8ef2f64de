package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/units"
	"github.com/javimudi/coap/codec"
	"github.com/javimudi/coap/message"
	"github.com/javimudi/coap/options"
	"github.com/urfave/cli/v2"
)

var errInputTooLarge = errors.New("input too large")

var decodeCommand = &cli.Command{
	Name:      "decode",
	Usage:     "Decode an options section.",
	ArgsUsage: "HEX",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "reject every option which is not registered",
		},
		&cli.BoolFlag{
			Name:  "lenient",
			Usage: "skip unknown and invalid options",
		},
		&cli.StringFlag{
			Name:  "max-input",
			Value: "64KiB",
			Usage: "maximum decoded input `size`",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit("expected exactly one HEX argument", 2)
		}
		maxInput, e := units.ParseBase2Bytes(c.String("max-input"))
		if e != nil {
			return fmt.Errorf("invalid --max-input: %w", e)
		}
		var opts []codec.Option
		opts = append(opts, options.WithLogger(logger))
		if c.Bool("strict") {
			opts = append(opts, options.WithStrict())
		}
		if c.Bool("lenient") {
			opts = append(opts, options.WithLenient())
		}
		return decodeHex(c.App.Writer, c.Args().First(), maxInput, codec.New(opts...))
	},
}

func decodeHex(w io.Writer, input string, maxInput units.Base2Bytes, cc *codec.Codec) error {
	input = strings.ReplaceAll(input, " ", "")
	if units.Base2Bytes(hex.DecodedLen(len(input))) > maxInput {
		return fmt.Errorf("%w: %v exceeds %v", errInputTooLarge, units.Base2Bytes(hex.DecodedLen(len(input))), maxInput)
	}
	data, e := hex.DecodeString(input)
	if e != nil {
		return fmt.Errorf("invalid hex input: %w", e)
	}
	opts, payload, skipped := cc.DecodeOptions(data)
	if skipped != nil && !cc.Lenient() {
		return skipped
	}
	for _, o := range opts {
		fmt.Fprintf(w, "%d\t%v\t%v\n", o.ID(), o.ID(), formatOption(o))
	}
	if payload != nil {
		fmt.Fprintf(w, "payload\t%d bytes\n", len(payload))
	}
	if skipped != nil {
		fmt.Fprintf(w, "skipped\t%v\n", skipped)
	}
	return nil
}

func formatOption(o message.Option) string {
	switch v := o.(type) {
	case message.URIPathOption:
		return v.Segment
	case message.ContentFormatOption:
		return v.Format.String()
	case message.Block2Option:
		return v.Block.String()
	case message.Block1Option:
		return v.Block.String()
	case message.UintOption:
		return fmt.Sprint(v.Number)
	case message.StringOption:
		return v.Str
	case message.OpaqueOption:
		return hex.EncodeToString(v.Payload)
	}
	return fmt.Sprint(o)
}
