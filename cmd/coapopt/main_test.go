package main

import (
	"bytes"
	"testing"

	"github.com/alecthomas/units"
	"github.com/javimudi/coap/codec"
	"github.com/javimudi/coap/message"
	"github.com/javimudi/coap/options"
	"github.com/stretchr/testify/require"
)

func TestEncodeHex(t *testing.T) {
	var buf bytes.Buffer
	err := encodeHex(&buf, encodeRequest{
		Path:          "/temp",
		ContentFormat: int(message.AppJSON),
		Block2:        "5:true:4",
		Opaque:        []string{"4=cafe"},
	}, codec.New())
	require.NoError(t, err)
	require.Equal(t, "42cafe7474656d701132b15c\n", buf.String())
}

func TestEncodeHexInvalid(t *testing.T) {
	tests := []struct {
		name    string
		req     encodeRequest
		wantErr error
	}{
		{name: "content-format", req: encodeRequest{ContentFormat: 3}, wantErr: message.ErrInvalidValue},
		{name: "content-format overflow", req: encodeRequest{ContentFormat: 1 << 20}},
		{name: "block2 fields", req: encodeRequest{ContentFormat: -1, Block2: "1:true"}},
		{name: "block2 szx", req: encodeRequest{ContentFormat: -1, Block2: "1:true:9"}, wantErr: message.ErrInvalidValue},
		{name: "opaque", req: encodeRequest{ContentFormat: -1, Opaque: []string{"4"}}},
		{name: "opaque hex", req: encodeRequest{ContentFormat: -1, Opaque: []string{"4=zz"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := encodeHex(&buf, tt.req, codec.New())
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.Empty(t, buf.String())
		})
	}
}

func TestDecodeHex(t *testing.T) {
	var buf bytes.Buffer
	err := decodeHex(&buf, "42cafe 7474656d70 1132 b15c ff0102", 64*units.KiB, codec.New())
	require.NoError(t, err)
	require.Equal(t, "4\tETag\tcafe\n"+
		"11\tURIPath\ttemp\n"+
		"12\tContentFormat\tapplication/json\n"+
		"23\tBlock2\tnum=5, m=true, szx=256\n"+
		"payload\t2 bytes\n", buf.String())
}

func TestDecodeHexErrors(t *testing.T) {
	var buf bytes.Buffer
	err := decodeHex(&buf, "4", 64*units.KiB, codec.New())
	require.Error(t, err)

	err = decodeHex(&buf, "0102030405", units.Base2Bytes(2), codec.New())
	require.ErrorIs(t, err, errInputTooLarge)

	err = decodeHex(&buf, "1d", 64*units.KiB, codec.New())
	require.ErrorIs(t, err, message.ErrTruncatedInput)

	err = decodeHex(&buf, "c103", 64*units.KiB, codec.New())
	require.ErrorIs(t, err, message.ErrInvalidValue)
	require.Empty(t, buf.String())
}

func TestDecodeHexLenient(t *testing.T) {
	var buf bytes.Buffer
	err := decodeHex(&buf, "b161c103", 64*units.KiB, codec.New(options.WithLenient()))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "11\tURIPath\ta\n")
	require.Contains(t, buf.String(), "skipped\t")
}
