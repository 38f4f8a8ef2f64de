// Command coapopt encodes and decodes the options section of CoAP messages.
package main

import (
	"log"
	"os"

	"github.com/javimudi/coap/pkg/logging"
	"github.com/urfave/cli/v2"
)

var logger = logging.New("coapopt")

var app = &cli.App{
	Usage: "Encode and decode CoAP options as hex.",
	Commands: []*cli.Command{
		decodeCommand,
		encodeCommand,
	},
}

func main() {
	if e := app.Run(os.Args); e != nil {
		log.Fatal(e)
	}
}
