package cmd

import (
	"os"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

// setupLogging routes log output to stderr, keeping stdout free for image data, and
// applies the global verbosity flags.
func setupLogging(ctx *cli.Context) {
	log.SetSink(os.Stderr)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
