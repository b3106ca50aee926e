package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render one of the built-in scenes with a tiled, multi-threaded path tracer.

The image is written as a plain-text PPM (P3) by default, to stdout unless --out
names a file. Scenes supply their own image width, samples per pixel and bounce
depth; the corresponding flags override them when set.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
