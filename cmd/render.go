package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// Output formats accepted by the render command
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// RenderFlags are the flags of the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "random_spheres",
		Usage: "built-in scene to render (see list-scenes)",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width; the height follows the camera aspect ratio (default: scene width)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (default: scene setting)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum number of bounces per path (default: scene setting)",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render workers (default: number of CPUs)",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: renderer.DefaultTileSize,
		Usage: "edge length of a render tile in pixels",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 0,
		Usage: "seed for scene content and pixel sampling",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "-",
		Usage: "image filename, or - for stdout",
	},
	cli.StringFlag{
		Name:  "format, f",
		Value: FormatPPM,
		Usage: "image format: ppm or png",
	},
	cli.StringFlag{
		Name:  "texture",
		Value: scene.DefaultTexturePath,
		Usage: "image used by scenes with an earth texture",
	},
}

// RenderScene renders a built-in scene and writes the image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	format := strings.ToLower(ctx.String("format"))
	if format != FormatPPM && format != FormatPNG {
		return fmt.Errorf("unsupported output format %q", ctx.String("format"))
	}

	info, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return err
	}

	seed := ctx.Int64("seed")
	sc := info.Build(scene.Options{
		Seed:        seed,
		TexturePath: ctx.String("texture"),
	})

	width := sc.Width
	if ctx.IsSet("width") {
		width = ctx.Int("width")
	}
	if width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", width)
	}

	rt := renderer.NewRaytracer(sc, renderer.Options{
		Width:      width,
		Height:     sc.Height(width),
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
		Seed:       seed,
	})
	rt.MergeSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
	})

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	if err := writeFrame(frame, ctx.String("out"), format, ctx.App.Writer); err != nil {
		return err
	}

	displayRenderStats(sc.Name, stats)
	return nil
}

// writeFrame encodes the frame to the named file, or to stdout when out is "-" or empty.
func writeFrame(frame *renderer.Frame, out, format string, stdout io.Writer) error {
	if out == "" || out == "-" {
		return encodeFrame(frame, format, stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := writeAndClose(f, func(w io.Writer) error { return encodeFrame(frame, format, w) }); err != nil {
		return err
	}

	logger.Noticef("image written to %s", out)
	return nil
}

// writeAndClose runs write against wc and closes it. A failed close is reported
// unless write already failed.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if closeErr := wc.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("closing output file: %w", closeErr)
	}
	return err
}

func encodeFrame(frame *renderer.Frame, format string, w io.Writer) error {
	if format == FormatPNG {
		return frame.WritePNG(w)
	}
	return frame.WritePPM(w)
}

func displayRenderStats(name string, stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteSummary(&buf)
	logger.Noticef("render statistics for %s\n%s", name, buf.String())
}
