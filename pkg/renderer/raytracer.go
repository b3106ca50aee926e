package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// DefaultTileSize is the edge length of a render tile in pixels
const DefaultTileSize = 32

var logger = log.New("renderer")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene is everything the raytracer needs from a scene description
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Hittable
	GetBackground() integrator.Background
	GetSamplingConfig() SamplingConfig
}

// Options controls image size and parallelism
type Options struct {
	Width, Height int
	TileSize      int   // 0 uses DefaultTileSize
	NumWorkers    int   // 0 uses the CPU count
	Seed          int64 // Tile i draws from a generator seeded with Seed+i
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	options    Options
	config     SamplingConfig
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer using the scene's sampling configuration
func NewRaytracer(scene Scene, options Options) *Raytracer {
	config := scene.GetSamplingConfig()
	return &Raytracer{
		scene:      scene,
		options:    options,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(scene.GetBackground(), config.MaxDepth),
	}
}

// MergeSamplingConfig overrides the non-zero fields of the current configuration
func (rt *Raytracer) MergeSamplingConfig(updates SamplingConfig) {
	if updates.SamplesPerPixel > 0 {
		rt.config.SamplesPerPixel = updates.SamplesPerPixel
	}
	if updates.MaxDepth > 0 {
		rt.config.MaxDepth = updates.MaxDepth
	}
	rt.integrator = integrator.NewPathTracingIntegrator(rt.scene.GetBackground(), rt.config.MaxDepth)
}

// GetSamplingConfig returns the configuration used by Render
func (rt *Raytracer) GetSamplingConfig() SamplingConfig {
	return rt.config
}

// Render traces the whole image and returns the accumulated frame
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	width, height := rt.options.Width, rt.options.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}

	frame := NewFrame(width, height)
	tiles := NewTileGrid(width, height, rt.options.TileSize)
	pool := NewWorkerPool(rt.options.NumWorkers)

	logger.Noticef("rendering %dx%d at %d spp, depth %d (%d tiles, %d workers)",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), pool.GetNumWorkers())

	start := time.Now()
	tileStats, err := pool.Run(ctx, tiles, func(ctx context.Context, tile Tile) (RenderStats, error) {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		sampler := core.NewSeededSampler(rt.options.Seed + int64(tile.ID))
		stats := rt.RenderTile(tile, frame, sampler)
		logger.Debugf("tile %d %v done (%d samples)", tile.ID, tile.Bounds, stats.TotalSamples)
		return stats, nil
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("rendering tiles: %w", err)
	}

	stats := RenderStats{
		MaxDepth: rt.config.MaxDepth,
		Workers:  pool.GetNumWorkers(),
	}
	for _, ts := range tileStats {
		stats.Merge(ts)
	}
	stats.Duration = time.Since(start)

	logger.Noticef("render finished in %v", stats.Duration.Round(time.Millisecond))
	return frame, stats, nil
}

// RenderTile accumulates the configured number of samples into every pixel of the tile.
// Tiles never overlap, so concurrent calls write disjoint parts of the frame.
func (rt *Raytracer) RenderTile(tile Tile, frame *Frame, sampler core.Sampler) RenderStats {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Viewport t runs bottom to top while image rows run top to bottom
		j := frame.Height - 1 - y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := frame.At(x, y)
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				jitter := sampler.Get2D()
				s := (float64(x) + jitter.X) / float64(frame.Width)
				t := (float64(j) + jitter.Y) / float64(frame.Height)

				ray := camera.GetRay(s, t, sampler)
				ps.AddSample(rt.integrator.RayColor(ray, world, sampler))
			}
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	stats := RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * rt.config.SamplesPerPixel,
		Tiles:        1,
	}
	stats.finalize()
	return stats
}
