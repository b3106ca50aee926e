package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MaxDepth       int           // Bounce limit used for every path
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of parallel workers
	Duration       time.Duration // Wall-clock render time
}

// Merge folds the counters of a tile into the totals
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.Tiles += other.Tiles
	rs.finalize()
}

func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// SamplesPerSecond returns the sampling throughput of the render
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

// WriteSummary renders the stats as a two-column table
func (rs RenderStats) WriteSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Pixels", fmt.Sprint(rs.TotalPixels)})
	table.Append([]string{"Samples", fmt.Sprint(rs.TotalSamples)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%.1f", rs.AverageSamples)})
	table.Append([]string{"Max depth", fmt.Sprint(rs.MaxDepth)})
	table.Append([]string{"Tiles", fmt.Sprint(rs.Tiles)})
	table.Append([]string{"Workers", fmt.Sprint(rs.Workers)})
	table.Append([]string{"Render time", rs.Duration.Round(time.Millisecond).String()})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", rs.SamplesPerSecond())})
	table.Render()
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
