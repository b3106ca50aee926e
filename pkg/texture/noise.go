package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseStyle selects how a NoiseTexture turns Perlin noise into color
type NoiseStyle int

const (
	// NoiseMarble is 0.5·(1 + sin(scale·z + 10·turbulence(p)))
	NoiseMarble NoiseStyle = iota
	// NoiseSmooth is 0.5·(1 + noise(scale·p))
	NoiseSmooth
	// NoiseTurbulent is turbulence(scale·p)
	NoiseTurbulent
)

// noiseTurbulenceDepth is the number of octaves summed for turbulence
const noiseTurbulenceDepth = 7

// NoiseTexture is a grayscale procedural texture driven by Perlin noise
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
	Style NoiseStyle
}

// NewNoiseTexture creates a marble-style noise texture
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, Style: NoiseMarble}
}

// Evaluate returns a gray level derived from the noise field at point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	var value float64
	switch n.Style {
	case NoiseSmooth:
		value = 0.5 * (1 + n.Noise.Noise(point.Multiply(n.Scale)))
	case NoiseTurbulent:
		value = n.Noise.Turbulence(point.Multiply(n.Scale), noiseTurbulenceDepth)
	default:
		value = 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, noiseTurbulenceDepth)))
	}
	return core.Splat(value)
}
