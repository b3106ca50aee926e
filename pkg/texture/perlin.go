package texture

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PerlinPointCount is the size of the gradient and permutation tables
const PerlinPointCount = 256

// Perlin is a lattice gradient noise generator.
// The tables are filled once at construction and only read afterwards, so a
// Perlin value can be shared by concurrent workers.
type Perlin struct {
	gradients [PerlinPointCount]core.Vec3
	permX     [PerlinPointCount]int
	permY     [PerlinPointCount]int
	permZ     [PerlinPointCount]int
}

// NewPerlin builds the gradient table and three independent permutations from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}

	for i := range p.gradients {
		// Random direction with components in [-1,1), normalized to unit length
		for {
			v := core.NewVec3(
				2*random.Float64()-1,
				2*random.Float64()-1,
				2*random.Float64()-1,
			)
			if v.LengthSquared() > 1e-12 {
				p.gradients[i] = v.Normalize()
				break
			}
		}
	}

	copy(p.permX[:], random.Perm(PerlinPointCount))
	copy(p.permY[:], random.Perm(PerlinPointCount))
	copy(p.permZ[:], random.Perm(PerlinPointCount))

	return p
}

// Noise returns the smoothed gradient noise at point, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise at doubling frequency and halving weight
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// perlinInterp blends the corner gradients with Hermite-smoothed trilinear weights
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}

	return accum
}
