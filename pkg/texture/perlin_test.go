package texture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPerlinNoiseIsDeterministic(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(1)))
	random := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*100-50, random.Float64()*100-50, random.Float64()*100-50)
		first := perlin.Noise(p)
		second := perlin.Noise(p)
		if math.Float64bits(first) != math.Float64bits(second) {
			t.Fatalf("Noise(%v) returned %v then %v", p, first, second)
		}
	}
}

func TestPerlinSameSeedSameTables(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(5)))
	b := NewPerlin(rand.New(rand.NewSource(5)))

	p := core.NewVec3(1.3, -4.7, 2.2)
	if a.Noise(p) != b.Noise(p) {
		t.Error("Perlin generators built from the same seed disagree")
	}
}

func TestPerlinTablesArePermutations(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(3)))

	for name, perm := range map[string][PerlinPointCount]int{
		"x": perlin.permX,
		"y": perlin.permY,
		"z": perlin.permZ,
	} {
		seen := make([]bool, PerlinPointCount)
		for _, v := range perm {
			if v < 0 || v >= PerlinPointCount || seen[v] {
				t.Fatalf("perm%s is not a permutation of [0,%d)", name, PerlinPointCount)
			}
			seen[v] = true
		}
	}

	for i, g := range perlin.gradients {
		if math.Abs(g.Length()-1) > 1e-9 {
			t.Fatalf("gradient %d has length %v", i, g.Length())
		}
	}
}

func TestPerlinNoiseVanishesOnLattice(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(4)))

	// At integer points the corner offset is zero, so the gradient dot product is zero
	for _, p := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(3, -7, 12),
		core.NewVec3(-1, -1, -1),
	} {
		if got := perlin.Noise(p); math.Abs(got) > 1e-12 {
			t.Errorf("Noise(%v) = %v, want 0", p, got)
		}
	}
}

func TestPerlinNoiseRange(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(6)))
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		p := core.NewVec3(random.Float64()*20, random.Float64()*20, random.Float64()*20)
		if n := perlin.Noise(p); n < -2 || n > 2 {
			t.Fatalf("Noise(%v) = %v out of range", p, n)
		}
	}
}

func TestPerlinTurbulence(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(8)))
	p := core.NewVec3(0.37, 1.91, -2.4)

	if got := perlin.Turbulence(p, 0); got != 0 {
		t.Errorf("Turbulence with zero octaves = %v, want 0", got)
	}

	if got, want := perlin.Turbulence(p, 1), math.Abs(perlin.Noise(p)); got != want {
		t.Errorf("Single octave turbulence = %v, want |noise| = %v", got, want)
	}

	want := math.Abs(perlin.Noise(p) + 0.5*perlin.Noise(p.Multiply(2)) + 0.25*perlin.Noise(p.Multiply(4)))
	if got := perlin.Turbulence(p, 3); math.Abs(got-want) > 1e-12 {
		t.Errorf("Turbulence(p, 3) = %v, want %v", got, want)
	}
}

func TestNoiseTextureStyles(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(9)))
	random := rand.New(rand.NewSource(10))

	for _, style := range []NoiseStyle{NoiseMarble, NoiseSmooth, NoiseTurbulent} {
		texture := &NoiseTexture{Noise: perlin, Scale: 4, Style: style}
		for i := 0; i < 200; i++ {
			p := core.NewVec3(random.Float64()*4, random.Float64()*4, random.Float64()*4)
			c := texture.Evaluate(core.Vec2{}, p)
			if c.X != c.Y || c.Y != c.Z {
				t.Fatalf("style %d: expected gray, got %v", style, c)
			}
			if style != NoiseSmooth && c.X < 0 {
				t.Fatalf("style %d: negative intensity %v", style, c.X)
			}
		}
	}
}
