package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Builder constructs a scene
type Builder func(opts Options) *Scene

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	build       Builder
}

// Build constructs the scene
func (i Info) Build(opts Options) *Scene {
	return i.build(opts)
}

var builtins = []Info{
	{"simple", "Two small diffuse spheres in front of a pinhole-like camera", NewSimpleScene},
	{"random_spheres", "Field of random moving, metal and glass spheres on a checkered ground", NewRandomSpheresScene},
	{"two_spheres", "Two large checkered spheres", NewTwoSpheresScene},
	{"two_perlin_spheres", "Marble-like Perlin noise on a ground sphere and a small sphere", NewTwoPerlinSpheresScene},
	{"earth", "A globe wrapped in an image texture", NewEarthScene},
	{"simple_light", "Perlin spheres lit by a rectangle and a sphere light", NewSimpleLightScene},
	{"cornell_box", "Cornell box with a rotated tall and short box", NewCornellBoxScene},
	{"cornell_smoke", "Cornell box whose boxes are filled with smoke and fog", NewCornellSmokeScene},
	{"final", "Showcase of every feature: media, motion blur, textures and instancing", NewFinalScene},
	{"black_screen", "Empty scene on a black background", NewBlackScreenScene},
}

// List returns the built-in scenes sorted by name
func List() []Info {
	scenes := make([]Info, len(builtins))
	copy(scenes, builtins)

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Lookup finds a built-in scene by name
func Lookup(name string) (Info, error) {
	for _, info := range builtins {
		if info.Name == name {
			return info, nil
		}
	}

	names := make([]string, 0, len(builtins))
	for _, info := range List() {
		names = append(names, info.Name)
	}
	return Info{}, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(names, ", "))
}
