package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	VUp           core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 gives a pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus (0 = auto-calculate)
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays for rendering with configurable positioning and depth of field
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera coordinate system basis vectors
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera with the specified configuration
func NewCamera(config CameraConfig) *Camera {
	// Calculate viewport dimensions from field of view
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Calculate camera coordinate system
	w := config.LookFrom.Subtract(config.LookAt).Normalize() // Points away from target
	u := config.VUp.Cross(w).Normalize()                     // Points right
	v := w.Cross(u)                                          // Points up

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	origin := config.LookFrom
	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// RayAt returns the ray through viewport coordinates (s, t), where (0,0) is the lower-left
// corner. lens picks the point on the aperture and timeSample the instant within the shutter
// interval; both are uniform samples in [0,1).
func (c *Camera) RayAt(s, t float64, lens core.Vec2, timeSample float64) core.Ray {
	rd := core.SamplePointInUnitDisk(lens).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + timeSample*(c.time1-c.time0)
	return core.NewRayAtTime(origin, direction, time)
}

// GetRay draws lens and shutter samples and returns the ray through (s, t)
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	lens := sampler.Get2D()
	return c.RayAt(s, t, lens, sampler.Get1D())
}
