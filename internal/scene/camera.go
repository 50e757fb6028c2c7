package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
)

// Camera orbits Center on a sphere of Radius; Theta is measured from +Y and
// Phi around it in the XZ plane.
type Camera struct {
	Center mgl64.Vec3
	Radius float64
	Theta  float64
	Phi    float64

	// Screen shake.
	Shake          mgl64.Vec3 // current eye offset
	ShakeTimer     float64    // remaining shake time
	ShakeIntensity float64    // max offset magnitude
}

const minViewRadius = 0.25

func NewCamera(v ViewSettings) Camera {
	return Camera{
		Center: v.Center,
		Radius: v.Radius,
		Theta:  v.Theta,
		Phi:    v.Phi,
	}
}

// Orbit rotates the camera by the given angles (radians).
func (c *Camera) Orbit(dTheta, dPhi float64) {
	c.Theta += dTheta
	c.Phi += dPhi
}

// Zoom moves the eye along the view ray, never closer than minViewRadius.
func (c *Camera) Zoom(dr float64) {
	c.Radius = math.Max(minViewRadius, c.Radius+dr)
}

// Eye returns the eye position, shake included.
func (c *Camera) Eye() mgl64.Vec3 {
	st, ct := math.Sincos(c.Theta)
	sp, cp := math.Sincos(c.Phi)
	return mgl64.Vec3{
		c.Center[0] + c.Radius*st*cp,
		c.Center[1] + c.Radius*ct,
		c.Center[2] + c.Radius*st*sp,
	}.Add(c.Shake)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Center, mgl64.Vec3{0, 1, 0})
}

func (c *Camera) Projection(v ViewSettings, aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(v.FieldOfViewY), aspect, v.ZNear, v.ZFar)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.Shake = mgl64.Vec3{}
		c.ShakeTimer = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := physics.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.Shake = mgl64.Vec3{
		rr.RangeF(-mag, mag),
		rr.RangeF(-mag, mag),
		rr.RangeF(-mag, mag),
	}
}
