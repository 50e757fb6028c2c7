package physics

import "github.com/go-gl/mathgl/mgl64"

// Particle is a point mass integrated against its own timestamp.
type Particle struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3 // decays by Attenuation every update
	Gravitation  mgl64.Vec3 // constant, never attenuated

	Attenuation float64 // [0,1)
	Time        float64 // simulation time of the last update
}

func NewParticle(pos, accel mgl64.Vec3, attenuation, t float64) *Particle {
	return &Particle{
		Position:     pos,
		Acceleration: accel,
		Attenuation:  attenuation,
		Time:         t,
	}
}

// Update advances the particle to now using semi-implicit Euler over the time
// elapsed since its last update. now is expected to be >= p.Time; an earlier
// value integrates backwards and is not guarded against.
func (p *Particle) Update(now float64) {
	dt := now - p.Time
	p.Time = now

	a := p.Acceleration.Add(p.Gravitation)
	for i := range 3 {
		p.Position[i] += p.Velocity[i]*dt + 0.5*a[i]*dt*dt
		p.Velocity[i] += a[i] * dt
		p.Acceleration[i] -= p.Acceleration[i] * p.Attenuation
	}
}
