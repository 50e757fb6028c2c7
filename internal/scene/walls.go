package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
)

// Walls is the scene boundary: a square back wall in the plane z = Z spanning
// [-Size/2, Size/2] in x and y, and a side wall in the plane x = -Size/2
// spanning z in [-Z, Z].
type Walls struct {
	Z    float64
	Size float64
}

func (w Walls) MinEdge() float64 { return -w.Size / 2 }
func (w Walls) MaxEdge() float64 { return w.Size / 2 }

func (w Walls) inFootprint(v float64) bool {
	return v >= w.MinEdge() && v <= w.MaxEdge()
}

// Collide reflects a particle off the back and side walls with unit
// restitution. The planes are tested independently; corners get no special
// treatment.
func (w Walls) Collide(p *physics.Particle) {
	x, y, z := p.Position[0], p.Position[1], p.Position[2]
	left := w.MinEdge()

	if z > w.Z && w.inFootprint(x) && w.inFootprint(y) {
		p.Position[2] = w.Z
		p.Velocity[2] = -p.Velocity[2]
	}
	if x < left && w.inFootprint(y) && z >= -w.Z && z <= w.Z {
		p.Position[0] = left
		p.Velocity[0] = -p.Velocity[0]
	}
}

// SideQuad returns the corners of the side wall in drawing order.
func (w Walls) SideQuad() [4]mgl64.Vec3 {
	lo, hi := w.MinEdge(), w.MaxEdge()
	return [4]mgl64.Vec3{
		{lo, hi, -w.Z},
		{lo, hi, w.Z},
		{lo, lo, w.Z},
		{lo, lo, -w.Z},
	}
}
