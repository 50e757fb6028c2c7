package physics

import "github.com/go-gl/mathgl/mgl64"

// Shape is an opaque handle to precompiled geometry. Zero means "not compiled".
type Shape uint32

// ShapeCompiler bakes fixed geometry into a reusable Shape.
type ShapeCompiler interface {
	CompileSphere(radius float64, slices, stacks int) Shape
}

// Drawer renders a compiled Shape translated to pos and uniformly scaled.
type Drawer interface {
	DrawShape(s Shape, pos mgl64.Vec3, scale float64)
}

// CollisionPolicy is applied to every particle right after it is integrated.
// Implementations may rewrite Position and Velocity in place but must not keep
// the pointer past the call.
type CollisionPolicy interface {
	Collide(p *Particle)
}

// CollisionFunc adapts a plain function to CollisionPolicy.
type CollisionFunc func(p *Particle)

func (f CollisionFunc) Collide(p *Particle) { f(p) }
