package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
)

type gridCall struct {
	lo, hi, step, z float64
}

type drawCall struct {
	shape physics.Shape
	pos   mgl64.Vec3
	scale float64
}

// recorder is a Renderer that remembers what it was asked to do.
type recorder struct {
	next     physics.Shape
	spheres  []int
	grids    []gridCall
	deleted  []physics.Shape
	draws    []drawCall
	called   []physics.Shape
	quads    int
	ambient  float64
	spot     int
	point    int
	begins   int
	ends     int
	material Color
}

func (r *recorder) alloc() physics.Shape {
	r.next++
	return r.next
}

func (r *recorder) CompileSphere(radius float64, slices, stacks int) physics.Shape {
	r.spheres = append(r.spheres, slices)
	return r.alloc()
}

func (r *recorder) CompileGrid(lo, hi, step, z float64) physics.Shape {
	r.grids = append(r.grids, gridCall{lo, hi, step, z})
	return r.alloc()
}

func (r *recorder) DeleteShape(s physics.Shape) { r.deleted = append(r.deleted, s) }

func (r *recorder) DrawShape(s physics.Shape, pos mgl64.Vec3, scale float64) {
	r.draws = append(r.draws, drawCall{s, pos, scale})
}

func (r *recorder) Begin(view, projection mgl64.Mat4) { r.begins++ }
func (r *recorder) SetAmbient(intensity float64) { r.ambient = intensity }
func (r *recorder) SetPointLight(PointLight, Attenuation) { r.point++ }
func (r *recorder) SetSpotLight(SpotLight, Attenuation) { r.spot++ }
func (r *recorder) SetMaterial(c Color) { r.material = c }
func (r *recorder) CallShape(s physics.Shape) { r.called = append(r.called, s) }
func (r *recorder) DrawQuad([4]mgl64.Vec3, mgl64.Vec3) { r.quads++ }
func (r *recorder) End() { r.ends++ }

func (r *recorder) resetFrame() {
	r.draws = nil
	r.called = nil
	r.quads = 0
}
