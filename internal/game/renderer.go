package game

import (
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
	"explode/internal/scene"
)

// Renderer draws the scene with the fixed-function pipeline. Shapes are GL
// display lists; the handle is the list name.
type Renderer struct {
	clear scene.Color
}

func NewRenderer(clear scene.Color) *Renderer {
	return &Renderer{clear: clear}
}

// Setup sets the global GL state. Call once after gl.Init.
func (r *Renderer) Setup() {
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.LIGHTING)
	// Scaled display lists would otherwise light with scaled normals.
	gl.Enable(gl.NORMALIZE)
	gl.LightModeli(gl.LIGHT_MODEL_TWO_SIDE, gl.TRUE)
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
}

func (r *Renderer) Viewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *Renderer) CompileSphere(radius float64, slices, stacks int) physics.Shape {
	list := gl.GenLists(1)
	gl.NewList(list, gl.COMPILE)
	emitSphere(radius, slices, stacks)
	gl.EndList()
	return physics.Shape(list)
}

// emitSphere emits a UV sphere as one quad strip per stack.
func emitSphere(radius float64, slices, stacks int) {
	for i := 0; i < stacks; i++ {
		lat0 := math.Pi * (-0.5 + float64(i)/float64(stacks))
		lat1 := math.Pi * (-0.5 + float64(i+1)/float64(stacks))
		z0, r0 := math.Sin(lat0), math.Cos(lat0)
		z1, r1 := math.Sin(lat1), math.Cos(lat1)

		gl.Begin(gl.QUAD_STRIP)
		for j := 0; j <= slices; j++ {
			lng := 2 * math.Pi * float64(j) / float64(slices)
			x, y := math.Cos(lng), math.Sin(lng)

			gl.Normal3d(x*r1, y*r1, z1)
			gl.Vertex3d(radius*x*r1, radius*y*r1, radius*z1)
			gl.Normal3d(x*r0, y*r0, z0)
			gl.Vertex3d(radius*x*r0, radius*y*r0, radius*z0)
		}
		gl.End()
	}
}

func (r *Renderer) CompileGrid(lo, hi, step, z float64) physics.Shape {
	list := gl.GenLists(1)
	gl.NewList(list, gl.COMPILE)
	gl.Begin(gl.QUADS)
	gl.Normal3d(0, 0, -1)
	n := int(math.Ceil((hi-lo)/step - 1e-9))
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		for j := 0; j < n; j++ {
			y := lo + float64(j)*step
			gl.Vertex3d(x, y, z)
			gl.Vertex3d(x, y+step, z)
			gl.Vertex3d(x+step, y+step, z)
			gl.Vertex3d(x+step, y, z)
		}
	}
	gl.End()
	gl.EndList()
	return physics.Shape(list)
}

func (r *Renderer) DeleteShape(s physics.Shape) {
	if s != 0 {
		gl.DeleteLists(uint32(s), 1)
	}
}

func (r *Renderer) DrawShape(s physics.Shape, pos mgl64.Vec3, scale float64) {
	gl.PushMatrix()
	gl.Translated(pos[0], pos[1], pos[2])
	gl.Scaled(scale, scale, scale)
	gl.CallList(uint32(s))
	gl.PopMatrix()
}

func (r *Renderer) CallShape(s physics.Shape) {
	gl.CallList(uint32(s))
}

func (r *Renderer) Begin(view, projection mgl64.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&view[0])
}

func (r *Renderer) SetAmbient(intensity float64) {
	v := float32(intensity)
	amb := [4]float32{v, v, v, 1}
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &amb[0])
}

func vec4f(v mgl64.Vec4) [4]float32 {
	return [4]float32{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

func setAttenuation(light uint32, att scene.Attenuation) {
	gl.Lightf(light, gl.CONSTANT_ATTENUATION, float32(att.Constant))
	gl.Lightf(light, gl.LINEAR_ATTENUATION, float32(att.Linear))
	gl.Lightf(light, gl.QUADRATIC_ATTENUATION, float32(att.Quadratic))
}

func (r *Renderer) SetPointLight(l scene.PointLight, att scene.Attenuation) {
	gl.Enable(gl.LIGHT0)
	pos := vec4f(l.Position)
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &l.Diffuse[0])
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &pos[0])
	setAttenuation(gl.LIGHT0, att)
}

func (r *Renderer) SetSpotLight(l scene.SpotLight, att scene.Attenuation) {
	gl.Enable(gl.LIGHT1)
	pos := vec4f(l.Position)
	dir := [3]float32{float32(l.Direction[0]), float32(l.Direction[1]), float32(l.Direction[2])}
	gl.Lightfv(gl.LIGHT1, gl.DIFFUSE, &l.Diffuse[0])
	gl.Lightfv(gl.LIGHT1, gl.POSITION, &pos[0])
	gl.Lightf(gl.LIGHT1, gl.SPOT_CUTOFF, float32(l.Cutoff))
	gl.Lightfv(gl.LIGHT1, gl.SPOT_DIRECTION, &dir[0])
	gl.Lightf(gl.LIGHT1, gl.SPOT_EXPONENT, float32(l.Exponent))
	setAttenuation(gl.LIGHT1, att)
}

func (r *Renderer) SetMaterial(c scene.Color) {
	gl.Materialfv(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE, &c[0])
}

func (r *Renderer) DrawQuad(corners [4]mgl64.Vec3, normal mgl64.Vec3) {
	gl.Begin(gl.QUADS)
	gl.Normal3d(normal[0], normal[1], normal[2])
	for _, v := range corners {
		gl.Vertex3d(v[0], v[1], v[2])
	}
	gl.End()
}

func (r *Renderer) End() {
	gl.Flush()
	gl.Disable(gl.LIGHT0)
	gl.Disable(gl.LIGHT1)
}
