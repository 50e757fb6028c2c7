package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
)

// Renderer is the drawing surface the scene talks to. The desktop build backs
// it with fixed-function OpenGL; tests use a recorder.
type Renderer interface {
	physics.ShapeCompiler
	physics.Drawer

	// CompileGrid bakes a grid of quads in the plane z covering [lo,hi) in
	// x and y with cells of size step.
	CompileGrid(lo, hi, step, z float64) physics.Shape
	DeleteShape(s physics.Shape)

	Begin(view, projection mgl64.Mat4)
	SetAmbient(intensity float64)
	SetPointLight(l PointLight, att Attenuation)
	SetSpotLight(l SpotLight, att Attenuation)
	SetMaterial(c Color)
	CallShape(s physics.Shape)
	DrawQuad(corners [4]mgl64.Vec3, normal mgl64.Vec3)
	End()
}
