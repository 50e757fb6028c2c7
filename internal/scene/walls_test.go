package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"explode/internal/physics"
)

func TestWallsCollide(t *testing.T) {
	w := Walls{Z: 0.8, Size: 2}

	tests := []struct {
		name    string
		pos     mgl64.Vec3
		vel     mgl64.Vec3
		wantPos mgl64.Vec3
		wantVel mgl64.Vec3
	}{
		{
			name:    "back wall bounce",
			pos:     mgl64.Vec3{0, 0, 0.9},
			vel:     mgl64.Vec3{0, 0, 1},
			wantPos: mgl64.Vec3{0, 0, 0.8},
			wantVel: mgl64.Vec3{0, 0, -1},
		},
		{
			name:    "back wall keeps tangential velocity",
			pos:     mgl64.Vec3{0.5, -0.9, 1.3},
			vel:     mgl64.Vec3{0.2, -0.4, 2.5},
			wantPos: mgl64.Vec3{0.5, -0.9, 0.8},
			wantVel: mgl64.Vec3{0.2, -0.4, -2.5},
		},
		{
			name:    "past back plane outside footprint",
			pos:     mgl64.Vec3{1.5, 0, 0.9},
			vel:     mgl64.Vec3{1, 0, 1},
			wantPos: mgl64.Vec3{1.5, 0, 0.9},
			wantVel: mgl64.Vec3{1, 0, 1},
		},
		{
			name:    "side wall bounce",
			pos:     mgl64.Vec3{-1.2, 0.3, 0.1},
			vel:     mgl64.Vec3{-3, 0, 0.5},
			wantPos: mgl64.Vec3{-1, 0.3, 0.1},
			wantVel: mgl64.Vec3{3, 0, 0.5},
		},
		{
			name:    "left of side wall but behind it in z",
			pos:     mgl64.Vec3{-1.2, 0, -0.9},
			vel:     mgl64.Vec3{-1, 0, 0},
			wantPos: mgl64.Vec3{-1.2, 0, -0.9},
			wantVel: mgl64.Vec3{-1, 0, 0},
		},
		{
			name:    "inside the box",
			pos:     mgl64.Vec3{0.1, 0.1, 0.1},
			vel:     mgl64.Vec3{1, 1, 1},
			wantPos: mgl64.Vec3{0.1, 0.1, 0.1},
			wantVel: mgl64.Vec3{1, 1, 1},
		},
		{
			name:    "exactly on the back plane",
			pos:     mgl64.Vec3{0, 0, 0.8},
			vel:     mgl64.Vec3{0, 0, 1},
			wantPos: mgl64.Vec3{0, 0, 0.8},
			wantVel: mgl64.Vec3{0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := physics.Particle{Position: tt.pos, Velocity: tt.vel}
			w.Collide(&p)
			assert.Equal(t, tt.wantPos, p.Position)
			assert.Equal(t, tt.wantVel, p.Velocity)
		})
	}
}

func TestWallsSatisfyCollisionPolicy(t *testing.T) {
	var policy physics.CollisionPolicy = Walls{Z: 0.8, Size: 2}
	p := physics.Particle{Position: mgl64.Vec3{0, 0, 2}, Velocity: mgl64.Vec3{0, 0, 4}}
	policy.Collide(&p)
	assert.Equal(t, 0.8, p.Position[2])
	assert.Equal(t, -4.0, p.Velocity[2])
}

func TestWallsSideQuad(t *testing.T) {
	q := Walls{Z: 0.8, Size: 2}.SideQuad()
	for _, v := range q {
		assert.Equal(t, -1.0, v[0])
	}
	assert.Equal(t, mgl64.Vec3{-1, 1, -0.8}, q[0])
	assert.Equal(t, mgl64.Vec3{-1, -1, -0.8}, q[3])
}
