package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
)

var sideWallNormal = mgl64.Vec3{1, 0, 0}

// Scene drives the explosion: it owns the clock, the shrinking sphere gauge,
// the walls and the single Explosion instance. Tick, Apply and Frame are meant
// to be called from one goroutine.
type Scene struct {
	Settings Settings

	Time         float64
	SphereRadius float64
	Paused       bool
	Camera       Camera
	Walls        Walls

	explosion *physics.Explosion
	events    *EventBus
	loaded    Settings // last settings read from disk
	seed      uint64
	resets    uint64

	r           Renderer
	sphereShape physics.Shape
	wallShape   physics.Shape
	wallDetail  int
}

func New(s Settings, seed uint64, bus *EventBus) *Scene {
	sc := &Scene{
		Settings: s,
		loaded:   s,
		Camera:   NewCamera(s.View),
		events:   bus,
		seed:     seed,
	}
	sc.restart()
	return sc
}

func (s *Scene) restart() {
	st := &s.Settings
	s.Time = 0
	s.SphereRadius = st.Sphere.InitialRadius
	s.Walls = Walls{Z: st.Wall.Z, Size: st.Wall.Size}
	s.explosion = physics.NewExplosion(physics.ExplosionConfig{
		Origin:       st.Explosion.Origin,
		Power:        st.Explosion.Power,
		Count:        st.Explosion.Count,
		ParticleSize: st.Explosion.ParticleSize,
		Attenuation:  st.Explosion.Attenuation,
		Gravitation:  st.Explosion.Gravitation,
		ShapeDetail:  st.Explosion.ShapeDetail,
		Seed:         s.seed + s.resets,
	})
}

func (s *Scene) Explosion() *physics.Explosion { return s.explosion }

// Init compiles every shape the scene draws. It must be called once with the
// renderer before the first Frame.
func (s *Scene) Init(r Renderer) {
	s.r = r
	d := s.Settings.Sphere.Detailing
	s.sphereShape = r.CompileSphere(1, d, d)
	s.explosion.Compile(r)
	s.rebuildWall()
}

func (s *Scene) rebuildWall() {
	if s.r == nil {
		return
	}
	w := s.Settings.Wall
	if s.wallShape != 0 {
		if s.wallDetail == w.Detailing {
			return
		}
		s.r.DeleteShape(s.wallShape)
	}
	step := 1.0
	if w.Detailing > 0 {
		step = 1 / float64(w.Detailing)
	}
	s.wallShape = s.r.CompileGrid(s.Walls.MinEdge(), s.Walls.MaxEdge(), step, s.Walls.Z)
	s.wallDetail = w.Detailing
}

// Tick is the idle step: it advances the clock, shrinks the sphere and fires
// the explosion once the sphere is smaller than its minimum radius.
func (s *Scene) Tick() {
	if s.Paused {
		return
	}
	dt := s.Settings.Clock.DeltaTime
	s.Time += dt
	s.Camera.UpdateShake(dt, s.seed)

	s.SphereRadius -= s.Settings.Sphere.RadiusDelta
	if s.SphereRadius < s.Settings.Sphere.MinRadius && s.explosion.Explode(s.Time) {
		cfg := s.explosion.Config()
		s.Camera.AddShake(s.Settings.Shake.Intensity, s.Settings.Shake.Duration)
		s.events.Emit(Event{
			Type:     EventExploded,
			Time:     s.Time,
			Position: cfg.Origin,
			Power:    cfg.Power,
			Count:    cfg.Count,
		})
	}
}

// Step advances only the clock by one tick, paused or not.
func (s *Scene) Step() {
	s.Time += s.Settings.Clock.DeltaTime
}

// Reset discards the explosion and starts over with a fresh instance.
func (s *Scene) Reset() {
	old := s.explosion.Shape()
	s.resets++
	s.restart()
	if s.r != nil {
		if old != 0 {
			s.r.DeleteShape(old)
		}
		s.explosion.Compile(s.r)
	}
	s.events.Emit(Event{Type: EventReset})
}

// Apply performs a user action. It reports false for ActionQuit so the caller
// can close the window.
func (s *Scene) Apply(a Action) bool {
	st := &s.Settings
	rad := mgl64.DegToRad(st.View.StepDegrees)
	switch a {
	case ActionQuit:
		return false
	case ActionPhiUp:
		s.Camera.Orbit(0, rad)
	case ActionPhiDown:
		s.Camera.Orbit(0, -rad)
	case ActionThetaUp:
		s.Camera.Orbit(rad, 0)
	case ActionThetaDown:
		s.Camera.Orbit(-rad, 0)
	case ActionToggleSpot:
		st.Light.Spot = !st.Light.Spot
	case ActionZoomOut:
		s.Camera.Zoom(st.View.RadiusStep)
	case ActionZoomIn:
		s.Camera.Zoom(-st.View.RadiusStep)
	case ActionDimmer:
		st.Light.Intensity = math.Max(0, st.Light.Intensity-st.Light.Step)
	case ActionBrighter:
		st.Light.Intensity = math.Min(1, st.Light.Intensity+st.Light.Step)
	case ActionCoarseWall:
		st.Wall.Detailing = st.Wall.Coarse
		s.rebuildWall()
	case ActionStep:
		s.Step()
	case ActionPause:
		s.Paused = !s.Paused
		ev := EventResumed
		if s.Paused {
			ev = EventPaused
		}
		s.events.Emit(Event{Type: ev, Time: s.Time})
	case ActionReset:
		s.Reset()
	}
	return true
}

// ApplyLive takes the parts of next that are safe to swap mid-run: lights,
// materials, wall detailing, pacing and shake. New explosion parameters are
// stored but only used by the next Reset; view and wall geometry are kept.
// Keyboard changes to the spot toggle, ambient intensity and wall detailing
// survive unless next changes that same value.
func (s *Scene) ApplyLive(next Settings) {
	st := &s.Settings
	prev := s.loaded
	s.loaded = next
	spot, intensity, detail := st.Light.Spot, st.Light.Intensity, st.Wall.Detailing

	st.Light = next.Light
	st.Sphere.Material = next.Sphere.Material
	st.Wall.Material = next.Wall.Material
	st.Wall.Detailing = next.Wall.Detailing
	st.Wall.Coarse = next.Wall.Coarse
	st.Clock = next.Clock
	st.Shake = next.Shake
	st.Explosion = next.Explosion
	st.Sphere.RadiusDelta = next.Sphere.RadiusDelta

	if next.Light.Spot == prev.Light.Spot {
		st.Light.Spot = spot
	}
	if next.Light.Intensity == prev.Light.Intensity {
		st.Light.Intensity = intensity
	}
	if next.Wall.Detailing == prev.Wall.Detailing {
		st.Wall.Detailing = detail
	}
	s.rebuildWall()
	s.events.Emit(Event{Type: EventSettingsReloaded, Time: s.Time})
}

// Frame is the display step: camera, lights, sphere, walls, then one
// integration and draw pass over the particles with wall collision.
func (s *Scene) Frame(r Renderer, aspect float64) {
	st := &s.Settings
	r.Begin(s.Camera.View(), s.Camera.Projection(st.View, aspect))

	r.SetAmbient(st.Light.Intensity)
	if st.Light.Spot {
		r.SetSpotLight(st.Light.SpotLight, st.Light.Attenuation)
	} else {
		r.SetPointLight(st.Light.PointLight, st.Light.Attenuation)
	}

	if s.SphereRadius >= st.Sphere.MinRadius {
		r.SetMaterial(st.Sphere.Material)
		r.DrawShape(s.sphereShape, s.explosion.Config().Origin, s.SphereRadius)
	}

	r.SetMaterial(st.Wall.Material)
	r.CallShape(s.wallShape)
	r.DrawQuad(s.Walls.SideQuad(), sideWallNormal)

	r.SetMaterial(st.Sphere.Material)
	s.explosion.Update(s.Time, r, s.Walls)

	r.End()
}
