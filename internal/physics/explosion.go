package physics

import "github.com/go-gl/mathgl/mgl64"

// Explosion defaults.
const (
	DefaultParticleCount = 100
	DefaultAttenuation   = 0.3
	MinPowerFraction     = 0.05 // lower bound of the random magnitude, as a share of Power

	ShapeRadius = 0.5
	ShapeDetail = 16
)

type ExplosionConfig struct {
	Origin       mgl64.Vec3
	Power        float64
	Count        int
	ParticleSize float64
	Attenuation  float64
	Gravitation  mgl64.Vec3
	Seed         uint64

	// ShapeDetail is the slice/stack count of the compiled particle sphere.
	ShapeDetail int
}

// Explosion owns one batch of particles that is created all at once by
// Explode and advanced by Update.
type Explosion struct {
	cfg       ExplosionConfig
	particles []Particle
	rng       *Rand
	shape     Shape
	exploded  bool
}

func NewExplosion(cfg ExplosionConfig) *Explosion {
	if cfg.Count <= 0 {
		cfg.Count = DefaultParticleCount
	}
	if cfg.ShapeDetail <= 0 {
		cfg.ShapeDetail = ShapeDetail
	}
	return &Explosion{
		cfg: cfg,
		rng: NewRand(cfg.Seed),
	}
}

func (e *Explosion) Config() ExplosionConfig { return e.cfg }

// Compile bakes the particle shape. It must run once before the first draw;
// subsequent calls keep the existing handle.
func (e *Explosion) Compile(c ShapeCompiler) {
	if e.shape != 0 || c == nil {
		return
	}
	e.shape = c.CompileSphere(ShapeRadius, e.cfg.ShapeDetail, e.cfg.ShapeDetail)
}

func (e *Explosion) Compiled() bool { return e.shape != 0 }

func (e *Explosion) Shape() Shape { return e.shape }

func (e *Explosion) Exploded() bool { return e.exploded }

// Explode populates the particle batch at time now. Only the first call has
// an effect; it reports whether this call was the one that triggered.
func (e *Explosion) Explode(now float64) bool {
	if e.exploded {
		return false
	}

	batch := make([]Particle, e.cfg.Count)
	for i := range batch {
		dir := mgl64.Vec3{
			e.rng.RangeF(-1, 1),
			e.rng.RangeF(-1, 1),
			e.rng.RangeF(-1, 1),
		}
		mag := e.rng.RangeF(MinPowerFraction*e.cfg.Power, e.cfg.Power)
		p := NewParticle(e.cfg.Origin, dir.Mul(mag), e.cfg.Attenuation, now)
		p.Gravitation = e.cfg.Gravitation
		batch[i] = *p
	}
	e.particles = batch
	e.exploded = true
	return true
}

// Update integrates every particle to now, draws it when d is non-nil and the
// shape has been compiled, then hands it to policy. It does nothing before
// Explode.
func (e *Explosion) Update(now float64, d Drawer, policy CollisionPolicy) {
	if !e.exploded {
		return
	}
	draw := d != nil && e.shape != 0
	for i := range e.particles {
		p := &e.particles[i]
		p.Update(now)
		if draw {
			d.DrawShape(e.shape, p.Position, e.cfg.ParticleSize)
		}
		if policy != nil {
			policy.Collide(p)
		}
	}
}

// Particles returns a copy of the current batch.
func (e *Explosion) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

func (e *Explosion) Len() int { return len(e.particles) }
