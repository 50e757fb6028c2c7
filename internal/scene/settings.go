package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"explode/internal/physics"
)

// Color is an RGBA material or light color with components in [0,1].
type Color [4]float32

// RGB converts 8-bit channels to an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0, 1}
}

// Palette.
var (
	ColorBlue  = RGB(0, 122, 255)
	ColorSmoke = RGB(250, 250, 250)
	ColorWhite = RGB(255, 255, 255)
)

// Settings is everything the scene driver reads: camera, lights, the shrinking
// sphere, the walls, the explosion and the clock. It is owned by the Scene
// and loaded from the config file.
type Settings struct {
	View      ViewSettings      `toml:"view" yaml:"view"`
	Light     LightSettings     `toml:"light" yaml:"light"`
	Sphere    SphereSettings    `toml:"sphere" yaml:"sphere"`
	Wall      WallSettings      `toml:"wall" yaml:"wall"`
	Explosion ExplosionSettings `toml:"explosion" yaml:"explosion"`
	Clock     ClockSettings     `toml:"clock" yaml:"clock"`
	Shake     ShakeSettings     `toml:"shake" yaml:"shake"`
}

type ViewSettings struct {
	FieldOfViewY float64    `toml:"fov_y" yaml:"fov_y"` // degrees
	ZNear        float64    `toml:"z_near" yaml:"z_near"`
	ZFar         float64    `toml:"z_far" yaml:"z_far"`
	Radius       float64    `toml:"radius" yaml:"radius"`
	Theta        float64    `toml:"theta" yaml:"theta"` // radians
	Phi          float64    `toml:"phi" yaml:"phi"`     // radians
	StepDegrees  float64    `toml:"step_degrees" yaml:"step_degrees"`
	RadiusStep   float64    `toml:"radius_step" yaml:"radius_step"`
	Center       mgl64.Vec3 `toml:"center" yaml:"center"`
}

type PointLight struct {
	Diffuse  Color      `toml:"diffuse" yaml:"diffuse"`
	Position mgl64.Vec4 `toml:"position" yaml:"position"`
}

type SpotLight struct {
	Diffuse   Color      `toml:"diffuse" yaml:"diffuse"`
	Position  mgl64.Vec4 `toml:"position" yaml:"position"`
	Direction mgl64.Vec3 `toml:"direction" yaml:"direction"`
	Cutoff    float64    `toml:"cutoff" yaml:"cutoff"` // degrees
	Exponent  float64    `toml:"exponent" yaml:"exponent"`
}

type Attenuation struct {
	Constant  float64 `toml:"constant" yaml:"constant"`
	Linear    float64 `toml:"linear" yaml:"linear"`
	Quadratic float64 `toml:"quadratic" yaml:"quadratic"`
}

type LightSettings struct {
	Intensity   float64     `toml:"intensity" yaml:"intensity"` // ambient
	Step        float64     `toml:"step" yaml:"step"`
	Spot        bool        `toml:"spot" yaml:"spot"` // spot light instead of point light
	SpotLight   SpotLight   `toml:"spot_light" yaml:"spot_light"`
	PointLight  PointLight  `toml:"point_light" yaml:"point_light"`
	Attenuation Attenuation `toml:"attenuation" yaml:"attenuation"`
}

type SphereSettings struct {
	Material      Color   `toml:"material" yaml:"material"`
	InitialRadius float64 `toml:"initial_radius" yaml:"initial_radius"`
	MinRadius     float64 `toml:"min_radius" yaml:"min_radius"`
	RadiusDelta   float64 `toml:"radius_delta" yaml:"radius_delta"`
	Detailing     int     `toml:"detailing" yaml:"detailing"`
}

type WallSettings struct {
	Material  Color   `toml:"material" yaml:"material"`
	Z         float64 `toml:"z" yaml:"z"`
	Size      float64 `toml:"size" yaml:"size"`
	Detailing int     `toml:"detailing" yaml:"detailing"` // grid cells per unit length
	Coarse    int     `toml:"coarse_detailing" yaml:"coarse_detailing"`
}

type ExplosionSettings struct {
	Origin       mgl64.Vec3 `toml:"origin" yaml:"origin"`
	Power        float64    `toml:"power" yaml:"power"`
	Count        int        `toml:"count" yaml:"count"`
	ParticleSize float64    `toml:"particle_size" yaml:"particle_size"`
	Attenuation  float64    `toml:"attenuation" yaml:"attenuation"`
	Gravitation  mgl64.Vec3 `toml:"gravitation" yaml:"gravitation"`
	ShapeDetail  int        `toml:"shape_detail" yaml:"shape_detail"`
}

type ClockSettings struct {
	DeltaTime float64 `toml:"delta_time" yaml:"delta_time"` // seconds per tick
}

type ShakeSettings struct {
	Intensity float64 `toml:"intensity" yaml:"intensity"`
	Duration  float64 `toml:"duration" yaml:"duration"` // seconds of simulation time
}

// DefaultSettings reproduces the tuned values of the lighting/explosion scene.
func DefaultSettings() Settings {
	const sphereRadius = 0.2
	return Settings{
		View: ViewSettings{
			FieldOfViewY: 60,
			ZNear:        0.0001,
			ZFar:         100,
			Radius:       3,
			Theta:        -3 * math.Pi / 2,
			Phi:          -math.Pi / 2,
			StepDegrees:  5,
			RadiusStep:   0.25,
		},
		Light: LightSettings{
			Intensity: 0.2,
			Step:      0.1,
			SpotLight: SpotLight{
				Diffuse:   ColorWhite,
				Position:  mgl64.Vec4{0, 0, -1, 1},
				Direction: mgl64.Vec3{0, 0, 1},
				Cutoff:    15,
				Exponent:  30,
			},
			PointLight: PointLight{
				Diffuse:  ColorWhite,
				Position: mgl64.Vec4{0, 0, -1, 1},
			},
			Attenuation: Attenuation{Constant: 0, Linear: 0.2, Quadratic: 0.2},
		},
		Sphere: SphereSettings{
			Material:      ColorBlue,
			InitialRadius: sphereRadius,
			MinRadius:     sphereRadius / 20,
			RadiusDelta:   sphereRadius / 50,
			Detailing:     64,
		},
		Wall: WallSettings{
			Material:  ColorSmoke,
			Z:         0.8,
			Size:      2,
			Detailing: 140,
			Coarse:    20,
		},
		Explosion: ExplosionSettings{
			Power:        100,
			Count:        200,
			ParticleSize: sphereRadius / 10,
			Attenuation:  physics.DefaultAttenuation,
			ShapeDetail:  physics.ShapeDetail,
		},
		Clock: ClockSettings{DeltaTime: 0.01},
		Shake: ShakeSettings{Intensity: 0.05, Duration: 0.4},
	}
}
