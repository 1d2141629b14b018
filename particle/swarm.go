package particle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/Vacayy/hand-controlled-3d-particles/gesture"
	"github.com/Vacayy/hand-controlled-3d-particles/hand"
	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Swarm structure: owns the per particle position and velocity buffers and
//advances every particle toward its assigned target slot each frame. The
//composition of forces is a stylized spring damper, tuned for visual
//responsiveness rather than physical fidelity: return spring to the target,
//optional hand attractor and repulsor fields, fist triggered turbulence and
//an unconditional damping pass that keeps the system from ever diverging.

//These particle positions are streamed to OpenGL vertex buffers each frame
//by the app renderer.

//Mode selects the interaction composition. Both appear in the project's
//history: the breathing model pairs an idle sinusoidal expansion with the
//gesture scale and rotation, the field model maps hands to attractor and
//repulsor force fields.
type Mode int

const (
	ModeBreath Mode = iota
	ModeField
)

//ParseMode - name to Mode, defaults to breath
func ParseMode(name string) Mode {
	if name == "field" {
		return ModeField
	}
	return ModeBreath
}

func (m Mode) String() string {
	if m == ModeField {
		return "field"
	}
	return "breath"
}

//Config - simulation tunables. Force constants are per frame, the spring and
//damping pair is stable for ReturnSpeed small relative to 1 and Damping < 1.
type Config struct {
	ReturnSpeed float32 `yaml:"return_speed"` //spring pull toward target slot
	Damping     float32 `yaml:"damping"`      //velocity decay applied every frame

	BreathAmplitude float32 `yaml:"breath_amplitude"` //idle expansion swing
	BreathFrequency float32 `yaml:"breath_frequency"` //radians per second

	AttractorStrength float32 `yaml:"attractor_strength"`
	AttractorEpsilon  float32 `yaml:"attractor_epsilon"` //added to squared distance
	RepulsorStrength  float32 `yaml:"repulsor_strength"`
	RepulsorRadius    float32 `yaml:"repulsor_radius"` //zero force outside

	TurbulenceStrength float32 `yaml:"turbulence_strength"`
	NoiseScale         float32 `yaml:"noise_scale"` //world to noise field coords

	PalmReach float32 `yaml:"palm_reach"` //palm [-1,1] to world units

	Smoothing      float32 `yaml:"smoothing"`       //mesh scale/rotation lerp factor
	ColorSmoothing float32 `yaml:"color_smoothing"` //material color lerp factor

	DepthGain     float32 `yaml:"depth_gain"`      //render scale falloff with depth
	DepthScaleMin float32 `yaml:"depth_scale_min"` //cosmetic floor
}

func DefaultConfig() Config {
	return Config{
		ReturnSpeed:        0.05,
		Damping:            0.1,
		BreathAmplitude:    0.12,
		BreathFrequency:    1.8,
		AttractorStrength:  0.015,
		AttractorEpsilon:   0.05,
		RepulsorStrength:   0.02,
		RepulsorRadius:     1.5,
		TurbulenceStrength: 0.02,
		NoiseScale:         1.4,
		PalmReach:          2.0,
		Smoothing:          0.1,
		ColorSmoothing:     0.05,
		DepthGain:          0.25,
		DepthScaleMin:      0.4,
	}
}

//Swarm - per particle state plus the smoothed aggregate transform. Owned
//and mutated by the simulation thread only.
type Swarm struct {
	Count        int
	Positions    []V.Vec32
	Velocities   []V.Vec32
	RenderScales []float32

	cfg     Config
	mode    Mode
	targets []V.Vec32 //immutable cloud, swapped whole on shape change
	noise   *perlin.Perlin
	rnd     *rand.Rand

	meshScale float32
	meshRotY  float32
	color     V.Vec32
	colorTgt  V.Vec32
	elapsed   float32
}

//NewSwarm - allocates buffers sized to the target cloud. Particles start on
//their target slots with zero velocity, the random source seeds both the
//turbulence noise field and the jitter.
func NewSwarm(cfg Config, mode Mode, targets []V.Vec32, rnd *rand.Rand) *Swarm {
	count := len(targets)
	s := &Swarm{
		Count:        count,
		Positions:    make([]V.Vec32, count),
		Velocities:   make([]V.Vec32, count),
		RenderScales: make([]float32, count),
		cfg:          cfg,
		mode:         mode,
		targets:      targets,
		noise:        perlin.NewPerlin(2, 2, 3, rnd.Int63()),
		rnd:          rnd,
		meshScale:    1.0,
		color:        V.Vec32{1, 1, 1},
		colorTgt:     V.Vec32{1, 1, 1},
	}
	copy(s.Positions, targets)
	for i := range s.RenderScales {
		s.RenderScales[i] = 1.0
	}
	return s
}

//SetTargets - replaces the target cloud between frames. Position and
//velocity buffers are retained so the particles migrate smoothly to the new
//shape instead of snapping.
func (s *Swarm) SetTargets(cloud []V.Vec32) error {
	if len(cloud) != s.Count {
		return fmt.Errorf("target cloud size %d does not match particle count %d", len(cloud), s.Count)
	}
	s.targets = cloud
	return nil
}

//SetMode - switches the interaction composition mid-stream
func (s *Swarm) SetMode(mode Mode) {
	s.mode = mode
}

//SetTargetColor - externally supplied color the material eases toward
func (s *Swarm) SetTargetColor(c V.Vec32) {
	s.colorTgt = c
}

//Step - advances the whole swarm one frame. dt only drives the elapsed
//clock for the breathing and noise phases, force constants themselves are
//per frame quantities.
func (s *Swarm) Step(dt float32, hands []hand.HandMetrics, g gesture.State) {
	s.elapsed += dt

	//aggregate transform eases toward the gesture targets, never snaps
	s.meshScale = V.Lerp32(s.meshScale, g.Scale, s.cfg.Smoothing)
	s.meshRotY = V.Lerp32(s.meshRotY, g.RotationY, s.cfg.Smoothing)
	s.color = V.Lerp(s.color, s.colorTgt, s.cfg.ColorSmoothing)

	expansion := s.meshScale
	if s.mode == ModeBreath && len(hands) == 0 {
		//fallback idle animation
		expansion *= 1 + s.cfg.BreathAmplitude*float32(math.Sin(float64(s.elapsed*s.cfg.BreathFrequency)))
	}

	var attractor, repulsor V.Vec32
	hasAttractor := false
	hasRepulsor := false
	agitated := false
	if s.mode == ModeField {
		if len(hands) > 0 {
			attractor = V.Scale(hands[0].PalmPosition, s.cfg.PalmReach)
			hasAttractor = true
		}
		if len(hands) > 1 {
			repulsor = V.Scale(hands[1].PalmPosition, s.cfg.PalmReach)
			hasRepulsor = true
		}
		for _, h := range hands {
			if h.Presence && !h.IsOpen {
				agitated = true
			}
		}
	}

	damp := 1 - s.cfg.Damping
	for i := 0; i < s.Count; i++ {
		target := V.Scale(s.targets[i], expansion)
		pos := &s.Positions[i]
		vel := &s.Velocities[i]

		//spring return holds the silhouette
		pull := V.Sub(target, *pos)
		vel.Add(*pull.Scale(s.cfg.ReturnSpeed))

		if hasAttractor {
			s.pointForce(i, attractor, s.cfg.AttractorStrength, 0)
		}
		if hasRepulsor {
			s.pointForce(i, repulsor, -s.cfg.RepulsorStrength, s.cfg.RepulsorRadius)
		}
		if agitated {
			s.turbulence(i)
		}

		//unconditional damping keeps energy bounded
		vel.Scale(damp)
		pos.Add(*vel)

		//cosmetic depth falloff for the renderer
		s.RenderScales[i] = V.Clamp32(1+pos[2]*s.cfg.DepthGain, s.cfg.DepthScaleMin, 1.6)
	}
}

//pointForce - inverse square field about center. strength sign selects
//attraction vs repulsion, a positive radius bounds the effect so a repulsor
//never disturbs the far side of the cloud. The epsilon keeps a particle
//sitting on the hand position from dividing by zero.
func (s *Swarm) pointForce(i int, center V.Vec32, strength float32, radius float32) {
	d := V.Sub(center, s.Positions[i])
	d2 := V.LengthSq(d)
	if radius > 0 && d2 > radius*radius {
		return
	}
	f := strength / (d2 + s.cfg.AttractorEpsilon)
	dir := V.Normalize(d)
	s.Velocities[i].Add(V.Scale(dir, f))
}

//turbulence - perlin steered perturbation plus a small uniform kick. The
//noise field makes neighboring particles swirl coherently instead of
//sparkling as independent static.
func (s *Swarm) turbulence(i int) {
	p := s.Positions[i]
	n := s.noise.Noise3D(
		float64(p[0]*s.cfg.NoiseScale),
		float64(p[1]*s.cfg.NoiseScale),
		float64(s.elapsed)*0.5,
	)
	angle := (n + 1) * math.Pi
	kick := V.Vec32{
		float32(math.Cos(angle)),
		float32(math.Sin(angle)),
		s.rnd.Float32()*2 - 1,
	}
	s.Velocities[i].Add(V.Scale(kick, s.cfg.TurbulenceStrength))
}

//MeshScale - smoothed aggregate scale for the renderer
func (s *Swarm) MeshScale() float32 { return s.meshScale }

//MeshRotationY - smoothed aggregate rotation for the renderer
func (s *Swarm) MeshRotationY() float32 { return s.meshRotY }

//Color - current interpolated material color
func (s *Swarm) Color() V.Vec32 { return s.color }

//MeanTargetError - mean distance from each particle to its expanded target
//slot. Diagnostic for the HUD and the convergence tests.
func (s *Swarm) MeanTargetError() float32 {
	if s.Count == 0 {
		return 0
	}
	sum := float32(0.0)
	for i := 0; i < s.Count; i++ {
		target := V.Scale(s.targets[i], s.meshScale)
		sum += s.Positions[i].Distance(target)
	}
	return sum / float32(s.Count)
}
