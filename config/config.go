package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Vacayy/hand-controlled-3d-particles/gesture"
	"github.com/Vacayy/hand-controlled-3d-particles/hand"
	"github.com/Vacayy/hand-controlled-3d-particles/particle"
)

//Runtime configuration. Defaults cover everything, a YAML file overlays the
//subset it names. Zero values in the file fall back to the default so old
//configs keep loading as knobs are added.

//Params - full engine configuration
type Params struct {
	ParticleCount int    `yaml:"particle_count"`
	Shape         string `yaml:"shape"` //initial silhouette
	Mode          string `yaml:"mode"`  //"breath" or "field"
	Seed          int64  `yaml:"seed"`  //0 means time seeded

	DetectIntervalMs int `yaml:"detect_interval_ms"` //vision poll cadence

	Hand    hand.ExtractorConfig `yaml:"hand"`
	Gesture gesture.Config       `yaml:"gesture"`
	Swarm   particle.Config      `yaml:"swarm"`
}

//Default - documented baseline tuning
func Default() *Params {
	return &Params{
		ParticleCount:    5000,
		Shape:            "heart",
		Mode:             "breath",
		Seed:             0,
		DetectIntervalMs: 33,
		Hand:             hand.DefaultExtractorConfig(),
		Gesture:          gesture.DefaultConfig(),
		Swarm:            particle.DefaultConfig(),
	}
}

//Load - reads a YAML overlay on top of the defaults and validates the result
func Load(path string) (*Params, error) {
	params := Default()
	if path == "" {
		return params, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	applyDefaults(params)
	if err := validate(params); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return params, nil
}

//applyDefaults - re-fills fields an overlay zeroed out
func applyDefaults(p *Params) {
	def := Default()
	if p.ParticleCount == 0 {
		p.ParticleCount = def.ParticleCount
	}
	if p.Shape == "" {
		p.Shape = def.Shape
	}
	if p.Mode == "" {
		p.Mode = def.Mode
	}
	if p.DetectIntervalMs == 0 {
		p.DetectIntervalMs = def.DetectIntervalMs
	}
	if p.Hand == (hand.ExtractorConfig{}) {
		p.Hand = def.Hand
	}
	if p.Gesture == (gesture.Config{}) {
		p.Gesture = def.Gesture
	}
	if p.Swarm == (particle.Config{}) {
		p.Swarm = def.Swarm
	}
}

func validate(p *Params) error {
	if p.ParticleCount < 1 {
		return fmt.Errorf("particle_count must be positive, got %d", p.ParticleCount)
	}
	if p.Swarm.Damping <= 0 || p.Swarm.Damping >= 1 {
		return fmt.Errorf("swarm damping must be in (0,1), got %f", p.Swarm.Damping)
	}
	if p.Swarm.ReturnSpeed <= 0 || p.Swarm.ReturnSpeed >= 1 {
		return fmt.Errorf("swarm return_speed must be in (0,1), got %f", p.Swarm.ReturnSpeed)
	}
	if p.Gesture.ScaleMin >= p.Gesture.ScaleMax {
		return fmt.Errorf("gesture scale clamp inverted: [%f, %f]", p.Gesture.ScaleMin, p.Gesture.ScaleMax)
	}
	if p.Gesture.PinchThreshold <= 0 || p.Gesture.PinchThreshold > 1 {
		return fmt.Errorf("gesture pinch_threshold must be in (0,1], got %f", p.Gesture.PinchThreshold)
	}
	if p.Mode != "breath" && p.Mode != "field" {
		return fmt.Errorf("mode must be breath or field, got %q", p.Mode)
	}
	return nil
}
