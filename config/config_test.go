package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestDefaultsValid(t *testing.T) {
	p := Default()
	if err := validate(p); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	params, err := Load("")
	if err != nil {
		t.Fatalf("empty path must yield defaults: %v", err)
	}
	if params.ParticleCount != p.ParticleCount || params.Shape != p.Shape {
		t.Errorf("empty path diverged from defaults: %+v", params)
	}
}

func TestOverlay(t *testing.T) {
	path := writeConfig(t, `
particle_count: 1200
shape: saturn
mode: field
gesture:
  pinch_threshold: 0.3
  scale_sensitivity: 2.0
  rotation_sensitivity: 1.0
  scale_min: 0.5
  scale_max: 2.0
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("overlay failed to load: %v", err)
	}
	if p.ParticleCount != 1200 || p.Shape != "saturn" || p.Mode != "field" {
		t.Errorf("overlay not applied: %+v", p)
	}
	if p.Gesture.PinchThreshold != 0.3 || p.Gesture.ScaleMax != 2.0 {
		t.Errorf("gesture overlay not applied: %+v", p.Gesture)
	}

	//sections the overlay never names keep their documented defaults
	if p.Swarm != Default().Swarm {
		t.Errorf("untouched swarm section drifted: %+v", p.Swarm)
	}
	if p.DetectIntervalMs != Default().DetectIntervalMs {
		t.Errorf("untouched interval drifted: %d", p.DetectIntervalMs)
	}
}

func TestInvalidRejected(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"negative count", "particle_count: -5\n"},
		{"bad mode", "mode: orbit\n"},
		{"damping out of range", "swarm:\n  damping: 1.5\n  return_speed: 0.05\n"},
		{"inverted scale clamp", "gesture:\n  pinch_threshold: 0.4\n  scale_min: 3.0\n  scale_max: 0.2\n"},
		{"pinch threshold zero", "gesture:\n  pinch_threshold: 0.0\n  scale_min: 0.2\n  scale_max: 3.0\n"},
	}
	for _, c := range cases {
		path := writeConfig(t, c.body)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: invalid config accepted", c.name)
		}
	}
}

func TestMalformedYAML(t *testing.T) {
	path := writeConfig(t, "{not yaml::")
	if _, err := Load(path); err == nil {
		t.Errorf("malformed YAML accepted")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("missing file accepted")
	}
}
