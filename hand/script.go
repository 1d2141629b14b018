package hand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Scripted detector: replays recorded landmark frames from a YAML capture
//file, looping forever. Stands in for the camera pipeline in demos and
//tests so the whole engine runs without a webcam or an inference model.

//ScriptFile - YAML schema of a capture
type ScriptFile struct {
	Frames []ScriptFrame `yaml:"frames"`
}

//ScriptFrame - one detector result, zero or more hands of 21 [x,y,z] rows
type ScriptFrame struct {
	Hands [][][]float32 `yaml:"hands"`
}

//ScriptedDetector implements Detector over a fixed frame sequence
type ScriptedDetector struct {
	frames [][][]V.Vec32
	cursor int
}

//LoadScript - reads and validates a capture file
func LoadScript(path string) (*ScriptedDetector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hand script %s: %w", path, err)
	}
	var file ScriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse hand script %s: %w", path, err)
	}
	return NewScriptedDetector(&file)
}

//NewScriptedDetector - builds the detector from a parsed script
func NewScriptedDetector(file *ScriptFile) (*ScriptedDetector, error) {
	if len(file.Frames) == 0 {
		return nil, fmt.Errorf("hand script has no frames")
	}
	frames := make([][][]V.Vec32, len(file.Frames))
	for i, f := range file.Frames {
		hands := make([][]V.Vec32, 0, len(f.Hands))
		for h, lm := range f.Hands {
			if len(lm) != LandmarkCount {
				return nil, fmt.Errorf("frame %d hand %d: want %d landmarks, got %d", i, h, LandmarkCount, len(lm))
			}
			pts := make([]V.Vec32, LandmarkCount)
			for j, p := range lm {
				if len(p) != 3 {
					return nil, fmt.Errorf("frame %d hand %d landmark %d: want [x y z]", i, h, j)
				}
				pts[j] = V.Vec32{p[0], p[1], p[2]}
			}
			hands = append(hands, pts)
		}
		frames[i] = hands
	}
	return &ScriptedDetector{frames: frames}, nil
}

//Detect - next scripted frame, wrapping at the end
func (d *ScriptedDetector) Detect() ([][]V.Vec32, error) {
	frame := d.frames[d.cursor]
	d.cursor = (d.cursor + 1) % len(d.frames)
	return frame, nil
}

func (d *ScriptedDetector) Close() error { return nil }
