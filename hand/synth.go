package hand

import (
	"math"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Synthetic detector: generates a two hand choreography procedurally, no
//capture file needed. The loop alternates an open handed idle phase with a
//double pinch spread and twist so every gesture path gets exercised.

//SynthPose - degrees of freedom for one generated hand
type SynthPose struct {
	Center    V.Vec32 //wrist position in image space
	HandScale float32 //wrist to middle MCP distance
	PinchRel  float32 //thumb-index separation relative to hand scale
	Open      bool    //fingers extended vs curled
}

//SynthLandmarks - builds a 21 point landmark set realizing the pose.
//Layout is schematic, only the indices the extractor reads are meaningful.
func SynthLandmarks(p SynthPose) []V.Vec32 {
	lm := make([]V.Vec32, LandmarkCount)
	for i := range lm {
		lm[i] = p.Center
	}
	lm[LmMiddleMCP] = V.Add(p.Center, V.Vec32{0, -p.HandScale, 0})

	reach := p.HandScale * 0.9 //curled
	if p.Open {
		reach = p.HandScale * 1.6
	}
	for n, tip := range fingertips {
		angle := float64(n-2) * 0.3
		dir := V.Vec32{float32(math.Sin(angle)), -float32(math.Cos(angle)), 0}
		lm[tip] = V.Add(p.Center, V.Scale(dir, reach))
	}

	//overwrite thumb and index so the pinch separation is exact
	gap := p.PinchRel * p.HandScale
	lm[LmThumbTip] = V.Add(p.Center, V.Vec32{-gap / 2, -reach, 0})
	lm[LmIndexTip] = V.Add(p.Center, V.Vec32{gap / 2, -reach, 0})

	return lm
}

//SynthDetector implements Detector with a looping choreography
type SynthDetector struct {
	t float32
}

func NewSynthDetector() *SynthDetector {
	return &SynthDetector{}
}

//Detect - advances the choreography one tick
func (d *SynthDetector) Detect() ([][]V.Vec32, error) {
	d.t += 0.02
	phase := math.Mod(float64(d.t), 8.0)

	switch {
	case phase < 2.0:
		//no hands, idle breathing
		return [][]V.Vec32{}, nil
	case phase < 4.0:
		//two open hands drifting, no pinch
		left := SynthPose{Center: V.Vec32{0.35, 0.5, 0}, HandScale: 0.3, PinchRel: 1.4, Open: true}
		right := SynthPose{Center: V.Vec32{0.65, 0.5, 0}, HandScale: 0.3, PinchRel: 1.4, Open: true}
		return [][]V.Vec32{SynthLandmarks(left), SynthLandmarks(right)}, nil
	default:
		//double pinch, hands spreading apart and twisting in depth
		s := float32(math.Sin((phase - 4.0) * math.Pi / 4.0))
		spread := 0.12 * s
		left := SynthPose{Center: V.Vec32{0.35 - spread, 0.5, 0}, HandScale: 0.3 - 0.05*s, PinchRel: 0.2, Open: false}
		right := SynthPose{Center: V.Vec32{0.65 + spread, 0.5, 0}, HandScale: 0.3 + 0.05*s, PinchRel: 0.2, Open: false}
		return [][]V.Vec32{SynthLandmarks(left), SynthLandmarks(right)}, nil
	}
}

func (d *SynthDetector) Close() error { return nil }
