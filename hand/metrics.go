package hand

import (
	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Hand landmark geometry reduction. A detector emits 21 landmarks per hand in
//normalized image space (x,y in [0,1], z relative depth). This package folds
//each landmark set into the HandMetrics record the gesture machine and the
//swarm consume. Extraction has no state, every frame stands alone.

//Landmark indices per the standard 21 point hand topology
const (
	LmWrist     = 0
	LmThumbTip  = 4
	LmIndexTip  = 8
	LmMiddleMCP = 9
	LmMiddleTip = 12
	LmRingTip   = 16
	LmPinkyTip  = 20

	LandmarkCount = 21
)

var fingertips = [5]int{LmThumbTip, LmIndexTip, LmMiddleTip, LmRingTip, LmPinkyTip}

//MaxHands - extra detected hands beyond two are dropped
const MaxHands = 2

//HandMetrics - normalized interaction signals for one detected hand,
//recomputed every frame, never persisted
type HandMetrics struct {
	IsOpen        bool
	PinchDistance float32 //0 pinched, 1 open
	PalmPosition  V.Vec32 //world-like [-1,1] space, x mirrored
	Presence      bool
}

//Extractor config. The hand scale (wrist to middle finger base) is the
//person and distance invariant normalization unit for every threshold.
type ExtractorConfig struct {
	ScaleFloor    float32 `yaml:"scale_floor"`    //below this the hand carries no signal
	PinchLow      float32 `yaml:"pinch_low"`      //relative pinch mapped to 0
	PinchHigh     float32 `yaml:"pinch_high"`     //relative pinch mapped to 1
	OpenThreshold float32 `yaml:"open_threshold"` //mean fingertip reach vs hand scale
	DepthScale    float32 `yaml:"depth_scale"`    //hand scale to palm z gain
	DepthRest     float32 `yaml:"depth_rest"`     //hand scale at z = 0
}

//DefaultExtractorConfig - tuned against a mirrored webcam feed
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		ScaleFloor:    1e-4,
		PinchLow:      0.15,
		PinchHigh:     1.5,
		OpenThreshold: 1.2,
		DepthScale:    4.0,
		DepthRest:     0.35,
	}
}

//Extract - one landmark set to one HandMetrics. The bool result is false
//when the set is malformed or degenerate, callers must then omit the hand
//entirely rather than publish a partial record.
func Extract(cfg ExtractorConfig, landmarks []V.Vec32) (HandMetrics, bool) {
	if len(landmarks) != LandmarkCount {
		return HandMetrics{}, false
	}

	wrist := landmarks[LmWrist]
	handScale := wrist.Distance(landmarks[LmMiddleMCP])
	if handScale < cfg.ScaleFloor {
		//degenerate geometry, normalization would blow up
		return HandMetrics{}, false
	}

	rawPinch := landmarks[LmThumbTip].Distance(landmarks[LmIndexTip])
	relative := rawPinch / handScale
	pinch := V.Clamp32((relative-cfg.PinchLow)/(cfg.PinchHigh-cfg.PinchLow), 0.0, 1.0)

	reach := float32(0.0)
	for _, tip := range fingertips {
		reach += wrist.Distance(landmarks[tip])
	}
	reach /= float32(len(fingertips))

	palm := V.Vec32{
		-(wrist[0]*2 - 1), //mirror horizontal for selfie view
		1 - wrist[1]*2,    //image y grows downward
		V.Clamp32((handScale-cfg.DepthRest)*cfg.DepthScale, -1.0, 1.0),
	}

	return HandMetrics{
		IsOpen:        reach > handScale*cfg.OpenThreshold,
		PinchDistance: pinch,
		PalmPosition:  palm,
		Presence:      true,
	}, true
}

//ExtractAll - reduces every detected hand, order preserved from the
//detector. Malformed hands drop out silently, hands past MaxHands are
//ignored. Absence is an empty slice, never a Presence=false record.
func ExtractAll(cfg ExtractorConfig, hands [][]V.Vec32) []HandMetrics {
	out := make([]HandMetrics, 0, MaxHands)
	for _, lm := range hands {
		if len(out) == MaxHands {
			break
		}
		if m, ok := Extract(cfg, lm); ok {
			out = append(out, m)
		}
	}
	return out
}
