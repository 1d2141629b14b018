package gesture

import (
	"sort"

	"github.com/Vacayy/hand-controlled-3d-particles/hand"
	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Two hand gesture machine. A held double pinch (both hands pinched below
//threshold) drives continuous scale and rotation deltas from the relative
//motion of the palms. Control is incremental: baselines snapshot on entry
//and update every frame, so releasing and regrabbing never jumps the mesh.

//Config - gesture tunables
type Config struct {
	PinchThreshold      float32 `yaml:"pinch_threshold"`      //double pinch engages below this
	ScaleSensitivity    float32 `yaml:"scale_sensitivity"`    //inter-hand distance delta to scale delta
	RotationSensitivity float32 `yaml:"rotation_sensitivity"` //depth delta to rotation delta
	ScaleMin            float32 `yaml:"scale_min"`
	ScaleMax            float32 `yaml:"scale_max"`
}

func DefaultConfig() Config {
	return Config{
		PinchThreshold:      0.4,
		ScaleSensitivity:    1.6,
		RotationSensitivity: 2.4,
		ScaleMin:            0.2,
		ScaleMax:            3.0,
	}
}

//State - machine output consumed by the swarm every frame
type State struct {
	Scale         float32
	RotationY     float32 //radians, unbounded, the renderer wraps
	IsInteracting bool
}

//Machine holds the interaction state across frames. Owned by the simulation
//thread, not safe for concurrent use.
type Machine struct {
	cfg Config

	scale         float32
	rotationY     float32
	prevDistance  float32
	prevDepth     float32
	isInteracting bool
}

func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg, scale: 1.0}
}

//Reset - back to idle with neutral scale and rotation
func (m *Machine) Reset() {
	m.scale = 1.0
	m.rotationY = 0
	m.isInteracting = false
}

//Process - one frame of hand metrics to the current gesture state.
//The transition frame into Interacting only snapshots baselines, scale and
//rotation change starting the following frame. The machine drops back to
//idle the instant the double pinch condition fails.
func (m *Machine) Process(hands []hand.HandMetrics) State {
	if !doublePinch(m.cfg, hands) {
		m.isInteracting = false
		return m.state()
	}

	left, right := orderHands(hands)
	distance := V.DistanceXY(left.PalmPosition, right.PalmPosition)
	depth := right.PalmPosition[2] - left.PalmPosition[2]

	if !m.isInteracting {
		//entry frame: baseline only, no delta this frame
		m.isInteracting = true
		m.prevDistance = distance
		m.prevDepth = depth
		return m.state()
	}

	m.scale += (distance - m.prevDistance) * m.cfg.ScaleSensitivity
	m.scale = V.Clamp32(m.scale, m.cfg.ScaleMin, m.cfg.ScaleMax)

	//right hand pulled closer than left spins negative about y
	m.rotationY -= (depth - m.prevDepth) * m.cfg.RotationSensitivity

	m.prevDistance = distance
	m.prevDepth = depth
	return m.state()
}

func (m *Machine) state() State {
	return State{Scale: m.scale, RotationY: m.rotationY, IsInteracting: m.isInteracting}
}

func doublePinch(cfg Config, hands []hand.HandMetrics) bool {
	if len(hands) != 2 {
		return false
	}
	return hands[0].PinchDistance < cfg.PinchThreshold &&
		hands[1].PinchDistance < cfg.PinchThreshold
}

//orderHands - left and right by ascending palm x. The sort is stable so two
//hands reporting an identical x keep the detector emission order, which
//makes the tie deterministic.
func orderHands(hands []hand.HandMetrics) (hand.HandMetrics, hand.HandMetrics) {
	pair := [2]hand.HandMetrics{hands[0], hands[1]}
	sort.SliceStable(pair[:], func(i, j int) bool {
		return pair[i].PalmPosition[0] < pair[j].PalmPosition[0]
	})
	return pair[0], pair[1]
}
