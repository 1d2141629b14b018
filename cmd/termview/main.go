package main

//Terminal preview of the particle engine. Renders the swarm as an ASCII
//point cloud with a depth glyph ramp, driven by the synthetic gesture
//choreography or a replayed capture. Useful for tuning force constants
//over SSH where no GL context exists.
import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Vacayy/hand-controlled-3d-particles/config"
	"github.com/Vacayy/hand-controlled-3d-particles/geometry"
	"github.com/Vacayy/hand-controlled-3d-particles/gesture"
	"github.com/Vacayy/hand-controlled-3d-particles/hand"
	P "github.com/Vacayy/hand-controlled-3d-particles/particle"
	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

const aspectRatio = 2.1 //terminal cells are taller than wide

//depth ramp, near particles draw heavy glyphs
var glyphRamp = []rune(" .:-=+*#%@")

func main() {
	configPath := flag.String("config", "", "optional YAML config overlay")
	scriptPath := flag.String("script", "", "hand landmark capture to replay")
	flag.Parse()

	params, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	//a TTY has far fewer cells than the GL window has pixels
	if params.ParticleCount > 1200 {
		params.ParticleCount = 1200
	}

	var det hand.Detector
	if *scriptPath != "" {
		det, err = hand.LoadScript(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	} else {
		det = hand.NewSynthDetector()
	}

	if err := run(params, det); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(params *config.Params, det hand.Detector) error {
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	gen := geometry.NewGenerator(rnd)
	shape := geometry.ParseShape(params.Shape)
	cloud := gen.Cloud(shape, params.ParticleCount)

	mode := P.ParseMode(params.Mode)
	swarm := P.NewSwarm(params.Swarm, mode, cloud, rnd)
	swarm.SetTargetColor(V.Vec32{1.0, 0.45, 0.6})
	machine := gesture.NewMachine(params.Gesture)
	source := hand.NewSource(det, params.Hand, time.Duration(params.DetectIntervalMs)*time.Millisecond)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if err := source.Start(); err != nil {
		return err
	}
	defer source.Stop()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go pumpEvents(screen, events, quit)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Rune() == 'q':
					return nil
				case tev.Rune() >= '1' && tev.Rune() <= '5':
					shape = geometry.ShapeType(tev.Rune() - '1')
					next := gen.Cloud(shape, params.ParticleCount)
					if err := swarm.SetTargets(next); err != nil {
						return err
					}
				case tev.Rune() == 'm':
					if mode == P.ModeBreath {
						mode = P.ModeField
					} else {
						mode = P.ModeBreath
					}
					swarm.SetMode(mode)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now

			metrics := source.Latest()
			state := machine.Process(metrics)
			swarm.Step(dt, metrics, state)
			draw(screen, swarm, shape, mode, state)
		}
	}
}

//pumpEvents - forwards screen events to the frame loop until quit closes
//or the screen is finalized. PollEvent returns nil once the screen dies,
//so the goroutine never outlives the terminal session.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func draw(screen tcell.Screen, swarm *P.Swarm, shape geometry.ShapeType, mode P.Mode, state gesture.State) {
	screen.Clear()
	w, h := screen.Size()
	if w < 4 || h < 4 {
		screen.Show()
		return
	}

	color := swarm.Color()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(color[0]*255), int32(color[1]*255), int32(color[2]*255)))

	//orthographic projection, world unit sphere to the smaller screen axis.
	//Positions already carry the gesture expansion, so the framing stays
	//fixed and a held scale visibly grows the cloud.
	extent := geometry.BoundingRadius(shape) * 1.3
	if extent < 0.1 {
		extent = 0.1
	}
	unit := float32(h-2) / (2 * extent)

	rotY := swarm.MeshRotationY()
	for i := 0; i < swarm.Count; i++ {
		p := swarm.Positions[i]
		x, z := rotate(p[0], p[2], rotY)
		col := w/2 + int(x*unit*aspectRatio)
		row := h/2 - int(p[1]*unit)
		if col < 0 || col >= w || row < 1 || row >= h {
			continue
		}
		g := int((z + extent) / (2 * extent) * float32(len(glyphRamp)-1))
		if g < 0 {
			g = 0
		}
		if g >= len(glyphRamp) {
			g = len(glyphRamp) - 1
		}
		screen.SetContent(col, row, glyphRamp[g], nil, style)
	}

	interact := "idle"
	if state.IsInteracting {
		interact = "pinch"
	}
	hud := fmt.Sprintf(" %s | %s | %s | scale %.2f | err %.3f  (1-5 shape, m mode, q quit)",
		shape, mode, interact, swarm.MeshScale(), swarm.MeanTargetError())
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range hud {
		if i >= w {
			break
		}
		screen.SetContent(i, 0, r, nil, hudStyle)
	}

	screen.Show()
}

//rotate - y axis rotation in the xz plane
func rotate(x float32, z float32, angle float32) (float32, float32) {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return x*c + z*s, -x*s + z*c
}
