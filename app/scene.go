package app

//Composes the vision source, gesture machine and swarm into the render
//loop. The whole simulation step runs once per frame on this thread, the
//detector goroutine only ever touches the most recent value slot.
import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.2/glfw"

	"github.com/Vacayy/hand-controlled-3d-particles/config"
	"github.com/Vacayy/hand-controlled-3d-particles/geometry"
	"github.com/Vacayy/hand-controlled-3d-particles/gesture"
	"github.com/Vacayy/hand-controlled-3d-particles/hand"
	P "github.com/Vacayy/hand-controlled-3d-particles/particle"
	U "github.com/Vacayy/hand-controlled-3d-particles/utils"
	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//WorldScale - generated clouds are roughly unit sized, this spreads them to
//camera framing
const WorldScale = 1.0

//BasePointSize - pixels before the per particle depth scale
const BasePointSize = 3.0

//Palette - colors the C key cycles through, eased into the material
var Palette = []V.Vec32{
	{1.0, 0.35, 0.5}, //rose
	{1.0, 0.85, 0.3}, //gold
	{0.45, 0.75, 1.0}, //ice
	{0.6, 1.0, 0.55}, //mint
	{0.9, 0.9, 0.95}, //white
}

//SwarmRenderer - scene graph object owning the engine components for the
//lifetime of the window
type SwarmRenderer struct {
	Params  *config.Params
	Swarm   *P.Swarm
	Machine *gesture.Machine
	Source  *hand.Source
	Gen     *geometry.Generator
	Ctx     *RenderContext

	shape    geometry.ShapeType
	mode     P.Mode
	colorIdx int
	lastTime time.Time
}

//RenderSwarmGL - builds every component from params and runs the GL loop
//until the window closes. det is the vision collaborator, swap in a
//scripted or synthetic detector to run without a camera.
func RenderSwarmGL(params *config.Params, det hand.Detector) error {
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	gen := geometry.NewGenerator(rnd)
	shape := geometry.ParseShape(params.Shape)
	cloud := gen.Cloud(shape, params.ParticleCount)
	U.ScalePositions(cloud, V.Vec32{0, 0, 0}, WorldScale)

	mode := P.ParseMode(params.Mode)
	swarm := P.NewSwarm(params.Swarm, mode, cloud, rnd)
	swarm.SetTargetColor(Palette[0])
	machine := gesture.NewMachine(params.Gesture)
	source := hand.NewSource(det, params.Hand, time.Duration(params.DetectIntervalMs)*time.Millisecond)

	renderer := SwarmRenderer{
		Params:  params,
		Swarm:   swarm,
		Machine: machine,
		Source:  source,
		Gen:     gen,
		shape:   shape,
		mode:    mode,
	}

	//GLFW and all GL calls stay locked to this thread
	runtime.LockOSThread()
	window := InitGLFW(&AppWindow{1280, 800, "hand controlled particles"})
	if window == nil {
		return fmt.Errorf("could not initiate GLFW context window")
	}
	defer glfw.Terminate()

	ctx, err := InitOpenGL(swarm)
	if checkError(err) {
		return err
	}
	ctx.GLFWindow = window
	renderer.Ctx = ctx

	if err := source.Start(); err != nil {
		return err
	}
	defer source.Stop()

	renderer.Run()
	return nil
}

//Run - main frame loop
func (r *SwarmRenderer) Run() {
	r.lastTime = time.Now()
	for !r.Ctx.GLFWindow.ShouldClose() && !shouldQuit {
		now := time.Now()
		dt := float32(now.Sub(r.lastTime).Seconds())
		r.lastTime = now

		r.applyPendingUI()

		metrics := r.Source.Latest()
		state := r.Machine.Process(metrics)
		r.Swarm.Step(dt, metrics, state)

		Draw(r.Swarm, r.Ctx, BasePointSize)
	}
}

//applyPendingUI - folds key callback requests into the engine between
//frames so target cloud swaps stay atomic for the simulation
func (r *SwarmRenderer) applyPendingUI() {
	if pendingShape >= 0 {
		shape := geometry.ShapeType(pendingShape)
		pendingShape = -1
		if shape != r.shape {
			cloud := r.Gen.Cloud(shape, r.Params.ParticleCount)
			U.ScalePositions(cloud, V.Vec32{0, 0, 0}, WorldScale)
			if err := r.Swarm.SetTargets(cloud); err != nil {
				fmt.Printf("shape change rejected: %v\n", err)
			} else {
				r.shape = shape
				fmt.Printf("shape: %s\n", shape)
			}
		}
	}
	if pendingColor {
		pendingColor = false
		r.colorIdx = (r.colorIdx + 1) % len(Palette)
		r.Swarm.SetTargetColor(Palette[r.colorIdx])
	}
	if pendingMode {
		pendingMode = false
		if r.mode == P.ModeBreath {
			r.mode = P.ModeField
		} else {
			r.mode = P.ModeBreath
		}
		r.Swarm.SetMode(r.mode)
		fmt.Printf("interaction mode: %s\n", r.mode)
	}
}
