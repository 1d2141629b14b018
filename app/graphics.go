package app

//OpenGL windowing calls and structs
import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"

	P "github.com/Vacayy/hand-controlled-3d-particles/particle"
	U "github.com/Vacayy/hand-controlled-3d-particles/utils"
	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

type AppWindow struct {
	Width  int
	Height int
	Name   string
}

//RenderContext - GL handles and shader uniform locations for the point
//cloud program
type RenderContext struct {
	PrgID        uint32
	VAO          uint32
	VBO          [2]uint32 //positions, render scales
	Model        *V.Mat4
	View         *V.Mat4
	Proj         *V.Mat4
	RotY         *V.Mat3
	ModelLoc     int32
	ViewLoc      int32
	ProjLoc      int32
	RotYLoc      int32
	ColorLoc     int32
	PointSizeLoc int32
	GLFWindow    *glfw.Window
}

//Input state shared with the GLFW key callback. Callbacks fire inside
//PollEvents on the render thread so plain variables are safe here.
var globalTrans *V.Vec32
var pendingShape int = -1
var pendingColor bool
var pendingMode bool
var shouldQuit bool

const vertexShaderSRC = `#version 410
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat3 rotY;
uniform float pointSize;
layout (location = 0) in vec3 aPos;
layout (location = 1) in float aScale;
void main() {
	vec3 world = rotY * aPos;
	gl_Position = projection * view * model * vec4(world, 1.0);
	gl_PointSize = pointSize * aScale;
}
` + "\x00"

const fragmentShaderSRC = `#version 410
uniform vec3 color;
out vec4 fragColor;
void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	float r2 = dot(d, d);
	if (r2 > 0.25) discard;
	float alpha = 1.0 - r2 * 4.0;
	fragColor = vec4(color, alpha * 0.85);
}
` + "\x00"

//InitGLFW initializes glfw and returns a window to use
func InitGLFW(a *AppWindow) *glfw.Window {
	if err := glfw.Init(); err != nil {
		return nil
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(a.Width, a.Height, a.Name, nil, nil)
	if checkError(err) {
		return nil
	}
	window.MakeContextCurrent()
	window.SetKeyCallback(ProcessInput)

	return window
}

//InitOpenGL compiles the point program and binds the swarm buffers
func InitOpenGL(swarm *P.Swarm) (*RenderContext, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	ctx := RenderContext{}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)

	vtxSHO, err := compileShader(vertexShaderSRC, gl.VERTEX_SHADER)
	if checkError(err) {
		return nil, err
	}
	frgSHO, err := compileShader(fragmentShaderSRC, gl.FRAGMENT_SHADER)
	if checkError(err) {
		return nil, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vtxSHO)
	gl.AttachShader(prog, frgSHO)
	gl.LinkProgram(prog)
	ctx.PrgID = prog

	n := float32(1.0)
	f := float32(100.0)
	r := float32(1.0)
	t := float32(0.6)

	globalTrans = &V.Vec32{0, 0, 0}
	model := V.Identity4()
	view := V.Identity4()
	view.Translation(&V.Vec32{0, 0, -4.0}) //camera back from the cloud
	proj := V.ProjectionMatrix(-r, r, t, -t, n, f)
	rotY := V.Identity3()

	ctx.Model = &model
	ctx.View = &view
	ctx.Proj = &proj
	ctx.RotY = &rotY

	gl.UseProgram(prog)
	ctx.ModelLoc = gl.GetUniformLocation(prog, gl.Str("model\x00"))
	ctx.ViewLoc = gl.GetUniformLocation(prog, gl.Str("view\x00"))
	ctx.ProjLoc = gl.GetUniformLocation(prog, gl.Str("projection\x00"))
	ctx.RotYLoc = gl.GetUniformLocation(prog, gl.Str("rotY\x00"))
	ctx.ColorLoc = gl.GetUniformLocation(prog, gl.Str("color\x00"))
	ctx.PointSizeLoc = gl.GetUniformLocation(prog, gl.Str("pointSize\x00"))

	MakeVAO(swarm, &ctx)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return &ctx, nil
}

//MakeVAO binds position and scale buffers for the swarm
func MakeVAO(swarm *P.Swarm, ctx *RenderContext) {
	gl.GenBuffers(2, &ctx.VBO[0])
	gl.GenVertexArrays(1, &ctx.VAO)
	gl.BindVertexArray(ctx.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.VBO[0])
	gl.BufferData(gl.ARRAY_BUFFER, swarm.Count*4*3, gl.Ptr(&swarm.Positions[0][0]), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, nil)

	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.VBO[1])
	gl.BufferData(gl.ARRAY_BUFFER, swarm.Count*4, gl.Ptr(&swarm.RenderScales[0]), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, 0, nil)
}

//Draw streams the frame's particle state and renders the point cloud
func Draw(swarm *P.Swarm, ctx *RenderContext, pointSize float32) {
	gl.ClearColor(0.04, 0.04, 0.07, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx.View.Translation(globalTrans)
	globalTrans.Clear()
	ctx.RotY.SetRotationY(swarm.MeshRotationY())

	color := swarm.Color()
	gl.UseProgram(ctx.PrgID)
	gl.UniformMatrix4fv(ctx.ModelLoc, 1, false, &ctx.Model[0])
	gl.UniformMatrix4fv(ctx.ViewLoc, 1, false, &ctx.View[0])
	gl.UniformMatrix4fv(ctx.ProjLoc, 1, false, &ctx.Proj[0])
	gl.UniformMatrix3fv(ctx.RotYLoc, 1, false, &ctx.RotY[0])
	gl.Uniform3f(ctx.ColorLoc, color[0], color[1], color[2])
	gl.Uniform1f(ctx.PointSizeLoc, pointSize)

	gl.BindVertexArray(ctx.VAO)

	//positions stream through a mapped buffer
	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.VBO[0])
	ptr := gl.MapBuffer(gl.ARRAY_BUFFER, gl.WRITE_ONLY)
	if ptr != nil {
		if err := U.TransferPositionData(ptr, swarm.Positions, swarm.Count); err != nil {
			fmt.Printf("position stream failed: %v\n", err)
		}
		gl.UnmapBuffer(gl.ARRAY_BUFFER)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.VBO[1])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, swarm.Count*4, gl.Ptr(&swarm.RenderScales[0]))

	gl.DrawArrays(gl.POINTS, 0, int32(swarm.Count))

	glfw.PollEvents()
	ctx.GLFWindow.SwapBuffers()
}

func checkError(err error) bool {
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		return true
	}
	return false
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("GLSL shader failed to compile: %v", infoLog)
	}
	free()
	return shader, nil
}

//ProcessInput - key callback. Digits pick a silhouette, C cycles the
//palette, M toggles the interaction mode, WASD and arrows move the camera.
func ProcessInput(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	cameraSpeed := float32(0.05)

	switch key {
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5:
		pendingShape = int(key - glfw.Key1)
	case glfw.KeyC:
		pendingColor = true
	case glfw.KeyM:
		pendingMode = true
	case glfw.KeyEscape, glfw.KeyQ:
		shouldQuit = true
	case glfw.KeyW:
		globalTrans.Add(V.Vec32{0, 0, cameraSpeed})
	case glfw.KeyS:
		globalTrans.Add(V.Vec32{0, 0, -cameraSpeed})
	case glfw.KeyA:
		globalTrans.Add(V.Vec32{cameraSpeed, 0, 0})
	case glfw.KeyD:
		globalTrans.Add(V.Vec32{-cameraSpeed, 0, 0})
	case glfw.KeyUp:
		globalTrans.Add(V.Vec32{0, -cameraSpeed, 0})
	case glfw.KeyDown:
		globalTrans.Add(V.Vec32{0, cameraSpeed, 0})
	}
}
