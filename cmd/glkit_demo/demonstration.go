// This file is part of GLKit.
//
// GLKit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GLKit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GLKit.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/glkit/linear"
	"github.com/jetsetilly/glkit/shader"
)

// stride of the interleaved vertex buffer: position and normal, three
// float32 values each.
const vertexStride = 24

type demonstration struct {
	window    *sdl.Window
	glContext sdl.GLContext

	width  int32
	height int32

	running bool

	camPosition linear.Vec3
	camVelocity linear.Vec3
	camRotation linear.Vec2
	sunRotation linear.Vec2

	dragCamRotation bool
	dragSunRotation bool
	prevCamRotation linear.Vec2
	prevSunRotation linear.Vec2
	prevX           int32
	prevY           int32
	currX           int32
	currY           int32

	drv     shader.Driver
	program uint32
	vao     uint32
	vbo     uint32

	// uniform locations
	projection   int32
	view         int32
	normalMatrix int32
	light        int32
}

// newDemonstration is the preferred method of initialisation for the
// demonstration type. It creates an SDL window with an OpenGL 3.2 core
// context, made current on the calling thread.
func newDemonstration(title string, width int32, height int32) (*demonstration, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	dmn := &demonstration{
		window: window,
		width:  width,
		height: height,
		drv:    shader.OpenGL(),

		// the camera starts a short distance from the cube with the light
		// directly overhead
		camPosition: linear.Vec3{0, 0, 3},
		sunRotation: linear.Vec2{-90, 0},
	}

	dmn.glContext, err = window.GLCreateContext()
	if err != nil {
		dmn.destroy()
		return nil, fmt.Errorf("failed to create OpenGL context: %v", err)
	}

	err = window.GLMakeCurrent(dmn.glContext)
	if err != nil {
		dmn.destroy()
		return nil, fmt.Errorf("failed to set current OpenGL context: %v", err)
	}

	err = gl.Init()
	if err != nil {
		dmn.destroy()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	_ = sdl.GLSetSwapInterval(1)

	dmn.running = true

	return dmn, nil
}

// destroy cleans up the resources.
func (dmn *demonstration) destroy() {
	if dmn.program != 0 {
		dmn.drv.DeleteProgram(dmn.program)
		dmn.program = 0
	}
	if dmn.vao != 0 {
		gl.DeleteBuffers(1, &dmn.vbo)
		gl.DeleteVertexArrays(1, &dmn.vao)
		dmn.vao = 0
	}
	if dmn.glContext != nil {
		sdl.GLDeleteContext(dmn.glContext)
		dmn.glContext = nil
	}
	if dmn.window != nil {
		_ = dmn.window.Destroy()
		dmn.window = nil
	}
	sdl.Quit()
}

// setup builds the shader program from the two named source files and
// prepares the cube geometry.
func (dmn *demonstration) setup(vertFilename string, fragFilename string) error {
	pln := shader.NewPipeline(dmn.drv)

	dmn.program = pln.BuildProgram(vertFilename, fragFilename)
	if dmn.program == 0 {
		return fmt.Errorf("failed to build shader program")
	}

	gl.UseProgram(dmn.program)
	dmn.projection = gl.GetUniformLocation(dmn.program, gl.Str("Projection"+"\x00"))
	dmn.view = gl.GetUniformLocation(dmn.program, gl.Str("View"+"\x00"))
	dmn.normalMatrix = gl.GetUniformLocation(dmn.program, gl.Str("NormalMatrix"+"\x00"))
	dmn.light = gl.GetUniformLocation(dmn.program, gl.Str("Light"+"\x00"))

	vertices := cubeVertices()

	gl.GenVertexArrays(1, &dmn.vao)
	gl.BindVertexArray(dmn.vao)
	gl.GenBuffers(1, &dmn.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, dmn.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	position := gl.GetAttribLocation(dmn.program, gl.Str("Position"+"\x00"))
	normal := gl.GetAttribLocation(dmn.program, gl.Str("Normal"+"\x00"))
	gl.EnableVertexAttribArray(uint32(position))
	gl.VertexAttribPointerWithOffset(uint32(position), 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(uint32(normal))
	gl.VertexAttribPointerWithOffset(uint32(normal), 3, gl.FLOAT, false, vertexStride, 12)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	shader.CheckError(dmn.drv)

	return nil
}

// run dispatches window events until the window is closed.
func (dmn *demonstration) run() {
	for dmn.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			dmn.processEvent(event)
		}
		dmn.step()
		dmn.draw()
		dmn.window.GLSwap()
	}
}

func (dmn *demonstration) processEvent(event sdl.Event) {
	switch event.GetType() {
	case sdl.QUIT:
		dmn.running = false
	case sdl.MOUSEBUTTONDOWN:
		buttonEvent := event.(*sdl.MouseButtonEvent)
		dmn.button(buttonEvent.Button, true)
	case sdl.MOUSEBUTTONUP:
		buttonEvent := event.(*sdl.MouseButtonEvent)
		dmn.button(buttonEvent.Button, false)
	case sdl.MOUSEMOTION:
		motionEvent := event.(*sdl.MouseMotionEvent)
		dmn.motion(motionEvent.X, motionEvent.Y)
	case sdl.KEYDOWN:
		keyEvent := event.(*sdl.KeyboardEvent)
		if keyEvent.Repeat == 0 {
			dmn.key(keyEvent.Keysym.Scancode, true)
		}
	case sdl.KEYUP:
		keyEvent := event.(*sdl.KeyboardEvent)
		if keyEvent.Repeat == 0 {
			dmn.key(keyEvent.Keysym.Scancode, false)
		}
	}
}

// button handles a mouse button press or release.
func (dmn *demonstration) button(button uint8, down bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		dmn.dragCamRotation = down
		dmn.prevCamRotation = dmn.camRotation
	case sdl.BUTTON_RIGHT:
		dmn.dragSunRotation = down
		dmn.prevSunRotation = dmn.sunRotation
	}
	dmn.prevX = dmn.currX
	dmn.prevY = dmn.currY
}

// motion handles mouse pointer motion, updating whichever rotation is being
// dragged. pitch is clamped to straight up/down and heading wraps around.
func (dmn *demonstration) motion(x int32, y int32) {
	dx := float32(x-dmn.prevX) / float32(dmn.height)
	dy := float32(y-dmn.prevY) / float32(dmn.height)

	if dmn.dragCamRotation {
		dmn.camRotation[0] = clampPitch(dmn.prevCamRotation[0] + 90*dy)
		dmn.camRotation[1] = wrapHeading(dmn.prevCamRotation[1] + 180*dx)
	}
	if dmn.dragSunRotation {
		dmn.sunRotation[0] = clampPitch(dmn.prevSunRotation[0] + 90*dy)
		dmn.sunRotation[1] = wrapHeading(dmn.prevSunRotation[1] + 180*dx)
	}

	dmn.currX = x
	dmn.currY = y
}

func clampPitch(pitch float32) float32 {
	if pitch > 90 {
		return 90
	}
	if pitch < -90 {
		return -90
	}
	return pitch
}

func wrapHeading(heading float32) float32 {
	if heading > 180 {
		return heading - 360
	}
	if heading < -180 {
		return heading + 360
	}
	return heading
}

// key handles a key press or release, accumulating the camera velocity.
func (dmn *demonstration) key(key sdl.Scancode, down bool) {
	var direction float32 = 1
	if !down {
		direction = -1
	}

	switch key {
	case sdl.SCANCODE_A:
		dmn.camVelocity[0] -= direction
	case sdl.SCANCODE_D:
		dmn.camVelocity[0] += direction
	case sdl.SCANCODE_C:
		dmn.camVelocity[1] -= direction
	case sdl.SCANCODE_SPACE:
		dmn.camVelocity[1] += direction
	case sdl.SCANCODE_W:
		dmn.camVelocity[2] -= direction
	case sdl.SCANCODE_S:
		dmn.camVelocity[2] += direction
	}
}

// step applies the camera velocity, in view space, to the camera position.
func (dmn *demonstration) step() {
	rx := linear.ToRadians(dmn.camRotation[0])
	ry := linear.ToRadians(dmn.camRotation[1])

	// the view transform is rigid so its inverse can be built directly from
	// the camera parameters
	inv := linear.Translation(dmn.camPosition).
		Mul(linear.YRotation(-ry)).
		Mul(linear.XRotation(-rx))

	n := linear.Normal(inv)
	dmn.camPosition = dmn.camPosition.Add(n.MulVec3(dmn.camVelocity.Div(30)))
}

// projectionMatrix returns the current projection matrix.
func (dmn *demonstration) projectionMatrix() linear.Mat4 {
	aspect := float32(dmn.width) / float32(dmn.height)
	return linear.Perspective(linear.ToRadians(60), aspect, 0.1, 100)
}

// viewMatrix returns the current view matrix.
func (dmn *demonstration) viewMatrix() linear.Mat4 {
	return linear.XRotation(linear.ToRadians(dmn.camRotation[0])).
		Mul(linear.YRotation(linear.ToRadians(dmn.camRotation[1]))).
		Mul(linear.Translation(dmn.camPosition.Neg()))
}

// lightVector returns the current light direction.
func (dmn *demonstration) lightVector() linear.Vec4 {
	return linear.XRotation(linear.ToRadians(dmn.sunRotation[0])).
		Mul(linear.YRotation(linear.ToRadians(dmn.sunRotation[1]))).
		MulVec4(linear.Vec4{0, 0, 1, 0})
}

// draw renders the scene.
func (dmn *demonstration) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(dmn.program)

	proj := dmn.projectionMatrix()
	view := dmn.viewMatrix()
	norm := linear.Normal(view)
	light := dmn.lightVector()

	// glkit matrices are row-major: the driver transposes on upload
	gl.UniformMatrix4fv(dmn.projection, 1, true, proj.Floats())
	gl.UniformMatrix4fv(dmn.view, 1, true, view.Floats())
	gl.UniformMatrix3fv(dmn.normalMatrix, 1, true, norm.Floats())
	gl.Uniform4fv(dmn.light, 1, &light[0])

	gl.BindVertexArray(dmn.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
}

// cubeVertices returns interleaved position/normal data for a unit cube
// centred at the origin. 36 vertices of 6 float32 values each.
func cubeVertices() []float32 {
	normals := []linear.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	data := make([]float32, 0, 36*6)
	for _, n := range normals {
		u := linear.Vec3{n[1], n[2], n[0]}
		v := n.Cross(u)
		c := n.Scale(0.5)

		corners := []linear.Vec3{
			c.Sub(u.Scale(0.5)).Sub(v.Scale(0.5)),
			c.Add(u.Scale(0.5)).Sub(v.Scale(0.5)),
			c.Add(u.Scale(0.5)).Add(v.Scale(0.5)),
			c.Sub(u.Scale(0.5)).Add(v.Scale(0.5)),
		}

		for _, i := range []int{0, 1, 2, 0, 2, 3} {
			p := corners[i]
			data = append(data, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}

	return data
}
