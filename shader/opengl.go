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

package shader

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// openGL implements the Driver interface over an OpenGL 3.2 core profile
// context. The context must have been created and made current on the
// calling thread before any method is used.
type openGL struct{}

// OpenGL returns the Driver implementation for the current OpenGL context.
func OpenGL() Driver {
	return openGL{}
}

func (openGL) CreateShader(stage Stage) uint32 {
	switch stage {
	case VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (openGL) ShaderSource(shader uint32, source []byte) {
	csources, free := gl.Strs(string(source))
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (openGL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (openGL) GetShaderParameter(shader uint32, param Parameter) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(param), &v)
	return v
}

func (openGL) GetShaderInfoLog(shader uint32, log []byte) {
	if len(log) == 0 {
		return
	}
	gl.GetShaderInfoLog(shader, int32(len(log)), nil, &log[0])
}

func (openGL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (openGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (openGL) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (openGL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (openGL) GetProgramParameter(program uint32, param Parameter) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(param), &v)
	return v
}

func (openGL) GetProgramInfoLog(program uint32, log []byte) {
	if len(log) == 0 {
		return
	}
	gl.GetProgramInfoLog(program, int32(len(log)), nil, &log[0])
}

func (openGL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (openGL) GetError() ErrorCode {
	return ErrorCode(gl.GetError())
}
