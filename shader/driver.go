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

// Stage identifies a programmable stage of the graphics pipeline.
type Stage int

// List of valid Stage values.
const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Parameter identifies a queryable property of a shader or program object.
// Values correspond to the driver's own enumeration.
type Parameter uint32

// List of valid Parameter values.
const (
	CompileStatus Parameter = 0x8b81
	LinkStatus    Parameter = 0x8b82
	InfoLogLength Parameter = 0x8b84
)

// ErrorCode is the driver's global last-error value. Values correspond to the
// driver's own enumeration.
type ErrorCode uint32

// List of recognised ErrorCode values. Any of these, other than NoError,
// indicates API misuse. See CheckError().
const (
	NoError          ErrorCode = 0
	InvalidEnum      ErrorCode = 0x0500
	InvalidValue     ErrorCode = 0x0501
	InvalidOperation ErrorCode = 0x0502
	OutOfMemory      ErrorCode = 0x0505
)

// Driver is the capability set the build pipeline requires of the graphics
// driver. Shader and program objects are referred to by opaque uint32
// handles. The zero handle is never a valid object and deletion of the zero
// handle is a silent no-op, as it is in OpenGL.
//
// All methods are assumed to execute against one thread-affine driver
// context. Callers must not share a Driver between goroutines.
type Driver interface {
	// CreateShader creates a new, empty shader object for the given stage.
	// Returns the zero handle on failure.
	CreateShader(stage Stage) uint32

	// ShaderSource replaces the source code of the shader object. The source
	// must be nul-terminated.
	ShaderSource(shader uint32, source []byte)

	// CompileShader compiles the source code previously submitted with
	// ShaderSource. The outcome is queried with GetShaderParameter.
	CompileShader(shader uint32)

	// GetShaderParameter queries a property of a shader object. Valid
	// parameters are CompileStatus (0 indicating failure) and InfoLogLength.
	GetShaderParameter(shader uint32, param Parameter) int32

	// GetShaderInfoLog fills log with the shader's diagnostic text. The
	// buffer length bounds how much of the log is retrieved.
	GetShaderInfoLog(shader uint32, log []byte)

	// DeleteShader releases a shader object. A shader attached to a program
	// is kept alive by the driver until the program no longer needs it.
	DeleteShader(shader uint32)

	// CreateProgram creates a new, empty program object. Returns the zero
	// handle on failure.
	CreateProgram() uint32

	// AttachShader attaches a shader object to a program object.
	AttachShader(program uint32, shader uint32)

	// LinkProgram links the program from its attached shaders. The outcome
	// is queried with GetProgramParameter.
	LinkProgram(program uint32)

	// GetProgramParameter queries a property of a program object. Valid
	// parameters are LinkStatus (0 indicating failure) and InfoLogLength.
	GetProgramParameter(program uint32, param Parameter) int32

	// GetProgramInfoLog fills log with the program's diagnostic text. The
	// buffer length bounds how much of the log is retrieved.
	GetProgramInfoLog(program uint32, log []byte)

	// DeleteProgram releases a program object.
	DeleteProgram(program uint32)

	// GetError returns the driver's global last-error code and resets it to
	// NoError.
	GetError() ErrorCode
}
