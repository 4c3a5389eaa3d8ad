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
	"fmt"
	"io"
	"os"
	"strings"
)

// fixed diagnostic prefixes identifying the failing build step.
const (
	shaderErrorPrefix  = "Shader Error:"
	programErrorPrefix = "Program Error:"
)

// an objectKind selects which of the driver's parallel query capabilities
// the status report uses.
type objectKind int

const (
	shaderObject objectKind = iota
	programObject
)

// Pipeline builds linked program objects from shader source. Diagnostics for
// every failure are printed to the pipeline's error stream, os.Stderr unless
// redirected with SetOutput().
//
// A Pipeline must only be used from the thread that owns the driver context.
type Pipeline struct {
	drv    Driver
	output io.Writer
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type.
func NewPipeline(drv Driver) *Pipeline {
	return &Pipeline{
		drv:    drv,
		output: os.Stderr,
	}
}

// SetOutput redirects the pipeline's diagnostic messages.
func (p *Pipeline) SetOutput(output io.Writer) {
	p.output = output
}

// BuildProgram produces a linked, ready-to-use program from the two named
// source files. Returns the zero handle if either file cannot be loaded, if
// either stage fails to compile, or if the program fails to link. In all of
// those cases a diagnostic has been printed before returning.
//
// Ownership of a returned non-zero handle passes to the caller.
func (p *Pipeline) BuildProgram(vertFilename string, fragFilename string) uint32 {
	vertSource := ReadSource(p.output, vertFilename)
	fragSource := ReadSource(p.output, fragFilename)

	if vertSource == nil || fragSource == nil {
		return 0
	}

	return p.BuildProgramFromSource(vertSource, fragSource)
}

// BuildProgramFromSource is the same as BuildProgram except that the two
// shader sources are supplied directly, for example from embedded strings.
func (p *Pipeline) BuildProgramFromSource(vertSource []byte, fragSource []byte) uint32 {
	var program uint32

	vertShader := p.CompileShader(VertexStage, vertSource)
	fragShader := p.CompileShader(FragmentStage, fragSource)

	if vertShader != 0 && fragShader != 0 {
		program = p.LinkProgram(vertShader, fragShader)
	}

	// the shader objects are not needed beyond the link, whatever the
	// outcome. a linked program keeps what it needs alive
	p.drv.DeleteShader(fragShader)
	p.drv.DeleteShader(vertShader)

	return program
}

// CompileShader compiles a new shader of the given stage from the given
// source. On failure the info log is printed, the shader object is released
// and the zero handle is returned.
func (p *Pipeline) CompileShader(stage Stage, source []byte) uint32 {
	shader := p.drv.CreateShader(stage)
	if shader == 0 {
		return 0
	}

	p.drv.ShaderSource(shader, nulTerminated(source))
	p.drv.CompileShader(shader)

	if !p.reportStatus(shaderObject, shader) {
		p.drv.DeleteShader(shader)
		return 0
	}

	return shader
}

// LinkProgram links a new program object from previously compiled vertex and
// fragment shaders. On failure the info log is printed, the program object
// is released and the zero handle is returned.
//
// The shader objects remain owned by the caller. They can be deleted as soon
// as LinkProgram returns.
func (p *Pipeline) LinkProgram(vertShader uint32, fragShader uint32) uint32 {
	program := p.drv.CreateProgram()
	if program == 0 {
		return 0
	}

	p.drv.AttachShader(program, vertShader)
	p.drv.AttachShader(program, fragShader)
	p.drv.LinkProgram(program)

	if !p.reportStatus(programObject, program) {
		p.drv.DeleteProgram(program)
		return 0
	}

	return program
}

// reportStatus implements the status-check contract shared by the compile
// and link steps: query the boolean status flag and the info log length; if
// the status is false retrieve the log into a buffer of length+1 bytes and
// print it behind the fixed prefix for the object kind. Nothing is allocated
// on the success path.
func (p *Pipeline) reportStatus(kind objectKind, object uint32) bool {
	var status int32
	var logLength int32
	var prefix string

	switch kind {
	case shaderObject:
		status = p.drv.GetShaderParameter(object, CompileStatus)
		logLength = p.drv.GetShaderParameter(object, InfoLogLength)
		prefix = shaderErrorPrefix
	case programObject:
		status = p.drv.GetProgramParameter(object, LinkStatus)
		logLength = p.drv.GetProgramParameter(object, InfoLogLength)
		prefix = programErrorPrefix
	}

	if status != 0 {
		return true
	}

	log := make([]byte, logLength+1)
	switch kind {
	case shaderObject:
		p.drv.GetShaderInfoLog(object, log)
	case programObject:
		p.drv.GetProgramInfoLog(object, log)
	}

	fmt.Fprintf(p.output, "%s\n%s", prefix, strings.TrimRight(string(log), "\x00"))

	return false
}
