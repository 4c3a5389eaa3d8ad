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

package shader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glkit/shader"
	"github.com/jetsetilly/glkit/test"
)

// writeSourceFile creates a shader source file in a directory that is
// removed when the test completes.
func writeSourceFile(t *testing.T, name string, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(filename, []byte(content), 0600)
	test.DemandSuccess(t, err)
	return filename
}

func TestReadSource(t *testing.T) {
	filename := writeSourceFile(t, "vertex.glsl", vertexSource)

	out := &test.Writer{}
	source := shader.ReadSource(out, filename)

	// contents returned intact with a terminating nul appended
	test.DemandEquality(t, len(source), len(vertexSource)+1)
	test.ExpectEquality(t, string(source[:len(source)-1]), vertexSource)
	test.ExpectEquality(t, source[len(source)-1], byte(0))
	test.ExpectSuccess(t, out.Compare(""))
}

func TestReadSourceMissing(t *testing.T) {
	out := &test.Writer{}
	source := shader.ReadSource(out, filepath.Join(t.TempDir(), "no_such_file.glsl"))

	test.ExpectEquality(t, len(source), 0)
	test.ExpectContains(t, out.String(), "Failed to open '")
}

func TestReadSourceEmpty(t *testing.T) {
	filename := writeSourceFile(t, "empty.glsl", "")

	out := &test.Writer{}
	source := shader.ReadSource(out, filename)

	test.ExpectEquality(t, len(source), 0)
	test.ExpectContains(t, out.String(), "Empty shader source file '")
}

func TestBuildProgramMissingFile(t *testing.T) {
	fragFilename := writeSourceFile(t, "fragment.glsl", fragmentSource)

	drv := newMockDriver()
	out := &test.Writer{}
	pln := shader.NewPipeline(drv)
	pln.SetOutput(out)

	program := pln.BuildProgram(filepath.Join(t.TempDir(), "no_such_file.glsl"), fragFilename)
	test.ExpectEquality(t, program, 0)
	test.ExpectContains(t, out.String(), "Failed to open '")

	// the pipeline never reaches compilation: no shader object is created
	// for either stage
	test.ExpectEquality(t, len(drv.shaders), 0)
}

func TestBuildProgramFromFiles(t *testing.T) {
	vertFilename := writeSourceFile(t, "vertex.glsl", vertexSource)
	fragFilename := writeSourceFile(t, "fragment.glsl", fragmentSource)

	drv := newMockDriver()
	out := &test.Writer{}
	pln := shader.NewPipeline(drv)
	pln.SetOutput(out)

	program := pln.BuildProgram(vertFilename, fragFilename)
	test.ExpectInequality(t, program, 0)
	test.ExpectSuccess(t, out.Compare(""))
	test.ExpectEquality(t, len(drv.deletedShaders), 2)
}
