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

// glkit_demo opens an OpenGL window and renders a lit cube using shaders
// built by the glkit shader pipeline and matrices from the glkit linear
// package.
//
//	glkit_demo <vertex shader file> <fragment shader file>
//
// Example shaders can be found in the glsl directory. Drag with the left
// mouse button to rotate the camera and with the right mouse button to
// rotate the light. The W, A, S, D, C and space keys fly the camera.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

func main() {
	// the graphics driver context is thread-affine. everything happens on
	// this thread
	runtime.LockOSThread()

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <vertex shader file> <fragment shader file>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	if err := launch(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "glkit_demo: %v\n", err)
		os.Exit(1)
	}
}

func launch(vertFilename string, fragFilename string) error {
	dmn, err := newDemonstration("GLKit Demonstration", 1280, 720)
	if err != nil {
		return err
	}
	defer dmn.destroy()

	err = dmn.setup(vertFilename, fragFilename)
	if err != nil {
		return err
	}

	dmn.run()

	return nil
}
