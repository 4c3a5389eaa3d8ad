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

// Package shader turns vertex and fragment shader source into a linked,
// usable program object. The graphics driver is accessed through the Driver
// interface, a small capability set covering object creation, compilation,
// linking and status queries. OpenGL() returns the production implementation.
//
// The Pipeline type composes source loading, compilation and linking into a
// single end-to-end build:
//
//	pln := shader.NewPipeline(shader.OpenGL())
//	program := pln.BuildProgram("vertex.glsl", "fragment.glsl")
//	if program == 0 {
//		// diagnostics have already been printed to the error stream
//	}
//
// Failure is never reported through error values. A failed load yields a nil
// buffer, a failed compile or link yields the zero handle, and every failure
// path prints a diagnostic to the pipeline's error stream before returning.
// A returned program handle is owned by the caller who is responsible for
// its eventual deletion through the same driver. The two shader objects of a
// build are owned by the pipeline and always released by the end of the
// build, whatever the outcome.
//
// All operations are synchronous and must run on the thread that owns the
// driver context. The pipeline performs no locking of its own.
//
// CheckError is independent of the pipeline: it queries the driver's last
// error code and terminates the process when the code indicates API misuse.
// Such errors are programming mistakes and rendering cannot proceed safely
// past a corrupted driver state, so they are not propagated as recoverable
// conditions.
package shader
