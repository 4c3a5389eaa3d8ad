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

// Package linear provides the vector and matrix arithmetic needed to drive a
// modern OpenGL pipeline. With no fixed functionality in the graphics driver,
// every application must build its own model, view and projection matrices.
// The constructors in this package cover everything a renderer needs each
// frame: axis rotations, translation, scaling, perspective and orthogonal
// projections, and the normal matrix used to transform surface normals.
//
// All types are float32 throughout, matching the format expected by the
// graphics driver. Vectors and matrices are small arrays with value
// semantics. Operations never allocate and never fail, with two documented
// exceptions: Vec3.Norm() of a zero-length vector divides by zero; and
// Normal() of a matrix with a singular upper-left 3x3 block returns the
// identity rather than failing.
//
// Matrices are stored row-major. The memory layout is contiguous so the
// Floats() functions can expose the storage directly to the graphics driver
// for uniform upload. Note that OpenGL reads uniform matrices column-major by
// default so the transpose flag should be set in the upload call:
//
//	gl.UniformMatrix4fv(location, 1, true, proj.Floats())
package linear
