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

package linear

import (
	"github.com/chewxy/math32"
)

// Perspective returns a matrix giving a perspective projection with
// field-of-view fov (in radians), aspect ratio aspect, near clipping distance
// near and far clipping distance far.
//
// The frustum bounds are derived from the field-of-view and aspect ratio at
// the near plane. Perspective(fov, aspect, n, f) produces the same matrix as
// Frustum(-r, r, -t, t, n, f) where t = n*tan(fov/2) and r = t*aspect.
func Perspective(fov float32, aspect float32, near float32, far float32) Mat4 {
	y := near * math32.Tan(fov/2)
	x := y * aspect

	return Mat4{
		{near / x, 0, 0, 0},
		{0, near / y, 0, 0},
		{0, 0, (near + far) / (near - far), 2 * (near * far) / (near - far)},
		{0, 0, -1, 0},
	}
}

// Frustum returns a matrix giving a perspective projection with the given
// left, right, bottom, top, near and far clipping boundaries. It is the
// general form of Perspective() for asymmetric view frustums.
func Frustum(l float32, r float32, b float32, t float32, n float32, f float32) Mat4 {
	return Mat4{
		{(n + n) / (r - l), 0, (r + l) / (r - l), 0},
		{0, (n + n) / (t - b), (t + b) / (t - b), 0},
		{0, 0, (n + f) / (n - f), 2 * (n * f) / (n - f)},
		{0, 0, -1, 0},
	}
}

// Orthogonal returns a matrix giving an orthogonal projection with the given
// left, right, bottom, top, near and far clipping boundaries.
func Orthogonal(l float32, r float32, b float32, t float32, n float32, f float32) Mat4 {
	return Mat4{
		{2 / (r - l), 0, 0, -(r + l) / (r - l)},
		{0, 2 / (t - b), 0, -(t + b) / (t - b)},
		{0, 0, -2 / (f - n), -(f + n) / (f - n)},
		{0, 0, 0, 1},
	}
}
