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

// Vec2 is a 2-component 32-bit floating point vector.
type Vec2 [2]float32

// Vec3 is a 3-component 32-bit floating point vector.
type Vec3 [3]float32

// Vec4 is a 4-component 32-bit floating point vector.
type Vec4 [4]float32

// Add returns the component-wise sum of v and w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the component-wise difference of v and w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns the scalar product of v and k.
func (v Vec3) Scale(k float32) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// Div returns the scalar quotient of v and k.
func (v Vec3) Div(k float32) Vec3 {
	return Vec3{v[0] / k, v[1] / k, v[2] / k}
}

// Neg returns the negation of v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the right-handed cross product of v and w. The result is
// orthogonal to both arguments and v.Cross(w) is the negation of w.Cross(v).
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Norm returns v scaled to unit length. The result is undefined for a vector
// of zero length (division by zero). Callers must guard against that case.
func (v Vec3) Norm() Vec3 {
	return v.Div(v.Length())
}

// Dot returns the dot product of v and w.
func (v Vec4) Dot(w Vec4) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Vec3 returns the first three components of v.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
