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

// ToRadians converts an angle in degrees to an angle in radians.
func ToRadians(degrees float32) float32 {
	return degrees * (math32.Pi / 180)
}

// ToDegrees converts an angle in radians to an angle in degrees.
func ToDegrees(radians float32) float32 {
	return radians * (180 / math32.Pi)
}

// XRotation returns a matrix giving a right-handed rotation about the X axis
// through a radians.
func XRotation(a float32) Mat4 {
	sin := math32.Sin(a)
	cos := math32.Cos(a)
	return Mat4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// YRotation returns a matrix giving a right-handed rotation about the Y axis
// through a radians.
func YRotation(a float32) Mat4 {
	sin := math32.Sin(a)
	cos := math32.Cos(a)
	return Mat4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// ZRotation returns a matrix giving a right-handed rotation about the Z axis
// through a radians.
func ZRotation(a float32) Mat4 {
	sin := math32.Sin(a)
	cos := math32.Cos(a)
	return Mat4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix giving a translation along vector v.
func Translation(v Vec3) Mat4 {
	return Mat4{
		{1, 0, 0, v[0]},
		{0, 1, 0, v[1]},
		{0, 0, 1, v[2]},
		{0, 0, 0, 1},
	}
}

// Scale returns a matrix giving a scale along vector v.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{v[0], 0, 0, 0},
		{0, v[1], 0, 0},
		{0, 0, v[2], 0},
		{0, 0, 0, 1},
	}
}

// Normal returns the normal matrix for the given model-view matrix: the
// transposed inverse of the upper-left 3x3 block of m, computed from the
// cofactors scaled by the reciprocal of the determinant. It is the matrix
// that correctly transforms surface normals when m contains a non-uniform
// scale. When the determinant is zero there is no inverse and the identity
// matrix is returned instead.
func Normal(m Mat4) Mat3 {
	d := m[0][0]*m[1][1]*m[2][2] -
		m[0][0]*m[1][2]*m[2][1] +
		m[0][1]*m[1][2]*m[2][0] -
		m[0][1]*m[1][0]*m[2][2] +
		m[0][2]*m[1][0]*m[2][1] -
		m[0][2]*m[1][1]*m[2][0]

	if math32.Abs(d) == 0 {
		return Ident3()
	}

	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / d,
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / d,
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / d,
		},
		{
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / d,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / d,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / d,
		},
		{
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / d,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / d,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / d,
		},
	}
}
