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

// Mat3 is a row-major 3x3 32-bit floating point matrix. The zero value is the
// zero matrix; use Ident3() where the identity is wanted as a starting point.
type Mat3 [3]Vec3

// Mat4 is a row-major 4x4 32-bit floating point matrix. The zero value is the
// zero matrix; use Ident4() where the identity is wanted as a starting point.
type Mat4 [4]Vec4

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MulVec3 returns the transform of vector v by matrix m.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// MulVec4 returns the transform of vector v by matrix m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// Mul returns the matrix product of m and n. The product is associative but
// not commutative.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// Mul returns the matrix product of m and n. The product is associative but
// not commutative.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j] + m[i][3]*n[3][j]
		}
	}
	return r
}

// Transpose returns m with rows and columns exchanged.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Transpose returns m with rows and columns exchanged.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Floats returns a pointer to the contiguous row-major storage of the matrix,
// 9 elements long. It is a view of the matrix, not a copy, and is intended
// for uniform upload through the graphics driver. The driver interprets the
// storage by raw memory layout so the pointed-to values must not be modified.
func (m *Mat3) Floats() *float32 {
	return &m[0][0]
}

// Floats returns a pointer to the contiguous row-major storage of the matrix,
// 16 elements long. It is a view of the matrix, not a copy, and is intended
// for uniform upload through the graphics driver. The driver interprets the
// storage by raw memory layout so the pointed-to values must not be modified.
func (m *Mat4) Floats() *float32 {
	return &m[0][0]
}
