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

package linear_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/jetsetilly/glkit/linear"
	"github.com/jetsetilly/glkit/test"
)

func TestAngleConversion(t *testing.T) {
	test.ExpectApproximate(t, linear.ToRadians(180), math32.Pi, 1e-6)
	test.ExpectApproximate(t, linear.ToRadians(90), math32.Pi/2, 1e-6)
	test.ExpectApproximate(t, linear.ToDegrees(math32.Pi), 180, 1e-4)
	test.ExpectApproximate(t, linear.ToDegrees(linear.ToRadians(123.4)), 123.4, 1e-4)
}

func TestRotationInverse(t *testing.T) {
	angles := []float32{0, 0.1, 1, math32.Pi / 2, math32.Pi, -2.5, 100}

	// a rotation by a followed by a rotation by -a about the same axis is the
	// identity
	for _, a := range angles {
		expectMat4(t, linear.XRotation(a).Mul(linear.XRotation(-a)), linear.Ident4(), 1e-5)
		expectMat4(t, linear.YRotation(a).Mul(linear.YRotation(-a)), linear.Ident4(), 1e-5)
		expectMat4(t, linear.ZRotation(a).Mul(linear.ZRotation(-a)), linear.Ident4(), 1e-5)
	}
}

func TestRotationHandedness(t *testing.T) {
	quarter := linear.ToRadians(90)

	// right-handed rotations: a quarter turn about X takes +Y to +Z, about Y
	// takes +Z to +X, about Z takes +X to +Y
	y := linear.XRotation(quarter).MulVec4(linear.Vec4{0, 1, 0, 0})
	expectVec4(t, y, linear.Vec4{0, 0, 1, 0}, 1e-6)

	z := linear.YRotation(quarter).MulVec4(linear.Vec4{0, 0, 1, 0})
	expectVec4(t, z, linear.Vec4{1, 0, 0, 0}, 1e-6)

	x := linear.ZRotation(quarter).MulVec4(linear.Vec4{1, 0, 0, 0})
	expectVec4(t, x, linear.Vec4{0, 1, 0, 0}, 1e-6)
}

func expectVec4(t *testing.T, v linear.Vec4, expected linear.Vec4, tolerance float32) {
	t.Helper()
	for i := 0; i < 4; i++ {
		test.ExpectApproximate(t, v[i], expected[i], tolerance, i)
	}
}

func TestTranslation(t *testing.T) {
	m := linear.Translation(linear.Vec3{10, -20, 30})

	// points (w == 1) translate
	test.ExpectEquality(t, m.MulVec4(linear.Vec4{1, 2, 3, 1}), linear.Vec4{11, -18, 33, 1})

	// directions (w == 0) do not
	test.ExpectEquality(t, m.MulVec4(linear.Vec4{1, 2, 3, 0}), linear.Vec4{1, 2, 3, 0})
}

func TestScale(t *testing.T) {
	m := linear.Scale(linear.Vec3{2, 3, 4})
	test.ExpectEquality(t, m.MulVec4(linear.Vec4{1, 1, 1, 1}), linear.Vec4{2, 3, 4, 1})
}

func TestNormal(t *testing.T) {
	// for a pure rotation the normal matrix is the rotation itself
	r := linear.XRotation(0.7).Mul(linear.YRotation(-1.2))
	n := linear.Normal(r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			test.ExpectApproximate(t, n[i][j], r[i][j], 1e-5, i, j)
		}
	}

	// non-uniform scale: normals must be scaled by the reciprocal
	n = linear.Normal(linear.Scale(linear.Vec3{2, 1, 1}))
	expectMat3(t, n, linear.Mat3{
		{0.5, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, 1e-6)

	// a surface normal of a stretched surface tilts the other way: transform
	// the normal of the plane x+y=k under Scale(2,1,1)
	v := linear.Vec3{1, 1, 0}.Norm()
	w := n.MulVec3(v).Norm()
	expectVec3(t, w, linear.Vec3{1, 2, 0}.Norm(), 1e-6)
}

func TestNormalDegenerate(t *testing.T) {
	// a singular upper-left 3x3 block has no inverse: the identity is
	// returned rather than failing
	test.ExpectEquality(t, linear.Normal(linear.Mat4{}), linear.Ident3())

	singular := linear.Mat4{
		{1, 2, 3, 0},
		{2, 4, 6, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 1},
	}
	test.ExpectEquality(t, linear.Normal(singular), linear.Ident3())
}

func expectVec3(t *testing.T, v linear.Vec3, expected linear.Vec3, tolerance float32) {
	t.Helper()
	for i := 0; i < 3; i++ {
		test.ExpectApproximate(t, v[i], expected[i], tolerance, i)
	}
}
