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

func TestPerspectiveFrustumEquivalence(t *testing.T) {
	frustums := []struct {
		fov    float32
		aspect float32
		near   float32
		far    float32
	}{
		{linear.ToRadians(60), 16.0 / 9.0, 0.1, 100},
		{linear.ToRadians(90), 1, 1, 10},
		{linear.ToRadians(45), 4.0 / 3.0, 0.5, 1000},
		{linear.ToRadians(120), 2, 0.01, 50},
	}

	// the field-of-view form and the boundary form must produce numerically
	// equivalent matrices for equivalent frustums. (l,r,b,t) derive from the
	// field-of-view and aspect ratio at the near plane
	for _, f := range frustums {
		top := f.near * math32.Tan(f.fov/2)
		right := top * f.aspect

		p := linear.Perspective(f.fov, f.aspect, f.near, f.far)
		q := linear.Frustum(-right, right, -top, top, f.near, f.far)
		expectMat4(t, p, q, 1e-5)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near = 0.1
	const far = 100

	m := linear.Perspective(linear.ToRadians(60), 16.0/9.0, near, far)

	// a point on the near plane maps to clip-space depth -1 after perspective
	// division, a point on the far plane to +1
	v := m.MulVec4(linear.Vec4{0, 0, -near, 1})
	test.ExpectApproximate(t, v[2]/v[3], -1, 1e-5)

	v = m.MulVec4(linear.Vec4{0, 0, -far, 1})
	test.ExpectApproximate(t, v[2]/v[3], 1, 1e-5)
}

func TestFrustumCorners(t *testing.T) {
	const l, r, b, top, n, f = -2.0, 1.0, -1.5, 0.5, 1.0, 10.0

	m := linear.Frustum(l, r, b, top, n, f)

	// corners of the near rectangle map to the corners of the clip-space cube
	v := m.MulVec4(linear.Vec4{l, b, -n, 1})
	test.ExpectApproximate(t, v[0]/v[3], -1, 1e-5)
	test.ExpectApproximate(t, v[1]/v[3], -1, 1e-5)
	test.ExpectApproximate(t, v[2]/v[3], -1, 1e-5)

	v = m.MulVec4(linear.Vec4{r, top, -n, 1})
	test.ExpectApproximate(t, v[0]/v[3], 1, 1e-5)
	test.ExpectApproximate(t, v[1]/v[3], 1, 1e-5)
}

func TestOrthogonal(t *testing.T) {
	const l, r, b, top, n, f = -10.0, 10.0, -5.0, 5.0, 1.0, 100.0

	m := linear.Orthogonal(l, r, b, top, n, f)

	// the box corners map to the clip-space cube corners with w untouched
	v := m.MulVec4(linear.Vec4{l, b, -n, 1})
	expectVec4(t, v, linear.Vec4{-1, -1, -1, 1}, 1e-5)

	v = m.MulVec4(linear.Vec4{r, top, -f, 1})
	expectVec4(t, v, linear.Vec4{1, 1, 1, 1}, 1e-5)

	// no perspective: parallel lines stay parallel, i.e. w is constant
	v = m.MulVec4(linear.Vec4{3, 2, -50, 1})
	test.ExpectEquality(t, v[3], float32(1))
}
