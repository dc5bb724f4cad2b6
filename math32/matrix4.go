// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 transformation matrix in column-major order:
// elements 12, 13 and 14 hold the translation.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Translation4 returns a new translation [Matrix4].
func Translation4(x, y, z float32) *Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale4 returns a new scaling [Matrix4].
func Scale4(x, y, z float32) *Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotationZ4 returns a new [Matrix4] rotating by the given angle
// in radians around the Z axis.
func RotationZ4(angle float32) *Matrix4 {
	m := Identity4()
	c, s := Cos(angle), Sin(angle)
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == *Identity4()
}

// Mul returns this matrix times other matrix (this matrix is on the left).
// Applied to a point, other is applied first.
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// MulMatrices sets this matrix to matrix multiplication of a by b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	*m = r
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := &Matrix4{}
	for col := range 4 {
		for row := range 4 {
			nm[row*4+col] = m[col*4+row]
		}
	}
	return nm
}

// Inverse returns the inverse of this matrix.
// A singular matrix yields the identity matrix.
func (m *Matrix4) Inverse() *Matrix4 {
	var inv Matrix4
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		return Identity4()
	}
	det = 1 / det
	for i := range inv {
		inv[i] *= det
	}
	return &inv
}

// SetOrthographic sets this matrix to an orthographic projection matrix.
func (m *Matrix4) SetOrthographic(left, right, top, bottom, near, far float32) {
	w := right - left
	h := top - bottom
	p := far - near
	x := (right + left) / w
	y := (top + bottom) / h
	z := (far + near) / p
	*m = Matrix4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, -2 / p, 0,
		-x, -y, -z, 1,
	}
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// SetFrustum sets this matrix to a projection frustum matrix bounded
// by the specified planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	fmn := far - near
	*m = Matrix4{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(right + left) / (right - left), (top + bottom) / (top - bottom), -(far + near) / fmn, -1,
		0, 0, -(2 * far * near) / fmn, 0,
	}
}
