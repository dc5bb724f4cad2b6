// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Frustum represents a frustum as 6 planes whose normals point inward.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix creates and returns a [Frustum] based on the provided
// view-projection matrix.
func NewFrustumFromMatrix(m *Matrix4) *Frustum {
	f := &Frustum{}
	f.SetFromMatrix(m)
	return f
}

// SetFromMatrix sets the frustum's planes from the specified view-projection matrix.
// The planes are, in order: right, left, bottom, top, far, near.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	me0 := m[0]
	me1 := m[1]
	me2 := m[2]
	me3 := m[3]
	me4 := m[4]
	me5 := m[5]
	me6 := m[6]
	me7 := m[7]
	me8 := m[8]
	me9 := m[9]
	me10 := m[10]
	me11 := m[11]
	me12 := m[12]
	me13 := m[13]
	me14 := m[14]
	me15 := m[15]

	f.Planes[0].SetComponents(me3-me0, me7-me4, me11-me8, me15-me12)
	f.Planes[1].SetComponents(me3+me0, me7+me4, me11+me8, me15+me12)
	f.Planes[2].SetComponents(me3+me1, me7+me5, me11+me9, me15+me13)
	f.Planes[3].SetComponents(me3-me1, me7-me5, me11-me9, me15-me13)
	f.Planes[4].SetComponents(me3-me2, me7-me6, me11-me10, me15-me14)
	f.Planes[5].SetComponents(me3+me2, me7+me6, me11+me10, me15+me14)

	for i := range 6 {
		f.Planes[i].Normalize()
	}
}

// ContainsPoint determines whether the frustum contains the specified point.
func (f *Frustum) ContainsPoint(point Vector3) bool {
	for i := range 6 {
		if f.Planes[i].DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}

// IntersectsBox determines whether the specified box is intersecting the frustum.
func (f *Frustum) IntersectsBox(box Box3) bool {
	for _, p := range f.Planes {
		var c Vector3
		// positive vertex along the plane normal
		if p.Norm.X > 0 {
			c.X = box.Max.X
		} else {
			c.X = box.Min.X
		}
		if p.Norm.Y > 0 {
			c.Y = box.Max.Y
		} else {
			c.Y = box.Min.Y
		}
		if p.Norm.Z > 0 {
			c.Z = box.Max.Z
		} else {
			c.Z = box.Min.Z
		}
		if p.DistanceToPoint(c) < 0 {
			return false
		}
	}
	return true
}
