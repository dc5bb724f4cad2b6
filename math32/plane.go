// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Plane represents a plane in 3D space by its normal vector and an offset:
// points p on the plane satisfy Norm·p + Off = 0. The positive half-space
// (Norm·p + Off >= 0) is considered inside.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane returns a new [Plane] with the given normal and offset.
func NewPlane(normal Vector3, offset float32) Plane {
	return Plane{Norm: normal, Off: offset}
}

// PlaneFromNormalAndPoint returns a plane with the given normal
// passing through the given point.
func PlaneFromNormalAndPoint(normal, point Vector3) Plane {
	return Plane{Norm: normal, Off: -point.Dot(normal)}
}

func (p Plane) String() string {
	return fmt.Sprintf("plane(%v, %g)", p.Norm, p.Off)
}

// SetComponents sets this plane normal and offset from the given x, y, z, w components.
func (p *Plane) SetComponents(x, y, z, w float32) {
	p.Norm.Set(x, y, z)
	p.Off = w
}

// Normalize normalizes this plane normal vector and adjusts the offset.
// Note: will lead to a divide by zero if the plane is invalid.
func (p *Plane) Normalize() {
	inverseNormalLength := 1.0 / p.Norm.Length()
	p.Norm = p.Norm.MulScalar(inverseNormalLength)
	p.Off *= inverseNormalLength
}

// Negate negates this plane normal and offset, swapping its half-spaces.
func (p *Plane) Negate() {
	p.Off = -p.Off
	p.Norm = p.Norm.Negate()
}

// DistanceToPoint returns the signed distance from this plane to the specified point.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// IsInHalfSpace returns whether the point lies in the positive half-space.
func (p Plane) IsInHalfSpace(point Vector3) bool {
	return p.DistanceToPoint(point) >= 0
}

// CoplanarPoint returns a point in the plane that is the closest point
// from the origin.
func (p Plane) CoplanarPoint() Vector3 {
	return p.Norm.MulScalar(-p.Off)
}

// MulMatrix4 returns this plane transformed by the specified matrix.
// The normal is transformed by the inverse transpose so that it stays
// perpendicular to the transformed plane.
func (p Plane) MulMatrix4(m *Matrix4) Plane {
	normalMatrix := m.Inverse().Transpose()
	newNormal := p.Norm.MulMatrix4AsVector(normalMatrix).Normal()
	newCoplanarPoint := p.CoplanarPoint().MulMatrix4AsPoint(m)
	return PlaneFromNormalAndPoint(newNormal, newCoplanarPoint)
}
