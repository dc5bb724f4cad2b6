// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Transform multiplies the current model matrix by a scale, then a
// rotation about the Z axis, then a translation.
type Transform struct {
	scene.NodeBase

	// Translation is the translation applied last.
	Translation math32.Vector3

	// Rotation is the rotation about the Z axis in radians.
	Rotation float32

	// Scale is the scale applied first.
	Scale math32.Vector3
}

// NewTransform returns a new identity transform.
func NewTransform() *Transform {
	t := &Transform{Scale: math32.Vec3(1, 1, 1)}
	scene.InitNode(t)
	return t
}

func (t *Transform) NodeType() *types.Type { return TransformType }

// SetTranslation sets the [Transform.Translation].
func (t *Transform) SetTranslation(x, y, z float32) *Transform {
	t.Translation.Set(x, y, z)
	t.Touch()
	return t
}

// SetRotation sets the [Transform.Rotation] from an angle in degrees.
func (t *Transform) SetRotation(degrees float32) *Transform {
	t.Rotation = math32.DegToRad(degrees)
	t.Touch()
	return t
}

// SetScale sets the [Transform.Scale].
func (t *Transform) SetScale(x, y, z float32) *Transform {
	t.Scale.Set(x, y, z)
	t.Touch()
	return t
}

// Matrix returns the matrix of the transform.
func (t *Transform) Matrix() *math32.Matrix4 {
	tr := t.Translation
	sc := t.Scale
	return math32.Translation4(tr.X, tr.Y, tr.Z).Mul(math32.RotationZ4(t.Rotation)).Mul(math32.Scale4(sc.X, sc.Y, sc.Z))
}

func (t *Transform) DoAction(a scene.Action) {
	elements.MulModelMatrix(a.AsAction().State(), t.NodeID(), t.Matrix())
}
