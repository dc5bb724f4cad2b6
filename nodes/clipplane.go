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

// ClipPlane clips away what is on the negative side of a plane. The
// plane is also a cull plane, so that subgraphs completely on the
// negative side can be skipped.
type ClipPlane struct {
	scene.NodeBase

	// Plane is the plane in object space.
	Plane math32.Plane

	// On is whether the plane clips.
	On bool
}

// NewClipPlane returns a new clip plane keeping the positive X side.
func NewClipPlane() *ClipPlane {
	c := &ClipPlane{Plane: math32.NewPlane(math32.Vec3(1, 0, 0), 0), On: true}
	scene.InitNode(c)
	return c
}

func (c *ClipPlane) NodeType() *types.Type { return ClipPlaneType }

// SetPlane sets the [ClipPlane.Plane].
func (c *ClipPlane) SetPlane(p math32.Plane) *ClipPlane {
	c.Plane = p
	c.Touch()
	return c
}

func (c *ClipPlane) DoAction(a scene.Action) {
	if !c.On {
		return
	}
	st := a.AsAction().State()
	mm := elements.ModelMatrix(st)
	elements.AddClipPlane(st, c.NodeID(), c.Plane.MulMatrix4(&mm))
	elements.AddCullPlane(st, c.Plane)
}
