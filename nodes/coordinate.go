// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"slices"

	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Coordinate replaces the current coordinates used by point and line sets.
type Coordinate struct {
	scene.NodeBase

	// Points are the coordinates in object space.
	Points []math32.Vector3
}

// NewCoordinate returns a new coordinate node with the given points.
func NewCoordinate(points ...math32.Vector3) *Coordinate {
	c := &Coordinate{Points: slices.Clone(points)}
	scene.InitNode(c)
	return c
}

func (c *Coordinate) NodeType() *types.Type { return CoordinateType }

// SetPoints sets the [Coordinate.Points].
func (c *Coordinate) SetPoints(points ...math32.Vector3) *Coordinate {
	c.Points = slices.Clone(points)
	c.Touch()
	return c
}

func (c *Coordinate) DoAction(a scene.Action) {
	elements.SetCoordinates(a.AsAction().State(), c.NodeID(), c.Points)
}
