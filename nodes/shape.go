// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/scenegraph/actions"
	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/state"
	"cogentcore.org/scenegraph/types"
)

// Shape is embedded by the shape nodes, which have geometry and do not
// change the state.
type Shape struct {
	scene.NodeBase
}

func (s *Shape) AffectsState() bool { return false }

// shaper is implemented by all the shape nodes.
type shaper interface {
	scene.Node

	// LocalBox returns the bounding box in object space.
	LocalBox(st *state.State) math32.Box3

	// generate calls the primitive callbacks of the action.
	generate(a *actions.CallbackAction)
}

func shapeBoundingBox(s shaper, a *actions.BoundingBoxAction) {
	a.ExtendBy(s.LocalBox(a.State()))
}

// shapeCallback generates the primitives of the shape when callbacks
// want them and the shape is not culled.
func shapeCallback(s shaper, a *actions.CallbackAction) {
	if !a.ShouldGeneratePrimitives(s) {
		return
	}
	st := a.State()
	if elements.CullTest(st, s.LocalBox(st), true) {
		return
	}
	s.generate(a)
}

// Cube is an axis aligned box centered on the origin.
type Cube struct {
	Shape

	// Size is the size of the box along each axis.
	Size math32.Vector3
}

// NewCube returns a new cube of size 2.
func NewCube() *Cube {
	c := &Cube{Size: math32.Vec3(2, 2, 2)}
	scene.InitNode(c)
	return c
}

func (c *Cube) NodeType() *types.Type { return CubeType }

// SetSize sets the [Cube.Size].
func (c *Cube) SetSize(x, y, z float32) *Cube {
	c.Size.Set(x, y, z)
	c.Touch()
	return c
}

func (c *Cube) LocalBox(st *state.State) math32.Box3 {
	h := c.Size.MulScalar(0.5)
	return math32.B3(-h.X, -h.Y, -h.Z, h.X, h.Y, h.Z)
}

func (c *Cube) BoundingBox(a *actions.BoundingBoxAction) { shapeBoundingBox(c, a) }

func (c *Cube) Callback(a *actions.CallbackAction) { shapeCallback(c, a) }

// cubeFaces are the faces of the unit cube, with their corners in
// counter-clockwise order seen from outside.
var cubeFaces = [6]struct {
	normal  math32.Vector3
	corners [4]math32.Vector3
}{
	{math32.Vec3(1, 0, 0), [4]math32.Vector3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{math32.Vec3(-1, 0, 0), [4]math32.Vector3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{math32.Vec3(0, 1, 0), [4]math32.Vector3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{math32.Vec3(0, -1, 0), [4]math32.Vector3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{math32.Vec3(0, 0, 1), [4]math32.Vector3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{math32.Vec3(0, 0, -1), [4]math32.Vector3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
}

// generate makes two triangles per face.
func (c *Cube) generate(a *actions.CallbackAction) {
	h := c.Size.MulScalar(0.5)
	var v [4]actions.PrimitiveVertex
	for _, f := range cubeFaces {
		for i, p := range f.corners {
			v[i] = actions.PrimitiveVertex{Point: math32.Vec3(p.X*h.X, p.Y*h.Y, p.Z*h.Z), Normal: f.normal}
		}
		a.InvokeTriangleCallbacks(c, &v[0], &v[1], &v[2])
		a.InvokeTriangleCallbacks(c, &v[0], &v[2], &v[3])
		if a.HasTerminated() {
			return
		}
	}
}

// coordinatesBox returns the bounding box of the current coordinates.
func coordinatesBox(st *state.State) math32.Box3 {
	box := math32.B3Empty()
	for _, p := range elements.Coordinates(st) {
		box.ExpandByPoint(p)
	}
	return box
}

// PointSet is a set of points at the current coordinates.
type PointSet struct {
	Shape
}

// NewPointSet returns a new point set.
func NewPointSet() *PointSet {
	ps := &PointSet{}
	scene.InitNode(ps)
	return ps
}

func (ps *PointSet) NodeType() *types.Type { return PointSetType }

func (ps *PointSet) LocalBox(st *state.State) math32.Box3 { return coordinatesBox(st) }

func (ps *PointSet) BoundingBox(a *actions.BoundingBoxAction) { shapeBoundingBox(ps, a) }

func (ps *PointSet) Callback(a *actions.CallbackAction) { shapeCallback(ps, a) }

func (ps *PointSet) generate(a *actions.CallbackAction) {
	for _, p := range a.Coordinates() {
		a.InvokePointCallbacks(ps, &actions.PrimitiveVertex{Point: p})
	}
}

// LineSet is a polyline through the current coordinates.
type LineSet struct {
	Shape
}

// NewLineSet returns a new line set.
func NewLineSet() *LineSet {
	ls := &LineSet{}
	scene.InitNode(ls)
	return ls
}

func (ls *LineSet) NodeType() *types.Type { return LineSetType }

func (ls *LineSet) LocalBox(st *state.State) math32.Box3 { return coordinatesBox(st) }

func (ls *LineSet) BoundingBox(a *actions.BoundingBoxAction) { shapeBoundingBox(ls, a) }

func (ls *LineSet) Callback(a *actions.CallbackAction) { shapeCallback(ls, a) }

func (ls *LineSet) generate(a *actions.CallbackAction) {
	pts := a.Coordinates()
	for i := 1; i < len(pts); i++ {
		a.InvokeLineSegmentCallbacks(ls, &actions.PrimitiveVertex{Point: pts[i-1]}, &actions.PrimitiveVertex{Point: pts[i]})
	}
}
