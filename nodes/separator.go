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

// Separator is a group that saves the traversal state before its
// children and restores it after them, so that state changes made
// below it are not seen outside of it. With Culling on, the children
// are skipped when the bounding box of the separator is outside of the
// cull planes.
type Separator struct {
	Group

	// Culling is whether the separator is skipped when it is culled.
	Culling bool

	bboxID uint64
	bbox   math32.Box3
}

// NewSeparator returns a new separator with the given children.
func NewSeparator(children ...scene.Node) *Separator {
	s := &Separator{}
	scene.InitNode(s)
	s.InitChildren()
	s.AddChildren(children...)
	return s
}

func (s *Separator) NodeType() *types.Type { return SeparatorType }

func (s *Separator) AffectsState() bool { return false }

// SetCulling sets [Separator.Culling].
func (s *Separator) SetCulling(culling bool) *Separator {
	s.Culling = culling
	s.Touch()
	return s
}

func (s *Separator) DoAction(a scene.Action) {
	st := a.AsAction().State()
	st.Push()
	if !s.cullTest(st) {
		s.Group.DoAction(a)
	}
	st.Pop()
}

// BoundingBox traverses the children inside a saved state, without culling.
func (s *Separator) BoundingBox(a *actions.BoundingBoxAction) {
	st := a.State()
	st.Push()
	s.Group.DoAction(a)
	st.Pop()
}

func (s *Separator) cullTest(st *state.State) bool {
	if !s.Culling || elements.CompletelyInside(st) {
		return false
	}
	box := s.LocalBox()
	if box.IsEmpty() {
		return false
	}
	return elements.CullBox(st, box, true)
}

// LocalBox returns the bounding box of the children in the local space
// of the separator. It is computed again only when the separator or
// something below it changed.
func (s *Separator) LocalBox() math32.Box3 {
	if s.bboxID == s.NodeID() {
		return s.bbox
	}
	ba := actions.NewBoundingBoxAction()
	ba.Apply(s)
	s.bbox = ba.Box()
	s.bboxID = s.NodeID()
	return s.bbox
}
