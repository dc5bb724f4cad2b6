// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"log/slog"
	"slices"

	"cogentcore.org/scenegraph/actions"
	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Special values of [Switch.Which].
const (
	// SwitchNone traverses no child.
	SwitchNone int32 = -1

	// SwitchInherit traverses the child selected by the closest switch
	// above that selects a child.
	SwitchInherit int32 = -2

	// SwitchAll traverses all the children.
	SwitchAll int32 = -3
)

// Switch is a group that traverses only one of its children, or none or
// all of them. A [actions.CallbackAction] set to callback all, and a
// [actions.SearchAction] searching all, go into all the children.
type Switch struct {
	Group

	// Which is the index of the child to traverse, or one of
	// [SwitchNone], [SwitchInherit] or [SwitchAll].
	Which int32
}

// NewSwitch returns a new switch with the given children, that traverses
// none of them.
func NewSwitch(children ...scene.Node) *Switch {
	s := &Switch{Which: SwitchNone}
	scene.InitNode(s)
	s.InitChildren()
	s.AddChildren(children...)
	return s
}

func (s *Switch) NodeType() *types.Type { return SwitchType }

// SetWhich sets [Switch.Which].
func (s *Switch) SetWhich(which int32) *Switch {
	s.Which = which
	s.Touch()
	return s
}

// AffectsState returns whether the children that are traversed affect the state.
func (s *Switch) AffectsState() bool {
	switch {
	case s.Which == SwitchNone:
		return false
	case s.Which == SwitchAll:
		return s.Group.AffectsState()
	case s.Which >= 0 && int(s.Which) < s.NumChildren():
		return s.Child(int(s.Which)).AffectsState()
	}
	return true
}

func (s *Switch) DoAction(a scene.Action) {
	ab := a.AsAction()
	st := ab.State()
	idx := s.Which
	n := s.NumChildren()
	if idx == SwitchInherit {
		idx = elements.Switch(st)
		if n > 0 && int(idx) >= n {
			idx %= int32(n)
		}
	} else {
		elements.SetSwitch(st, idx)
	}

	code, indices := ab.PathCode()
	cl := s.Children()
	if idx == SwitchAll || actions.VisitsAllChildren(a) {
		if code == scene.InPath {
			cl.TraverseInPath(a, indices)
		} else {
			cl.TraverseAll(a)
		}
		return
	}
	if idx < 0 {
		return
	}
	if code == scene.InPath {
		if slices.Contains(indices, int(idx)) {
			cl.TraverseIndex(a, int(idx))
		}
		return
	}
	if int(idx) >= n {
		slog.Warn("nodes.Switch: child index out of range", "switch", s.String(), "which", idx, "children", n)
		return
	}
	cl.TraverseIndex(a, int(idx))
}

// Search goes into all the children when searching all.
func (s *Switch) Search(a *actions.SearchAction) {
	if a.SearchingAll {
		s.Children().TraverseAll(a)
		return
	}
	s.DoAction(a)
}
