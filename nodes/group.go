// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Group is a node with an ordered list of children, which are traversed
// in order. The state changes made by children are seen by the children
// after them and by the nodes after the group.
type Group struct {
	scene.NodeBase
}

// NewGroup returns a new group with the given children.
func NewGroup(children ...scene.Node) *Group {
	g := &Group{}
	scene.InitNode(g)
	g.InitChildren()
	g.AddChildren(children...)
	return g
}

func (g *Group) NodeType() *types.Type { return GroupType }

// AffectsState returns whether any of the children affects the state.
func (g *Group) AffectsState() bool {
	cl := g.Children()
	for i := range cl.Len() {
		if cl.Get(i).AffectsState() {
			return true
		}
	}
	return false
}

// DoAction traverses the children, only those leading to the applied
// paths and those affecting the state when in a path.
func (g *Group) DoAction(a scene.Action) {
	code, indices := a.AsAction().PathCode()
	if code == scene.InPath {
		g.Children().TraverseInPath(a, indices)
		return
	}
	g.Children().TraverseAll(a)
}

// AddChildren appends the given children.
func (g *Group) AddChildren(children ...scene.Node) *Group {
	for _, c := range children {
		g.Children().Append(c)
	}
	return g
}

// InsertChild inserts a child before the given index.
func (g *Group) InsertChild(n scene.Node, at int) *Group {
	g.Children().Insert(n, at)
	return g
}

// RemoveChild removes the first occurrence of the given child, and
// returns whether it was found.
func (g *Group) RemoveChild(n scene.Node) bool {
	i := g.Children().Find(n)
	if i < 0 {
		return false
	}
	g.Children().Remove(i)
	return true
}

// ReplaceChild replaces the first occurrence of old with n, and returns
// whether it was found.
func (g *Group) ReplaceChild(old, n scene.Node) bool {
	i := g.Children().Find(old)
	if i < 0 {
		return false
	}
	g.Children().Set(i, n)
	return true
}

// Child returns the child at the given index.
func (g *Group) Child(i int) scene.Node {
	return g.Children().Get(i)
}

// NumChildren returns the number of children.
func (g *Group) NumChildren() int {
	return g.Children().Len()
}
