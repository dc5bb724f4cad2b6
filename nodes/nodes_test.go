// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes_test

import (
	"testing"

	"cogentcore.org/scenegraph/actions"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/nodes"
	"cogentcore.org/scenegraph/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named[T scene.Node](n T, name string) T {
	n.AsNode().SetName(name)
	return n
}

func visited(root scene.Node, all bool) []string {
	var names []string
	ca := actions.NewCallbackAction()
	ca.SetCallbackAll(all)
	ca.AddPreCallback(scene.NodeBaseType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		names = append(names, n.AsNode().Name)
		return actions.Continue
	})
	ca.Apply(root)
	return names
}

func TestSwitchTraversal(t *testing.T) {
	sw := named(nodes.NewSwitch(named(nodes.NewGroup(), "B"), named(nodes.NewGroup(), "C")), "Switch")
	root := named(nodes.NewGroup(named(nodes.NewGroup(), "A"), sw), "Root")

	assert.Equal(t, []string{"Root", "A", "Switch"}, visited(root, false))
	assert.Equal(t, []string{"Root", "A", "Switch", "B", "C"}, visited(root, true))

	sw.SetWhich(0)
	assert.Equal(t, []string{"Root", "A", "Switch", "B"}, visited(root, false))
	sw.SetWhich(nodes.SwitchAll)
	assert.Equal(t, []string{"Root", "A", "Switch", "B", "C"}, visited(root, false))
	sw.SetWhich(5)
	assert.Equal(t, []string{"Root", "A", "Switch"}, visited(root, false), "out of range index")
}

func TestSwitchInherit(t *testing.T) {
	sw1 := named(nodes.NewSwitch(named(nodes.NewInfo(), "a"), named(nodes.NewInfo(), "b")), "sw1")
	sw2 := named(nodes.NewSwitch(named(nodes.NewInfo(), "c"), named(nodes.NewInfo(), "d")), "sw2")
	sw2.SetWhich(nodes.SwitchInherit)
	root := named(nodes.NewGroup(sw1, sw2), "root")

	assert.Equal(t, []string{"root", "sw1", "sw2"}, visited(root, false), "inherits none")
	sw1.SetWhich(1)
	assert.Equal(t, []string{"root", "sw1", "b", "sw2", "d"}, visited(root, false))

	sw3 := named(nodes.NewSwitch(named(nodes.NewInfo(), "e")), "sw3")
	sw3.SetWhich(nodes.SwitchInherit)
	root.AddChildren(sw3)
	assert.Equal(t, []string{"root", "sw1", "b", "sw2", "d", "sw3", "e"}, visited(root, false), "index wraps around")

	sw1.SetWhich(0)
	assert.Equal(t, []string{"root", "sw1", "a", "sw2", "c", "sw3", "e"}, visited(nodes.NewSeparator(root), false)[1:])
}

func TestAffectsState(t *testing.T) {
	tr := nodes.NewTransform()
	cube := nodes.NewCube()
	assert.True(t, tr.AffectsState())
	assert.False(t, cube.AffectsState())
	assert.False(t, nodes.NewInfo().AffectsState())
	assert.False(t, nodes.NewSeparator(tr).AffectsState())
	assert.False(t, nodes.NewGroup(cube).AffectsState())
	assert.True(t, nodes.NewGroup(cube, tr).AffectsState())

	sw := nodes.NewSwitch(cube, tr)
	assert.False(t, sw.AffectsState())
	sw.SetWhich(0)
	assert.False(t, sw.AffectsState())
	sw.SetWhich(1)
	assert.True(t, sw.AffectsState())
	sw.SetWhich(nodes.SwitchAll)
	assert.True(t, sw.AffectsState())
	sw.SetWhich(nodes.SwitchInherit)
	assert.True(t, sw.AffectsState())
}

func TestTransform(t *testing.T) {
	tr := nodes.NewTransform().SetTranslation(1, 2, 3).SetScale(2, 2, 2)
	p := math32.Vec3(1, 0, 0).MulMatrix4AsPoint(tr.Matrix())
	assert.Equal(t, math32.Vec3(3, 2, 3), p)

	tr = nodes.NewTransform().SetRotation(90)
	p = math32.Vec3(1, 0, 0).MulMatrix4AsPoint(tr.Matrix())
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 1, p.Y, 1e-6)

	id := tr.NodeID()
	tr.SetScale(1, 1, 1)
	assert.NotEqual(t, id, tr.NodeID())
}

func TestGroupEdit(t *testing.T) {
	a, b, c := nodes.NewInfo(), nodes.NewInfo(), nodes.NewInfo()
	g := nodes.NewGroup(a, b)
	g.InsertChild(c, 1)
	assert.Equal(t, 3, g.NumChildren())
	assert.Equal(t, scene.Node(c), g.Child(1))
	assert.Equal(t, []scene.Node{g}, c.Parents())

	assert.True(t, g.RemoveChild(c))
	assert.False(t, g.RemoveChild(c))
	assert.Empty(t, c.Parents())

	assert.True(t, g.ReplaceChild(b, c))
	assert.Equal(t, scene.Node(c), g.Child(1))
	assert.False(t, g.ReplaceChild(b, a))
}

func TestNew(t *testing.T) {
	for _, nm := range []string{"group", "separator", "switch", "transform", "directional-light", "clip-plane", "coordinate", "info", "cube", "point-set", "line-set", "nodes.Cube"} {
		n := nodes.New(nm)
		require.NotNil(t, n, nm)
		assert.NotNil(t, n.AsNode().This, nm)
	}
	assert.Nil(t, nodes.New("shape"), "abstract type")
	assert.Nil(t, nodes.New("teapot"))

	sw, ok := nodes.New("switch").(*nodes.Switch)
	require.True(t, ok)
	assert.Equal(t, nodes.SwitchNone, sw.Which)
	assert.Equal(t, math32.Vec3(2, 2, 2), nodes.New("cube").(*nodes.Cube).Size)
}
