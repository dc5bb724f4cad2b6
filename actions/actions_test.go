// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package actions_test

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

// recorder returns a callback action recording the names of the nodes
// its pre callbacks are called on.
func recorder() (*actions.CallbackAction, *[]string) {
	var names []string
	ca := actions.NewCallbackAction()
	ca.AddPreCallback(scene.NodeBaseType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		names = append(names, n.AsNode().Name)
		return actions.Continue
	})
	return ca, &names
}

func TestCallbackAll(t *testing.T) {
	sw := named(nodes.NewSwitch(named(nodes.NewCube(), "B"), named(nodes.NewCube(), "C")), "Switch")
	root := named(nodes.NewGroup(named(nodes.NewInfo(), "A"), sw), "Root")
	root.Ref()

	ca, names := recorder()
	assert.False(t, ca.IsCallbackAll())
	ca.Apply(root)
	assert.Equal(t, []string{"Root", "A", "Switch"}, *names)

	*names = nil
	ca.SetCallbackAll(true)
	ca.Apply(root)
	assert.Equal(t, []string{"Root", "A", "Switch", "B", "C"}, *names)

	*names = nil
	ca.SetCallbackAll(false)
	sw.SetWhich(1)
	ca.Apply(root)
	assert.Equal(t, []string{"Root", "A", "Switch", "C"}, *names)
}

func TestResponses(t *testing.T) {
	c1 := named(nodes.NewCube(), "c1")
	g1 := named(nodes.NewGroup(c1), "g1")
	c2 := named(nodes.NewCube(), "c2")
	g2 := named(nodes.NewGroup(c2), "g2")
	root := named(nodes.NewGroup(g1, g2), "root")

	ca, names := recorder()
	var post []string
	ca.AddPostCallback(scene.NodeBaseType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		post = append(post, n.AsNode().Name)
		return actions.Prune
	})
	ca.AddPreCallback(nodes.GroupType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		if n == g1 {
			return actions.Prune
		}
		return actions.Continue
	})
	// a later Continue does not undo a Prune
	ca.AddPreCallback(nodes.GroupType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		return actions.Continue
	})
	ca.Apply(root)
	assert.Equal(t, []string{"root", "g1", "g2", "c2"}, *names, "prune skips children but not siblings")
	assert.Equal(t, []string{"g1", "c2", "g2", "root"}, post, "post callbacks run on pruned nodes")
	assert.Equal(t, actions.Prune, ca.CurrentResponse(), "the last response is kept")

	*names = nil
	post = nil
	ca.AddPreCallback(nodes.CubeType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		return actions.Abort
	})
	ca.AddPreCallback(nodes.CubeType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		t.Error("callback after abort")
		return actions.Continue
	})
	ca.Apply(root)
	assert.Equal(t, []string{"root", "g1", "g2", "c2"}, *names)
	assert.Equal(t, []string{"g1"}, post, "no callbacks after abort")
	assert.True(t, ca.HasTerminated())
	assert.Equal(t, actions.Abort, ca.CurrentResponse())
}

func TestTailCallbacks(t *testing.T) {
	cube := named(nodes.NewCube(), "cube")
	sep := named(nodes.NewSeparator(nodes.NewTransform().SetTranslation(1, 0, 0), cube), "sep")
	root := named(nodes.NewGroup(nodes.NewCube(), sep), "root")
	p := scene.NewPath(root)
	require.NoError(t, p.AppendNode(sep))
	require.NoError(t, p.AppendNode(cube))

	ca, names := recorder()
	var tails []string
	var matrix math32.Matrix4
	ca.AddPreTailCallback(func(a *actions.CallbackAction, n scene.Node) actions.Response {
		tails = append(tails, "pre:"+n.AsNode().Name)
		matrix = a.ModelMatrix()
		assert.Equal(t, n, a.CurPathTail())
		return actions.Continue
	})
	ca.AddPostTailCallback(func(a *actions.CallbackAction, n scene.Node) actions.Response {
		tails = append(tails, "post:"+n.AsNode().Name)
		return actions.Continue
	})
	ca.ApplyPath(p)
	assert.Equal(t, []string{"root", "sep", "", "cube"}, *names)
	assert.Equal(t, []string{"pre:cube", "post:cube"}, tails)
	assert.Equal(t, *math32.Translation4(1, 0, 0), matrix)

	tails = nil
	ca.Apply(root)
	assert.Empty(t, tails, "no tail without a path")
}

func TestPrimitives(t *testing.T) {
	cube := nodes.NewCube().SetSize(2, 4, 6)
	coords := nodes.NewCoordinate(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0))
	root := nodes.NewSeparator(cube, coords, nodes.NewLineSet(), nodes.NewPointSet())

	ca := actions.NewCallbackAction()
	assert.False(t, ca.ShouldGeneratePrimitives(cube))
	ntri := 0
	var box math32.Box3
	box.SetEmpty()
	ca.AddTriangleCallback(nodes.ShapeType, func(a *actions.CallbackAction, n scene.Node, v1, v2, v3 *actions.PrimitiveVertex) {
		ntri++
		for _, v := range []*actions.PrimitiveVertex{v1, v2, v3} {
			box.ExpandByPoint(v.Point)
			assert.InDelta(t, 1, v.Normal.Length(), 1e-6)
		}
	})
	var segs [][2]math32.Vector3
	ca.AddLineSegmentCallback(nodes.LineSetType, func(a *actions.CallbackAction, n scene.Node, v1, v2 *actions.PrimitiveVertex) {
		segs = append(segs, [2]math32.Vector3{v1.Point, v2.Point})
	})
	npts := 0
	ca.AddPointCallback(nodes.PointSetType, func(a *actions.CallbackAction, n scene.Node, v *actions.PrimitiveVertex) {
		npts++
	})
	assert.True(t, ca.ShouldGeneratePrimitives(cube))
	ca.Apply(root)
	assert.Equal(t, 12, ntri)
	assert.Equal(t, math32.B3(-1, -2, -3, 1, 2, 3), box)
	assert.Equal(t, [][2]math32.Vector3{{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0)}, {math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0)}}, segs)
	assert.Equal(t, 3, npts)
}

func TestStateInCallbacks(t *testing.T) {
	light := nodes.NewDirectionalLight()
	inside := named(nodes.NewCube(), "inside")
	outside := named(nodes.NewCube(), "outside")
	clip := nodes.NewClipPlane()
	root := nodes.NewGroup(nodes.NewSeparator(light, clip, inside), outside)

	ca := actions.NewCallbackAction()
	lights := map[string]int{}
	planes := map[string]int{}
	ca.AddPreCallback(nodes.CubeType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		lights[n.AsNode().Name] = len(a.Lights())
		planes[n.AsNode().Name] = len(a.ClipPlanes())
		return actions.Continue
	})
	ca.Apply(root)
	assert.Equal(t, map[string]int{"inside": 1, "outside": 0}, lights)
	assert.Equal(t, map[string]int{"inside": 1, "outside": 0}, planes)

	light.SetOn(false)
	ca.Apply(root)
	assert.Equal(t, 0, lights["inside"])
}

func TestCulling(t *testing.T) {
	left := named(nodes.NewCube(), "left")
	right := named(nodes.NewCube(), "right")
	sepLeft := nodes.NewSeparator(nodes.NewTransform().SetTranslation(-10, 0, 0), left).SetCulling(true)
	sepRight := nodes.NewSeparator(nodes.NewTransform().SetTranslation(10, 0, 0), right).SetCulling(true)
	root := nodes.NewGroup(nodes.NewClipPlane(), sepLeft, sepRight)

	ca, names := recorder()
	ntri := 0
	ca.AddTriangleCallback(nodes.CubeType, func(a *actions.CallbackAction, n scene.Node, v1, v2, v3 *actions.PrimitiveVertex) {
		ntri++
	})
	ca.Apply(root)
	assert.NotContains(t, *names, "left")
	assert.Contains(t, *names, "right")
	assert.Equal(t, 12, ntri)
	assert.Equal(t, math32.B3(-11, -1, -1, -9, 1, 1), sepLeft.LocalBox())

	sepLeft.SetCulling(false)
	*names = nil
	ntri = 0
	ca.Apply(root)
	assert.Contains(t, *names, "left")
	assert.Equal(t, 12, ntri, "the shape itself is culled")
}

func TestBoundingBox(t *testing.T) {
	sw := nodes.NewSwitch(nodes.NewTransform().SetTranslation(100, 0, 0))
	sep := nodes.NewSeparator(nodes.NewTransform().SetTranslation(5, 0, 0), nodes.NewCube())
	root := nodes.NewGroup(sw, sep, nodes.NewInfo("note"), nodes.NewCube().SetSize(1, 1, 1))

	ba := actions.NewBoundingBoxAction()
	assert.True(t, ba.Box().IsEmpty())
	ba.Apply(root)
	assert.Equal(t, math32.B3(-0.5, -1, -1, 6, 1, 1), ba.Box(), "the separator isolates its transform")
	assert.Equal(t, math32.Vec3(2.5, 0, 0), ba.Center())

	p := scene.NewPath(root)
	require.NoError(t, p.AppendNode(sep))
	ba.ApplyPath(p)
	assert.Equal(t, math32.B3(4, -1, -1, 6, 1, 1), ba.Box())

	// a switch does not isolate the state of its children
	sw.SetWhich(0)
	ba.Apply(root)
	assert.Equal(t, math32.B3(99.5, -1, -1, 106, 1, 1), ba.Box())
	ba.ApplyPath(p)
	assert.Equal(t, math32.B3(104, -1, -1, 106, 1, 1), ba.Box(), "state before the path is traversed")
}

func TestSearch(t *testing.T) {
	c1 := named(nodes.NewCube(), "c1")
	c2 := named(nodes.NewCube(), "c2")
	ls := named(nodes.NewLineSet(), "ls")
	hidden := named(nodes.NewCube(), "hidden")
	sep := named(nodes.NewSeparator(c2, ls), "sep")
	root := named(nodes.NewGroup(c1, sep, nodes.NewSwitch(hidden)), "root")

	sa := actions.NewSearchAction()
	sa.SetName("c2")
	sa.Apply(root)
	require.True(t, sa.IsFound())
	assert.Equal(t, "root/sep/c2", sa.Path().String())

	sa.Reset()
	sa.SetType(nodes.CubeType, false)
	sa.Interest = actions.All
	sa.Apply(root)
	assert.Len(t, sa.Paths(), 2)
	sa.SearchingAll = true
	sa.Apply(root)
	assert.Len(t, sa.Paths(), 3)

	sa.Reset()
	sa.SetType(nodes.ShapeType, true)
	sa.Interest = actions.Last
	sa.Apply(root)
	require.NotNil(t, sa.Path())
	assert.Equal(t, ls, sa.Path().Tail())
	assert.True(t, sa.Path().IsAuditing())

	sa.Reset()
	sa.SetNode(hidden)
	sa.Apply(root)
	assert.Nil(t, sa.Path())
	sa.SearchingAll = true
	sa.Apply(root)
	require.NotNil(t, sa.Path())
	assert.Equal(t, hidden, sa.Path().Tail())

	sa.Reset()
	sa.SetNode(c1)
	sa.SetName("other")
	sa.Apply(root)
	assert.Nil(t, sa.Path(), "all criteria must match")
}
