// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNodeType  = scene.NodeTypes.AddType("scene_test.testNode", scene.NodeBaseType, nil)
	otherNodeType = scene.NodeTypes.AddType("scene_test.otherNode", testNodeType, nil)
)

// testNode records itself in a recordAction, and traverses its children
// following the path code of the action.
type testNode struct {
	scene.NodeBase
	affects bool

	// all makes the node traverse all its children even in a path.
	all bool

	// onVisit is called when the node is traversed.
	onVisit func()
}

func (n *testNode) NodeType() *types.Type { return testNodeType }

func (n *testNode) AffectsState() bool { return n.affects }

func (n *testNode) DoAction(a scene.Action) {
	if ra, ok := a.(*recordAction); ok {
		ra.visited = append(ra.visited, n.Name)
		ra.codes = append(ra.codes, ra.CurPathCode())
	}
	if n.onVisit != nil {
		n.onVisit()
	}
	cl := n.Children()
	if cl == nil {
		return
	}
	code, indices := a.AsAction().PathCode()
	if code == scene.InPath && !n.all {
		cl.TraverseInPath(a, indices)
		return
	}
	cl.TraverseAll(a)
}

// otherNode is derived from testNode.
type otherNode struct {
	testNode
}

func (n *otherNode) NodeType() *types.Type { return otherNodeType }

// hiddenNode hides its children.
type hiddenNode struct {
	testNode
}

func (n *hiddenNode) HidesChildren() bool { return true }

func leaf(name string, affects bool) *testNode {
	n := &testNode{affects: affects}
	scene.InitNode(n)
	n.SetName(name)
	return n
}

func group(name string, children ...scene.Node) *testNode {
	n := leaf(name, true)
	n.InitChildren()
	for _, c := range children {
		n.Children().Append(c)
	}
	return n
}

var recordActionType = scene.NewActionType("scene_test.recordAction", scene.ActionBaseType)

type recordAction struct {
	scene.ActionBase
	visited []string
	codes   []scene.PathCode
}

func newRecordAction() *recordAction {
	ra := &recordAction{}
	scene.InitAction(ra, recordActionType)
	return ra
}

func (ra *recordAction) run(f func()) []string {
	ra.visited = nil
	ra.codes = nil
	f()
	return ra.visited
}

// testGraph is:
//
//	root
//	├── a (affects state)
//	├── b
//	├── g
//	│   ├── c (affects state)
//	│   ├── d
//	│   ├── e
//	│   │   └── e1
//	│   └── f (affects state)
//	└── z (affects state)
type testGraph struct {
	root, a, b, g, c, d, e, e1, f, z *testNode
}

func newTestGraph() *testGraph {
	tg := &testGraph{}
	tg.a = leaf("a", true)
	tg.b = leaf("b", false)
	tg.c = leaf("c", true)
	tg.d = leaf("d", false)
	tg.e1 = leaf("e1", false)
	tg.e = group("e", tg.e1)
	tg.e.affects = false
	tg.f = leaf("f", true)
	tg.z = leaf("z", true)
	tg.g = group("g", tg.c, tg.d, tg.e, tg.f)
	tg.root = group("root", tg.a, tg.b, tg.g, tg.z)
	tg.root.Ref()
	return tg
}

func (tg *testGraph) pathToE1(t *testing.T) *scene.Path {
	p := scene.NewPath(tg.root)
	require.NoError(t, p.AppendNode(tg.g))
	require.NoError(t, p.AppendNode(tg.e))
	require.NoError(t, p.AppendIndex(0))
	return p
}

func TestApplyNode(t *testing.T) {
	tg := newTestGraph()
	ra := newRecordAction()
	got := ra.run(func() { ra.Apply(tg.root) })
	assert.Equal(t, []string{"root", "a", "b", "g", "c", "d", "e", "e1", "f", "z"}, got)
	for _, c := range ra.codes {
		assert.Equal(t, scene.NoPath, c)
	}
	assert.Equal(t, 1, tg.root.RefCount())
	assert.Equal(t, 0, ra.CurPath().FullLen(), "current path is restored")
}

func TestApplyPath(t *testing.T) {
	tg := newTestGraph()
	ra := newRecordAction()

	p := scene.NewPath(tg.root)
	require.NoError(t, p.AppendNode(tg.g))
	require.NoError(t, p.AppendNode(tg.e))
	got := ra.run(func() { ra.ApplyPath(p) })
	assert.Equal(t, []string{"root", "a", "g", "c", "e", "e1"}, got)
	assert.Equal(t, []scene.PathCode{scene.InPath, scene.OffPath, scene.InPath, scene.OffPath, scene.BelowPath, scene.BelowPath}, ra.codes)

	// nodes traversing all children visit state-affecting nodes after the path
	tg.root.all = true
	tg.g.all = true
	got = ra.run(func() { ra.ApplyPath(p) })
	assert.Equal(t, []string{"root", "a", "g", "c", "e", "e1", "f", "z"}, got)

	// a path of one node is traversed fully
	got = ra.run(func() { ra.ApplyPath(scene.NewPath(tg.g)) })
	assert.Equal(t, []string{"g", "c", "d", "e", "e1", "f"}, got)
	assert.Equal(t, scene.BelowPath, ra.codes[0])
}

func TestApplyPathList(t *testing.T) {
	tg := newTestGraph()
	ra := newRecordAction()

	pf := scene.NewPath(tg.root)
	require.NoError(t, pf.AppendNode(tg.g))
	require.NoError(t, pf.AppendNode(tg.f))
	pc := scene.NewPath(tg.root)
	require.NoError(t, pc.AppendNode(tg.g))
	require.NoError(t, pc.AppendNode(tg.c))
	pdup := pc.Copy(0, 0)
	pe1 := tg.pathToE1(t)
	pe := pe1.Copy(0, 3)

	got := ra.run(func() { ra.ApplyPathList(scene.PathList{pf, pe1, pc, pdup, pe}, false) })
	assert.Equal(t, []string{"root", "a", "g", "c", "e", "e1", "f"}, got)

	// separate heads are traversed one after the other
	pz := scene.NewPath(tg.z)
	got = ra.run(func() { ra.ApplyPathList(scene.PathList{pz, pc}, false) })
	assert.ElementsMatch(t, []string{"root", "a", "g", "c", "z"}, got)
}

func TestPathListSort(t *testing.T) {
	tg := newTestGraph()
	pe1 := tg.pathToE1(t)
	pg := pe1.Copy(0, 2)
	pa := scene.NewPath(tg.root)
	require.NoError(t, pa.AppendNode(tg.a))

	pl := scene.PathList{pe1, pg, pa}
	pl.Sort()
	assert.Equal(t, scene.PathList{pa, pg, pe1}, pl)
	pl = pl.Uniquify()
	assert.Equal(t, scene.PathList{pa, pg}, pl)
	assert.Equal(t, 1, pl.Find(pe1.Copy(0, 2)))
}

func TestPath(t *testing.T) {
	tg := newTestGraph()
	p := tg.pathToE1(t)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 4, p.FullLen())
	assert.Equal(t, tg.root, p.Head())
	assert.Equal(t, tg.e1, p.Tail())
	assert.Equal(t, tg.e, p.NodeFromTail(1))
	assert.Equal(t, 2, p.IndexFromTail(1))
	assert.Equal(t, -1, p.Index(0))
	assert.Equal(t, "root/g/e/e1", p.String())
	assert.Panics(t, func() { p.Node(4) })

	assert.Error(t, p.AppendIndex(0), "e1 has no children")
	assert.Error(t, p.AppendNode(tg.a), "a is not a child of e1")

	pg := p.Copy(0, 2)
	assert.True(t, p.ContainsPath(pg))
	assert.False(t, pg.ContainsPath(p))
	assert.True(t, p.ContainsNode(tg.g))
	assert.Equal(t, 2, p.FindNode(tg.e))

	pz := scene.NewPath(tg.root)
	require.NoError(t, pz.AppendNode(tg.z))
	assert.Equal(t, 0, p.FindFork(pz))
	assert.Equal(t, 1, p.FindFork(pg))
	assert.Equal(t, -1, p.FindFork(scene.NewPath(tg.g)))

	tail := scene.NewPath(tg.e)
	require.NoError(t, tail.AppendNode(tg.e1))
	require.NoError(t, pg.AppendPath(tail))
	assert.True(t, pg.Equal(p))

	p.Pop()
	assert.Equal(t, tg.e, p.Tail())
	p.Truncate(1)
	assert.Equal(t, tg.root, p.Tail())
}

func TestHiddenChildren(t *testing.T) {
	h := &hiddenNode{}
	scene.InitNode(h)
	h.SetName("h")
	h.InitChildren()
	part := leaf("part", false)
	h.Children().Append(part)
	root := group("root", h)

	p := scene.NewPath(root)
	require.NoError(t, p.AppendNode(h))
	require.NoError(t, p.AppendNode(part))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 3, p.FullLen())
	assert.Equal(t, h, p.Tail())
	assert.Equal(t, 3, p.Full().Len())
	assert.Equal(t, part, p.Full().Tail())
}

func TestPathAuditing(t *testing.T) {
	tg := newTestGraph()
	p := tg.pathToE1(t)
	assert.Equal(t, 1, tg.g.Children().NumPathAuditors())

	n := leaf("n", false)
	tg.g.Children().Insert(n, 0)
	assert.Equal(t, 3, p.Index(2))
	assert.Equal(t, tg.e, p.Node(2))
	tg.g.Children().Insert(leaf("n2", false), 4)
	assert.Equal(t, 3, p.Index(2), "insert after the path does not change it")

	tg.g.Children().Remove(0)
	assert.Equal(t, 2, p.Index(2))
	tg.root.Children().Remove(0)
	assert.Equal(t, 1, p.Index(1))
	assert.Equal(t, tg.g, p.Node(1))

	// replacing a node on the path replaces the rest of the path
	e2 := leaf("e2", false)
	tg.g.Children().Set(2, e2)
	assert.Equal(t, 3, p.FullLen())
	assert.Equal(t, e2, p.Tail())

	// removing a node on the path truncates it at the parent
	tg.root.Children().Remove(1)
	assert.Equal(t, 1, p.FullLen())
	assert.Equal(t, 0, tg.g.Children().NumPathAuditors())

	// temporary paths do not audit
	tp := scene.NewTempPath(4)
	tp.SimpleAppend(tg.root, -1)
	tp.SimpleAppend(tg.b, 0)
	tg.root.Children().Insert(leaf("x", false), 0)
	assert.Equal(t, 0, tp.Index(1))
	assert.False(t, tp.IsAuditing())
}

func TestChildListTruncate(t *testing.T) {
	tg := newTestGraph()
	p := tg.pathToE1(t)
	id := tg.root.NodeID()
	tg.g.Children().Truncate(3)
	assert.Equal(t, 4, p.FullLen())
	assert.NotEqual(t, id, tg.root.NodeID(), "changes propagate to ancestors")
	assert.Equal(t, 0, tg.f.RefCount())

	tg.g.Children().Truncate(1)
	assert.Equal(t, 2, p.FullLen())
	assert.Equal(t, tg.g, p.Tail())
	assert.Equal(t, []scene.Node{tg.c}, tg.g.Children().Nodes())
}

func TestSharedNode(t *testing.T) {
	shared := leaf("shared", true)
	g1 := group("g1", shared)
	g2 := group("g2", shared, shared)
	root := group("root", g1, g2)
	assert.Equal(t, 3, shared.RefCount())
	assert.ElementsMatch(t, []scene.Node{g1, g2}, shared.Parents())

	ids := []uint64{root.NodeID(), g1.NodeID(), g2.NodeID()}
	shared.Touch()
	assert.NotEqual(t, ids[0], root.NodeID())
	assert.NotEqual(t, ids[1], g1.NodeID())
	assert.NotEqual(t, ids[2], g2.NodeID())

	ra := newRecordAction()
	got := ra.run(func() { ra.Apply(root) })
	assert.Equal(t, []string{"root", "g1", "shared", "g2", "shared", "shared"}, got)

	g2.Children().Remove(0)
	assert.Equal(t, 2, shared.RefCount())
	assert.ElementsMatch(t, []scene.Node{g1, g2}, shared.Parents())
}

func TestMethodDispatch(t *testing.T) {
	derivedType := scene.NewActionType("scene_test.derivedAction", recordActionType)
	var got []string
	derivedType.AddMethod(otherNodeType, func(a scene.Action, n scene.Node) {
		got = append(got, "other:"+n.AsNode().Name)
	})

	o := &otherNode{}
	scene.InitNode(o)
	o.SetName("o")
	root := group("root", leaf("a", false), o)

	da := &recordAction{}
	scene.InitAction(da, derivedType)
	da.Apply(root)
	assert.Equal(t, []string{"root", "a"}, da.visited)
	assert.Equal(t, []string{"other:o"}, got)

	// the base action still runs the generic behavior on the derived node type
	ra := newRecordAction()
	assert.Equal(t, []string{"root", "a", "o"}, ra.run(func() { ra.Apply(root) }))
}

func TestTerminate(t *testing.T) {
	tg := newTestGraph()
	ra := newRecordAction()
	tg.c.onVisit = func() { ra.SetTerminated(true) }
	got := ra.run(func() { ra.Apply(tg.root) })
	assert.Equal(t, []string{"root", "a", "b", "g", "c"}, got)
	assert.True(t, ra.HasTerminated())
	ra.Apply(tg.a)
	assert.False(t, ra.HasTerminated(), "apply resets termination")
}

func TestNestedApply(t *testing.T) {
	tg := newTestGraph()
	ra := newRecordAction()
	p := tg.pathToE1(t)
	var inner []string
	tg.c.onVisit = func() {
		visited := ra.visited
		ra.visited = nil
		ra.Apply(tg.e)
		inner = ra.visited
		ra.visited = visited
		assert.Equal(t, scene.AppliedPath, ra.WhatAppliedTo())
	}
	got := ra.run(func() { ra.ApplyPath(p) })
	assert.Equal(t, []string{"e", "e1"}, inner)
	assert.Equal(t, []string{"root", "a", "g", "c", "e", "e1"}, got)
}

func TestMutationCheck(t *testing.T) {
	var buf bytes.Buffer
	def := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(def)

	tg := newTestGraph()
	tg.a.onVisit = func() { tg.root.Children().Remove(1) }
	ra := newRecordAction()
	got := ra.run(func() { ra.Apply(tg.root) })
	assert.Contains(t, buf.String(), "children changed during traversal")
	assert.Equal(t, []string{"root", "a", "g", "c", "d", "e", "e1", "f", "z"}, got, "traversal goes on with the changed list")
}

func TestWalk(t *testing.T) {
	tg := newTestGraph()
	var names []string
	scene.WalkDown(tg.root, func(n scene.Node, p *scene.Path) bool {
		names = append(names, n.AsNode().Name)
		if n == tg.e1 {
			assert.Equal(t, "root/g/e/e1", p.String())
		}
		return n != tg.g
	})
	assert.Equal(t, []string{"root", "a", "b", "g", "z"}, names)

	n, p := scene.FindName(tg.root, "e1")
	assert.Equal(t, tg.e1, n)
	assert.True(t, p.Equal(tg.pathToE1(t)))
	assert.True(t, p.IsAuditing())

	var up []string
	scene.WalkUp(tg.e1, func(n scene.Node) bool {
		up = append(up, n.AsNode().Name)
		return scene.Continue
	})
	assert.Equal(t, []string{"e1", "e", "g", "root"}, up)
}
