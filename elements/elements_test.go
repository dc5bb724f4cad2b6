// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements_test

import (
	"testing"

	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() *state.State {
	ee := &state.EnabledElements{}
	ee.Enable(elements.ModelMatrixType)
	ee.Enable(elements.CullType)
	ee.Enable(elements.SwitchType)
	ee.Enable(elements.LightType)
	ee.Enable(elements.ClipPlaneType)
	ee.Enable(elements.CoordinateType)
	return state.New(ee)
}

func TestModelMatrix(t *testing.T) {
	st := newState()
	m := elements.ModelMatrix(st)
	assert.True(t, m.IsIdentity())

	st.Push()
	elements.MulModelMatrix(st, 1, math32.Translation4(1, 0, 0))
	elements.MulModelMatrix(st, 2, math32.Scale4(2, 2, 2))
	m = elements.ModelMatrix(st)
	assert.Equal(t, math32.Vec3(3, 0, 0), math32.Vec3(1, 0, 0).MulMatrix4AsPoint(&m))
	e := st.ConstElement(elements.ModelMatrixType.StackIndex).(*elements.ModelMatrixElement)
	assert.Equal(t, []uint64{1, 2}, e.NodeIDs)

	st.Push()
	elements.SetModelMatrix(st, 3, math32.Translation4(0, 5, 0))
	e2 := st.ConstElement(elements.ModelMatrixType.StackIndex).(*elements.ModelMatrixElement)
	assert.Equal(t, []uint64{3}, e2.NodeIDs)
	st.Pop()
	assert.Equal(t, []uint64{1, 2}, e.NodeIDs)
	st.Pop()
	m = elements.ModelMatrixNoCapture(st)
	assert.True(t, m.IsIdentity())

	elements.ResetModelMatrix(st, 4)
	assert.Equal(t, []uint64{4}, st.ConstElement(elements.ModelMatrixType.StackIndex).(*elements.ModelMatrixElement).NodeIDs)
}

func TestAccumulatedMatches(t *testing.T) {
	st := newState()
	mi := elements.ModelMatrixType.StackIndex
	st.Push()
	elements.MulModelMatrix(st, 7, math32.Translation4(1, 0, 0))
	e := st.ConstElement(mi).(*elements.ModelMatrixElement)

	cp := e.CopyMatchInfo()
	require.NotNil(t, cp)
	assert.NotSame(t, e, cp)
	assert.True(t, cp.Matches(e))
	assert.True(t, e.Matches(cp))
	assert.Equal(t, []uint64{7}, cp.(*elements.ModelMatrixElement).NodeIDs)

	elements.MulModelMatrix(st, 8, math32.Translation4(1, 0, 0))
	assert.False(t, cp.Matches(e))

	sw := st.ConstElement(elements.SwitchType.StackIndex)
	assert.False(t, e.Matches(sw))
	st.Pop()
}

func TestAccumulatedCapture(t *testing.T) {
	st := newState()
	elements.MulModelMatrix(st, 1, math32.Translation4(1, 0, 0))

	c := state.NewCache()
	st.Push()
	st.OpenCache(c)
	// pushed inside the cache scope, from a value set outside of it
	elements.MulModelMatrix(st, 2, math32.Translation4(1, 0, 0))
	elements.ModelMatrix(st)
	st.CloseCache()
	st.Pop()
	require.Len(t, c.Elements(), 1)
	assert.Equal(t, []uint64{1}, c.Elements()[0].(*elements.ModelMatrixElement).NodeIDs)
	assert.True(t, c.IsValid(st))

	// a value set inside the scope does not depend on what is below
	c2 := state.NewCache()
	st.Push()
	st.OpenCache(c2)
	elements.SetModelMatrix(st, 3, math32.Identity4())
	elements.ModelMatrix(st)
	st.CloseCache()
	st.Pop()
	assert.Empty(t, c2.Elements())

	elements.MulModelMatrix(st, 9, math32.Identity4())
	assert.False(t, c.IsValid(st))
}

func TestSwitch(t *testing.T) {
	st := newState()
	assert.Equal(t, int32(0), elements.Switch(st))
	st.Push()
	elements.SetSwitch(st, 2)
	assert.Equal(t, int32(2), elements.Switch(st))
	e := st.ConstElement(elements.SwitchType.StackIndex)
	cp := e.CopyMatchInfo()
	assert.True(t, cp.Matches(e))
	st.Push()
	assert.Equal(t, int32(2), elements.Switch(st))
	elements.SetSwitch(st, 5)
	assert.False(t, cp.Matches(st.ConstElement(elements.SwitchType.StackIndex)))
	st.Pop()
	st.Pop()
	assert.Equal(t, int32(0), elements.Switch(st))
}

func TestLightsAndClipPlanes(t *testing.T) {
	st := newState()
	st.Push()
	elements.MulModelMatrix(st, 1, math32.Translation4(2, 0, 0))
	elements.AddLight(st, 10, "sun")
	elements.AddClipPlane(st, 11, math32.NewPlane(math32.Vec3(1, 0, 0), 0))
	st.Push()
	elements.AddLight(st, 12, "lamp")
	lights := elements.Lights(st)
	require.Len(t, lights, 2)
	assert.Equal(t, "sun", lights[0].Node)
	assert.Equal(t, float32(2), lights[0].Matrix[12])
	st.Pop()
	assert.Len(t, elements.Lights(st), 1)
	planes := elements.ClipPlanes(st)
	require.Len(t, planes, 1)
	assert.InDelta(t, -2, planes[0].Off, 1e-5)
	st.Pop()
	assert.Empty(t, elements.Lights(st))
	assert.Empty(t, elements.ClipPlanes(st))
}

func TestCoordinates(t *testing.T) {
	st := newState()
	pts := []math32.Vector3{math32.Vec3(1, 2, 3)}
	elements.SetCoordinates(st, 5, pts)
	ce := st.ConstElement(elements.CoordinateType.StackIndex)
	cp := ce.CopyMatchInfo()
	st.Push()
	assert.Equal(t, pts, elements.Coordinates(st))
	elements.SetCoordinates(st, 6, nil)
	assert.Empty(t, elements.Coordinates(st))
	assert.False(t, cp.Matches(st.ConstElement(elements.CoordinateType.StackIndex)))
	st.Pop()
	assert.Equal(t, pts, elements.Coordinates(st))
	assert.True(t, cp.Matches(st.ConstElement(elements.CoordinateType.StackIndex)))
}

func TestCull(t *testing.T) {
	st := newState()
	assert.True(t, elements.CompletelyInside(st))
	assert.False(t, elements.CullBox(st, math32.B3(-1, -1, -1, 1, 1, 1), false))

	// x >= 0
	elements.AddCullPlane(st, math32.NewPlane(math32.Vec3(1, 0, 0), 0))
	assert.Equal(t, 1, elements.NumCullPlanes(st))
	assert.False(t, elements.CompletelyInside(st))

	assert.True(t, elements.CullTest(st, math32.B3(-3, 0, 0, -2, 1, 1), false))
	assert.False(t, elements.CullTest(st, math32.B3(-1, 0, 0, 1, 1, 1), false))
	// CullTest does not record
	assert.False(t, elements.CullTest(st, math32.B3(1, 0, 0, 2, 1, 1), false))
	assert.False(t, elements.CompletelyInside(st))

	st.Push()
	// box in object space moved to the inside
	elements.MulModelMatrix(st, 1, math32.Translation4(10, 0, 0))
	assert.False(t, elements.CullBox(st, math32.B3(-3, 0, 0, -2, 1, 1), true))
	assert.True(t, elements.CompletelyInside(st))
	// once inside, the plane is not tested again below
	assert.False(t, elements.CullBox(st, math32.B3(-30, 0, 0, -20, 1, 1), false))
	st.Pop()
	assert.False(t, elements.CompletelyInside(st))
	assert.True(t, elements.CullBox(st, math32.B3(-30, 0, 0, -20, 1, 1), false))
}

func TestCullViewVolume(t *testing.T) {
	st := newState()
	pm := &math32.Matrix4{}
	pm.SetOrthographic(-1, 1, 1, -1, 1, 10)
	st.Push()
	elements.SetViewVolume(st, math32.NewFrustumFromMatrix(pm))
	assert.Equal(t, 6, elements.NumCullPlanes(st))
	assert.True(t, elements.CullBox(st, math32.B3(5, 5, -5, 6, 6, -4), false))
	assert.False(t, elements.CullBox(st, math32.B3(-0.5, -0.5, -5, 0.5, 0.5, -4), false))
	assert.True(t, elements.CompletelyInside(st))
	// setting again reuses the slots and clears their inside bits
	elements.SetViewVolume(st, math32.NewFrustumFromMatrix(pm))
	assert.Equal(t, 6, elements.NumCullPlanes(st))
	assert.False(t, elements.CompletelyInside(st))
	st.Pop()
	assert.Equal(t, 0, elements.NumCullPlanes(st))
}

func TestCullOverflow(t *testing.T) {
	st := newState()
	for range elements.MaxCullPlanes + 2 {
		elements.AddCullPlane(st, math32.NewPlane(math32.Vec3(1, 0, 0), 100))
	}
	assert.Equal(t, elements.MaxCullPlanes, elements.NumCullPlanes(st))
	assert.False(t, elements.CompletelyInside(st))
	assert.False(t, elements.CullBox(st, math32.B3(0, 0, 0, 1, 1, 1), false))
	// all 32 planes are recorded as inside
	assert.True(t, elements.CompletelyInside(st))
	pm := &math32.Matrix4{}
	pm.SetOrthographic(-1, 1, 1, -1, 1, 10)
	elements.SetViewVolume(st, math32.NewFrustumFromMatrix(pm))
	assert.Equal(t, elements.MaxCullPlanes, elements.NumCullPlanes(st))
}
