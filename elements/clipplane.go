// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"slices"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/state"
)

// ClipPlaneElement is the list of active clipping planes, in world space.
type ClipPlaneElement struct {
	AccumulatedElement
	Planes []math32.Plane
}

// ClipPlaneType is the element type of [ClipPlaneElement].
var ClipPlaneType = state.RegisterElement("elements.ClipPlaneElement", func() state.Element { return &ClipPlaneElement{} })

func (e *ClipPlaneElement) Init(st *state.State) {
	e.Planes = nil
}

func (e *ClipPlaneElement) Push(st *state.State, prev state.Element) {
	e.AccumulatedElement.Push(st, prev)
	e.Planes = append(e.Planes[:0], prev.(*ClipPlaneElement).Planes...)
}

// AddClipPlane adds a clipping plane given in object space.
func AddClipPlane(st *state.State, nodeID uint64, plane math32.Plane) {
	e, ok := st.Element(ClipPlaneType.StackIndex).(*ClipPlaneElement)
	if !ok {
		return
	}
	mm := ModelMatrixNoCapture(st)
	e.Planes = append(e.Planes, plane.MulMatrix4(&mm))
	e.AddNodeID(nodeID)
}

// ClipPlanes returns the active clipping planes in world space.
func ClipPlanes(st *state.State) []math32.Plane {
	if !st.IsEnabled(ClipPlaneType.StackIndex) {
		return nil
	}
	return slices.Clone(st.ConstElement(ClipPlaneType.StackIndex).(*ClipPlaneElement).Planes)
}
