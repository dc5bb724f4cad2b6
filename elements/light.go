// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"slices"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/state"
)

// Light is a light that is on in the current traversal state, with the
// model matrix in effect where it was added.
type Light struct {
	// Node is the light node.
	Node any

	// Matrix is the object to world transform of the light.
	Matrix math32.Matrix4
}

// LightElement is the list of lights that are on.
type LightElement struct {
	AccumulatedElement
	Lights []Light
}

// LightType is the element type of [LightElement].
var LightType = state.RegisterElement("elements.LightElement", func() state.Element { return &LightElement{} })

func (e *LightElement) Init(st *state.State) {
	e.Lights = nil
}

func (e *LightElement) Push(st *state.State, prev state.Element) {
	e.AccumulatedElement.Push(st, prev)
	e.Lights = append(e.Lights[:0], prev.(*LightElement).Lights...)
}

// AddLight adds a light node, with the current model matrix.
func AddLight(st *state.State, nodeID uint64, light any) {
	e, ok := st.Element(LightType.StackIndex).(*LightElement)
	if !ok {
		return
	}
	e.Lights = append(e.Lights, Light{Node: light, Matrix: ModelMatrixNoCapture(st)})
	e.AddNodeID(nodeID)
}

// Lights returns the lights that are on.
func Lights(st *state.State) []Light {
	if !st.IsEnabled(LightType.StackIndex) {
		return nil
	}
	return slices.Clone(st.ConstElement(LightType.StackIndex).(*LightElement).Lights)
}
