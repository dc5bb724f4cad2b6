// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/state"
)

// ModelMatrixElement is the object to world space transform.
type ModelMatrixElement struct {
	AccumulatedElement
	Matrix math32.Matrix4
}

// ModelMatrixType is the element type of [ModelMatrixElement].
var ModelMatrixType = state.RegisterElement("elements.ModelMatrixElement", func() state.Element { return &ModelMatrixElement{} })

func (e *ModelMatrixElement) Init(st *state.State) {
	e.Matrix.SetIdentity()
}

func (e *ModelMatrixElement) Push(st *state.State, prev state.Element) {
	e.AccumulatedElement.Push(st, prev)
	e.Matrix = prev.(*ModelMatrixElement).Matrix
}

// ModelMatrix returns the current model matrix, capturing it for open caches.
// It returns the identity if the element is not enabled.
func ModelMatrix(st *state.State) math32.Matrix4 {
	if !st.IsEnabled(ModelMatrixType.StackIndex) {
		return *math32.Identity4()
	}
	return st.ConstElement(ModelMatrixType.StackIndex).(*ModelMatrixElement).Matrix
}

// ModelMatrixNoCapture returns the current model matrix without capturing it.
func ModelMatrixNoCapture(st *state.State) math32.Matrix4 {
	e := st.ElementNoPush(ModelMatrixType.StackIndex)
	if e == nil {
		return *math32.Identity4()
	}
	return e.(*ModelMatrixElement).Matrix
}

// MulModelMatrix multiplies the current model matrix by m on the right,
// so that m is applied to object coordinates first.
func MulModelMatrix(st *state.State, nodeID uint64, m *math32.Matrix4) {
	e, ok := st.Element(ModelMatrixType.StackIndex).(*ModelMatrixElement)
	if !ok {
		return
	}
	e.Matrix.SetMul(m)
	e.AddNodeID(nodeID)
}

// SetModelMatrix replaces the current model matrix.
func SetModelMatrix(st *state.State, nodeID uint64, m *math32.Matrix4) {
	e, ok := st.Element(ModelMatrixType.StackIndex).(*ModelMatrixElement)
	if !ok {
		return
	}
	e.Matrix = *m
	e.SetNodeID(nodeID)
}

// ResetModelMatrix sets the current model matrix to the identity.
func ResetModelMatrix(st *state.State, nodeID uint64) {
	SetModelMatrix(st, nodeID, math32.Identity4())
}
