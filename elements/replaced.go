// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"slices"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/state"
)

// ReplacedElement is the base for elements whose value is replaced as a
// whole by a single node. It does not copy anything on push.
type ReplacedElement struct {
	state.ElementBase

	// NodeID is the id of the node that set the value.
	NodeID uint64
}

func (e *ReplacedElement) AsReplaced() *ReplacedElement { return e }

func (e *ReplacedElement) Matches(other state.Element) bool {
	or, ok := other.(interface{ AsReplaced() *ReplacedElement })
	return ok && or.AsReplaced().NodeID == e.NodeID
}

func (e *ReplacedElement) CopyMatchInfo() state.Element {
	ne := e.Type.NewElement()
	ne.(interface{ AsReplaced() *ReplacedElement }).AsReplaced().NodeID = e.NodeID
	return ne
}

// CoordinateElement holds the current coordinates.
type CoordinateElement struct {
	ReplacedElement
	Points []math32.Vector3
}

// CoordinateType is the element type of [CoordinateElement].
var CoordinateType = state.RegisterElement("elements.CoordinateElement", func() state.Element { return &CoordinateElement{} })

func (e *CoordinateElement) Init(st *state.State) {
	e.Points = nil
	e.NodeID = 0
}

// SetCoordinates replaces the current coordinates.
func SetCoordinates(st *state.State, nodeID uint64, points []math32.Vector3) {
	e, ok := st.Element(CoordinateType.StackIndex).(*CoordinateElement)
	if !ok {
		return
	}
	e.Points = points
	e.NodeID = nodeID
}

// Coordinates returns the current coordinates.
func Coordinates(st *state.State) []math32.Vector3 {
	if !st.IsEnabled(CoordinateType.StackIndex) {
		return nil
	}
	return slices.Clone(st.ConstElement(CoordinateType.StackIndex).(*CoordinateElement).Points)
}
