// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elements provides the traversal state element kinds used by
// scene graph actions.
package elements

import (
	"slices"

	"cogentcore.org/scenegraph/state"
)

// Accumulator is implemented by all element kinds that embed
// [AccumulatedElement].
type Accumulator interface {
	state.Element
	AsAccumulated() *AccumulatedElement
}

// AccumulatedElement is the base for elements whose value accumulates
// the contributions of several nodes (matrices, lights, clip planes).
// It tracks the ids of the contributing nodes so that two values can be
// compared for cache validity without comparing the values themselves.
type AccumulatedElement struct {
	state.ElementBase

	// NodeIDs are the ids of the nodes that contributed to the value, in order.
	NodeIDs []uint64

	// recurse is set when the ids were copied from the element below, in
	// which case a capture must also capture the elements below.
	recurse bool
}

func (e *AccumulatedElement) AsAccumulated() *AccumulatedElement { return e }

// Push copies the node ids of the previous top.
func (e *AccumulatedElement) Push(st *state.State, prev state.Element) {
	e.CopyNodeIDs(prev.(Accumulator).AsAccumulated())
}

// ClearNodeIDs clears the list of contributing node ids.
func (e *AccumulatedElement) ClearNodeIDs() {
	e.NodeIDs = e.NodeIDs[:0]
	e.recurse = false
}

// AddNodeID adds the id of a contributing node.
func (e *AccumulatedElement) AddNodeID(id uint64) {
	e.NodeIDs = append(e.NodeIDs, id)
}

// SetNodeID makes the given node the only contributor, as when a value
// is set rather than accumulated.
func (e *AccumulatedElement) SetNodeID(id uint64) {
	e.ClearNodeIDs()
	e.AddNodeID(id)
}

// CopyNodeIDs copies the contributing node ids from another element.
func (e *AccumulatedElement) CopyNodeIDs(from *AccumulatedElement) {
	e.NodeIDs = append(e.NodeIDs[:0], from.NodeIDs...)
	e.recurse = true
}

// Matches returns whether the other element has the same contributing node ids.
func (e *AccumulatedElement) Matches(other state.Element) bool {
	oa, ok := other.(Accumulator)
	if !ok {
		return false
	}
	return slices.Equal(e.NodeIDs, oa.AsAccumulated().NodeIDs)
}

// CopyMatchInfo returns a new element of the same type holding only
// the node ids.
func (e *AccumulatedElement) CopyMatchInfo() state.Element {
	ne := e.Type.NewElement()
	ne.(Accumulator).AsAccumulated().NodeIDs = slices.Clone(e.NodeIDs)
	return ne
}

// CaptureThis captures this element, and while its ids came from the
// element below, that element too.
func (e *AccumulatedElement) CaptureThis(st *state.State) {
	st.Capture(e.This)
	if !e.recurse {
		return
	}
	if below := st.Below(e.This); below != nil {
		below.CaptureThis(st)
	}
}
