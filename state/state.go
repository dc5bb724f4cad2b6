// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state provides the traversal state of a scene graph action:
// per-kind stacks of [Element] values that are pushed lazily, only when
// a value is actually set at a deeper traversal level, and the cache
// scopes that record which elements a cached result depends on.
package state

import "fmt"

// State is the traversal state of an action: one stack of [Element]
// instances per enabled stack index, plus the traversal depth.
//
// Push and Pop bracket a traversal level. Only stack indices whose element
// was obtained with [State.Element] at that level are popped.
type State struct {
	enabled []*ElementType

	// stacks has the allocated instances of each stack index; instances
	// above the top are kept for reuse.
	stacks [][]Element

	// tops has the position of the top instance of each stack index.
	tops []int

	depth int

	// pushed has, for each depth, the stack indices really pushed at that depth.
	pushed [][]int

	// popping is set while an element Pop handler runs.
	popping bool

	caches []openCache
}

// New returns a new [State] for the given enabled elements. The bottom
// element of each enabled stack index is created and initialized.
func New(enabled *EnabledElements) *State {
	st := &State{}
	st.enabled = enabled.Types()
	n := len(st.enabled)
	st.stacks = make([][]Element, n)
	st.tops = make([]int, n)
	st.pushed = make([][]int, 1, 8)
	for si, et := range st.enabled {
		if et == nil {
			continue
		}
		e := et.NewElement()
		st.stacks[si] = []Element{e}
		e.Init(st)
	}
	return st
}

// Depth returns the current traversal depth.
func (st *State) Depth() int {
	return st.depth
}

// NumStackIndices returns the number of stack indices of the state.
func (st *State) NumStackIndices() int {
	return len(st.enabled)
}

// IsEnabled returns whether the given stack index is enabled.
func (st *State) IsEnabled(si int) bool {
	return si >= 0 && si < len(st.enabled) && st.enabled[si] != nil
}

// Element returns the top element of the given stack index for
// modification. If the top was set at a lower depth than the current
// one, a new instance is materialized at the current depth, initialized
// by its [Element.Push] from the previous top, and recorded so that
// [State.Pop] restores the previous top. It returns nil if the stack
// index is not enabled.
//
// It must not be called from an [Element.Pop] handler.
func (st *State) Element(si int) Element {
	if st.popping {
		panic("state.State.Element: element set while popping state")
	}
	if !st.IsEnabled(si) {
		return nil
	}
	tp := st.tops[si]
	top := st.stacks[si][tp]
	if top.AsElement().depth == st.depth {
		return top
	}
	pos := tp + 1
	var e Element
	if pos < len(st.stacks[si]) {
		e = st.stacks[si][pos]
	} else {
		e = st.enabled[si].NewElement()
		st.stacks[si] = append(st.stacks[si], e)
	}
	eb := e.AsElement()
	eb.pos = pos
	eb.depth = st.depth
	st.tops[si] = pos
	st.pushed[st.depth] = append(st.pushed[st.depth], si)
	e.Push(st, top)
	return e
}

// ConstElement returns the top element of the given stack index for
// reading. When a cache is open, the element is captured as a dependency
// of the open caches. It panics if the stack index is not enabled.
func (st *State) ConstElement(si int) Element {
	if !st.IsEnabled(si) {
		panic(fmt.Sprintf("state.State.ConstElement: element stack index %d is not enabled", si))
	}
	e := st.stacks[si][st.tops[si]]
	if len(st.caches) > 0 {
		e.CaptureThis(st)
	}
	return e
}

// ElementNoPush returns the top element of the given stack index
// without materializing a new instance or capturing it,
// or nil if the stack index is not enabled.
func (st *State) ElementNoPush(si int) Element {
	if !st.IsEnabled(si) {
		return nil
	}
	return st.stacks[si][st.tops[si]]
}

// Below returns the instance directly below the given element in its
// stack, or nil if it is the bottom one.
func (st *State) Below(e Element) Element {
	eb := e.AsElement()
	if eb.pos == 0 {
		return nil
	}
	return st.stacks[eb.StackIndex()][eb.pos-1]
}

// Push starts a new traversal level.
func (st *State) Push() {
	st.depth++
	if st.depth < len(st.pushed) {
		st.pushed[st.depth] = st.pushed[st.depth][:0]
	} else {
		st.pushed = append(st.pushed, make([]int, 0, 4))
	}
}

// Pop ends the current traversal level: every stack index really pushed
// at this level, in reverse order, gets its previous top back, and
// [Element.Pop] is called on it with the popped instance.
func (st *State) Pop() {
	if st.depth == 0 {
		panic("state.State.Pop: unbalanced pop")
	}
	rec := st.pushed[st.depth]
	st.popping = true
	defer func() { st.popping = false }()
	for i := len(rec) - 1; i >= 0; i-- {
		si := rec[i]
		popped := st.stacks[si][st.tops[si]]
		st.tops[si]--
		top := st.stacks[si][st.tops[si]]
		top.Pop(st, popped)
	}
	st.pushed[st.depth] = rec[:0]
	st.depth--
}
