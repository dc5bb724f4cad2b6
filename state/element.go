// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"github.com/jinzhu/copier"
)

// Element is one kind of traversal state value (a model matrix, a set of
// cull planes, a switch value...). A [State] keeps a stack of instances per
// stack index, and materializes a new instance only when a value is set at
// a deeper traversal level than the current top.
//
// Element kinds embed [ElementBase] and override the methods they need.
type Element interface {
	// AsElement returns the [ElementBase] of the element.
	AsElement() *ElementBase

	// Init initializes the bottom element of a stack when a [State] is built.
	Init(st *State)

	// Push is called on a newly materialized top element, with the
	// previous top. Copying kinds copy their value from prev here;
	// non-copying kinds leave it to be replaced wholesale.
	Push(st *State, prev Element)

	// Pop is called on the element that becomes the top again when
	// prevTop is popped off the stack. It must not call [State.Element].
	Pop(st *State, prevTop Element)

	// Matches returns whether this element, typically a copy made with
	// CopyMatchInfo, matches the given current element for the purposes
	// of cache validity.
	Matches(other Element) bool

	// CopyMatchInfo returns a copy of this element holding just the
	// information needed by Matches. It returns nil for kinds that
	// do not participate in caching.
	CopyMatchInfo() Element

	// CaptureThis registers this element as a dependency of all open caches.
	CaptureThis(st *State)
}

// ElementBase is the base type for all [Element] kinds.
type ElementBase struct {
	// This is the element as an [Element] interface, set when the
	// element is created by the [State].
	This Element `copier:"-"`

	// Type is the element type of this element.
	Type *ElementType `copier:"-"`

	// depth is the traversal depth at which this instance was set.
	depth int

	// pos is the position of this instance within the stack of its stack index.
	pos int
}

func (eb *ElementBase) AsElement() *ElementBase { return eb }

func (eb *ElementBase) Init(st *State) {}

func (eb *ElementBase) Push(st *State, prev Element) {}

func (eb *ElementBase) Pop(st *State, prevTop Element) {}

func (eb *ElementBase) Matches(other Element) bool { return false }

func (eb *ElementBase) CopyMatchInfo() Element { return nil }

func (eb *ElementBase) CaptureThis(st *State) {
	st.Capture(eb.This)
}

// Depth returns the traversal depth at which this element was set.
func (eb *ElementBase) Depth() int { return eb.depth }

// StackIndex returns the stack index of the element's type.
func (eb *ElementBase) StackIndex() int { return eb.Type.StackIndex }

// CloneElement returns a deep copy of the given element, made with a new
// instance of its type. The copy is not part of any [State] stack.
// It is the usual implementation of [Element.CopyMatchInfo].
func CloneElement[T Element](e T) T {
	eb := e.AsElement()
	ne := eb.Type.NewElement()
	if err := copier.CopyWithOption(ne, e, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	nb := ne.AsElement()
	nb.depth = eb.depth
	return ne.(T)
}
