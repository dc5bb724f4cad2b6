// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"sync"

	"cogentcore.org/scenegraph/types"
)

// ElementTypes is the registry of all element types.
var ElementTypes = types.NewRegistry("element")

var (
	stackIndexMu   sync.Mutex
	numStackIndex  int
	elementTypeSet = map[*types.Type]*ElementType{}
)

// ElementType describes one kind of [Element] and the stack it lives on.
type ElementType struct {
	*types.Type

	// StackIndex is the dense index of the stack this element type lives
	// on. Derived element types share the stack index of their parent.
	StackIndex int

	// New returns a new element of this type.
	New func() Element
}

// Parent returns the parent element type, or nil.
func (et *ElementType) Parent() *ElementType {
	if et.Type.Parent == nil {
		return nil
	}
	return elementTypeFor(et.Type.Parent)
}

// IsDerivedFrom returns whether this element type is the given type or derived from it.
func (et *ElementType) IsDerivedFrom(other *ElementType) bool {
	return et.Type.IsDerivedFrom(other.Type)
}

// NewElement returns a new element of this type, not part of any [State].
func (et *ElementType) NewElement() Element {
	e := et.New()
	eb := e.AsElement()
	eb.This = e
	eb.Type = et
	return e
}

func elementTypeFor(tp *types.Type) *ElementType {
	stackIndexMu.Lock()
	defer stackIndexMu.Unlock()
	return elementTypeSet[tp]
}

// RegisterElement registers a new element type with its own stack index.
// It is called at package initialization for every element kind.
func RegisterElement(name string, newFunc func() Element) *ElementType {
	stackIndexMu.Lock()
	si := numStackIndex
	numStackIndex++
	stackIndexMu.Unlock()
	return addElementType(name, nil, si, newFunc)
}

// RegisterDerivedElement registers an element type derived from parent.
// It shares the stack of the parent, and replaces the parent in an
// [EnabledElements] list where it is enabled.
func RegisterDerivedElement(name string, parent *ElementType, newFunc func() Element) *ElementType {
	return addElementType(name, parent, parent.StackIndex, newFunc)
}

func addElementType(name string, parent *ElementType, si int, newFunc func() Element) *ElementType {
	var ptp *types.Type
	if parent != nil {
		ptp = parent.Type
	}
	tp := ElementTypes.AddType(name, ptp, func() any { return newFunc() })
	et := &ElementType{Type: tp, StackIndex: si, New: newFunc}
	stackIndexMu.Lock()
	elementTypeSet[tp] = et
	stackIndexMu.Unlock()
	return et
}

// NumStackIndices returns the number of element stack indices allocated.
func NumStackIndices() int {
	stackIndexMu.Lock()
	defer stackIndexMu.Unlock()
	return numStackIndex
}
