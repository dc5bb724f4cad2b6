// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "sync/atomic"

// enabledCounter is incremented every time an element is enabled in any
// [EnabledElements] list.
var enabledCounter atomic.Uint64

// EnabledCounter returns the global counter of element enabling operations.
// An owner of a [State] built from an [EnabledElements] list compares it
// with the value at construction time to know when to rebuild the State.
func EnabledCounter() uint64 {
	return enabledCounter.Load()
}

// EnabledElements is the list of element types enabled for a kind of
// traversal, indexed by stack index.
type EnabledElements struct {
	types []*ElementType

	// Parent, if set, is merged into this list by [EnabledElements.Types].
	Parent *EnabledElements
}

// Enable enables the given element type. If a type is already enabled on
// the same stack index, the given type replaces it only if it is derived
// from the existing one, so the most derived type wins.
func (ee *EnabledElements) Enable(et *ElementType) {
	si := et.StackIndex
	if si >= len(ee.types) {
		ee.types = append(ee.types, make([]*ElementType, si+1-len(ee.types))...)
	}
	cur := ee.types[si]
	if cur == nil || (cur != et && et.IsDerivedFrom(cur)) {
		ee.types[si] = et
		enabledCounter.Add(1)
	}
}

// Merge enables all the element types enabled in other.
func (ee *EnabledElements) Merge(other *EnabledElements) {
	for _, et := range other.types {
		if et != nil {
			ee.Enable(et)
		}
	}
}

// Types returns the list of enabled element types indexed by stack index
// (nil where not enabled), including those of [EnabledElements.Parent]
// chain, sized to the current number of stack indices.
func (ee *EnabledElements) Types() []*ElementType {
	res := make([]*ElementType, NumStackIndices())
	for l := ee; l != nil; l = l.Parent {
		for si, et := range l.types {
			if et == nil {
				continue
			}
			cur := res[si]
			if cur == nil || (cur != et && et.IsDerivedFrom(cur)) {
				res[si] = et
			}
		}
	}
	return res
}

// IsEnabled returns whether the given stack index is enabled in this
// list or its parent chain.
func (ee *EnabledElements) IsEnabled(si int) bool {
	for l := ee; l != nil; l = l.Parent {
		if si < len(l.types) && l.types[si] != nil {
			return true
		}
	}
	return false
}
