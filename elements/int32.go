// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"cogentcore.org/scenegraph/state"
)

// Int32Element is the base for elements holding a single integer value.
type Int32Element struct {
	state.ElementBase
	Value int32
}

func (e *Int32Element) Push(st *state.State, prev state.Element) {
	e.Value = prev.(interface{ AsInt32() *Int32Element }).AsInt32().Value
}

func (e *Int32Element) AsInt32() *Int32Element { return e }

func (e *Int32Element) Matches(other state.Element) bool {
	oi, ok := other.(interface{ AsInt32() *Int32Element })
	return ok && oi.AsInt32().Value == e.Value
}

func (e *Int32Element) CopyMatchInfo() state.Element {
	return state.CloneElement(e.This)
}

// SwitchElement is the child index inherited by switches set to inherit.
type SwitchElement struct {
	Int32Element
}

// SwitchType is the element type of [SwitchElement].
var SwitchType = state.RegisterElement("elements.SwitchElement", func() state.Element { return &SwitchElement{} })

// Switch returns the current switch value, or 0 if not enabled.
func Switch(st *state.State) int32 {
	if !st.IsEnabled(SwitchType.StackIndex) {
		return 0
	}
	return st.ConstElement(SwitchType.StackIndex).(*SwitchElement).Value
}

// SetSwitch sets the current switch value.
func SetSwitch(st *state.State, v int32) {
	if e, ok := st.Element(SwitchType.StackIndex).(*SwitchElement); ok {
		e.Value = v
	}
}
