// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"sync"
	"sync/atomic"

	"cogentcore.org/scenegraph/state"
	"cogentcore.org/scenegraph/types"
)

// ActionTypes is the registry of all action types.
var ActionTypes = types.NewRegistry("action")

// ActionType describes one kind of action: the elements it enables in its
// [state.State] and the methods it runs on each node type. Both are
// inherited from the parent action type.
type ActionType struct {
	*types.Type

	// Parent is the action type this one is derived from.
	Parent *ActionType

	// Enabled is the list of element types enabled for this action.
	Enabled *state.EnabledElements

	// Methods is the per node type method table.
	Methods *MethodList
}

// NewActionType registers a new action type derived from parent, which
// is normally [ActionBaseType] or one of its descendants.
func NewActionType(name string, parent *ActionType) *ActionType {
	at := &ActionType{Parent: parent, Enabled: &state.EnabledElements{}, Methods: &MethodList{}}
	var ptp *types.Type
	if parent != nil {
		ptp = parent.Type
		at.Enabled.Parent = parent.Enabled
		at.Methods.parent = parent.Methods
	}
	at.Type = ActionTypes.AddType(name, ptp, nil)
	return at
}

// EnableElement enables the given element type for this action type and
// all action types derived from it.
func (at *ActionType) EnableElement(et *state.ElementType) {
	at.Enabled.Enable(et)
}

// AddMethod sets the method run by this action type, and the action types
// derived from it, on nodes of the given type and its derived types.
func (at *ActionType) AddMethod(nt *types.Type, m Method) {
	at.Methods.Add(nt, m)
}

// Method is the function run by an action on a node of a given type.
type Method func(a Action, n Node)

// NullMethod is the method for node types no method was added for.
func NullMethod(a Action, n Node) {}

// DoActionMethod runs the generic [Node.DoAction] behavior of the node.
func DoActionMethod(a Action, n Node) {
	n.DoAction(a)
}

// methodGen is incremented every time a method is added to any list,
// which invalidates the resolved tables of all lists.
var methodGen atomic.Uint64

// MethodList maps node types to the [Method] an action type runs on them.
// Methods are added for a node type, and resolved for every registered node
// type by walking up its type chain; at each level the methods added to
// this list are looked up first, then those of the parent list.
type MethodList struct {
	parent *MethodList

	mu      sync.Mutex
	added   map[*types.Type]Method
	methods []Method
	gen     uint64
}

// Add adds the method for the given node type.
func (ml *MethodList) Add(nt *types.Type, m Method) {
	ml.mu.Lock()
	if ml.added == nil {
		ml.added = map[*types.Type]Method{}
	}
	ml.added[nt] = m
	ml.mu.Unlock()
	methodGen.Add(1)
}

// lookup returns the method added directly for the node type in this
// list or its parents.
func (ml *MethodList) lookup(nt *types.Type) Method {
	for l := ml; l != nil; l = l.parent {
		l.mu.Lock()
		m := l.added[nt]
		l.mu.Unlock()
		if m != nil {
			return m
		}
	}
	return nil
}

// resolve returns the method for the node type, walking up the type chain.
func (ml *MethodList) resolve(nt *types.Type) Method {
	for t := nt; t != nil; t = t.Parent {
		if m := ml.lookup(t); m != nil {
			return m
		}
	}
	return NullMethod
}

// SetUp builds the dense table of methods indexed by node type index.
// It is cheap when nothing changed since the last call.
func (ml *MethodList) SetUp() {
	gen := methodGen.Load()
	ml.mu.Lock()
	uptodate := ml.gen == gen && len(ml.methods) == NodeTypes.NumTypes()
	ml.mu.Unlock()
	if uptodate {
		return
	}
	all := NodeTypes.Types()
	methods := make([]Method, len(all))
	for i, nt := range all {
		methods[i] = ml.resolve(nt)
	}
	ml.mu.Lock()
	ml.methods = methods
	ml.gen = gen
	ml.mu.Unlock()
}

// Method returns the method for the given node type.
func (ml *MethodList) Method(nt *types.Type) Method {
	if nt.Data >= len(ml.methods) {
		ml.SetUp()
	}
	return ml.methods[nt.Data]
}

// ActionBaseType is the root action type. Its method for every node type
// is [DoActionMethod].
var ActionBaseType = func() *ActionType {
	at := NewActionType("scene.ActionBase", nil)
	at.AddMethod(NodeBaseType, DoActionMethod)
	return at
}()
