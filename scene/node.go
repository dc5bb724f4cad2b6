// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene graph core: nodes and their child
// lists, paths through the graph, and the action base type that
// traverses the graph while maintaining a traversal [state.State].
package scene

import (
	"fmt"
	"slices"
	"sync/atomic"
	"weak"

	"cogentcore.org/scenegraph/types"
)

// Node is a vertex in the scene graph. A node may have several parents,
// so the graph is a DAG. All nodes embed [NodeBase].
type Node interface {
	// AsNode returns the [NodeBase] of the node.
	AsNode() *NodeBase

	// NodeType returns the registered type of the node, whose
	// [types.Type.Data] index is used for action method dispatch.
	NodeType() *types.Type

	// Children returns the child list of the node, or nil for leaf nodes.
	Children() *ChildList

	// AffectsState returns whether traversing the node changes the
	// traversal state seen by the nodes after it. Nodes that do not
	// are skipped off the path of a path traversal.
	AffectsState() bool

	// DoAction is the generic behavior of the node for any action.
	DoAction(a Action)
}

// NodeTypes is the registry of all node types.
var NodeTypes = types.NewRegistry("node")

// NodeBaseType is the root node type.
var NodeBaseType = NodeTypes.AddType("scene.NodeBase", nil, nil)

var (
	// nodeIDCounter is the last node id handed out.
	nodeIDCounter atomic.Uint64

	// notifyCounter stamps each notification so that shared
	// ancestors are notified once.
	notifyCounter atomic.Uint64
)

// NextNodeID returns a new unique node id.
func NextNodeID() uint64 {
	return nodeIDCounter.Add(1)
}

// NodeBase implements the common parts of a [Node].
type NodeBase struct {
	// This is the node as a [Node] interface, set by [InitNode].
	This Node

	// Name is an optional user name for the node.
	Name string

	id       uint64
	refCount int

	// parents are the parent nodes that audit this node: one entry per
	// occurrence of the node in a parent's child list.
	parents []weak.Pointer[NodeBase]

	stamp uint64

	children *ChildList
}

// InitNode initializes a newly created node: it must be called in every
// node constructor.
func InitNode(n Node) {
	nb := n.AsNode()
	nb.This = n
	nb.id = NextNodeID()
}

func (nb *NodeBase) AsNode() *NodeBase { return nb }

func (nb *NodeBase) NodeType() *types.Type { return NodeBaseType }

func (nb *NodeBase) Children() *ChildList { return nb.children }

func (nb *NodeBase) AffectsState() bool { return true }

func (nb *NodeBase) DoAction(a Action) {}

// InitChildren creates the child list of a group-like node.
func (nb *NodeBase) InitChildren() {
	nb.children = NewChildList(nb.This)
}

func (nb *NodeBase) String() string {
	if nb.Name != "" {
		return nb.Name
	}
	if nb.This == nil {
		return "<uninitialized node>"
	}
	return fmt.Sprintf("%s#%d", nb.This.NodeType().IDName, nb.id)
}

// SetName sets the name of the node.
func (nb *NodeBase) SetName(name string) {
	nb.Name = name
}

// NodeID returns the unique id of the node, which changes whenever the
// node or anything below it changes.
func (nb *NodeBase) NodeID() uint64 {
	return nb.id
}

// Ref increments the reference count of the node.
func (nb *NodeBase) Ref() {
	nb.refCount++
}

// Unref decrements the reference count of the node, and destroys it
// when the count drops to zero or below: its children are removed.
func (nb *NodeBase) Unref() {
	nb.refCount--
	if nb.refCount <= 0 {
		nb.destroy()
	}
}

// UnrefNoDelete decrements the reference count without destroying the node.
func (nb *NodeBase) UnrefNoDelete() {
	nb.refCount--
}

// RefCount returns the reference count of the node.
func (nb *NodeBase) RefCount() int {
	return nb.refCount
}

func (nb *NodeBase) destroy() {
	if nb.children != nil {
		nb.children.Truncate(0)
	}
}

// Touch marks the node as changed.
func (nb *NodeBase) Touch() {
	nb.StartNotify()
}

// StartNotify gives the node a new id, and propagates the change up to
// all its parents, each of which is notified once.
func (nb *NodeBase) StartNotify() {
	nb.notify(notifyCounter.Add(1))
}

func (nb *NodeBase) notify(stamp uint64) {
	if nb.stamp == stamp {
		return
	}
	nb.stamp = stamp
	nb.id = NextNodeID()
	for _, wp := range nb.parents {
		if p := wp.Value(); p != nil {
			p.notify(stamp)
		}
	}
}

func (nb *NodeBase) addParent(parent Node) {
	nb.parents = append(nb.parents, weak.Make(parent.AsNode()))
}

func (nb *NodeBase) removeParent(parent Node) {
	wp := weak.Make(parent.AsNode())
	if i := slices.Index(nb.parents, wp); i >= 0 {
		nb.parents = slices.Delete(nb.parents, i, i+1)
	}
}

// Parents returns the distinct live parents of the node.
func (nb *NodeBase) Parents() []Node {
	var res []Node
	for _, wp := range nb.parents {
		p := wp.Value()
		if p == nil || slices.Contains(res, p.This) {
			continue
		}
		res = append(res, p.This)
	}
	return res
}

// HidesChildren is implemented by nodes whose children are internal parts
// of the node rather than a public group. A path through such a node has
// a visible length ending at the node; see [Path.Len].
type HidesChildren interface {
	HidesChildren() bool
}

func hasHiddenChildren(n Node) bool {
	if n == nil || n.Children() == nil {
		return false
	}
	h, ok := n.(HidesChildren)
	return ok && h.HidesChildren()
}
