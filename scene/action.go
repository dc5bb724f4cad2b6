// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"

	"cogentcore.org/scenegraph/state"
)

// PathCode tells where the node being traversed lies relative to the
// path or paths an action is applied to.
type PathCode int32

const (
	// NoPath is the code when the action is applied to a node.
	NoPath PathCode = iota

	// InPath is the code for nodes on the applied path above its tail,
	// whose children are only traversed where they lead along the path
	// or affect state.
	InPath

	// BelowPath is the code for the tail of the applied path and all
	// nodes below it, which are traversed fully.
	BelowPath

	// OffPath is the code for nodes off the applied path, which are only
	// traversed for their effect on the state.
	OffPath
)

func (pc PathCode) String() string {
	switch pc {
	case NoPath:
		return "NoPath"
	case InPath:
		return "InPath"
	case BelowPath:
		return "BelowPath"
	case OffPath:
		return "OffPath"
	}
	return fmt.Sprintf("PathCode(%d)", int32(pc))
}

// AppliedCode tells what an action is applied to.
type AppliedCode int32

const (
	// AppliedNode is a single root node.
	AppliedNode AppliedCode = iota

	// AppliedPath is a single path.
	AppliedPath

	// AppliedPathList is a list of paths.
	AppliedPathList
)

// Action is a traversal of the scene graph. All actions embed [ActionBase].
type Action interface {
	// AsAction returns the [ActionBase] of the action.
	AsAction() *ActionBase

	// BeginTraversal is called at the start of each apply with the head
	// node. It normally sets up the action and calls
	// [ActionBase.Traverse] on the node.
	BeginTraversal(n Node)

	// EndTraversal is called after BeginTraversal returns.
	EndTraversal(n Node)
}

// ActionBase implements the traversal machinery of an [Action]: method
// dispatch, the current path and its path code, and the traversal state.
type ActionBase struct {
	// This is the action as an [Action] interface, set by [InitAction].
	This Action

	// Type is the type of the action, set by [InitAction].
	Type *ActionType

	state          *state.State
	enabledCounter uint64

	curPath  TempPath
	pathCode PathCode

	applied    AppliedCode
	node       Node
	path       *Path
	pathList   PathList
	origList   PathList
	terminated bool

	// indices holds the next indices returned by PathCode, per depth.
	indices [][]int
}

// InitAction initializes a newly created action with its type: it must be
// called in every action constructor.
func InitAction(a Action, at *ActionType) {
	ab := a.AsAction()
	ab.This = a
	ab.Type = at
}

func (ab *ActionBase) AsAction() *ActionBase { return ab }

// BeginTraversal traverses the node.
func (ab *ActionBase) BeginTraversal(n Node) {
	ab.Traverse(n)
}

func (ab *ActionBase) EndTraversal(n Node) {}

// applyContext is what an apply saves and restores, so that an action can
// be applied again while it is being applied.
type applyContext struct {
	applied  AppliedCode
	node     Node
	path     *Path
	pathList PathList
	origList PathList
	pathCode PathCode
	nodes    []Node
	indices  []int
}

func (ab *ActionBase) save() applyContext {
	return applyContext{
		applied:  ab.applied,
		node:     ab.node,
		path:     ab.path,
		pathList: ab.pathList,
		origList: ab.origList,
		pathCode: ab.pathCode,
		nodes:    slices.Clone(ab.curPath.nodes),
		indices:  slices.Clone(ab.curPath.indices),
	}
}

func (ab *ActionBase) restore(ac applyContext) {
	ab.applied = ac.applied
	ab.node = ac.node
	ab.path = ac.path
	ab.pathList = ac.pathList
	ab.origList = ac.origList
	ab.pathCode = ac.pathCode
	ab.curPath.nodes = append(ab.curPath.nodes[:0], ac.nodes...)
	ab.curPath.indices = append(ab.curPath.indices[:0], ac.indices...)
}

func (ab *ActionBase) traverseHead(head Node) {
	ab.curPath.SetHead(head)
	ab.This.BeginTraversal(head)
	ab.This.EndTraversal(head)
}

// Apply applies the action to the graph rooted at the given node.
func (ab *ActionBase) Apply(n Node) {
	ab.Type.Methods.SetUp()
	ac := ab.save()
	defer ab.restore(ac)

	ab.terminated = false
	ab.pathCode = NoPath
	ab.applied = AppliedNode
	ab.node = n
	if n == nil {
		return
	}
	nb := n.AsNode()
	nb.Ref()
	defer nb.UnrefNoDelete()
	ab.State()
	ab.traverseHead(n)
}

// ApplyPath applies the action to the given path: the nodes along the
// path are traversed, with the nodes off the path only where they affect
// state, and then the whole graph below the tail of the path.
func (ab *ActionBase) ApplyPath(p *Path) {
	ab.Type.Methods.SetUp()
	ac := ab.save()
	defer ab.restore(ac)

	ab.terminated = false
	ab.pathCode = appliedPathCode(p)
	ab.applied = AppliedPath
	ab.path = p
	ab.State()
	if p.FullLen() > 0 && p.Head() != nil {
		ab.traverseHead(p.Head())
	}
}

func appliedPathCode(p *Path) PathCode {
	if p.FullLen() > 1 {
		return InPath
	}
	return BelowPath
}

// ApplyPathList applies the action to the given paths. If obeysRules is
// set, the caller promises that all paths have the same head, are sorted
// in traversal order, are unique, and none continues through the end of
// another. Otherwise a sorted, unique copy of the list is traversed, once
// for each distinct head.
func (ab *ActionBase) ApplyPathList(pl PathList, obeysRules bool) {
	ab.Type.Methods.SetUp()
	if len(pl) == 0 {
		return
	}
	ac := ab.save()
	defer ab.restore(ac)

	ab.terminated = false
	ab.State()
	ab.applied = AppliedPathList
	ab.origList = pl
	ab.pathList = pl
	ab.pathCode = appliedPathCode(pl[0])

	if obeysRules {
		ab.traverseHead(pl[0].Head())
		return
	}
	sorted := pl.Copy()
	sorted.Sort()
	sorted = sorted.Uniquify()
	if sorted[0].Head() == sorted[len(sorted)-1].Head() {
		ab.pathList = sorted
		ab.traverseHead(sorted[0].Head())
		return
	}
	for i := 0; i < len(sorted) && !ab.terminated; {
		head := sorted[i].Head()
		j := i + 1
		for j < len(sorted) && sorted[j].Head() == head {
			j++
		}
		ab.pathList = sorted[i:j]
		ab.pathCode = appliedPathCode(sorted[i])
		ab.traverseHead(head)
		i = j
	}
}

// ApplyAs applies the action to whatever the other action is applied to.
func (ab *ActionBase) ApplyAs(other Action) {
	ob := other.AsAction()
	switch ob.applied {
	case AppliedNode:
		ab.Apply(ob.node)
	case AppliedPath:
		ab.ApplyPath(ob.path)
	case AppliedPathList:
		ab.ApplyPathList(ob.origList, false)
	}
}

// Traverse runs the method of the action for the type of the node.
func (ab *ActionBase) Traverse(n Node) {
	ab.Type.Methods.Method(n.NodeType())(ab.This, n)
}

// State returns the traversal state of the action, creating it if needed.
// The state is rebuilt when element types have been enabled since it was
// created, unless a traversal is under way.
func (ab *ActionBase) State() *state.State {
	counter := state.EnabledCounter()
	if ab.state != nil && counter != ab.enabledCounter && ab.state.Depth() == 0 {
		ab.state = nil
	}
	if ab.state == nil {
		ab.state = state.New(ab.Type.Enabled)
		ab.enabledCounter = counter
	}
	return ab.state
}

// InvalidateState discards the traversal state, so that it is created
// again at the next apply.
func (ab *ActionBase) InvalidateState() {
	ab.state = nil
}

// HasTerminated returns whether the current traversal was aborted.
func (ab *ActionBase) HasTerminated() bool {
	return ab.terminated
}

// SetTerminated sets whether the traversal is aborted. Child lists stop
// traversing as soon as it is set.
func (ab *ActionBase) SetTerminated(terminated bool) {
	ab.terminated = terminated
}

// WhatAppliedTo returns what the action is applied to.
func (ab *ActionBase) WhatAppliedTo() AppliedCode {
	return ab.applied
}

// NodeAppliedTo returns the node the action is applied to, or nil.
func (ab *ActionBase) NodeAppliedTo() Node {
	if ab.applied != AppliedNode {
		return nil
	}
	return ab.node
}

// PathAppliedTo returns the path the action is applied to, or nil.
func (ab *ActionBase) PathAppliedTo() *Path {
	if ab.applied != AppliedPath {
		return nil
	}
	return ab.path
}

// PathListAppliedTo returns the part of the path list being traversed,
// which may be a sorted subset of the list the action was applied to.
func (ab *ActionBase) PathListAppliedTo() PathList {
	if ab.applied != AppliedPathList {
		return nil
	}
	return ab.pathList
}

// OriginalPathListAppliedTo returns the path list the action was applied to.
func (ab *ActionBase) OriginalPathListAppliedTo() PathList {
	if ab.applied != AppliedPathList {
		return nil
	}
	return ab.origList
}

// CurPath returns the path from the head of the traversal to the current
// node. It is only valid during traversal, and must be copied to be kept.
func (ab *ActionBase) CurPath() *Path {
	return &ab.curPath.Path
}

// CurPathTail returns the current node.
func (ab *ActionBase) CurPathTail() Node {
	return ab.curPath.Full().Tail()
}

// CurPathCode returns the path code of the current node.
func (ab *ActionBase) CurPathCode() PathCode {
	return ab.pathCode
}

// PathCode returns the path code of the current node and, when it is
// [InPath], the indices of the children that lead along the applied path
// or paths, in increasing order.
func (ab *ActionBase) PathCode() (PathCode, []int) {
	if ab.pathCode != InPath {
		return ab.pathCode, nil
	}
	curlen := ab.curPath.FullLen()
	for len(ab.indices) < curlen {
		ab.indices = append(ab.indices, nil)
	}
	idx := ab.indices[curlen-1][:0]
	if ab.applied == AppliedPathList {
		prev := -1
		for _, p := range ab.pathList {
			if p.FullLen() > curlen && p.ContainsPath(&ab.curPath.Path) {
				if i := p.Index(curlen); i != prev {
					idx = append(idx, i)
					prev = i
				}
			}
		}
	} else {
		idx = append(idx, ab.path.Index(curlen))
	}
	ab.indices[curlen-1] = idx
	return InPath, idx
}

// PushCurPath appends the child at the given index to the current path,
// and updates the path code. The node may be nil, in which case it is
// found in the child list of the current node.
func (ab *ActionBase) PushCurPath(childIndex int, n Node) {
	if n != nil {
		ab.curPath.SimpleAppend(n, childIndex)
	} else if err := ab.curPath.AppendIndex(childIndex); err != nil {
		panic(err)
	}
	if ab.pathCode != InPath {
		return
	}
	curlen := ab.curPath.FullLen()
	if ab.applied == AppliedPath {
		switch {
		case ab.curPath.Index(curlen-1) != ab.path.Index(curlen-1):
			ab.pathCode = OffPath
		case curlen == ab.path.FullLen():
			ab.pathCode = BelowPath
		}
		return
	}
	var found *Path
	for _, p := range ab.pathList {
		if p.FullLen() >= curlen && p.ContainsPath(&ab.curPath.Path) {
			found = p
			break
		}
	}
	switch {
	case found == nil:
		ab.pathCode = OffPath
	case found.FullLen() == curlen:
		ab.pathCode = BelowPath
	}
}

// PopCurPath removes the current node from the current path and sets the
// path code back to prev, the code before the matching [ActionBase.PushCurPath].
func (ab *ActionBase) PopCurPath(prev PathCode) {
	ab.curPath.Pop()
	ab.pathCode = prev
}

// PushNullCurPath appends a placeholder to the current path, to be
// replaced by each child with [ActionBase.PopPushCurPath]. It is used when
// the path code does not change while traversing the children.
func (ab *ActionBase) PushNullCurPath() {
	ab.curPath.SimpleAppend(nil, -1)
}

// PopPushCurPath replaces the current node with the given child.
func (ab *ActionBase) PopPushCurPath(childIndex int, n Node) {
	if n == nil {
		ab.curPath.Pop()
		if err := ab.curPath.AppendIndex(childIndex); err != nil {
			panic(err)
		}
		return
	}
	ab.curPath.ReplaceTail(n, childIndex)
}

// PopNullCurPath removes the placeholder or last child pushed after
// [ActionBase.PushNullCurPath].
func (ab *ActionBase) PopNullCurPath() {
	ab.curPath.Pop()
}

// SwitchToPathTraversal traverses the given path from its head in the
// middle of a traversal, and then resumes the traversal.
func (ab *ActionBase) SwitchToPathTraversal(p *Path) {
	ac := ab.save()
	defer ab.restore(ac)
	ab.applied = AppliedPath
	ab.path = p
	ab.pathCode = appliedPathCode(p)
	ab.curPath.SetHead(p.Head())
	ab.Traverse(p.Head())
}

// SwitchToNodeTraversal traverses the graph rooted at the given node in
// the middle of a traversal, and then resumes the traversal.
func (ab *ActionBase) SwitchToNodeTraversal(n Node) {
	ac := ab.save()
	defer ab.restore(ac)
	ab.applied = AppliedNode
	ab.node = n
	ab.pathCode = NoPath
	ab.curPath.SetHead(n)
	ab.Traverse(n)
}
