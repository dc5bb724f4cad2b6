// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"
	"slices"
	"weak"
)

// MutationCheck is whether [ChildList.Traverse] reports child lists
// that are modified while they are being traversed.
var MutationCheck = true

// ChildList is the ordered list of children of a group-like node.
// It references its children, registers its parent as an auditor of
// each child so that changes propagate up, and keeps the auditing
// [Path]s that run through it consistent when it changes.
type ChildList struct {
	parent   Node
	children []Node
	auditors []weak.Pointer[Path]

	// generation is incremented by every mutation.
	generation uint64
}

// NewChildList returns a new empty child list for the given parent.
func NewChildList(parent Node) *ChildList {
	return &ChildList{parent: parent}
}

// Parent returns the node owning the list.
func (cl *ChildList) Parent() Node {
	return cl.parent
}

// Len returns the number of children.
func (cl *ChildList) Len() int {
	return len(cl.children)
}

// Get returns the child at the given index. It panics if the index is out of range.
func (cl *ChildList) Get(i int) Node {
	if i < 0 || i >= len(cl.children) {
		panic(fmt.Sprintf("scene.ChildList.Get: index %d out of range [0:%d]", i, len(cl.children)))
	}
	return cl.children[i]
}

// Find returns the index of the first occurrence of the given node, or -1.
func (cl *ChildList) Find(n Node) int {
	return slices.Index(cl.children, n)
}

// Nodes returns a copy of the list of children.
func (cl *ChildList) Nodes() []Node {
	return slices.Clone(cl.children)
}

// Generation returns the mutation generation of the list.
func (cl *ChildList) Generation() uint64 {
	return cl.generation
}

// Append adds a node at the end of the list.
func (cl *ChildList) Append(n Node) {
	nb := n.AsNode()
	nb.addParent(cl.parent)
	nb.Ref()
	cl.children = append(cl.children, n)
	cl.generation++
	cl.parent.AsNode().StartNotify()
}

// Insert inserts a node before the given index, which may be Len.
func (cl *ChildList) Insert(n Node, at int) {
	if at < 0 || at > len(cl.children) {
		panic(fmt.Sprintf("scene.ChildList.Insert: index %d out of range [0:%d]", at, len(cl.children)))
	}
	if at == len(cl.children) {
		cl.Append(n)
		return
	}
	nb := n.AsNode()
	nb.addParent(cl.parent)
	nb.Ref()
	cl.children = slices.Insert(cl.children, at, n)
	cl.generation++
	cl.parent.AsNode().StartNotify()
	for _, p := range cl.paths() {
		p.insertIndex(cl.parent, at)
	}
}

// Remove removes the child at the given index.
func (cl *ChildList) Remove(i int) {
	child := cl.Get(i)
	cb := child.AsNode()
	cb.removeParent(cl.parent)
	for _, p := range cl.paths() {
		p.removeIndex(cl.parent, i)
	}
	cl.parent.AsNode().StartNotify()
	cl.children = slices.Delete(cl.children, i, i+1)
	cl.generation++
	cb.Unref()
}

// Set replaces the child at the given index with the given node.
func (cl *ChildList) Set(i int, n Node) {
	old := cl.Get(i)
	if old == n {
		return
	}
	ob := old.AsNode()
	nb := n.AsNode()
	ob.removeParent(cl.parent)
	nb.addParent(cl.parent)
	nb.Ref()
	cl.parent.AsNode().StartNotify()
	for _, p := range cl.paths() {
		p.replaceIndex(cl.parent, i, n)
	}
	cl.children[i] = n
	cl.generation++
	ob.Unref()
}

// Truncate removes all the children from the given length on.
func (cl *ChildList) Truncate(length int) {
	n := len(cl.children)
	if length < 0 || length > n {
		panic(fmt.Sprintf("scene.ChildList.Truncate: length %d out of range [0:%d]", length, n))
	}
	if length == n {
		return
	}
	for i := length; i < n; i++ {
		cl.children[i].AsNode().removeParent(cl.parent)
	}
	cl.parent.AsNode().StartNotify()
	paths := cl.paths()
	for i := n - 1; i >= length; i-- {
		for _, p := range paths {
			p.removeIndex(cl.parent, i)
		}
	}
	removed := slices.Clone(cl.children[length:])
	clear(cl.children[length:])
	cl.children = cl.children[:length]
	cl.generation++
	for _, c := range removed {
		c.AsNode().Unref()
	}
}

// addPathAuditor registers a path running through this list.
func (cl *ChildList) addPathAuditor(p *Path) {
	cl.auditors = append(cl.auditors, weak.Make(p))
}

// removePathAuditor unregisters a path.
func (cl *ChildList) removePathAuditor(p *Path) {
	wp := weak.Make(p)
	if i := slices.Index(cl.auditors, wp); i >= 0 {
		cl.auditors = slices.Delete(cl.auditors, i, i+1)
	}
}

// paths returns the live auditing paths, dropping collected ones.
func (cl *ChildList) paths() []*Path {
	var res []*Path
	live := cl.auditors[:0]
	for _, wp := range cl.auditors {
		if p := wp.Value(); p != nil {
			res = append(res, p)
			live = append(live, wp)
		}
	}
	clear(cl.auditors[len(live):])
	cl.auditors = live
	return res
}

// NumPathAuditors returns the number of live paths auditing the list.
func (cl *ChildList) NumPathAuditors() int {
	return len(cl.paths())
}

// TraverseAll traverses all the children with the given action.
func (cl *ChildList) TraverseAll(a Action) {
	cl.Traverse(a, 0, len(cl.children)-1)
}

// TraverseIndex traverses the child at the given index.
func (cl *ChildList) TraverseIndex(a Action, i int) {
	cl.Traverse(a, i, i)
}

// TraverseNode traverses the first occurrence of the given child.
func (cl *ChildList) TraverseNode(a Action, n Node) {
	if i := cl.Find(n); i >= 0 {
		cl.Traverse(a, i, i)
	}
}

// Traverse traverses the children from first to last inclusive, under
// the current path code of the action:
//   - [NoPath], [BelowPath]: every child is traversed.
//   - [OffPath]: only children that affect the state are traversed.
//   - [InPath]: every child is pushed on the current path, which updates
//     the path code, and traversed unless that makes it [OffPath] and
//     the child does not affect the state.
//
// The traversal stops as soon as the action has terminated.
func (cl *ChildList) Traverse(a Action, first, last int) {
	if len(cl.children) == 0 || first > last {
		return
	}
	ab := a.AsAction()
	code := ab.CurPathCode()
	gen := cl.generation
	size := len(cl.children)
	// visit reports whether i is still a valid index, after checking
	// that the list did not change under the loop.
	visit := func(i int) bool {
		if cl.generation != gen {
			if MutationCheck {
				slog.Warn("scene.ChildList.Traverse: children changed during traversal", "parent", cl.parent.AsNode().String(), "size", size, "newSize", len(cl.children))
			}
			gen = cl.generation
		}
		return i < len(cl.children)
	}

	switch code {
	case NoPath, BelowPath:
		ab.PushNullCurPath()
		for i := first; i <= last && !ab.HasTerminated() && visit(i); i++ {
			child := cl.children[i]
			ab.PopPushCurPath(i, child)
			ab.Traverse(child)
		}
		ab.PopNullCurPath()
	case OffPath:
		ab.PushNullCurPath()
		for i := first; i <= last && !ab.HasTerminated() && visit(i); i++ {
			child := cl.children[i]
			if child.AffectsState() {
				ab.PopPushCurPath(i, child)
				ab.Traverse(child)
			}
		}
		ab.PopNullCurPath()
	case InPath:
		for i := first; i <= last && !ab.HasTerminated() && visit(i); i++ {
			child := cl.children[i]
			ab.PushCurPath(i, child)
			if ab.CurPathCode() != OffPath || child.AffectsState() {
				ab.Traverse(child)
			}
			ab.PopCurPath(code)
		}
	default:
		panic(fmt.Sprintf("scene.ChildList.Traverse: unknown path code %d", code))
	}
	visit(len(cl.children))
}

// TraverseInPath traverses the children at the given sorted indices,
// which lead to the paths the action is applied to. Children before each
// of them are traversed only if they affect the state. It must only be
// called when the path code of the action is [InPath].
func (cl *ChildList) TraverseInPath(a Action, indices []int) {
	ab := a.AsAction()
	childIdx := 0
	for _, stop := range indices {
		if ab.HasTerminated() {
			break
		}
		for ; childIdx < stop && !ab.HasTerminated(); childIdx++ {
			child := cl.Get(childIdx)
			if child.AffectsState() {
				ab.PushCurPath(childIdx, child)
				ab.Traverse(child)
				ab.PopCurPath(InPath)
			}
		}
		if !ab.HasTerminated() {
			child := cl.Get(childIdx)
			ab.PushCurPath(childIdx, child)
			ab.Traverse(child)
			ab.PopCurPath(InPath)
			childIdx++
		}
	}
}
