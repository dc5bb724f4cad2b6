// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"
	"strings"
)

// Path is a chain of nodes from a head node down to a tail node, where
// each node after the head is recorded with its index in the child list
// of the node before it.
//
// A Path made with [NewPath] audits the child lists it runs through: when
// one of them changes, the indices are corrected, or the path is truncated
// at the parent of a removed child. Unaudited variants are [TempPath] and
// [LightPath].
//
// The visible length of a path ends at the first node whose children are
// hidden (see [HidesChildren]); the full length includes the hidden part.
type Path struct {
	nodes    []Node
	indices  []int
	auditing bool
}

// NewPath returns a new auditing path with the given head, which may be nil.
func NewPath(head Node) *Path {
	p := &Path{auditing: true}
	if head != nil {
		p.SetHead(head)
	}
	return p
}

// IsAuditing returns whether the path audits the child lists it runs through.
func (p *Path) IsAuditing() bool {
	return p.auditing
}

// SetHead makes the given node the only node of the path.
func (p *Path) SetHead(n Node) {
	p.Truncate(0)
	p.append(n, -1)
}

// Head returns the head node of the path, or nil if it is empty.
func (p *Path) Head() Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[0]
}

// Len returns the visible length of the path: up to and including the
// first node with hidden children.
func (p *Path) Len() int {
	for i, n := range p.nodes {
		if hasHiddenChildren(n) {
			return i + 1
		}
	}
	return len(p.nodes)
}

// FullLen returns the full length of the path.
func (p *Path) FullLen() int {
	return len(p.nodes)
}

// Tail returns the last visible node of the path, or nil if it is empty.
func (p *Path) Tail() Node {
	n := p.Len()
	if n == 0 {
		return nil
	}
	return p.nodes[n-1]
}

// Node returns the node at the given position. It panics if the
// position is out of range of the full path.
func (p *Path) Node(i int) Node {
	p.checkIndex("Node", i)
	return p.nodes[i]
}

// Index returns the child index of the node at the given position, which
// is -1 for the head. It panics if the position is out of range.
func (p *Path) Index(i int) int {
	p.checkIndex("Index", i)
	return p.indices[i]
}

// NodeFromTail returns the node at the given position counted back from
// the visible tail (0 is the tail).
func (p *Path) NodeFromTail(i int) Node {
	return p.Node(p.Len() - 1 - i)
}

// IndexFromTail returns the child index at the given position counted
// back from the visible tail (0 is the tail).
func (p *Path) IndexFromTail(i int) int {
	return p.Index(p.Len() - 1 - i)
}

func (p *Path) checkIndex(fn string, i int) {
	if i < 0 || i >= len(p.nodes) {
		panic(fmt.Sprintf("scene.Path.%s: index %d out of range [0:%d]", fn, i, len(p.nodes)))
	}
}

// append adds a node known to be the given child of the tail.
func (p *Path) append(n Node, idx int) {
	p.nodes = append(p.nodes, n)
	p.indices = append(p.indices, idx)
	if p.auditing && n != nil {
		if cl := n.Children(); cl != nil {
			cl.addPathAuditor(p)
		}
	}
}

// AppendIndex adds the child at the given index of the tail.
func (p *Path) AppendIndex(childIndex int) error {
	if len(p.nodes) == 0 {
		return fmt.Errorf("scene.Path.AppendIndex: path is empty")
	}
	tail := p.nodes[len(p.nodes)-1]
	cl := tail.Children()
	if cl == nil {
		return fmt.Errorf("scene.Path.AppendIndex: tail %s has no children", tail.AsNode())
	}
	if childIndex < 0 || childIndex >= cl.Len() {
		return fmt.Errorf("scene.Path.AppendIndex: child index %d out of range [0:%d]", childIndex, cl.Len())
	}
	p.append(cl.Get(childIndex), childIndex)
	return nil
}

// AppendNode adds the given node, which must be a child of the tail,
// using its first index. On an empty path it sets the head.
func (p *Path) AppendNode(n Node) error {
	if len(p.nodes) == 0 {
		p.SetHead(n)
		return nil
	}
	tail := p.nodes[len(p.nodes)-1]
	cl := tail.Children()
	if cl == nil {
		return fmt.Errorf("scene.Path.AppendNode: tail %s has no children", tail.AsNode())
	}
	idx := cl.Find(n)
	if idx < 0 {
		return fmt.Errorf("scene.Path.AppendNode: %s is not a child of the tail %s", n.AsNode(), tail.AsNode())
	}
	p.append(n, idx)
	return nil
}

// AppendPath joins the given path to this one. Its head must be the tail
// of this path or one of its children.
func (p *Path) AppendPath(from *Path) error {
	if len(from.nodes) == 0 {
		return nil
	}
	if len(p.nodes) == 0 {
		for i, n := range from.nodes {
			p.append(n, from.indices[i])
		}
		return nil
	}
	head := from.nodes[0]
	if head != p.nodes[len(p.nodes)-1] {
		if err := p.AppendNode(head); err != nil {
			return fmt.Errorf("scene.Path.AppendPath: could not join paths: %w", err)
		}
	}
	for i := 1; i < len(from.nodes); i++ {
		p.append(from.nodes[i], from.indices[i])
	}
	return nil
}

// Push is the same as [Path.AppendIndex].
func (p *Path) Push(childIndex int) error {
	return p.AppendIndex(childIndex)
}

// Pop removes the last node of the full path.
func (p *Path) Pop() {
	if len(p.nodes) > 0 {
		p.Truncate(len(p.nodes) - 1)
	}
}

// Truncate shortens the full path to the given length.
func (p *Path) Truncate(length int) {
	if length < 0 || length > len(p.nodes) {
		panic(fmt.Sprintf("scene.Path.Truncate: length %d out of range [0:%d]", length, len(p.nodes)))
	}
	if p.auditing {
		for _, n := range p.nodes[length:] {
			if n == nil {
				continue
			}
			if cl := n.Children(); cl != nil {
				cl.removePathAuditor(p)
			}
		}
	}
	clear(p.nodes[length:])
	p.nodes = p.nodes[:length]
	p.indices = p.indices[:length]
}

// Copy returns a new auditing path with the given number of nodes from
// the given start position. A length of 0 or less copies to the end.
func (p *Path) Copy(start, length int) *Path {
	if length <= 0 {
		length = len(p.nodes) - start
	}
	np := NewPath(nil)
	for i := start; i < start+length; i++ {
		idx := p.Index(i)
		if i == start {
			idx = -1
		}
		np.append(p.nodes[i], idx)
	}
	return np
}

// ContainsNode returns whether the node is anywhere on the full path.
func (p *Path) ContainsNode(n Node) bool {
	return slices.Contains(p.nodes, n)
}

// FindNode returns the position of the node on the full path, or -1.
func (p *Path) FindNode(n Node) int {
	return slices.Index(p.nodes, n)
}

// ContainsPath returns whether the given path is a prefix of this one:
// same head, and the same child indices.
func (p *Path) ContainsPath(o *Path) bool {
	ol := len(o.nodes)
	if ol == 0 || ol > len(p.nodes) {
		return false
	}
	return p.FindFork(o) == ol-1
}

// FindFork returns the position of the last node that both paths have in
// common, or -1 if they do not have the same head.
func (p *Path) FindFork(o *Path) int {
	n := min(len(p.nodes), len(o.nodes))
	if n == 0 || p.nodes[0] != o.nodes[0] {
		return -1
	}
	i := 1
	for ; i < n; i++ {
		if p.indices[i] != o.indices[i] {
			break
		}
	}
	return i - 1
}

// Equal returns whether both paths have the same head and child indices.
func (p *Path) Equal(o *Path) bool {
	return len(p.nodes) == len(o.nodes) && (len(p.nodes) == 0 || p.FindFork(o) == len(p.nodes)-1)
}

// Full returns a view of the path with hidden children included.
func (p *Path) Full() FullPath {
	return FullPath{p}
}

func (p *Path) String() string {
	var sb strings.Builder
	for i, n := range p.nodes {
		if i > 0 {
			sb.WriteString("/")
		}
		if n == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(n.AsNode().String())
	}
	return sb.String()
}

// insertIndex is called by the child list of parent when a child is
// inserted at the given index.
func (p *Path) insertIndex(parent Node, newIndex int) {
	pos := p.FindNode(parent)
	if pos < 0 || pos == len(p.nodes)-1 {
		return
	}
	if newIndex <= p.indices[pos+1] {
		p.indices[pos+1]++
	}
}

// removeIndex is called by the child list of parent when the child at
// the given index is removed.
func (p *Path) removeIndex(parent Node, oldIndex int) {
	pos := p.FindNode(parent)
	if pos < 0 || pos == len(p.nodes)-1 {
		return
	}
	switch {
	case oldIndex < p.indices[pos+1]:
		p.indices[pos+1]--
	case oldIndex == p.indices[pos+1]:
		p.Truncate(pos + 1)
	}
}

// replaceIndex is called by the child list of parent when the child at
// the given index is replaced by newChild.
func (p *Path) replaceIndex(parent Node, index int, newChild Node) {
	pos := p.FindNode(parent)
	if pos < 0 || pos == len(p.nodes)-1 {
		return
	}
	if index == p.indices[pos+1] {
		p.Truncate(pos + 1)
		p.append(newChild, index)
	}
}

// FullPath is a view of a [Path] in which the length and the tail include
// nodes below a node with hidden children.
type FullPath struct {
	*Path
}

// Len returns the full length of the path.
func (fp FullPath) Len() int {
	return fp.Path.FullLen()
}

// Tail returns the last node of the full path, or nil if it is empty.
func (fp FullPath) Tail() Node {
	if len(fp.nodes) == 0 {
		return nil
	}
	return fp.nodes[len(fp.nodes)-1]
}

// NodeFromTail returns the node at the given position counted back from
// the full tail.
func (fp FullPath) NodeFromTail(i int) Node {
	return fp.Node(len(fp.nodes) - 1 - i)
}

// IndexFromTail returns the child index at the given position counted
// back from the full tail.
func (fp FullPath) IndexFromTail(i int) int {
	return fp.Index(len(fp.nodes) - 1 - i)
}
