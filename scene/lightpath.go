// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// LightPath is a head node plus a list of child indices. It does not keep
// references to the nodes below the head, so nodes are found by walking
// the child lists, and it is only valid while those lists are unchanged.
type LightPath struct {
	head    Node
	indices []int
}

// NewLightPath returns a new light path with the given head.
func NewLightPath(head Node) *LightPath {
	lp := &LightPath{}
	lp.SetHead(head)
	return lp
}

// SetHead makes the given node the head and clears the indices.
func (lp *LightPath) SetHead(n Node) {
	lp.head = n
	lp.indices = lp.indices[:0]
}

// Head returns the head node.
func (lp *LightPath) Head() Node {
	return lp.head
}

// Len returns the number of nodes on the path.
func (lp *LightPath) Len() int {
	if lp.head == nil {
		return 0
	}
	return len(lp.indices) + 1
}

// Append adds the given child index.
func (lp *LightPath) Append(childIndex int) {
	lp.indices = append(lp.indices, childIndex)
}

// Push is the same as [LightPath.Append].
func (lp *LightPath) Push(childIndex int) {
	lp.Append(childIndex)
}

// Pop removes the last index.
func (lp *LightPath) Pop() {
	if len(lp.indices) > 0 {
		lp.indices = lp.indices[:len(lp.indices)-1]
	}
}

// Truncate shortens the path to the given number of nodes.
func (lp *LightPath) Truncate(length int) {
	if length <= 0 {
		lp.indices = lp.indices[:0]
		return
	}
	lp.indices = lp.indices[:min(length-1, len(lp.indices))]
}

// Index returns the child index at the given position; the head is -1.
func (lp *LightPath) Index(i int) int {
	if i == 0 {
		return -1
	}
	return lp.indices[i-1]
}

// Node returns the node at the given position, by walking the child
// lists from the head.
func (lp *LightPath) Node(i int) Node {
	if i < 0 || i >= lp.Len() {
		panic(fmt.Sprintf("scene.LightPath.Node: index %d out of range [0:%d]", i, lp.Len()))
	}
	n := lp.head
	for _, idx := range lp.indices[:i] {
		n = n.Children().Get(idx)
	}
	return n
}

// Tail returns the last node, or nil for an empty path.
func (lp *LightPath) Tail() Node {
	if lp.head == nil {
		return nil
	}
	return lp.Node(lp.Len() - 1)
}

// Path returns a new auditing [Path] with the same nodes.
func (lp *LightPath) Path() *Path {
	p := NewPath(lp.head)
	n := lp.head
	for _, idx := range lp.indices {
		n = n.Children().Get(idx)
		p.append(n, idx)
	}
	return p
}
