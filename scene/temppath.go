// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// TempPath is a [Path] that does not audit the child lists it runs
// through. It is used for the current path of an action during traversal,
// where the nodes are known not to change under it.
type TempPath struct {
	Path
}

// NewTempPath returns a new temporary path with room for the given
// number of nodes.
func NewTempPath(capacity int) *TempPath {
	return &TempPath{Path{nodes: make([]Node, 0, capacity), indices: make([]int, 0, capacity)}}
}

// SimpleAppend adds the node with the given child index without checking
// that it is a child of the tail.
func (tp *TempPath) SimpleAppend(n Node, idx int) {
	tp.append(n, idx)
}

// ReplaceTail replaces the last node of the path.
func (tp *TempPath) ReplaceTail(n Node, idx int) {
	last := len(tp.nodes) - 1
	tp.nodes[last] = n
	tp.indices[last] = idx
}
