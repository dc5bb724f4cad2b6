// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cmp"
	"slices"
)

// PathList is an ordered list of paths that an action can be applied to.
type PathList []*Path

// Copy returns a shallow copy of the list.
func (pl PathList) Copy() PathList {
	return slices.Clone(pl)
}

// Find returns the index of a path equal to the given one, or -1.
func (pl PathList) Find(p *Path) int {
	return slices.IndexFunc(pl, func(o *Path) bool { return o.Equal(p) })
}

// Sort sorts the paths so that paths with the same head are adjacent,
// with the heads in node ID order and the paths under each head in
// depth-first order.
func (pl PathList) Sort() {
	slices.SortStableFunc(pl, comparePaths)
}

func comparePaths(a, b *Path) int {
	ha, hb := a.Head(), b.Head()
	if ha != hb {
		return cmp.Compare(nodeID(ha), nodeID(hb))
	}
	n := min(len(a.indices), len(b.indices))
	for i := 1; i < n; i++ {
		if c := cmp.Compare(a.indices[i], b.indices[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.indices), len(b.indices))
}

func nodeID(n Node) uint64 {
	if n == nil {
		return 0
	}
	return n.AsNode().NodeID()
}

// Uniquify removes duplicate paths, and paths that continue through the
// end of another path in the list, which are traversed anyway below that
// path. The list must be sorted.
func (pl PathList) Uniquify() PathList {
	out := pl[:0]
	for _, p := range pl {
		if len(out) > 0 && p.ContainsPath(out[len(out)-1]) {
			continue
		}
		out = append(out, p)
	}
	clear(pl[len(out):])
	return out
}
