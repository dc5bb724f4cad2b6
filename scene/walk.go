// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides basic graph walking functions that visit nodes
directly through their child lists, without an action or a state.
*/

package scene

const (
	// Continue = true can be returned from walk functions to continue
	// processing down the graph, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from walk functions to stop processing
	// this branch of the graph.
	Break = false
)

// walkFrame is a node being walked and the index of its next child.
type walkFrame struct {
	node Node
	next int
}

// WalkDown calls the given function on the node and all of its descendants
// in depth-first order, with the path to each node from the start node.
// It stops walking the current branch if the function returns [Break] and
// keeps walking if it returns [Continue]. A node shared by several parents
// is visited once per occurrence. It is non-recursive. The path is only
// valid during the call, and must be copied to be kept.
func WalkDown(start Node, fun func(n Node, p *Path) bool) {
	if start == nil {
		return
	}
	tp := NewTempPath(8)
	tp.SimpleAppend(start, -1)
	if !fun(start, &tp.Path) {
		return
	}
	stack := []walkFrame{{node: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		cl := top.node.Children()
		if cl == nil || top.next >= cl.Len() {
			// ascend
			stack = stack[:len(stack)-1]
			tp.Pop()
			continue
		}
		idx := top.next
		top.next++
		child := cl.Get(idx)
		tp.SimpleAppend(child, idx)
		if fun(child, &tp.Path) {
			stack = append(stack, walkFrame{node: child})
			continue
		}
		tp.Pop()
	}
}

// WalkUp calls the given function on the node and all of its ancestors,
// following every parent of shared nodes, and visiting each ancestor once.
// It stops walking the current branch if the function returns [Break] and
// keeps walking if it returns [Continue].
func WalkUp(start Node, fun func(n Node) bool) {
	seen := map[Node]bool{}
	stack := []Node{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil || seen[cur] {
			continue
		}
		seen[cur] = true
		if !fun(cur) {
			continue
		}
		stack = append(stack, cur.AsNode().Parents()...)
	}
}

// Find returns the first node in depth-first order, starting with the
// given node, for which the function returns true, with a new path to it.
func Find(start Node, fun func(n Node) bool) (Node, *Path) {
	var found Node
	var path *Path
	WalkDown(start, func(n Node, p *Path) bool {
		if found != nil {
			return Break
		}
		if fun(n) {
			found = n
			path = p.Copy(0, 0)
			return Break
		}
		return Continue
	})
	return found, path
}

// FindName returns the first node with the given name, with a new path to it.
func FindName(start Node, name string) (Node, *Path) {
	return Find(start, func(n Node) bool {
		return n.AsNode().Name == name
	})
}
