// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package actions

import (
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Interest is which of the matching nodes a [SearchAction] returns.
type Interest int32

const (
	// First returns the path to the first matching node.
	First Interest = iota

	// Last returns the path to the last matching node.
	Last

	// All returns the paths to all matching nodes.
	All
)

// LookFor is a bit mask of the criteria a [SearchAction] matches on.
type LookFor int32

const (
	// LookForNode matches a given node.
	LookForNode LookFor = 1 << iota

	// LookForName matches the name of nodes.
	LookForName

	// LookForType matches the type of nodes.
	LookForType
)

// Searcher is implemented by nodes that search their children in a
// specific way. Other nodes run [scene.Node.DoAction] after being
// matched themselves.
type Searcher interface {
	Search(a *SearchAction)
}

// SearchActionType is the action type of [SearchAction].
var SearchActionType = func() *scene.ActionType {
	at := scene.NewActionType("actions.SearchAction", scene.ActionBaseType)
	at.AddMethod(scene.NodeBaseType, searchMethod)
	return at
}()

// SearchAction finds nodes in a graph by node, name or type, and returns
// paths to them. A node matches if it meets all the criteria set.
type SearchAction struct {
	scene.ActionBase

	// Node is the node to find with [LookForNode].
	Node scene.Node

	// Name is the node name to find with [LookForName].
	Name string

	// Type is the node type to find with [LookForType].
	Type *types.Type

	// Derived makes [LookForType] match types derived from Type.
	Derived bool

	// LookFor is the set of criteria.
	LookFor LookFor

	// Interest is which of the matching nodes to return.
	Interest Interest

	// SearchingAll makes the search go into all the children of switches,
	// not only the selected one.
	SearchingAll bool

	found bool
	last  *scene.LightPath
	path  *scene.Path
	paths scene.PathList
}

// NewSearchAction returns a new search action.
func NewSearchAction() *SearchAction {
	sa := &SearchAction{}
	scene.InitAction(sa, SearchActionType)
	return sa
}

func (sa *SearchAction) AsSearchAction() *SearchAction { return sa }

// SetNode sets the node to find.
func (sa *SearchAction) SetNode(n scene.Node) {
	sa.Node = n
	sa.LookFor |= LookForNode
}

// SetName sets the node name to find.
func (sa *SearchAction) SetName(name string) {
	sa.Name = name
	sa.LookFor |= LookForName
}

// SetType sets the node type to find, and whether derived types match.
func (sa *SearchAction) SetType(nt *types.Type, derived bool) {
	sa.Type = nt
	sa.Derived = derived
	sa.LookFor |= LookForType
}

// Reset clears the criteria and the results.
func (sa *SearchAction) Reset() {
	sa.Node = nil
	sa.Name = ""
	sa.Type = nil
	sa.Derived = false
	sa.LookFor = 0
	sa.Interest = First
	sa.SearchingAll = false
	sa.clearResults()
}

func (sa *SearchAction) clearResults() {
	sa.found = false
	sa.last = nil
	sa.path = nil
	sa.paths = nil
}

// IsFound returns whether the search for the first match is over.
func (sa *SearchAction) IsFound() bool {
	return sa.found
}

// Path returns the path found with [First] or [Last], or nil.
func (sa *SearchAction) Path() *scene.Path {
	return sa.path
}

// Paths returns the paths found with [All].
func (sa *SearchAction) Paths() scene.PathList {
	return sa.paths
}

// BeginTraversal clears the results and traverses the node.
func (sa *SearchAction) BeginTraversal(n scene.Node) {
	sa.clearResults()
	sa.Traverse(n)
}

// EndTraversal makes the path to the last match.
func (sa *SearchAction) EndTraversal(n scene.Node) {
	if sa.last != nil {
		sa.path = sa.last.Path()
		sa.last = nil
	}
}

// Matches returns whether the node meets all the criteria.
func (sa *SearchAction) Matches(n scene.Node) bool {
	if sa.LookFor == 0 {
		return false
	}
	if sa.LookFor&LookForNode != 0 && n != sa.Node {
		return false
	}
	if sa.LookFor&LookForName != 0 && n.AsNode().Name != sa.Name {
		return false
	}
	if sa.LookFor&LookForType != 0 {
		nt := n.NodeType()
		if nt != sa.Type && !(sa.Derived && nt.IsDerivedFrom(sa.Type)) {
			return false
		}
	}
	return true
}

// addMatch records the current path as a match.
func (sa *SearchAction) addMatch() {
	cp := sa.CurPath()
	switch sa.Interest {
	case First:
		sa.path = cp.Copy(0, 0)
		sa.found = true
		sa.SetTerminated(true)
	case Last:
		if sa.last == nil {
			sa.last = scene.NewLightPath(cp.Head())
		} else {
			sa.last.SetHead(cp.Head())
		}
		for i := 1; i < cp.FullLen(); i++ {
			sa.last.Append(cp.Index(i))
		}
	case All:
		sa.paths = append(sa.paths, cp.Copy(0, 0))
	}
}

// SearchNode matches the node and records it. It returns whether the
// search should go on below the node.
func (sa *SearchAction) SearchNode(n scene.Node) bool {
	if sa.found {
		return false
	}
	if sa.Matches(n) {
		sa.addMatch()
	}
	return !sa.found
}

func searchMethod(a scene.Action, n scene.Node) {
	sa := a.(interface{ AsSearchAction() *SearchAction }).AsSearchAction()
	if !sa.SearchNode(n) {
		return
	}
	if s, ok := n.(Searcher); ok {
		s.Search(sa)
		return
	}
	n.DoAction(a)
}
