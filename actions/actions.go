// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package actions provides the concrete scene graph actions: a callback
// action that runs user functions on nodes and on the primitives of
// shapes, a bounding box action, and a search action.
//
// Node packages customize what a node does for an action by implementing
// the optional interfaces defined here, such as [Callbacker] and
// [BoundingBoxer]; otherwise the generic [scene.Node.DoAction] runs.
package actions

import (
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
)

// VisitsAllChildren returns whether the action wants switch-like nodes to
// traverse all of their children rather than the selected one. A
// [SearchAction] that is [SearchAction.SearchingAll] goes through
// [Searcher] instead.
func VisitsAllChildren(a scene.Action) bool {
	ca, ok := a.(interface{ AsCallbackAction() *CallbackAction })
	return ok && ca.AsCallbackAction().IsCallbackAll()
}

// PrimitiveVertex is a vertex of a primitive generated by a shape, in the
// object space of the shape.
type PrimitiveVertex struct {
	// Point is the position of the vertex.
	Point math32.Vector3

	// Normal is the surface normal at the vertex.
	Normal math32.Vector3
}
