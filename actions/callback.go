// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package actions

import (
	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Response is returned by node callbacks to control the traversal.
type Response int32

const (
	// Continue goes on with the traversal.
	Continue Response = iota

	// Abort stops the traversal: no other callback is called.
	Abort

	// Prune skips the children of the node. The post callbacks of the
	// node are still called. Returned from a post callback, it is the
	// same as Continue.
	Prune
)

func (r Response) String() string {
	switch r {
	case Continue:
		return "Continue"
	case Abort:
		return "Abort"
	case Prune:
		return "Prune"
	}
	return "Response(?)"
}

// NodeCallback is called on a node before or after its traversal.
type NodeCallback func(a *CallbackAction, n scene.Node) Response

// TriangleCallback is called on each triangle generated by a shape.
type TriangleCallback func(a *CallbackAction, n scene.Node, v1, v2, v3 *PrimitiveVertex)

// LineSegmentCallback is called on each line segment generated by a shape.
type LineSegmentCallback func(a *CallbackAction, n scene.Node, v1, v2 *PrimitiveVertex)

// PointCallback is called on each point generated by a shape.
type PointCallback func(a *CallbackAction, n scene.Node, v *PrimitiveVertex)

// Callbacker is implemented by nodes that do something specific for a
// [CallbackAction], such as generating primitives. Other nodes run
// [scene.Node.DoAction].
type Callbacker interface {
	Callback(a *CallbackAction)
}

// CallbackActionType is the action type of [CallbackAction].
var CallbackActionType = func() *scene.ActionType {
	at := scene.NewActionType("actions.CallbackAction", scene.ActionBaseType)
	at.EnableElement(elements.ModelMatrixType)
	at.EnableElement(elements.SwitchType)
	at.EnableElement(elements.CullType)
	at.EnableElement(elements.LightType)
	at.EnableElement(elements.ClipPlaneType)
	at.EnableElement(elements.CoordinateType)
	at.AddMethod(scene.NodeBaseType, callbackMethod)
	return at
}()

// CallbackAction traverses the scene graph and calls user functions on
// the nodes of registered types, and on the primitives generated by
// shapes. The traversal state can be read from the callbacks.
//
// Callbacks are registered for a node type and all the types derived
// from it that are registered at that time, and run in the order they
// were added.
type CallbackAction struct {
	scene.ActionBase

	pre, post []nodeCallbacks
	preTail   nodeCallbacks
	postTail  nodeCallbacks
	triangles [][]TriangleCallback
	lines     [][]LineSegmentCallback
	points    [][]PointCallback

	response    Response
	callbackAll bool
	currentNode scene.Node
}

type nodeCallbacks []NodeCallback

// run calls the callbacks in order. Abort returns at once; otherwise
// Prune from any callback wins over Continue.
func (cbs nodeCallbacks) run(a *CallbackAction, n scene.Node) Response {
	res := Continue
	for _, cb := range cbs {
		switch cb(a, n) {
		case Abort:
			return Abort
		case Prune:
			res = Prune
		}
	}
	return res
}

// NewCallbackAction returns a new callback action.
func NewCallbackAction() *CallbackAction {
	ca := &CallbackAction{}
	scene.InitAction(ca, CallbackActionType)
	return ca
}

func (ca *CallbackAction) AsCallbackAction() *CallbackAction { return ca }

// BeginTraversal resets the response and traverses the node.
func (ca *CallbackAction) BeginTraversal(n scene.Node) {
	ca.response = Continue
	ca.Traverse(n)
}

func callbackMethod(a scene.Action, n scene.Node) {
	ca := a.(interface{ AsCallbackAction() *CallbackAction }).AsCallbackAction()
	if ca.HasTerminated() {
		return
	}
	ca.currentNode = n
	ca.InvokePreCallbacks(n)
	if ca.response == Continue {
		if cb, ok := n.(Callbacker); ok {
			cb.Callback(ca)
		} else {
			n.DoAction(a)
		}
	}
	ca.InvokePostCallbacks(n)
}

// derived returns the indices of the given node type and all its
// registered derived types.
func derived(nt *types.Type) []int {
	all := scene.NodeTypes.AllDerivedFrom(nt)
	res := make([]int, len(all))
	for i, t := range all {
		res[i] = t.Data
	}
	return res
}

func addAt[T any](list [][]T, idx int, v T) [][]T {
	for len(list) <= idx {
		list = append(list, nil)
	}
	list[idx] = append(list[idx], v)
	return list
}

func addNodeAt(list []nodeCallbacks, idx int, cb NodeCallback) []nodeCallbacks {
	for len(list) <= idx {
		list = append(list, nil)
	}
	list[idx] = append(list[idx], cb)
	return list
}

// AddPreCallback adds a callback run before nodes of the given type are
// traversed.
func (ca *CallbackAction) AddPreCallback(nt *types.Type, cb NodeCallback) {
	for _, idx := range derived(nt) {
		ca.pre = addNodeAt(ca.pre, idx, cb)
	}
}

// AddPostCallback adds a callback run after nodes of the given type are
// traversed.
func (ca *CallbackAction) AddPostCallback(nt *types.Type, cb NodeCallback) {
	for _, idx := range derived(nt) {
		ca.post = addNodeAt(ca.post, idx, cb)
	}
}

// AddPreTailCallback adds a callback run before the tail of the path
// the action is applied to is traversed.
func (ca *CallbackAction) AddPreTailCallback(cb NodeCallback) {
	ca.preTail = append(ca.preTail, cb)
}

// AddPostTailCallback adds a callback run after the tail of the path
// the action is applied to is traversed.
func (ca *CallbackAction) AddPostTailCallback(cb NodeCallback) {
	ca.postTail = append(ca.postTail, cb)
}

// AddTriangleCallback adds a callback run on the triangles generated by
// shapes of the given type.
func (ca *CallbackAction) AddTriangleCallback(nt *types.Type, cb TriangleCallback) {
	for _, idx := range derived(nt) {
		ca.triangles = addAt(ca.triangles, idx, cb)
	}
}

// AddLineSegmentCallback adds a callback run on the line segments
// generated by shapes of the given type.
func (ca *CallbackAction) AddLineSegmentCallback(nt *types.Type, cb LineSegmentCallback) {
	for _, idx := range derived(nt) {
		ca.lines = addAt(ca.lines, idx, cb)
	}
}

// AddPointCallback adds a callback run on the points generated by shapes
// of the given type.
func (ca *CallbackAction) AddPointCallback(nt *types.Type, cb PointCallback) {
	for _, idx := range derived(nt) {
		ca.points = addAt(ca.points, idx, cb)
	}
}

// SetCallbackAll sets whether switches traverse all of their children.
func (ca *CallbackAction) SetCallbackAll(all bool) {
	ca.callbackAll = all
}

// IsCallbackAll returns whether switches traverse all of their children.
func (ca *CallbackAction) IsCallbackAll() bool {
	return ca.callbackAll
}

// CurrentResponse returns the response of the last callbacks run.
func (ca *CallbackAction) CurrentResponse() Response {
	return ca.response
}

// CurPathTail returns the node being traversed.
func (ca *CallbackAction) CurPathTail() scene.Node {
	return ca.currentNode
}

func (ca *CallbackAction) isPathTail(n scene.Node) bool {
	p := ca.PathAppliedTo()
	return p != nil && p.Tail() == n
}

func (ca *CallbackAction) setResponse(r Response) bool {
	ca.response = r
	if r == Abort {
		ca.SetTerminated(true)
		return false
	}
	return true
}

// InvokePreCallbacks runs the pre callbacks of the node, and the pre
// tail callbacks if it is the tail of the applied path.
func (ca *CallbackAction) InvokePreCallbacks(n scene.Node) {
	if ca.HasTerminated() {
		return
	}
	if ca.response == Prune {
		ca.response = Continue
	}
	idx := n.NodeType().Data
	if idx < len(ca.pre) && ca.pre[idx] != nil {
		if !ca.setResponse(ca.pre[idx].run(ca, n)) {
			return
		}
	}
	if ca.preTail != nil && ca.isPathTail(n) {
		ca.setResponse(ca.preTail.run(ca, n))
	}
}

// InvokePostCallbacks runs the post callbacks of the node, and the post
// tail callbacks if it is the tail of the applied path.
func (ca *CallbackAction) InvokePostCallbacks(n scene.Node) {
	if ca.HasTerminated() {
		return
	}
	if ca.response == Prune {
		ca.response = Continue
	}
	idx := n.NodeType().Data
	if idx < len(ca.post) && ca.post[idx] != nil {
		if !ca.setResponse(ca.post[idx].run(ca, n)) {
			return
		}
	}
	if ca.postTail != nil && ca.isPathTail(n) {
		ca.setResponse(ca.postTail.run(ca, n))
	}
}

// ShouldGeneratePrimitives returns whether any primitive callbacks are
// registered for the type of the shape.
func (ca *CallbackAction) ShouldGeneratePrimitives(n scene.Node) bool {
	idx := n.NodeType().Data
	return (idx < len(ca.triangles) && ca.triangles[idx] != nil) ||
		(idx < len(ca.lines) && ca.lines[idx] != nil) ||
		(idx < len(ca.points) && ca.points[idx] != nil)
}

// InvokeTriangleCallbacks runs the triangle callbacks of the shape.
func (ca *CallbackAction) InvokeTriangleCallbacks(n scene.Node, v1, v2, v3 *PrimitiveVertex) {
	if idx := n.NodeType().Data; idx < len(ca.triangles) {
		for _, cb := range ca.triangles[idx] {
			cb(ca, n, v1, v2, v3)
		}
	}
}

// InvokeLineSegmentCallbacks runs the line segment callbacks of the shape.
func (ca *CallbackAction) InvokeLineSegmentCallbacks(n scene.Node, v1, v2 *PrimitiveVertex) {
	if idx := n.NodeType().Data; idx < len(ca.lines) {
		for _, cb := range ca.lines[idx] {
			cb(ca, n, v1, v2)
		}
	}
}

// InvokePointCallbacks runs the point callbacks of the shape.
func (ca *CallbackAction) InvokePointCallbacks(n scene.Node, v *PrimitiveVertex) {
	if idx := n.NodeType().Data; idx < len(ca.points) {
		for _, cb := range ca.points[idx] {
			cb(ca, n, v)
		}
	}
}

// ModelMatrix returns the current object to world transform.
func (ca *CallbackAction) ModelMatrix() math32.Matrix4 {
	return elements.ModelMatrix(ca.State())
}

// Switch returns the current inherited switch value.
func (ca *CallbackAction) Switch() int32 {
	return elements.Switch(ca.State())
}

// Lights returns the lights that are on.
func (ca *CallbackAction) Lights() []elements.Light {
	return elements.Lights(ca.State())
}

// ClipPlanes returns the world space clip planes in effect.
func (ca *CallbackAction) ClipPlanes() []math32.Plane {
	return elements.ClipPlanes(ca.State())
}

// Coordinates returns the current coordinates.
func (ca *CallbackAction) Coordinates() []math32.Vector3 {
	return elements.Coordinates(ca.State())
}
