// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package actions

import (
	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
)

// BoundingBoxer is implemented by nodes that contribute to or change the
// computation of a bounding box. Other nodes run [scene.Node.DoAction].
type BoundingBoxer interface {
	BoundingBox(a *BoundingBoxAction)
}

// BoundingBoxActionType is the action type of [BoundingBoxAction].
var BoundingBoxActionType = func() *scene.ActionType {
	at := scene.NewActionType("actions.BoundingBoxAction", scene.ActionBaseType)
	at.EnableElement(elements.ModelMatrixType)
	at.EnableElement(elements.SwitchType)
	at.EnableElement(elements.CoordinateType)
	at.AddMethod(scene.NodeBaseType, boundingBoxMethod)
	return at
}()

// BoundingBoxAction computes the world space bounding box of a graph or
// of the graph below the tail of a path.
type BoundingBoxAction struct {
	scene.ActionBase

	box       math32.Box3
	center    math32.Vector3
	numCenter int
}

// NewBoundingBoxAction returns a new bounding box action.
func NewBoundingBoxAction() *BoundingBoxAction {
	ba := &BoundingBoxAction{}
	scene.InitAction(ba, BoundingBoxActionType)
	ba.box.SetEmpty()
	return ba
}

func (ba *BoundingBoxAction) AsBoundingBoxAction() *BoundingBoxAction { return ba }

// BeginTraversal resets the box and traverses the node.
func (ba *BoundingBoxAction) BeginTraversal(n scene.Node) {
	ba.box.SetEmpty()
	ba.center = math32.Vector3{}
	ba.numCenter = 0
	ba.Traverse(n)
}

func boundingBoxMethod(a scene.Action, n scene.Node) {
	ba := a.(interface{ AsBoundingBoxAction() *BoundingBoxAction }).AsBoundingBoxAction()
	if bb, ok := n.(BoundingBoxer); ok {
		bb.BoundingBox(ba)
		return
	}
	n.DoAction(a)
}

// ExtendBy extends the bounding box by the given object space box, which
// is transformed by the current model matrix. The center of the box is
// added to the average center.
func (ba *BoundingBoxAction) ExtendBy(box math32.Box3) {
	if box.IsEmpty() {
		return
	}
	mm := elements.ModelMatrix(ba.State())
	wb := box.MulMatrix4(&mm)
	ba.box.ExpandByBox(wb)
	ba.center.SetAdd(wb.Center())
	ba.numCenter++
}

// Box returns the world space bounding box, which is empty if nothing
// contributed to it.
func (ba *BoundingBoxAction) Box() math32.Box3 {
	return ba.box
}

// Center returns the average of the centers of the boxes that contributed
// to the bounding box.
func (ba *BoundingBoxAction) Center() math32.Vector3 {
	if ba.numCenter == 0 {
		return ba.box.Center()
	}
	return ba.center.DivScalar(float32(ba.numCenter))
}
