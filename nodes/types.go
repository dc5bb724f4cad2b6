// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nodes provides the standard scene graph nodes: grouping nodes
// (group, separator, switch), property nodes (transform, light, clip
// plane, coordinates, info) and shapes.
package nodes

import (
	"cogentcore.org/scenegraph/actions"
	"cogentcore.org/scenegraph/scene"
)

// Node types, which are looked up by their kebab-case IDName
// (eg: "separator") when reading scene files.
var (
	GroupType            = scene.NodeTypes.AddType("nodes.Group", scene.NodeBaseType, func() any { return NewGroup() })
	SeparatorType        = scene.NodeTypes.AddType("nodes.Separator", GroupType, func() any { return NewSeparator() })
	SwitchType           = scene.NodeTypes.AddType("nodes.Switch", GroupType, func() any { return NewSwitch() })
	TransformType        = scene.NodeTypes.AddType("nodes.Transform", scene.NodeBaseType, func() any { return NewTransform() })
	DirectionalLightType = scene.NodeTypes.AddType("nodes.DirectionalLight", scene.NodeBaseType, func() any { return NewDirectionalLight() })
	ClipPlaneType        = scene.NodeTypes.AddType("nodes.ClipPlane", scene.NodeBaseType, func() any { return NewClipPlane() })
	CoordinateType       = scene.NodeTypes.AddType("nodes.Coordinate", scene.NodeBaseType, func() any { return NewCoordinate() })
	InfoType             = scene.NodeTypes.AddType("nodes.Info", scene.NodeBaseType, func() any { return NewInfo() })
	ShapeType            = scene.NodeTypes.AddType("nodes.Shape", scene.NodeBaseType, nil)
	CubeType             = scene.NodeTypes.AddType("nodes.Cube", ShapeType, func() any { return NewCube() })
	PointSetType         = scene.NodeTypes.AddType("nodes.PointSet", ShapeType, func() any { return NewPointSet() })
	LineSetType          = scene.NodeTypes.AddType("nodes.LineSet", ShapeType, func() any { return NewLineSet() })
)

func init() {
	// info nodes carry no geometry
	actions.BoundingBoxActionType.AddMethod(InfoType, scene.NullMethod)
}

// New returns a new node of the type with the given name or IDName,
// or nil if there is no such type that can be created.
func New(typeName string) scene.Node {
	nt := scene.NodeTypes.TypeByName(typeName)
	if nt == nil || nt.New == nil {
		return nil
	}
	n, _ := nt.New().(scene.Node)
	return n
}
