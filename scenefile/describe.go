// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/nodes"
	"cogentcore.org/scenegraph/scene"
)

// Describe returns the description of the scene graph. A node that
// occurs more than once is described at its first occurrence and used
// after that; if it has no name it is described with its
// [scene.NodeBase.String], which is unique.
func Describe(root scene.Node) *Node {
	count := map[scene.Node]int{}
	scene.WalkDown(root, func(n scene.Node, p *scene.Path) bool {
		count[n]++
		if count[n] > 1 {
			return scene.Break
		}
		return scene.Continue
	})
	d := &describer{count: count, done: map[scene.Node]string{}}
	return d.describe(root)
}

type describer struct {
	count map[scene.Node]int
	done  map[scene.Node]string
}

func (d *describer) describe(n scene.Node) *Node {
	if name, ok := d.done[n]; ok {
		return &Node{Use: name}
	}
	nb := n.AsNode()
	desc := &Node{Name: nb.Name, Type: n.NodeType().IDName}
	if d.count[n] > 1 {
		desc.Name = nb.String()
		d.done[n] = desc.Name
	}
	describeProperties(n, desc)
	if cl := n.Children(); cl != nil {
		for i := range cl.Len() {
			desc.Children = append(desc.Children, d.describe(cl.Get(i)))
		}
	}
	return desc
}

func describeProperties(n scene.Node, d *Node) {
	switch n := n.(type) {
	case *nodes.Switch:
		d.Which = FormatWhich(n.Which)
	case *nodes.Separator:
		d.Culling = n.Culling
	case *nodes.Transform:
		if n.Translation != (math32.Vector3{}) {
			d.Translate = components(n.Translation)
		}
		if n.Scale != math32.Vec3(1, 1, 1) {
			d.Scale = components(n.Scale)
		}
		d.Rotate = math32.RadToDeg(n.Rotation)
	case *nodes.Cube:
		d.Size = components(n.Size)
	case *nodes.Coordinate:
		for _, p := range n.Points {
			d.Points = append(d.Points, components(p))
		}
	case *nodes.ClipPlane:
		d.Plane = []float32{n.Plane.Norm.X, n.Plane.Norm.Y, n.Plane.Norm.Z, n.Plane.Off}
		d.On = &n.On
	case *nodes.DirectionalLight:
		d.Direction = components(n.Direction)
		d.Intensity = &n.Intensity
		d.On = &n.On
	case *nodes.Info:
		d.Text = n.Text
	}
}

func components(v math32.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}
