// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"strconv"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/nodes"
	"cogentcore.org/scenegraph/scene"
)

// Build builds the scene graph of the given description.
func Build(desc *Node) (scene.Node, error) {
	b := &builder{defs: map[string]scene.Node{}}
	return b.build(desc, "")
}

type builder struct {
	// defs are the named nodes built so far.
	defs map[string]scene.Node
}

func (b *builder) build(d *Node, at string) (scene.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("scenefile: %s: empty node", at)
	}
	if d.Use != "" {
		if d.Type != "" || d.Name != "" || len(d.Children) > 0 {
			return nil, fmt.Errorf("scenefile: %s: use %q can not have a type, name or children", at, d.Use)
		}
		n, ok := b.defs[d.Use]
		if !ok {
			return nil, fmt.Errorf("scenefile: %s: use of undefined node %q", at, d.Use)
		}
		return n, nil
	}
	if d.Type == "" {
		return nil, fmt.Errorf("scenefile: %s: missing node type", at)
	}
	n := nodes.New(d.Type)
	if n == nil {
		return nil, fmt.Errorf("scenefile: %s: unknown node type %q", at, d.Type)
	}
	if d.Name != "" {
		n.AsNode().SetName(d.Name)
		at += "/" + d.Name
	} else {
		at += "/" + d.Type
	}
	if err := setProperties(n, d); err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", at, err)
	}
	if len(d.Children) > 0 && n.Children() == nil {
		return nil, fmt.Errorf("scenefile: %s: node type %q can not have children", at, d.Type)
	}
	for i, cd := range d.Children {
		c, err := b.build(cd, at+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		n.Children().Append(c)
	}
	// defined after the children, so that a node can not use itself
	if d.Name != "" {
		b.defs[d.Name] = n
	}
	return n, nil
}

func setProperties(n scene.Node, d *Node) error {
	switch n := n.(type) {
	case *nodes.Switch:
		which, err := ParseWhich(d.Which)
		if err != nil {
			return err
		}
		n.Which = which
	case *nodes.Separator:
		n.Culling = d.Culling
	case *nodes.Transform:
		if d.Translate != nil {
			v, err := vector(d.Translate, "translate")
			if err != nil {
				return err
			}
			n.Translation = v
		}
		if d.Scale != nil {
			v, err := vector(d.Scale, "scale")
			if err != nil {
				return err
			}
			n.Scale = v
		}
		n.Rotation = math32.DegToRad(d.Rotate)
	case *nodes.Cube:
		if d.Size != nil {
			v, err := vector(d.Size, "size")
			if err != nil {
				return err
			}
			n.Size = v
		}
	case *nodes.Coordinate:
		n.Points = make([]math32.Vector3, len(d.Points))
		for i, p := range d.Points {
			v, err := vector(p, "points["+strconv.Itoa(i)+"]")
			if err != nil {
				return err
			}
			n.Points[i] = v
		}
	case *nodes.ClipPlane:
		if d.Plane != nil {
			if len(d.Plane) != 4 {
				return fmt.Errorf("plane must have 4 components, not %d", len(d.Plane))
			}
			n.Plane = math32.NewPlane(math32.Vec3(d.Plane[0], d.Plane[1], d.Plane[2]), d.Plane[3])
		}
		if d.On != nil {
			n.On = *d.On
		}
	case *nodes.DirectionalLight:
		if d.Direction != nil {
			v, err := vector(d.Direction, "direction")
			if err != nil {
				return err
			}
			n.Direction = v
		}
		if d.Intensity != nil {
			n.Intensity = *d.Intensity
		}
		if d.On != nil {
			n.On = *d.On
		}
	case *nodes.Info:
		n.Text = d.Text
	}
	return nil
}

func vector(v []float32, field string) (math32.Vector3, error) {
	if len(v) != 3 {
		return math32.Vector3{}, fmt.Errorf("%s must have 3 components, not %d", field, len(v))
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

// ParseWhich parses the child of a switch: none (or empty), inherit, all,
// or a child index.
func ParseWhich(s string) (int32, error) {
	switch s {
	case "", "none":
		return nodes.SwitchNone, nil
	case "inherit":
		return nodes.SwitchInherit, nil
	case "all":
		return nodes.SwitchAll, nil
	}
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid switch child %q: must be none, inherit, all or an index", s)
	}
	return int32(i), nil
}

// FormatWhich is the inverse of [ParseWhich].
func FormatWhich(which int32) string {
	switch which {
	case nodes.SwitchNone:
		return "none"
	case nodes.SwitchInherit:
		return "inherit"
	case nodes.SwitchAll:
		return "all"
	}
	return strconv.Itoa(int(which))
}
