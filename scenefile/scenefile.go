// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads and writes scene graphs as YAML descriptions.
//
// Each node is a mapping with a type and optional name, properties and
// children. A node that was given a name earlier in the file can be
// shared by referring to it with use:
//
//	name: root
//	type: separator
//	children:
//	  - {name: a, type: transform, translate: [1, 0, 0]}
//	  - name: sw
//	    type: switch
//	    which: none
//	    children:
//	      - {name: b, type: cube, size: [1, 1, 1]}
//	      - {use: a}
package scenefile

import (
	"io"
	"io/fs"

	"cogentcore.org/scenegraph/base/iox/yamlx"
	"cogentcore.org/scenegraph/scene"
)

// Node is the description of one node in a scene file.
type Node struct {
	// Name is the name of the node, by which later nodes can use it.
	Name string `yaml:"name,omitempty"`

	// Type is the node type, by its IDName (eg: "separator").
	Type string `yaml:"type,omitempty"`

	// Use is the name of an earlier node that is shared here.
	// No other field can be set with it.
	Use string `yaml:"use,omitempty"`

	// Which is the child of a switch: none, inherit, all or an index.
	Which string `yaml:"which,omitempty"`

	// Translate is the translation of a transform.
	Translate []float32 `yaml:"translate,flow,omitempty"`

	// Rotate is the rotation of a transform about Z, in degrees.
	Rotate float32 `yaml:"rotate,omitempty"`

	// Scale is the scale of a transform.
	Scale []float32 `yaml:"scale,flow,omitempty"`

	// Size is the size of a cube.
	Size []float32 `yaml:"size,flow,omitempty"`

	// Points are the points of a coordinate node.
	Points [][]float32 `yaml:"points,flow,omitempty"`

	// Plane is the plane of a clip plane, as a, b, c, d
	// with ax + by + cz + d = 0.
	Plane []float32 `yaml:"plane,flow,omitempty"`

	// Direction is the direction of a light.
	Direction []float32 `yaml:"direction,flow,omitempty"`

	// Intensity is the intensity of a light.
	Intensity *float32 `yaml:"intensity,omitempty"`

	// On is whether a light or clip plane is on.
	On *bool `yaml:"on,omitempty"`

	// Text is the text of an info node.
	Text string `yaml:"text,omitempty"`

	// Culling is whether a separator culls.
	Culling bool `yaml:"culling,omitempty"`

	// Children are the children of a group node.
	Children []*Node `yaml:"children,omitempty"`
}

// Open reads the scene file with the given name and builds its scene graph.
func Open(filename string) (scene.Node, error) {
	desc := &Node{}
	if err := yamlx.Open(desc, filename); err != nil {
		return nil, err
	}
	return Build(desc)
}

// OpenFS reads the scene file with the given name from the given
// filesystem and builds its scene graph.
func OpenFS(fsys fs.FS, filename string) (scene.Node, error) {
	desc := &Node{}
	if err := yamlx.OpenFS(desc, fsys, filename); err != nil {
		return nil, err
	}
	return Build(desc)
}

// Read reads a scene description and builds its scene graph.
func Read(r io.Reader) (scene.Node, error) {
	desc := &Node{}
	if err := yamlx.Read(desc, r); err != nil {
		return nil, err
	}
	return Build(desc)
}

// ReadBytes builds the scene graph of the given scene description.
func ReadBytes(data []byte) (scene.Node, error) {
	desc := &Node{}
	if err := yamlx.ReadBytes(desc, data); err != nil {
		return nil, err
	}
	return Build(desc)
}

// Save writes the scene graph to the file with the given name.
func Save(root scene.Node, filename string) error {
	return yamlx.Save(Describe(root), filename)
}

// Write writes the scene graph to the given writer.
func Write(root scene.Node, w io.Writer) error {
	return yamlx.Write(Describe(root), w)
}

// WriteBytes returns the scene description of the scene graph.
func WriteBytes(root scene.Node) ([]byte, error) {
	return yamlx.WriteBytes(Describe(root))
}

// Named returns the first node with the given name in the graph, or nil.
func Named(root scene.Node, name string) scene.Node {
	n, _ := scene.FindName(root, name)
	return n
}
