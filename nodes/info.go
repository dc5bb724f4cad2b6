// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// Info holds a text string, and does nothing in traversals.
type Info struct {
	scene.NodeBase

	// Text is the information.
	Text string
}

// NewInfo returns a new info node with the given text.
func NewInfo(text ...string) *Info {
	in := &Info{}
	if len(text) > 0 {
		in.Text = text[0]
	}
	scene.InitNode(in)
	return in
}

func (in *Info) NodeType() *types.Type { return InfoType }

func (in *Info) AffectsState() bool { return false }
