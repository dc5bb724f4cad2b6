// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodes

import (
	"cogentcore.org/scenegraph/elements"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/types"
)

// DirectionalLight is a light shining in one direction, which is added
// to the lights of the state when it is on.
type DirectionalLight struct {
	scene.NodeBase

	// Direction is the direction of the light in object space.
	Direction math32.Vector3

	// Intensity is the intensity of the light, from 0 to 1.
	Intensity float32

	// On is whether the light is on.
	On bool
}

// NewDirectionalLight returns a new light shining along -Z.
func NewDirectionalLight() *DirectionalLight {
	l := &DirectionalLight{Direction: math32.Vec3(0, 0, -1), Intensity: 1, On: true}
	scene.InitNode(l)
	return l
}

func (l *DirectionalLight) NodeType() *types.Type { return DirectionalLightType }

// SetDirection sets the [DirectionalLight.Direction].
func (l *DirectionalLight) SetDirection(x, y, z float32) *DirectionalLight {
	l.Direction.Set(x, y, z)
	l.Touch()
	return l
}

// SetOn sets whether the light is on.
func (l *DirectionalLight) SetOn(on bool) *DirectionalLight {
	l.On = on
	l.Touch()
	return l
}

func (l *DirectionalLight) DoAction(a scene.Action) {
	if l.On {
		elements.AddLight(a.AsAction().State(), l.NodeID(), l)
	}
}
