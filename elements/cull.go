// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"log/slog"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/state"
)

// MaxCullPlanes is the maximum number of planes of a [CullElement],
// including the six of the view volume.
const MaxCullPlanes = 32

// CullElement holds a set of world space planes that geometry can be
// tested against, and for each plane a flag bit recording that the
// current subtree is known to be completely inside of it, so that the
// plane need not be tested again below.
type CullElement struct {
	state.ElementBase

	// Planes are the cull planes in world space; the inside is the
	// positive half-space.
	Planes [MaxCullPlanes]math32.Plane

	// NumPlanes is the number of planes in use.
	NumPlanes int

	// Flags has bit i set when everything below is inside plane i.
	Flags uint32

	// ViewVolumeIndex is the index of the first of the six view volume
	// planes, or -1 if no view volume was set.
	ViewVolumeIndex int
}

// CullType is the element type of [CullElement].
var CullType = state.RegisterElement("elements.CullElement", func() state.Element { return &CullElement{} })

func (e *CullElement) Init(st *state.State) {
	e.NumPlanes = 0
	e.Flags = 0
	e.ViewVolumeIndex = -1
}

func (e *CullElement) Push(st *state.State, prev state.Element) {
	pe := prev.(*CullElement)
	e.Planes = pe.Planes
	e.NumPlanes = pe.NumPlanes
	e.Flags = pe.Flags
	e.ViewVolumeIndex = pe.ViewVolumeIndex
}

// Matches is never needed for culling, which does not create cache dependencies.
func (e *CullElement) Matches(other state.Element) bool {
	return false
}

// AddCullPlane adds a plane given in object space. It is transformed to
// world space by the current model matrix. If all the planes are in use,
// a warning is logged and the plane is dropped.
func AddCullPlane(st *state.State, plane math32.Plane) {
	e, ok := st.Element(CullType.StackIndex).(*CullElement)
	if !ok {
		return
	}
	if e.NumPlanes >= MaxCullPlanes {
		slog.Warn("elements.AddCullPlane: too many cull planes, plane dropped", "max", MaxCullPlanes)
		return
	}
	mm := ModelMatrixNoCapture(st)
	e.Planes[e.NumPlanes] = plane.MulMatrix4(&mm)
	e.NumPlanes++
}

// SetViewVolume sets the six planes of the given world space frustum.
// The first call reserves six planes; later calls replace them.
func SetViewVolume(st *state.State, vv *math32.Frustum) {
	e, ok := st.Element(CullType.StackIndex).(*CullElement)
	if !ok {
		return
	}
	if e.ViewVolumeIndex < 0 {
		if e.NumPlanes+6 > MaxCullPlanes {
			slog.Warn("elements.SetViewVolume: too many cull planes, view volume dropped", "max", MaxCullPlanes)
			return
		}
		e.ViewVolumeIndex = e.NumPlanes
		e.NumPlanes += 6
	}
	for i := range 6 {
		e.Planes[e.ViewVolumeIndex+i] = vv.Planes[i]
	}
	e.Flags &^= uint32(0x3f) << e.ViewVolumeIndex
}

// NumCullPlanes returns the number of cull planes in use.
func NumCullPlanes(st *state.State) int {
	e, ok := st.ElementNoPush(CullType.StackIndex).(*CullElement)
	if !ok {
		return 0
	}
	return e.NumPlanes
}

// CullTest returns whether the given box is completely outside of any
// of the cull planes, without recording the planes it is inside of.
// If objectSpace is set, the box is transformed by the model matrix.
func CullTest(st *state.State, box math32.Box3, objectSpace bool) bool {
	e, ok := st.ElementNoPush(CullType.StackIndex).(*CullElement)
	if !ok {
		return false
	}
	flags := e.Flags
	return e.cullTest(st, box, objectSpace, &flags)
}

// CullBox returns whether the given box is completely outside of any of
// the cull planes. Planes the box is completely inside of are recorded
// in the flags, so that they are skipped in the subtree below.
// If objectSpace is set, the box is transformed by the model matrix.
func CullBox(st *state.State, box math32.Box3, objectSpace bool) bool {
	e, ok := st.ElementNoPush(CullType.StackIndex).(*CullElement)
	if !ok {
		return false
	}
	flags := e.Flags
	culled := e.cullTest(st, box, objectSpace, &flags)
	if flags != e.Flags {
		st.Element(CullType.StackIndex).(*CullElement).Flags = flags
	}
	return culled
}

// CompletelyInside returns whether the current subtree is known to be
// inside of all the cull planes.
func CompletelyInside(st *state.State) bool {
	e, ok := st.ElementNoPush(CullType.StackIndex).(*CullElement)
	if !ok {
		return false
	}
	mask := uint32(1<<uint64(e.NumPlanes) - 1)
	return e.Flags&mask == mask
}

func (e *CullElement) cullTest(st *state.State, box math32.Box3, objectSpace bool, flags *uint32) bool {
	if box.IsEmpty() {
		return false
	}
	mask := uint32(1<<uint64(e.NumPlanes) - 1)
	if *flags&mask == mask {
		return false
	}
	corners := box.Corners()
	if objectSpace {
		mm := ModelMatrixNoCapture(st)
		if !mm.IsIdentity() {
			for i := range corners {
				corners[i] = corners[i].MulMatrix4AsPoint(&mm)
			}
		}
	}
	for i := 0; i < e.NumPlanes; i++ {
		bit := uint32(1) << i
		if *flags&bit != 0 {
			continue
		}
		in := 0
		for _, c := range corners {
			if e.Planes[i].IsInHalfSpace(c) {
				in++
			}
		}
		if in == 0 {
			return true
		}
		if in == len(corners) {
			*flags |= bit
		}
	}
	return false
}
