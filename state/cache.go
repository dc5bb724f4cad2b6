// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "slices"

// Cache records the elements set outside of a cached traversal scope that
// were read inside of it, so that a cached result can later be checked
// against the state it is used in.
type Cache struct {
	elements []Element
	invalid  bool
}

type openCache struct {
	cache *Cache
	depth int
}

// NewCache returns a new empty [Cache].
func NewCache() *Cache {
	return &Cache{}
}

// AddElement records a match copy of the given element, unless one for
// its stack index is already recorded.
func (c *Cache) AddElement(e Element) {
	si := e.AsElement().StackIndex()
	if slices.ContainsFunc(c.elements, func(r Element) bool { return r.AsElement().StackIndex() == si }) {
		return
	}
	if cp := e.CopyMatchInfo(); cp != nil {
		c.elements = append(c.elements, cp)
	}
}

// Elements returns the recorded element match copies.
func (c *Cache) Elements() []Element {
	return c.elements
}

// Invalidate marks the cache invalid.
func (c *Cache) Invalidate() {
	c.invalid = true
}

// IsValid returns whether every recorded element matches the current top
// of its stack in the given state.
func (c *Cache) IsValid(st *State) bool {
	if c.invalid {
		return false
	}
	for _, r := range c.elements {
		cur := st.ElementNoPush(r.AsElement().StackIndex())
		if cur == nil || !r.Matches(cur) {
			return false
		}
	}
	return true
}

// OpenCache opens a cache scope at the current depth. Scopes nest and
// every open scope records the dependencies read while it is open.
func (st *State) OpenCache(c *Cache) {
	st.caches = append(st.caches, openCache{cache: c, depth: st.depth})
}

// CloseCache closes the innermost open cache scope.
func (st *State) CloseCache() {
	if len(st.caches) == 0 {
		panic("state.State.CloseCache: no open cache")
	}
	st.caches = st.caches[:len(st.caches)-1]
}

// IsCacheOpen returns whether any cache scope is open.
func (st *State) IsCacheOpen() bool {
	return len(st.caches) > 0
}

// Capture records the given element as a dependency of every open cache
// scope it was set outside of.
func (st *State) Capture(e Element) {
	d := e.AsElement().depth
	for _, oc := range st.caches {
		if d < oc.depth {
			oc.cache.AddElement(e)
		}
	}
}
