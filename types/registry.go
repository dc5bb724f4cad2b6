// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry records types with dense, sequential [Type.Data] indices.
// Types are normally added at package initialization.
type Registry struct {
	// Name is the name of the registry, used in log messages.
	Name string

	mu     sync.RWMutex
	types  []*Type
	byName map[string]*Type
	byID   map[string]*Type
}

// NewRegistry returns a new empty [Registry].
func NewRegistry(name string) *Registry {
	return &Registry{Name: name, byName: map[string]*Type{}, byID: map[string]*Type{}}
}

// AddType adds a new type with the given qualified name, parent (may be nil)
// and instance constructor (may be nil), and returns it.
// If a type of the same name already exists, it is returned unchanged.
func (r *Registry) AddType(name string, parent *Type, newFunc func() any) *Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tp, has := r.byName[name]; has {
		slog.Debug("types.AddType: Type already exists", "Registry", r.Name, "Type.Name", name)
		return tp
	}
	tp := &Type{Name: name, IDName: IDNameFor(name), Parent: parent, Data: len(r.types), New: newFunc}
	r.types = append(r.types, tp)
	r.byName[name] = tp
	if _, has := r.byID[tp.IDName]; !has {
		r.byID[tp.IDName] = tp
	}
	return tp
}

// NumTypes returns the number of types in the registry,
// which is one more than the largest [Type.Data] index.
func (r *Registry) NumTypes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// TypeByIndex returns the type with the given [Type.Data] index.
func (r *Registry) TypeByIndex(idx int) *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[idx]
}

// TypeByName returns a type by its qualified name or its [Type.IDName],
// or nil if not found.
func (r *Registry) TypeByName(nm string) *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if tp, ok := r.byName[nm]; ok {
		return tp
	}
	return r.byID[nm]
}

// TypeByNameTry returns a type by name, or an error if not found.
func (r *Registry) TypeByNameTry(nm string) (*Type, error) {
	tp := r.TypeByName(nm)
	if tp == nil {
		return nil, fmt.Errorf("%s type %q not found", r.Name, nm)
	}
	return tp, nil
}

// AllDerivedFrom returns all types that are the given type
// or derived from it, in order of [Type.Data].
func (r *Registry) AllDerivedFrom(typ *Type) []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []*Type
	for _, tp := range r.types {
		if tp.IsDerivedFrom(typ) {
			res = append(res, tp)
		}
	}
	return res
}

// Types returns a copy of the list of all types, in order of [Type.Data].
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Type(nil), r.types...)
}
