// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides registries of runtime type information with
// dense integer type indices, used for O(1) dispatch tables keyed by type.
package types

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Type represents a registered type.
type Type struct {
	// Name is the package-qualified name of the type (eg: nodes.Separator)
	Name string

	// IDName is the short, package-unqualified, kebab-case name of the type that is suitable
	// for use in an ID (eg: separator)
	IDName string

	// Parent is the type this type is derived from, or nil for a root type.
	Parent *Type

	// Data is the dense index of this type within its [Registry],
	// suitable for indexing dispatch tables.
	Data int

	// New, if set, returns a new instance of the type.
	New func() any
}

func (tp *Type) String() string {
	if tp == nil {
		return "<nil>"
	}
	return tp.Name
}

// ShortName returns the short name of the type (without the package qualifier)
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, ".")
	return tp.Name[li+1:]
}

// IsDerivedFrom returns true if this type is the given type or is
// derived from it at any depth.
func (tp *Type) IsDerivedFrom(typ *Type) bool {
	for t := tp; t != nil; t = t.Parent {
		if t == typ {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors of this type.
func (tp *Type) Depth() int {
	d := 0
	for t := tp.Parent; t != nil; t = t.Parent {
		d++
	}
	return d
}

// IDNameFor returns the kebab-case ID name for the given qualified type name.
func IDNameFor(name string) string {
	li := strings.LastIndex(name, ".")
	return strcase.ToKebab(name[li+1:])
}
