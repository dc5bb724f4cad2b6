// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"testing"

	"cogentcore.org/scenegraph/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := types.NewRegistry("test")
	base := r.AddType("nodes.NodeBase", nil, nil)
	grp := r.AddType("nodes.Group", base, func() any { return "group" })
	sep := r.AddType("nodes.SoftSeparator", grp, nil)
	other := r.AddType("nodes.Other", base, nil)

	assert.Equal(t, 4, r.NumTypes())
	assert.Equal(t, 0, base.Data)
	assert.Equal(t, 2, sep.Data)
	assert.Equal(t, "soft-separator", sep.IDName)
	assert.Equal(t, "SoftSeparator", sep.ShortName())
	assert.Equal(t, grp, r.AddType("nodes.Group", nil, nil))
	assert.Equal(t, 4, r.NumTypes())

	assert.Equal(t, sep, r.TypeByName("nodes.SoftSeparator"))
	assert.Equal(t, sep, r.TypeByName("soft-separator"))
	assert.Equal(t, other, r.TypeByIndex(3))
	_, err := r.TypeByNameTry("nope")
	assert.Error(t, err)

	assert.True(t, sep.IsDerivedFrom(base))
	assert.True(t, sep.IsDerivedFrom(sep))
	assert.False(t, grp.IsDerivedFrom(sep))
	assert.Equal(t, 2, sep.Depth())
	assert.Equal(t, []*types.Type{grp, sep}, r.AllDerivedFrom(grp))
	assert.Len(t, r.AllDerivedFrom(base), 4)

	require.NotNil(t, grp.New)
	assert.Equal(t, "group", grp.New())
}
