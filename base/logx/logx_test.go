// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/scenegraph/base/logx"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logx.LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, logx.LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, logx.LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, logx.LevelFromFlags(false, false, false))

	lv, ok := logx.LevelFromString("error")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, lv)
	_, ok = logx.LevelFromString("loud")
	assert.False(t, ok)
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	logx.UseColor = false
	defer func() { logx.UseColor = true }()
	lg := slog.New(logx.NewHandler(&buf))

	lg.Info("hidden")
	assert.Empty(t, buf.String())

	lg.With("node", "sep").WithGroup("cull").Warn("overflow", "planes", 32)
	assert.Equal(t, "WARN overflow node=sep cull.planes=32\n", buf.String())
}
