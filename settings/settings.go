// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the user settings of scene graph traversals,
// which are saved as TOML.
package settings

import (
	"fmt"
	"io"

	"cogentcore.org/scenegraph/base/iox/tomlx"
	"cogentcore.org/scenegraph/base/logx"
	"cogentcore.org/scenegraph/scene"
)

// Settings are the traversal and debugging settings.
type Settings struct {

	// MutationCheck is whether changes to child lists during their
	// traversal are reported.
	MutationCheck bool `toml:"mutation_check"`

	// LogLevel is the minimum level of log messages shown:
	// debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Color is whether log messages are colored.
	Color bool `toml:"color"`
}

// New returns new settings with default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the default values.
func (s *Settings) Defaults() {
	s.MutationCheck = true
	s.LogLevel = "warn"
	s.Color = true
}

// Open reads the settings from the given TOML file. Values missing from
// the file keep their current value.
func (s *Settings) Open(filename string) error {
	return tomlx.Open(s, filename)
}

// Read reads the settings from TOML.
func (s *Settings) Read(r io.Reader) error {
	return tomlx.Read(s, r)
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// Apply applies the settings to the scene and log packages.
func (s *Settings) Apply() error {
	lv, ok := logx.LevelFromString(s.LogLevel)
	if !ok {
		return fmt.Errorf("settings: invalid log level %q: must be debug, info, warn or error", s.LogLevel)
	}
	logx.UserLevel = lv
	logx.UseColor = s.Color
	scene.MutationCheck = s.MutationCheck
	return nil
}
