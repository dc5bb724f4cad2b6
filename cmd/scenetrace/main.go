// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenetrace loads scene files and runs traversals on them.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/scenegraph/base/logx"
	"cogentcore.org/scenegraph/settings"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scenetrace",
	Short: "Run scene graph traversals on scene files",
	Long: `Scenetrace loads a YAML scene file and runs a traversal on it: trace prints
the nodes visited by a callback action, bbox prints the bounding box, and
search prints the paths to matching nodes.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	settingsFile string
	verbose      bool
	veryVerbose  bool
	quiet        bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&settingsFile, "settings", "", "TOML settings file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&veryVerbose, "vv", false, "show debug log messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only show error log messages")

	rootCmd.AddCommand(traceCmd, bboxCmd, searchCmd)
}

// setup applies the settings and the log level flags, which override the
// level of the settings.
func setup(cmd *cobra.Command, args []string) error {
	s := settings.New()
	if settingsFile != "" {
		if err := s.Open(settingsFile); err != nil {
			return err
		}
	}
	if err := s.Apply(); err != nil {
		return err
	}
	if verbose || veryVerbose || quiet {
		logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
	}
	logx.SetDefault()
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
