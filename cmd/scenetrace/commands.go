// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/scenegraph/actions"
	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/scene"
	"cogentcore.org/scenegraph/scenefile"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Print the nodes visited by a callback action",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrace,
}

var bboxCmd = &cobra.Command{
	Use:   "bbox <file>",
	Short: "Print the bounding box of the scene",
	Args:  cobra.ExactArgs(1),
	RunE:  runBBox,
}

var searchCmd = &cobra.Command{
	Use:   "search <file> <name|type>",
	Short: "Print the paths to the nodes with a name or type",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

var (
	traceAll   bool
	tracePath  string
	traceWatch bool
	searchAll  bool
)

func init() {
	traceCmd.Flags().BoolVar(&traceAll, "all", false, "go into all the children of switches")
	traceCmd.Flags().StringVar(&tracePath, "path", "", "apply to the path to the node with this name")
	traceCmd.Flags().BoolVar(&traceWatch, "watch", false, "trace again whenever the file changes")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "search into all the children of switches")
}

func runTrace(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if err := trace(out, args[0]); err != nil {
		return err
	}
	if !traceWatch {
		return nil
	}
	return watch(cmd.Context(), args[0], func() {
		fmt.Fprintln(out)
		errors.Log(trace(out, args[0]))
	})
}

// trace writes the nodes visited in the scene file, one per line,
// indented by depth.
func trace(w io.Writer, file string) error {
	root, err := scenefile.Open(file)
	if err != nil {
		return err
	}
	term := termenv.NewOutput(w)
	ca := actions.NewCallbackAction()
	ca.SetCallbackAll(traceAll)
	ca.AddPreCallback(scene.NodeBaseType, func(a *actions.CallbackAction, n scene.Node) actions.Response {
		depth := a.CurPath().FullLen() - 1
		name := term.String(n.AsNode().String())
		if n.Children() != nil {
			name = name.Bold()
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name)
		return actions.Continue
	})
	return applyTo(ca, root)
}

// applyTo applies the action to the root, or to the path to the node
// named by the path flag.
func applyTo(a scene.Action, root scene.Node) error {
	if tracePath == "" {
		a.AsAction().Apply(root)
		return nil
	}
	_, p := scene.FindName(root, tracePath)
	if p == nil {
		return fmt.Errorf("no node named %q", tracePath)
	}
	a.AsAction().ApplyPath(p)
	return nil
}

// watch calls fun whenever the file is written, until the context is done.
func watch(ctx context.Context, file string, fun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return err
	}
	abs := errors.Log1(filepath.Abs(file))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if p, _ := filepath.Abs(event.Name); p != abs {
				continue
			}
			slog.Info("scene file changed", "file", file)
			fun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("scene file watcher error: " + err.Error())
		}
	}
}

func runBBox(cmd *cobra.Command, args []string) error {
	root, err := scenefile.Open(args[0])
	if err != nil {
		return err
	}
	ba := actions.NewBoundingBoxAction()
	ba.Apply(root)
	box := ba.Box()
	if box.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "empty")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "min: %v\nmax: %v\ncenter: %v\n", box.Min, box.Max, ba.Center())
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	root, err := scenefile.Open(args[0])
	if err != nil {
		return err
	}
	sa := actions.NewSearchAction()
	if nt := scene.NodeTypes.TypeByName(args[1]); nt != nil {
		sa.SetType(nt, true)
	} else {
		sa.SetName(args[1])
	}
	sa.Interest = actions.All
	sa.SearchingAll = searchAll
	sa.Apply(root)
	for _, p := range sa.Paths() {
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
	}
	slog.Debug("search done", "matches", len(sa.Paths()))
	return nil
}
