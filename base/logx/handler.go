// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default.
var UseColor = true

// Handler is a [slog.Handler] that writes one line per record, with the
// level tag colored according to the terminal color profile.
// It filters records below [UserLevel], read at the time of each record.
type Handler struct {
	mu      *sync.Mutex
	w       io.Writer
	profile termenv.Profile
	attrs   []slog.Attr
	groups  []string
}

// NewHandler returns a new [Handler] writing to w.
func NewHandler(w io.Writer) *Handler {
	pr := termenv.Ascii
	if UseColor {
		pr = termenv.NewOutput(w).ColorProfile()
	}
	return &Handler{mu: &sync.Mutex{}, w: w, profile: pr}
}

// SetDefault installs a [Handler] writing to [os.Stderr] as the
// default [slog] logger.
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(_ context.Context, lv slog.Level) bool {
	return lv >= UserLevel
}

// LevelColor returns the terminal color used for the given level.
func (h *Handler) LevelColor(lv slog.Level) termenv.Color {
	switch {
	case lv >= slog.LevelError:
		return h.profile.Color("#ff5555")
	case lv >= slog.LevelWarn:
		return h.profile.Color("#f1c40f")
	case lv >= slog.LevelInfo:
		return h.profile.Color("#2ecc71")
	default:
		return h.profile.Color("#5dade2")
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	lvl := h.profile.String(r.Level.String()).Foreground(h.LevelColor(r.Level))
	if r.Level >= slog.LevelError {
		lvl = lvl.Bold()
	}
	sb.WriteString(lvl.String())
	sb.WriteString(" ")
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, h.qualify(a))
		return true
	})
	sb.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// qualify prefixes the attribute key with the current group names.
func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) > 0 {
		a.Key = strings.Join(h.groups, ".") + "." + a.Key
	}
	return a
}

func (h *Handler) writeAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(sb, " %s=%v", h.profile.String(a.Key).Faint(), a.Value.Resolve())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.qualify(a))
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string(nil), h.groups...), name)
	return &nh
}
