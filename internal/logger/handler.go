package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records by tag,
// package or file according to the processed Config.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
	tag  string // tag attached through WithAttrs, if any
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// allowed applies the enabled/disabled pair for one dimension. Disabled wins.
func allowed(value string, enabled, disabled map[string]struct{}) bool {
	if value == "" {
		return true
	}
	value = strings.ToLower(value)
	if _, found := disabled[value]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[value]
		return found
	}
	return true
}

// source resolves the package directory and file name of the record's caller.
func source(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	pkg, file := source(r)
	if !allowed(pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
		return nil
	}
	if !allowed(file, h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
		return nil
	}

	tag := h.tag
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			return false
		}
		return true
	})
	if tag == "" {
		// Untagged records are dropped once a tag allow-list exists.
		if h.cfg.enabledTagsSet != nil {
			return nil
		}
	} else if !allowed(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &filteringHandler{base: h.base.WithAttrs(attrs), cfg: h.cfg, tag: h.tag}
	for _, a := range attrs {
		if a.Key == tagKey {
			next.tag = a.Value.String()
		}
	}
	return next
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{base: h.base.WithGroup(name), cfg: h.cfg, tag: h.tag}
}
