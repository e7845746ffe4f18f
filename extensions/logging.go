// Package extensions provides optional visitor decorators for the depends
// engine: structured logging of resolution passes and traversal tree
// rendering for debugging. The engine itself never depends on them.
package extensions

import (
	"context"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"sync"

	depends "github.com/depends-fn/depends-go"
)

// LoggingVisitor decorates a Visitor with structured logging of every
// node visit, traversal step and pass boundary.
//
// Usage:
//
//	// Structured JSON logging (compact, machine-readable)
//	inner := depends.NewHashSetVisitor()
//	visitor := extensions.NewLoggingVisitor(inner, slog.NewJSONHandler(os.Stdout, nil))
//
//	// Silent (for testing)
//	visitor := extensions.NewLoggingVisitor(inner, extensions.NewSilentHandler())
//
// Visits and traversal steps log at DEBUG level, pass boundaries at INFO.
type LoggingVisitor struct {
	inner  depends.Visitor
	logger *slog.Logger
	depth  int
	pass   uint64
}

// NewLoggingVisitor wraps inner with logging through the given handler.
func NewLoggingVisitor(inner depends.Visitor, handler slog.Handler) *LoggingVisitor {
	return &LoggingVisitor{
		inner:  inner,
		logger: slog.New(handler),
	}
}

func (v *LoggingVisitor) Visit(node depends.GraphNode) bool {
	first := v.inner.Visit(node)
	v.logger.Debug("visit",
		"node", node.Name(),
		"id", uint64(node.ID()),
		"first_this_pass", first,
	)
	return first
}

func (v *LoggingVisitor) Hasher() hash.Hash64 {
	return v.inner.Hasher()
}

func (v *LoggingVisitor) EndPass() {
	v.inner.EndPass()
	v.logger.Info("pass complete", "pass", v.pass)
	v.pass++
	v.depth = 0
}

// Touch logs resolution entering a node.
func (v *LoggingVisitor) Touch(node depends.GraphNode) {
	v.logger.Debug("enter",
		"node", node.Name(),
		"id", uint64(node.ID()),
		"depth", v.depth,
	)
	v.depth++
	if o, ok := v.inner.(depends.TraversalObserver); ok {
		o.Touch(node)
	}
}

// Leave logs resolution leaving a node.
func (v *LoggingVisitor) Leave(node depends.GraphNode) {
	v.depth--
	v.logger.Debug("leave",
		"node", node.Name(),
		"id", uint64(node.ID()),
		"depth", v.depth,
	)
	if o, ok := v.inner.(depends.TraversalObserver); ok {
		o.Leave(node)
	}
}

// SilentHandler is a slog.Handler that discards all log output.
// Useful for testing when you don't want log output.
type SilentHandler struct{}

// NewSilentHandler creates a new silent log handler.
func NewSilentHandler() *SilentHandler {
	return &SilentHandler{}
}

func (h *SilentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return false
}

func (h *SilentHandler) Handle(ctx context.Context, record slog.Record) error {
	return nil
}

func (h *SilentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *SilentHandler) WithGroup(name string) slog.Handler {
	return h
}

// HumanHandler is a slog.Handler that formats records for human
// readability, preserving line breaks in multi-line attributes such as
// rendered traversal trees.
type HumanHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
}

// NewHumanHandler creates a new human-readable log handler.
func NewHumanHandler(writer io.Writer, level slog.Level) *HumanHandler {
	return &HumanHandler{
		writer: writer,
		level:  level,
	}
}

func (h *HumanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *HumanHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := fmt.Fprintf(h.writer, "[%s] %s\n", record.Level, record.Message); err != nil {
		return err
	}

	write := func(a slog.Attr) {
		fmt.Fprintf(h.writer, "  %s: %v\n", a.Key, a.Value.Any())
	}
	for _, a := range h.attrs {
		write(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		write(a)
		return true
	})
	return nil
}

func (h *HumanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &HumanHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *HumanHandler) WithGroup(name string) slog.Handler {
	return h
}
