package extensions

import (
	"fmt"
	"hash"
	"log/slog"
	"strings"

	depends "github.com/depends-fn/depends-go"
)

// TraceVisitor decorates a Visitor with traversal recording: it rebuilds
// the shape of each resolution pass from the enter/leave notifications
// and renders it as a tree for debugging. A node shared by several edges
// (a diamond) appears once per edge that reached it.
//
// Usage:
//
//	inner := depends.NewHashSetVisitor()
//	trace := extensions.NewTraceVisitor(inner)
//	_, err := depends.ResolveRoot(edge, trace)
//	fmt.Println(trace.Render())
type TraceVisitor struct {
	inner depends.Visitor

	roots []*traceNode
	stack []*traceNode
}

type traceNode struct {
	name     string
	id       depends.NodeID
	children []*traceNode
}

// NewTraceVisitor wraps inner with traversal recording. The recorded
// trace accumulates across passes until Reset is called.
func NewTraceVisitor(inner depends.Visitor) *TraceVisitor {
	return &TraceVisitor{inner: inner}
}

func (v *TraceVisitor) Visit(node depends.GraphNode) bool {
	return v.inner.Visit(node)
}

func (v *TraceVisitor) Hasher() hash.Hash64 {
	return v.inner.Hasher()
}

func (v *TraceVisitor) EndPass() {
	v.inner.EndPass()
}

// Touch records resolution entering a node.
func (v *TraceVisitor) Touch(node depends.GraphNode) {
	entry := &traceNode{name: node.Name(), id: node.ID()}
	if len(v.stack) == 0 {
		v.roots = append(v.roots, entry)
	} else {
		parent := v.stack[len(v.stack)-1]
		parent.children = append(parent.children, entry)
	}
	v.stack = append(v.stack, entry)

	if o, ok := v.inner.(depends.TraversalObserver); ok {
		o.Touch(node)
	}
}

// Leave records resolution leaving a node.
func (v *TraceVisitor) Leave(node depends.GraphNode) {
	if len(v.stack) > 0 {
		v.stack = v.stack[:len(v.stack)-1]
	}
	if o, ok := v.inner.(depends.TraversalObserver); ok {
		o.Leave(node)
	}
}

// Reset discards the recorded trace.
func (v *TraceVisitor) Reset() {
	v.roots = nil
	v.stack = v.stack[:0]
}

// Render formats the recorded traversal as a tree, one root per pass.
func (v *TraceVisitor) Render() string {
	if len(v.roots) == 0 {
		return "(empty - no nodes traversed)"
	}

	var sb strings.Builder
	for _, root := range v.roots {
		sb.WriteString(fmt.Sprintf("%s#%d\n", root.name, root.id))
		renderChildren(&sb, root, "")
	}
	return sb.String()
}

func renderChildren(sb *strings.Builder, n *traceNode, prefix string) {
	for i, child := range n.children {
		label := fmt.Sprintf("%s#%d", child.name, child.id)
		if i == len(n.children)-1 {
			sb.WriteString(fmt.Sprintf("%s└─> %s\n", prefix, label))
			renderChildren(sb, child, prefix+"    ")
		} else {
			sb.WriteString(fmt.Sprintf("%s├─> %s\n", prefix, label))
			renderChildren(sb, child, prefix+"│   ")
		}
	}
}

// LogTrace logs the rendered traversal at DEBUG level. Pair with
// HumanHandler to keep the tree's line breaks readable.
func (v *TraceVisitor) LogTrace(logger *slog.Logger) {
	logger.Debug("resolution trace", "traversal", "\n"+v.Render())
}
