// Package render turns a search.Tree into text: a Mermaid flow chart for
// diagrams, or a plain "parent -> child" edge list.
//
// Both renderings list every tree entry exactly once, in the tree's
// first-insertion order, so the output is byte-identical across runs.
// Mermaid node identifiers are small integers assigned on first sight.
package render

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Option configures a rendering.
type Option func(*options)

type options struct {
	costs     bool
	direction string
}

func defaultOptions() options {
	return options{costs: true, direction: "TD"}
}

// WithCosts chooses between "cost id" labels (true, the default) and bare ids.
func WithCosts(enabled bool) Option {
	return func(o *options) { o.costs = enabled }
}

// WithDirection sets the Mermaid flow direction (TD, LR, BT, RL). Unknown values are ignored.
func WithDirection(dir string) Option {
	return func(o *options) {
		switch d := strings.ToUpper(dir); d {
		case "TD", "TB", "LR", "BT", "RL":
			o.direction = d
		}
	}
}

// Mermaid renders t as a Mermaid "graph" flow chart.
//
//	graph TD;
//	    1(("0 A")) --> 2(("5 B"));
//	    1 --> 3(("6 F"));
//
// Complexity: O(n) in the number of tree entries.
func Mermaid[K cmp.Ordered](t *search.Tree[K], opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %s;\n", o.direction)
	if t == nil {
		return sb.String()
	}

	ids := make(map[search.Node[K]]int, t.Len()+1)
	// ref returns the node's id, declaring it with a label on first sight.
	ref := func(n search.Node[K]) string {
		if id, ok := ids[n]; ok {
			return fmt.Sprint(id)
		}
		id := len(ids) + 1
		ids[n] = id
		return fmt.Sprintf("%d((\"%s\"))", id, escape(label(n, o.costs)))
	}

	t.Each(func(child, parent search.Node[K]) bool {
		p := ref(parent)
		c := ref(child)
		fmt.Fprintf(&sb, "    %s --> %s;\n", p, c)
		return true
	})

	return sb.String()
}

// EdgeList renders t as one "parent -> child" line per entry.
func EdgeList[K cmp.Ordered](t *search.Tree[K], opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if t == nil {
		return ""
	}

	var sb strings.Builder
	t.Each(func(child, parent search.Node[K]) bool {
		fmt.Fprintf(&sb, "%s -> %s\n", label(parent, o.costs), label(child, o.costs))
		return true
	})

	return sb.String()
}

func label[K cmp.Ordered](n search.Node[K], costs bool) string {
	if costs {
		return n.String()
	}

	return fmt.Sprint(n.ID)
}

// escape replaces characters that would end a quoted Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
