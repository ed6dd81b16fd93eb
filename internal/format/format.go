// Package format implements textDocument/formatting and rangeFormatting: a
// pretty-printer that walks the syntax tree directly rather than
// round-tripping through a decoded value, so comments and object key order
// survive reformatting (only the json.sort command, internal/sortcmd,
// reorders keys).
package format

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"jsonls/internal/syntax"
)

// Options mirrors lsp.FormattingOptions.
type Options struct {
	TabSize      int
	InsertSpaces bool
}

func (o Options) unit() string {
	if o.InsertSpaces {
		n := o.TabSize
		if n <= 0 {
			n = 2
		}
		return strings.Repeat(" ", n)
	}
	return "\t"
}

// Print renders tree's full source, pretty-printed.
func Print(tree *syntax.Tree, opts Options) string {
	var b strings.Builder
	first := true
	for _, c := range tree.Root.Children {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		printNode(&b, c, opts, 0)
	}
	b.WriteByte('\n')
	return b.String()
}

// PrintNode renders a single node (and its descendants) at the given
// indent depth, used by rangeFormatting to reformat just the node
// enclosing the requested range.
func PrintNode(n *syntax.Node, opts Options, depth int) string {
	var b strings.Builder
	printNode(&b, n, opts, depth)
	return b.String()
}

func printNode(b *strings.Builder, n *syntax.Node, opts Options, depth int) {
	switch n.Kind {
	case syntax.KindObject:
		printContainer(b, n, opts, depth, '{', '}', printPair)
	case syntax.KindArray:
		printContainer(b, n, opts, depth, '[', ']', func(b *strings.Builder, c *syntax.Node, opts Options, depth int) {
			printNode(b, c, opts, depth)
		})
	case syntax.KindString:
		encoded, err := json.Marshal(n.Text)
		if err != nil {
			b.WriteString(strconv.Quote(n.Text))
			return
		}
		b.Write(encoded)
	case syntax.KindComment:
		b.WriteString(n.Text)
	default:
		// number, true, false, null, ERROR, MISSING: render verbatim.
		if n.Text != "" {
			b.WriteString(n.Text)
		} else {
			b.WriteString(string(n.Kind))
		}
	}
}

func printPair(b *strings.Builder, c *syntax.Node, opts Options, depth int) {
	key := c.FieldChild(syntax.FieldKey)
	value := c.FieldChild(syntax.FieldValue)
	if key != nil {
		encoded, err := json.Marshal(key.Text)
		if err != nil {
			b.WriteString(strconv.Quote(key.Text))
		} else {
			b.Write(encoded)
		}
	}
	b.WriteString(": ")
	if value != nil && !value.IsMissing() {
		printNode(b, value, opts, depth)
	}
}

func printContainer(b *strings.Builder, n *syntax.Node, opts Options, depth int, open, closing byte, printChild func(*strings.Builder, *syntax.Node, Options, int)) {
	substantive := make([]*syntax.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind != syntax.KindComment {
			substantive = append(substantive, c)
		}
	}
	if len(substantive) == 0 {
		b.WriteByte(open)
		b.WriteByte(closing)
		return
	}

	b.WriteByte(open)
	b.WriteByte('\n')
	indent := strings.Repeat(opts.unit(), depth+1)
	for i, c := range n.Children {
		if c.Kind == syntax.KindComment {
			b.WriteString(indent)
			printNode(b, c, opts, depth+1)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(indent)
		printChild(b, c, opts, depth+1)
		if !isLast(n.Children, i) {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(opts.unit(), depth))
	b.WriteByte(closing)
}

// isLast reports whether index i is the last non-comment child, since
// trailing commas are never emitted regardless of source formatting.
func isLast(children []*syntax.Node, i int) bool {
	for j := i + 1; j < len(children); j++ {
		if children[j].Kind != syntax.KindComment {
			return false
		}
	}
	return true
}
