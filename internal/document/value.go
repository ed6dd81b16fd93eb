package document

import (
	"strconv"

	"jsonls/internal/syntax"
)

// Value decodes tree's single top-level value into a generic JSON value
// (map[string]any, []any, string, float64, bool, or nil), skipping
// comments and stopping short if the top-level value itself failed to
// parse. This is the bridge between the CST the document model keeps
// coherent with the source text and the decoded value the Validator
// walks; it never re-lexes text; it only interprets node text the parser
// already extracted.
func Value(tree *syntax.Tree) (any, bool) {
	root := topLevelValue(tree)
	if root == nil || root.IsError() {
		return nil, false
	}
	return nodeValue(root), true
}

// topLevelValue returns the document's one top-level value node, skipping
// leading/trailing comments.
func topLevelValue(tree *syntax.Tree) *syntax.Node {
	for _, c := range tree.Root.Children {
		if c.Kind == syntax.KindComment {
			continue
		}
		return c
	}
	return nil
}

func nodeValue(n *syntax.Node) any {
	switch n.Kind {
	case syntax.KindObject:
		m := make(map[string]any, len(n.Children))
		for _, c := range n.Children {
			if c.Kind != syntax.KindPair {
				continue
			}
			valueChild := c.FieldChild(syntax.FieldValue)
			if valueChild == nil || valueChild.IsMissing() {
				continue
			}
			m[c.Key()] = nodeValue(valueChild)
		}
		return m
	case syntax.KindArray:
		arr := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			if c.Kind == syntax.KindComment || c.Kind == syntax.KindError {
				continue
			}
			arr = append(arr, nodeValue(c))
		}
		return arr
	case syntax.KindString:
		return n.Text
	case syntax.KindNumber:
		f, _ := strconv.ParseFloat(n.Text, 64)
		return f
	case syntax.KindTrue:
		return true
	case syntax.KindFalse:
		return false
	case syntax.KindNull:
		return nil
	default:
		return nil
	}
}

// NodeAtPath walks down from tree's top-level value one JSON Pointer
// segment at a time, returning the deepest node actually reached. If a
// segment cannot be followed (missing property, out-of-range index, or a
// scalar where an object/array was expected) it returns the last node that
// was reached, so a diagnostic always has somewhere to point.
func NodeAtPath(tree *syntax.Tree, path []string) *syntax.Node {
	cur := topLevelValue(tree)
	if cur == nil {
		return tree.Root
	}
	for _, seg := range path {
		next := stepPath(cur, seg)
		if next == nil {
			return cur
		}
		cur = next
	}
	return cur
}

func stepPath(n *syntax.Node, seg string) *syntax.Node {
	switch n.Kind {
	case syntax.KindObject:
		for _, c := range n.Children {
			if c.Kind != syntax.KindPair {
				continue
			}
			if c.Key() == seg {
				if v := c.FieldChild(syntax.FieldValue); v != nil && !v.IsMissing() {
					return v
				}
				return c
			}
		}
		return nil
	case syntax.KindArray:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			return nil
		}
		i := 0
		for _, c := range n.Children {
			if c.Kind == syntax.KindComment || c.Kind == syntax.KindError {
				continue
			}
			if i == idx {
				return c
			}
			i++
		}
		return nil
	default:
		return nil
	}
}
