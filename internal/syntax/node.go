package syntax

// Node is one production in the concrete syntax tree. Every node, including
// error-recovery nodes, carries a byte range into the tree's source text.
type Node struct {
	Kind     Kind
	Start    int
	End      int
	Field    string // "" unless this node is a named child (see Field* consts)
	Children []*Node

	// TrailingComma is set on an object/array node when its last separator
	// before the closing bracket was a comma with no following element.
	TrailingComma bool

	// Text is populated for string/number literal nodes (the decoded scalar
	// value, unescaped for strings) and for comment nodes (the comment's
	// source text, delimiters included).
	Text string
}

// Range returns the node's [start, end) byte span.
func (n *Node) Range() (start, end int) {
	return n.Start, n.End
}

// IsError reports whether this node is a parse-error placeholder.
func (n *Node) IsError() bool {
	return n.Kind == KindError
}

// IsMissing reports whether this node stands in for an absent required
// child (e.g. a pair with no value).
func (n *Node) IsMissing() bool {
	return n.Kind == KindMissing
}

// FieldChild returns the first child with the given Field name, if any.
func (n *Node) FieldChild(field string) *Node {
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}
	return nil
}

// Key returns the decoded key text of a pair node's key child, or "".
func (n *Node) Key() string {
	if n.Kind != KindPair {
		return ""
	}
	if k := n.FieldChild(FieldKey); k != nil {
		return k.Text
	}
	return ""
}

// Walk calls visit for n and every descendant, pre-order.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// NodeAtOffset returns the deepest node whose range contains off, tie-break
// toward the later sibling (the node starting at off) when two ranges are
// adjacent.
func (n *Node) NodeAtOffset(off int) *Node {
	if off < n.Start || off > n.End {
		return nil
	}
	best := n
	for _, c := range n.Children {
		if c.Start <= off && off <= c.End {
			if found := c.NodeAtOffset(off); found != nil {
				best = found
			}
		}
	}
	return best
}

// PathToRoot returns the chain of nodes between the tree root and the
// innermost node at off, root first and innermost last, used by
// SelectionRange.
func (n *Node) PathToRoot(off int) []*Node {
	target := n.NodeAtOffset(off)
	if target == nil {
		return nil
	}
	var chain []*Node
	var find func(cur *Node) bool
	find = func(cur *Node) bool {
		chain = append(chain, cur)
		if cur == target {
			return true
		}
		for _, c := range cur.Children {
			if c.Start <= target.Start && target.End <= c.End {
				if find(c) {
					return true
				}
			}
		}
		chain = chain[:len(chain)-1]
		return false
	}
	find(n)
	return chain
}
