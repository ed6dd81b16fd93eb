package syntax

// ErrorNodes returns every ERROR and MISSING node in the tree, pre-order.
func (t *Tree) ErrorNodes() []*Node {
	var out []*Node
	t.Root.Walk(func(n *Node) bool {
		if n.IsError() || n.IsMissing() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// DuplicateKey names a pair whose key repeats an earlier pair in the same
// object; Node is the second (repeated) occurrence.
type DuplicateKey struct {
	Key  string
	Node *Node
}

// DuplicateKeys walks every object in the tree and reports, for each
// object, every pair after the first whose key string matches an earlier
// pair's key.
func (t *Tree) DuplicateKeys() []DuplicateKey {
	var out []DuplicateKey
	t.Root.Walk(func(n *Node) bool {
		if n.Kind != KindObject {
			return true
		}
		seen := make(map[string]bool, len(n.Children))
		for _, c := range n.Children {
			if c.Kind != KindPair {
				continue
			}
			key := c.Key()
			if key == "" && c.FieldChild(FieldKey).IsMissing() {
				continue
			}
			if seen[key] {
				out = append(out, DuplicateKey{Key: key, Node: c.FieldChild(FieldKey)})
			}
			seen[key] = true
		}
		return true
	})
	return out
}
