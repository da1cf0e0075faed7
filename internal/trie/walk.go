package trie

// WalkFunc is called for each complete entry in the trie. seq is only valid
// for the duration of the call. If the function returns false, the walk stops.
type WalkFunc[K comparable, V any] func(seq []K, v V) bool

// Walk visits every complete entry depth-first. Sibling order is unspecified.
func (t *Trie[K, V]) Walk(fn WalkFunc[K, V]) {
	walkNode(t.root, make([]K, 0, 16), fn)
}

func walkNode[K comparable, V any](n *node[K, V], prefix []K, fn WalkFunc[K, V]) bool {
	for k, child := range n.children {
		seq := append(prefix, k)
		if child.hasValue && !fn(seq, child.value) {
			return false
		}
		if !walkNode(child, seq, fn) {
			return false
		}
	}
	return true
}

// Len returns the number of complete entries.
func (t *Trie[K, V]) Len() int {
	count := 0
	t.Walk(func([]K, V) bool {
		count++
		return true
	})
	return count
}

// Nodes returns the number of nodes below the root.
func (t *Trie[K, V]) Nodes() int {
	return countNodes(t.root) - 1
}

func countNodes[K comparable, V any](n *node[K, V]) int {
	count := 1
	for _, child := range n.children {
		count += countNodes(child)
	}
	return count
}
