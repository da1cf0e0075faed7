package trie

// node represents the state reached after consuming a prefix of symbols
type node[K comparable, V any] struct {
	// children maps the next symbol to the child node
	children map[K]*node[K, V]

	// hasValue marks if this node is a complete entry
	hasValue bool

	// value stores the value associated with the sequence ending here
	value V
}

// newNode creates a new trie node without a value
func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{
		children: make(map[K]*node[K, V]),
	}
}

// newLeaf creates a new trie node holding v
func newLeaf[K comparable, V any](v V) *node[K, V] {
	n := newNode[K, V]()
	n.setValue(v)
	return n
}

// newTail builds a chain of single-child nodes for seq in one pass and
// returns its top node. The last node of the chain holds v.
func newTail[K comparable, V any](seq []K, v V) *node[K, V] {
	if len(seq) == 0 {
		panic("trie: tail cannot be created from an empty sequence")
	}

	top := newNode[K, V]()
	last := top
	for _, k := range seq[1:] {
		child := newNode[K, V]()
		last.children[k] = child
		last = child
	}
	last.setValue(v)
	return top
}

func (n *node[K, V]) setValue(v V) {
	n.value = v
	n.hasValue = true
}

// Trie represents a mutable prefix trie keyed by symbol sequences
type Trie[K comparable, V any] struct {
	root *node[K, V]
}

// New creates a new empty trie
func New[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{
		root: newNode[K, V](),
	}
}
