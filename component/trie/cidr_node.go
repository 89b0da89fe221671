package trie

// node is one branching point of the tree. A node at depth d stands
// for the d-bit block spelled by the zero/one choices leading to it;
// data is the payload stored for exactly that block. Children are
// owned, the structure is a strict tree.
type node[T any] struct {
	zero, one *node[T]
	data      T
	hasData   bool
}

func newNode[T any]() *node[T] {
	return &node[T]{}
}

func (n *node[T]) child(bit byte) *node[T] {
	if bit == 0 {
		return n.zero
	}
	return n.one
}

func (n *node[T]) setChild(bit byte, child *node[T]) {
	if bit == 0 {
		n.zero = child
	} else {
		n.one = child
	}
}

func (n *node[T]) setData(data T) {
	n.data = data
	n.hasData = true
}

func (n *node[T]) clearData() {
	var zero T
	n.data = zero
	n.hasData = false
}
