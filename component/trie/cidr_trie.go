package trie

import (
	"github.com/cidrix/cidrix/component/cidr"
)

// CidrTree is a binary trie keyed by successive address bits. Each
// inserted block owns at most one payload; a query collects the
// payloads of every stored supernet of the queried block, so callers
// wanting longest-prefix match take the last element themselves.
//
// V4 and V6 blocks never share bits in a useful way here: keep one
// tree per family.
//
// The tree is not safe for concurrent use; Insert may touch interior
// nodes a concurrent Lookup is traversing.
type CidrTree[T any] struct {
	root *node[T]
}

func NewCidrTree[T any]() *CidrTree[T] {
	return &CidrTree[T]{root: newNode[T]()}
}

// Insert stores data for the block, creating the path on demand and
// overwriting any previous payload at that exact block. Nothing else
// in the tree is touched.
func (t *CidrTree[T]) Insert(c cidr.Cidr, data T) {
	t.root.insert(c, data, true)
}

// Erase creates the block's node if absent and clears its payload,
// keeping the node itself. This marks existence without data, so the
// block stays visible to HasExact but contributes nothing to Lookup.
func (t *CidrTree[T]) Erase(c cidr.Cidr) {
	var zero T
	t.root.insert(c, zero, false)
}

func (n *node[T]) insert(c cidr.Cidr, data T, present bool) {
	if c.Length == 0 {
		if present {
			n.setData(data)
		} else {
			n.clearData()
		}
		return
	}
	bit := c.LeadingBit()
	child := n.child(bit)
	if child == nil {
		child = newNode[T]()
		n.setChild(bit, child)
	}
	child.insert(c.Next(), data, present)
}

// Lookup walks the query's bits and returns the payloads of every
// node met on the way, root to leaf. The walk stops when the query
// runs out of bits or the tree runs out of children; either way the
// result holds exactly the stored supernets (and exact match) of the
// queried block.
func (t *CidrTree[T]) Lookup(c cidr.Cidr) []T {
	var results []T
	for n := t.root; n != nil; {
		if n.hasData {
			results = append(results, n.data)
		}
		if c.Length == 0 {
			break
		}
		n = n.child(c.LeadingBit())
		c = c.Next()
	}
	return results
}

// HasExact reports whether a node exists at precisely the query's
// depth. It tests the structure of the path, not payload presence.
func (t *CidrTree[T]) HasExact(c cidr.Cidr) bool {
	n := t.root
	for c.Length > 0 {
		if n = n.child(c.LeadingBit()); n == nil {
			return false
		}
		c = c.Next()
	}
	return true
}

// Covers reports whether a stored summary accounts for the whole
// block: the walk either reaches the query's depth, or runs out of
// structure at a node that carries a payload. An empty tree covers
// only the zero-length block.
func (t *CidrTree[T]) Covers(c cidr.Cidr) bool {
	n := t.root
	for c.Length > 0 {
		child := n.child(c.LeadingBit())
		if child == nil {
			return n.hasData
		}
		n = child
		c = c.Next()
	}
	return true
}
