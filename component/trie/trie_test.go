package trie

import (
	"testing"

	"github.com/cidrix/cidrix/component/cidr"
	"github.com/stretchr/testify/assert"
)

func mustCidr(t *testing.T, s string) cidr.Cidr {
	c, err := cidr.ParseCidr(s)
	assert.NoError(t, err)
	return c
}

func TestLookupEmptyTree(t *testing.T) {
	tree := NewCidrTree[string]()
	assert.Empty(t, tree.Lookup(mustCidr(t, "1.2.3.4")))
	assert.Empty(t, tree.Lookup(mustCidr(t, "0.0.0.0/0")))
	assert.Empty(t, tree.Lookup(mustCidr(t, "2001:db8::1")))
}

func TestLookupAncestors(t *testing.T) {
	tree := NewCidrTree[string]()
	tree.Insert(mustCidr(t, "128.0.0.0/1"), "first")
	tree.Insert(mustCidr(t, "255.0.0.0/2"), "second")

	assert.Empty(t, tree.Lookup(mustCidr(t, "1.0.0.0")))
	assert.Equal(t, []string{"first"}, tree.Lookup(mustCidr(t, "128.0.0.0")))
	assert.Equal(t, []string{"first"}, tree.Lookup(mustCidr(t, "128.1.0.0")))
	assert.Equal(t, []string{"first"}, tree.Lookup(mustCidr(t, "128.0.0.0/8")))
	assert.Equal(t, []string{"first", "second"}, tree.Lookup(mustCidr(t, "255.0.0.0")))
	assert.Equal(t, []string{"first", "second"}, tree.Lookup(mustCidr(t, "255.1.0.0")))
	assert.Equal(t, []string{"first", "second"}, tree.Lookup(mustCidr(t, "255.0.0.0/8")))
}

func TestLookupAncestorsV6(t *testing.T) {
	tree := NewCidrTree[string]()
	tree.Insert(mustCidr(t, "8000::/1"), "first")
	tree.Insert(mustCidr(t, "F000::/2"), "second")

	assert.Equal(t, []string{"first", "second"}, tree.Lookup(mustCidr(t, "F000::")))
	assert.Equal(t, []string{"first"}, tree.Lookup(mustCidr(t, "8000::1")))
	assert.Empty(t, tree.Lookup(mustCidr(t, "0001::")))
}

func TestLookupStopsAtDivergence(t *testing.T) {
	tree := NewCidrTree[string]()
	tree.Insert(mustCidr(t, "255.255.0.0/16"), "deep")

	// query peels off the stored path before reaching the payload
	assert.Empty(t, tree.Lookup(mustCidr(t, "255.0.0.0")))
	assert.Equal(t, []string{"deep"}, tree.Lookup(mustCidr(t, "255.255.1.1")))
}

func TestInsertOverwrites(t *testing.T) {
	tree := NewCidrTree[int]()
	block := mustCidr(t, "10.0.0.0/8")
	tree.Insert(block, 1)
	tree.Insert(block, 2)
	assert.Equal(t, []int{2}, tree.Lookup(mustCidr(t, "10.1.2.3")))
}

func TestEraseKeepsNode(t *testing.T) {
	tree := NewCidrTree[string]()
	block := mustCidr(t, "10.0.0.0/8")
	tree.Insert(block, "payload")
	tree.Erase(block)

	assert.Empty(t, tree.Lookup(mustCidr(t, "10.1.2.3")))
	assert.True(t, tree.HasExact(block))
}

func TestHasExact(t *testing.T) {
	tree := NewCidrTree[string]()

	// marking existence without attaching data
	tree.Erase(mustCidr(t, "255.0.0.0/8"))

	assert.True(t, tree.HasExact(mustCidr(t, "255.0.0.0/8")))
	assert.False(t, tree.HasExact(mustCidr(t, "128.0.0.0/8")))

	// the path to the /8 passes through every shorter depth
	assert.True(t, tree.HasExact(mustCidr(t, "255.0.0.0/4")))
	assert.True(t, tree.HasExact(mustCidr(t, "0.0.0.0/0")))

	assert.False(t, tree.HasExact(mustCidr(t, "255.0.0.0/9")))
}

func TestCoversEmptyTree(t *testing.T) {
	tree := NewCidrTree[string]()
	assert.True(t, tree.Covers(mustCidr(t, "0.0.0.0/0")))
	assert.False(t, tree.Covers(mustCidr(t, "10.0.0.0/8")))
	assert.False(t, tree.Covers(mustCidr(t, "1.2.3.4")))
}

func TestCovers(t *testing.T) {
	tree := NewCidrTree[string]()
	tree.Insert(mustCidr(t, "10.0.0.0/8"), "summary")

	assert.True(t, tree.Covers(mustCidr(t, "10.0.0.0/8")))

	// everything beneath the stored summary is covered
	assert.True(t, tree.Covers(mustCidr(t, "10.1.0.0/16")))
	assert.True(t, tree.Covers(mustCidr(t, "10.9.8.7")))

	// sibling that leaves the stored path before any payload
	assert.False(t, tree.Covers(mustCidr(t, "11.0.0.0/8")))
	assert.False(t, tree.Covers(mustCidr(t, "192.168.0.0/16")))

	// reaching the queried depth through existing structure suffices
	assert.True(t, tree.Covers(mustCidr(t, "0.0.0.0/4")))
}

func TestGenericPayload(t *testing.T) {
	type route struct {
		nexthop string
		metric  int
	}

	tree := NewCidrTree[route]()
	tree.Insert(mustCidr(t, "0.0.0.0/0"), route{nexthop: "gw0", metric: 10})
	tree.Insert(mustCidr(t, "192.0.2.0/24"), route{nexthop: "gw1", metric: 5})

	got := tree.Lookup(mustCidr(t, "192.0.2.99"))
	assert.Len(t, got, 2)
	// longest-prefix match is the caller's pick of the last element
	assert.Equal(t, "gw1", got[len(got)-1].nexthop)
}
