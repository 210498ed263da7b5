package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFind(t *testing.T) {
	uf := newUnionFind(6)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}, {4}, {5}}, uf.groups())

	assert.True(t, uf.union(4, 1))
	assert.True(t, uf.union(1, 5))
	assert.False(t, uf.union(5, 4), "already joined through 1")
	assert.True(t, uf.union(3, 0))

	assert.Equal(t, uf.find(4), uf.find(5))
	assert.NotEqual(t, uf.find(0), uf.find(1))
	assert.Equal(t, [][]int{{0, 3}, {1, 4, 5}, {2}}, uf.groups())
}

func TestUnionFindChain(t *testing.T) {
	// pairs sharing an element end up in one group
	uf := newUnionFind(5)
	for i := 0; i+1 < 5; i++ {
		uf.union(i+1, i)
	}
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, uf.groups())

	assert.Empty(t, newUnionFind(0).groups())
}
