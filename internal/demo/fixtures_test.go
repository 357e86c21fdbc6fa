package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsDeterministic(t *testing.T) {
	a := Products()
	b := Products()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestFilter(t *testing.T) {
	items := Products()

	all := Filter(items, "", "")
	assert.Len(t, all, len(items))

	chairs := Filter(items, "", "Chairs")
	require.NotEmpty(t, chairs)
	for _, p := range chairs {
		assert.Equal(t, "Chairs", p.Category)
	}

	birch := Filter(items, "birch", "")
	require.NotEmpty(t, birch)
	for _, p := range birch {
		assert.Contains(t, p.Name, "Birch")
	}

	none := Filter(items, "no such product", "")
	assert.Empty(t, none)
}

func TestSortBy(t *testing.T) {
	items := Products()

	byPrice := SortBy(items, "price")
	for i := 1; i < len(byPrice); i++ {
		assert.LessOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	// Unknown key keeps catalog order
	same := SortBy(items, "bogus")
	assert.Equal(t, items, same)

	// Input slice is not mutated
	assert.Equal(t, Products(), items)
}

func TestProductLookup(t *testing.T) {
	p := Products()[0]

	name, ok := p.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, p.Name, name)

	price, ok := p.Lookup("price")
	require.True(t, ok)
	assert.Contains(t, price, "$")

	_, ok = p.Lookup("missing")
	assert.False(t, ok)
}
