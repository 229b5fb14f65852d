package orderedmap_test

import (
	"testing"

	"github.com/latticetree/rbtree/orderedmap"
	"github.com/latticetree/rbtree/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyMap(t *testing.T) {
	t.Parallel()

	m := orderedmap.New[sortable.Int, string]()
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Len())

	_, ok := m.Get(sortable.Int(1))
	assert.False(t, ok)
}

func TestSet_InsertsAndOverwrites(t *testing.T) {
	t.Parallel()

	m := orderedmap.New[sortable.Int, string]()

	assert.True(t, m.Set(sortable.Int(1), "one"))
	assert.False(t, m.Set(sortable.Int(1), "uno"))
	assert.Equal(t, 1, m.Len())

	value, ok := m.Get(sortable.Int(1))
	require.True(t, ok)
	assert.Equal(t, "uno", value)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m := orderedmap.New[sortable.Int, string]()
	m.Set(sortable.Int(1), "one")

	assert.True(t, m.Delete(sortable.Int(1)))
	assert.False(t, m.Delete(sortable.Int(1)))
	assert.Equal(t, 0, m.Len())
}

func TestSeq_OrderedByKey(t *testing.T) {
	t.Parallel()

	m := orderedmap.New[sortable.Int, string]()
	m.Set(sortable.Int(3), "three")
	m.Set(sortable.Int(1), "one")
	m.Set(sortable.Int(2), "two")

	var keys []int

	var values []string
	for k, v := range m.Seq() {
		keys = append(keys, int(k))
		values = append(values, v)
	}

	assert.Equal(t, []int{1, 2, 3}, keys)
	assert.Equal(t, []string{"one", "two", "three"}, values)
}

func TestForEach(t *testing.T) {
	t.Parallel()

	m := orderedmap.New[sortable.Int, int]()
	for i := 1; i <= 5; i++ {
		m.Set(sortable.Int(i), i*i)
	}

	sum := 0
	m.ForEach(func(_ sortable.Int, v int) {
		sum += v
	})

	assert.Equal(t, 1+4+9+16+25, sum)
}

func TestClear(t *testing.T) {
	t.Parallel()

	m := orderedmap.New[sortable.Int, string]()
	m.Set(sortable.Int(1), "one")
	m.Set(sortable.Int(2), "two")

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Contains(sortable.Int(1)))
}
