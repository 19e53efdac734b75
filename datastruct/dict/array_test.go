package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayDictionary(t *testing.T) {
	d := NewArrayDictionary[string, int]()
	require.True(t, d.IsEmpty())

	d.Put("a", 1)
	d.Put("b", 2)
	d.Put("c", 3)
	d.Put("b", 20)
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())

	v, err := d.Get("b")
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	_, err = d.Get("z")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	v, err = d.Remove("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"b", "c"}, d.Keys())
	assert.False(t, d.ContainsKey("a"))
	_, err = d.Remove("a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	d.Clear()
	assert.True(t, d.IsEmpty())
	assert.False(t, d.Iterator().HasNext())
}

func TestArrayDictionaryIterator(t *testing.T) {
	d := NewArrayDictionary[int, string]()
	d.Put(2, "b")
	d.Put(1, "a")

	it := d.Iterator()
	e, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, Entry[int, string]{Key: 2, Value: "b"}, e)
	e, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, Entry[int, string]{Key: 1, Value: "a"}, e)
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrIterationExhausted)
}
