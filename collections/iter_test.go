package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueDictionary_All(t *testing.T) {
	d := New[int, int](0)

	for i := range 10 {
		d.Set(i, i*2)
	}
	for _, k := range []int{2, 5, 8} {
		require.True(t, d.Delete(k))
	}

	got := map[int]int{}
	for k, v := range d.All() {
		got[k] = v
	}

	// Free slots are skipped, live mappings all appear exactly once.
	require.Len(t, got, 7)
	for i := range 10 {
		if i == 2 || i == 5 || i == 8 {
			assert.NotContains(t, got, i)
			continue
		}
		assert.Equal(t, i*2, got[i])
	}
}

func TestValueDictionary_All_EarlyStop(t *testing.T) {
	d := New[int, int](0)

	for i := range 10 {
		d.Set(i, i)
	}

	n := 0
	for range d.All() {
		n++
		if n == 3 {
			break
		}
	}

	require.Equal(t, 3, n)
}

func TestValueDictionary_All_Empty(t *testing.T) {
	var d ValueDictionary[string, int]

	for range d.All() {
		t.Fatal("yielded from an empty dictionary")
	}
}

func TestValueDictionary_KeysValues(t *testing.T) {
	d := New[string, int](0)

	d.Set("a", 1)
	d.Set("b", 2)

	keys := []string{}
	for k := range d.Keys() {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	values := []int{}
	for v := range d.Values() {
		values = append(values, v)
	}
	assert.ElementsMatch(t, []int{1, 2}, values)
}

func TestValueDictionary_CopyTo(t *testing.T) {
	d := New[string, int](0)

	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("c", 3)
	require.True(t, d.Delete("b"))

	dst := make([]KeyValue[string, int], d.Count())
	require.NoError(t, d.CopyTo(dst))

	got := map[string]int{}
	for _, kv := range dst {
		got[kv.Key] = kv.Value
	}
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, got)
}

func TestValueDictionary_CopyTo_TooSmall(t *testing.T) {
	d := New[string, int](0)

	d.Set("a", 1)
	d.Set("b", 2)

	err := d.CopyTo(make([]KeyValue[string, int], 1))
	require.ErrorIs(t, err, ErrDestinationTooSmall)
}

func TestContainsValue(t *testing.T) {
	d := New[string, int](0)

	d.Set("a", 1)
	d.Set("b", 2)

	assert.True(t, ContainsValue(d, 1))
	assert.True(t, ContainsValue(d, 2))
	assert.False(t, ContainsValue(d, 3))

	require.True(t, d.Delete("a"))
	assert.False(t, ContainsValue(d, 1))
}
