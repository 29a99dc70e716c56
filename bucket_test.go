package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_find(t *testing.T) {
	var b bucket[string, int]

	require.Equal(t, -1, b.find("a"))

	b.add(Pair[string, int]{"a", 1})
	b.add(Pair[string, int]{"b", 2})

	assert.Equal(t, 0, b.find("a"))
	assert.Equal(t, 1, b.find("b"))
	assert.Equal(t, -1, b.find("c"))
}

func TestBucket_update(t *testing.T) {
	var b bucket[string, int]

	require.False(t, b.update("a", 1))
	require.Zero(t, b.len())

	b.add(Pair[string, int]{"a", 1})
	b.add(Pair[string, int]{"b", 2})

	require.True(t, b.update("a", 10))
	assert.Equal(t, []Pair[string, int]{{"a", 10}, {"b", 2}}, b.pairs)
}

func TestBucket_remove(t *testing.T) {
	var b bucket[string, int]

	for i, k := range []string{"1", "2", "3", "4", "5"} {
		b.add(Pair[string, int]{k, i + 1})
	}
	require.Equal(t, 5, b.len())

	require.True(t, b.remove("1"))
	require.True(t, b.remove("3"))
	require.True(t, b.remove("5"))
	require.False(t, b.remove("3"))

	assert.Equal(t, []Pair[string, int]{{"2", 2}, {"4", 4}}, b.pairs)
}

func TestBucket_NilValue(t *testing.T) {
	var b bucket[string, *int]

	b.add(Pair[string, *int]{"key", nil})

	i := b.find("key")
	require.Equal(t, 0, i)
	assert.Nil(t, b.pairs[i].Value)
}
