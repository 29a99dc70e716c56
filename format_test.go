package hashtable

import (
	"fmt"
	"go/parser"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTable_String(t *testing.T) {
	ht := sample(t)

	assert.Equal(t, `{"hola": "hello", 98.6: 31, false: true}`, ht.String())
	assert.Equal(t, ht.String(), fmt.Sprint(ht))
}

func TestHashTable_String_Empty(t *testing.T) {
	ht, err := New[string, int]()
	require.NoError(t, err)

	assert.Equal(t, "{}", ht.String())
}

func TestHashTable_String_NilValue(t *testing.T) {
	ht, err := FromPairs([]Pair[string, any]{{"key", nil}})
	require.NoError(t, err)

	assert.Equal(t, `{"key": <nil>}`, ht.String())
}

func TestHashTable_GoString(t *testing.T) {
	ht, err := FromPairs([]Pair[string, int]{{"b", 2}, {"a", 1}})
	require.NoError(t, err)

	assert.Equal(t, `hashtable.FromMap(map[string]int{"b": 2, "a": 1})`, ht.GoString())
	assert.Equal(t, ht.GoString(), fmt.Sprintf("%#v", ht))
}

func TestHashTable_GoString_Any(t *testing.T) {
	ht := sample(t)

	assert.Equal(t,
		`hashtable.FromMap(map[interface {}]interface {}{"hola": "hello", float64(98.6): 31, false: true})`,
		ht.GoString(),
	)
}

func TestHashTable_GoString_NilValue(t *testing.T) {
	ht, err := FromPairs([]Pair[string, any]{{"key", nil}})
	require.NoError(t, err)

	assert.Equal(t, `hashtable.FromMap(map[string]interface {}{"key": nil})`, ht.GoString())
}

func TestHashTable_GoString_TypedLiterals(t *testing.T) {
	ht, err := FromPairs([]Pair[any, any]{
		{float64(1), 1},
		{1, float32(2)},
		{"u", uint8(3)},
		{int64(4), 1.5},
	})
	require.NoError(t, err)

	assert.Equal(t,
		`hashtable.FromMap(map[interface {}]interface {}{float64(1): 1, 1: float32(2), "u": uint8(0x3), int64(4): float64(1.5)})`,
		ht.GoString(),
	)
}

func TestHashTable_GoString_StaticTypes(t *testing.T) {
	// No conversions needed when the map type fixes the literal's type.
	ht, err := FromPairs([]Pair[float64, uint8]{{1, 2}})
	require.NoError(t, err)

	assert.Equal(t, `hashtable.FromMap(map[float64]uint8{1: 0x2})`, ht.GoString())
}

func TestHashTable_GoString_NonFinite(t *testing.T) {
	ht, err := FromPairs([]Pair[string, float64]{{"inf", math.Inf(1)}, {"-inf", math.Inf(-1)}})
	require.NoError(t, err)

	assert.Equal(t,
		`hashtable.FromMap(map[string]float64{"inf": float64(math.Inf(1)), "-inf": float64(math.Inf(-1))})`,
		ht.GoString(),
	)
}

func TestHashTable_GoString_Reproducible(t *testing.T) {
	tests := []struct {
		name    string
		ht      func(t *testing.T) *HashTable[any, any]
		literal string
		rebuilt map[any]any
	}{
		{
			name: "nil value",
			ht: func(t *testing.T) *HashTable[any, any] {
				ht, err := FromPairs([]Pair[any, any]{{"key", nil}})
				require.NoError(t, err)
				return ht
			},
			literal: `hashtable.FromMap(map[interface {}]interface {}{"key": nil})`,
			rebuilt: map[any]any{"key": nil},
		},
		{
			name: "whole float next to int",
			ht: func(t *testing.T) *HashTable[any, any] {
				ht, err := FromPairs([]Pair[any, any]{{float64(1), "float"}, {1, float64(2)}})
				require.NoError(t, err)
				return ht
			},
			literal: `hashtable.FromMap(map[interface {}]interface {}{float64(1): "float", 1: float64(2)})`,
			rebuilt: map[any]any{float64(1): "float", 1: float64(2)},
		},
		{
			name: "mixed",
			ht: func(t *testing.T) *HashTable[any, any] {
				return sample(t)
			},
			literal: `hashtable.FromMap(map[interface {}]interface {}{"hola": "hello", float64(98.6): 31, false: true})`,
			rebuilt: map[any]any{"hola": "hello", float64(98.6): 31, false: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ht := tt.ht(t)

			got := ht.GoString()
			require.Equal(t, tt.literal, got)

			_, err := parser.ParseExpr(got)
			require.NoError(t, err, "not a Go expression: %s", got)

			rebuilt, err := FromMap(tt.rebuilt)
			require.NoError(t, err)

			assert.True(t, Equal(ht, rebuilt))
		})
	}
}
