package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/homier/hashtable"
)

// loadPairs reads the top-level keys of the TOML file at path.
func loadPairs(path string) ([]hashtable.Pair[string, any], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := decodePairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}

// decodePairs returns the top-level keys of a TOML document with their
// values, in document order. Nested tables become map[string]any values.
func decodePairs(r io.Reader) ([]hashtable.Pair[string, any], error) {
	var doc map[string]any

	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	seen, err := hashtable.NewSet[string]()
	if err != nil {
		return nil, err
	}

	var pairs []hashtable.Pair[string, any]
	for _, key := range md.Keys() {
		// Keys of nested tables come as longer paths; arrays of tables
		// repeat their top-level key.
		if len(key) != 1 || !seen.Add(key[0]) {
			continue
		}

		pairs = append(pairs, hashtable.Pair[string, any]{Key: key[0], Value: doc[key[0]]})
	}

	return pairs, nil
}
