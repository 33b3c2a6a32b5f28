// Package util has small helpers shared by the access layer.
package util

import (
	"errors"
	"sort"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// Grid requests use it so axes come back in declaration order.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

var ErrKeysDontMatchValues = errors.New("keys don't match values")

// NewOrderedMap builds a map from parallel keys and values. The keys slice
// and the value map must contain exactly the same names.
func NewOrderedMap(keys []string, values map[string]any) (*OrderedMap, error) {
	if len(keys) != len(values) {
		return nil, ErrKeysDontMatchValues
	}
	mapKeys := make([]string, 0, len(values))
	for k := range values {
		mapKeys = append(mapKeys, k)
	}
	sort.Strings(mapKeys)

	sortedKeys := make([]string, len(keys))
	copy(sortedKeys, keys)
	sort.Strings(sortedKeys)

	for i := range sortedKeys {
		if mapKeys[i] != sortedKeys[i] {
			return nil, ErrKeysDontMatchValues
		}
	}
	if values == nil {
		values = map[string]any{}
	}
	orderedKeys := make([]string, len(keys))
	copy(orderedKeys, keys)
	return &OrderedMap{keys: orderedKeys, values: values}, nil
}

// NewEmptyOrderedMap builds a map to be filled with Add.
func NewEmptyOrderedMap() *OrderedMap {
	return &OrderedMap{values: map[string]any{}}
}

// Add appends a key, or replaces its value if already present.
func (om *OrderedMap) Add(name string, val any) {
	if _, has := om.values[name]; !has {
		om.keys = append(om.keys, name)
	}
	om.values[name] = val
}

// Get returns the value stored under key.
func (om *OrderedMap) Get(key string) (val any, has bool) {
	val, has = om.values[key]
	return
}

// Keys lists the keys in insertion order.
func (om *OrderedMap) Keys() []string {
	return om.keys
}

// Len is the number of keys.
func (om *OrderedMap) Len() int {
	return len(om.keys)
}
