// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package treemap provides a key-ordered map backed by an unbalanced
// binary search tree.
//
// The tree is never rebalanced: its shape depends only on insertion order,
// so inserting keys in sorted order degrades every operation to O(N).
package treemap

import (
	"cmp"
	"fmt"
	"iter"
)

type node[K cmp.Ordered, V comparable] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Map is an ordered map from K to V. Keys are unique.
//
// The zero value is an empty map ready to use. A Map is not safe for
// concurrent use.
type Map[K cmp.Ordered, V comparable] struct {
	root *node[K, V]
	size int
}

// New returns an empty map.
func New[K cmp.Ordered, V comparable]() *Map[K, V] {
	return &Map[K, V]{}
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Insert adds key with value. It returns an error wrapping ErrDuplicateKey
// if key is already present; the existing entry is left untouched.
func (m *Map[K, V]) Insert(key K, value V) error {
	root, err := insert(m.root, key, value)
	if err != nil {
		return err
	}
	m.root = root
	m.size++
	return nil
}

func insert[K cmp.Ordered, V comparable](n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, value: value}, nil
	}

	var err error
	switch {
	case key < n.key:
		n.left, err = insert(n.left, key, value)
	case key > n.key:
		n.right, err = insert(n.right, key, value)
	default:
		return n, fmt.Errorf("insert %v: %w", key, ErrDuplicateKey)
	}
	return n, err
}

// Remove deletes key from the map. It returns ErrEmpty if the map has no
// entries. Removing a key that is not present is a no-op and returns nil.
func (m *Map[K, V]) Remove(key K) error {
	if m.Empty() {
		return fmt.Errorf("remove %v: %w", key, ErrEmpty)
	}

	root, removed := remove(m.root, key)
	m.root = root
	if removed {
		m.size--
	}
	return nil
}

// remove returns the new root of the subtree and whether a node was unlinked.
func remove[K cmp.Ordered, V comparable](n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		// Key not present.
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	case n.left != nil && n.right != nil:
		// Take over the in-order successor, then unlink it from the right.
		succ := leftmost(n.right)
		n.key, n.value = succ.key, succ.value
		n.right, removed = remove(n.right, succ.key)
	case n.left != nil:
		return n.left, true
	default:
		return n.right, true
	}
	return n, removed
}

// Get returns the value stored for key. The error wraps ErrKeyNotFound if
// key is absent, and additionally ErrEmpty if the map has no entries.
func (m *Map[K, V]) Get(key K) (V, error) {
	if m.Empty() {
		var zero V
		return zero, fmt.Errorf("get %v: %w: %w", key, ErrKeyNotFound, ErrEmpty)
	}

	if n := m.lookup(key); n != nil {
		return n.value, nil
	}
	var zero V
	return zero, fmt.Errorf("get %v: %w", key, ErrKeyNotFound)
}

// ContainsKey reports whether key is present. It returns ErrEmpty if the
// map has no entries.
func (m *Map[K, V]) ContainsKey(key K) (bool, error) {
	if m.Empty() {
		return false, fmt.Errorf("contains key %v: %w", key, ErrEmpty)
	}
	return m.lookup(key) != nil, nil
}

func (m *Map[K, V]) lookup(key K) *node[K, V] {
	n := m.root
	for n != nil {
		switch {
		case key == n.key:
			return n
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// ContainsValue reports whether any entry holds value. Values are not
// ordered, so every node is visited. It returns ErrEmpty if the map has no
// entries.
func (m *Map[K, V]) ContainsValue(value V) (bool, error) {
	if m.Empty() {
		return false, fmt.Errorf("contains value: %w", ErrEmpty)
	}
	return containsValue(m.root, value), nil
}

func containsValue[K cmp.Ordered, V comparable](n *node[K, V], value V) bool {
	if n == nil {
		return false
	}
	return n.value == value || containsValue(n.left, value) || containsValue(n.right, value)
}

// MinKey returns the smallest key. It returns ErrEmpty if the map has no
// entries.
func (m *Map[K, V]) MinKey() (K, error) {
	if m.Empty() {
		var zero K
		return zero, fmt.Errorf("min key: %w", ErrEmpty)
	}
	return leftmost(m.root).key, nil
}

// MaxKey returns the largest key. It returns ErrEmpty if the map has no
// entries.
func (m *Map[K, V]) MaxKey() (K, error) {
	if m.Empty() {
		var zero K
		return zero, fmt.Errorf("max key: %w", ErrEmpty)
	}
	n := m.root
	for n.right != nil {
		n = n.right
	}
	return n.key, nil
}

func leftmost[K cmp.Ordered, V comparable](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// All returns an iterator over the entries in ascending key order.
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ascend(m.root, yield)
	}
}

func ascend[K cmp.Ordered, V comparable](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return ascend(n.left, yield) && yield(n.key, n.value) && ascend(n.right, yield)
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
}
