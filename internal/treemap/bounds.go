// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package treemap

import (
	"cmp"
	"fmt"
)

// FloorKey returns the greatest stored key less than or equal to key.
// It returns ErrEmpty if the map has no entries and ErrRange if key is
// below every stored key.
func (m *Map[K, V]) FloorKey(key K) (K, error) {
	lo, err := m.MinKey()
	if err != nil {
		return lo, fmt.Errorf("floor key %v: %w", key, ErrEmpty)
	}
	if key < lo {
		return lo, fmt.Errorf("floor key %v: %w", key, ErrRange)
	}

	k, ok := floor(m.root, key)
	if !ok {
		return k, fmt.Errorf("floor key %v: %w", key, ErrRange)
	}
	return k, nil
}

// floor reports false when no key in the subtree is <= key.
func floor[K cmp.Ordered, V comparable](n *node[K, V], key K) (K, bool) {
	if n == nil {
		var zero K
		return zero, false
	}

	switch {
	case n.key == key:
		return n.key, true
	case n.key < key:
		// A closer floor may sit to the right; n is the fallback.
		if k, ok := floor(n.right, key); ok {
			return k, true
		}
		return n.key, true
	default:
		return floor(n.left, key)
	}
}

// CeilKey returns the least stored key greater than or equal to key.
// It returns ErrEmpty if the map has no entries and ErrRange if key is
// above every stored key.
func (m *Map[K, V]) CeilKey(key K) (K, error) {
	hi, err := m.MaxKey()
	if err != nil {
		return hi, fmt.Errorf("ceil key %v: %w", key, ErrEmpty)
	}
	if key > hi {
		return hi, fmt.Errorf("ceil key %v: %w", key, ErrRange)
	}

	k, ok := ceil(m.root, key)
	if !ok {
		return k, fmt.Errorf("ceil key %v: %w", key, ErrRange)
	}
	return k, nil
}

// ceil reports false when no key in the subtree is >= key.
func ceil[K cmp.Ordered, V comparable](n *node[K, V], key K) (K, bool) {
	if n == nil {
		var zero K
		return zero, false
	}

	switch {
	case n.key == key:
		return n.key, true
	case n.key > key:
		if k, ok := ceil(n.left, key); ok {
			return k, true
		}
		return n.key, true
	default:
		return ceil(n.right, key)
	}
}
