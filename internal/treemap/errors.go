// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package treemap

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("treemap: duplicate key")

	// ErrEmpty is returned by ordered lookups on a map with no entries.
	ErrEmpty = errors.New("treemap: empty map")

	// ErrKeyNotFound is returned by Get when the key is not stored.
	ErrKeyNotFound = errors.New("treemap: key not found")

	// ErrRange is returned by FloorKey and CeilKey when no stored key
	// satisfies the bound.
	ErrRange = errors.New("treemap: key out of range")
)
