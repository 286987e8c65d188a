// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package donors loads donation lists and answers queries over them.
//
// Donations are keyed by amount, so two donors who gave the same amount
// cannot both be stored.
package donors

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/albertocavalcante/donors/internal/treemap"
)

// Donation is a single donor record.
type Donation struct {
	Name   string
	Amount int
}

// String formats the donation as "<name> (<amount>)".
func (d Donation) String() string {
	return fmt.Sprintf("%s (%d)", d.Name, d.Amount)
}

// LoadOptions configures how a donation list is read.
type LoadOptions struct {
	// SkipDuplicates drops records whose amount is already stored instead
	// of failing the load.
	SkipDuplicates bool

	// Logger receives diagnostics about skipped records.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

func (o LoadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ParseError describes a malformed record in a donation list.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile reads the donation list at path.
func LoadFile(ctx context.Context, path string, opts LoadOptions) (*treemap.Map[int, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// Load reads "<name>,<amount>" records, one per line, into a map keyed by
// amount. Blank lines and records whose name is a single character or
// shorter are skipped.
func Load(ctx context.Context, r io.Reader, opts LoadOptions) (*treemap.Map[int, string], error) {
	log := opts.logger()
	m := treemap.New[int, string]()

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		d, ok, err := parseRecord(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		if !ok {
			log.Debug("skipping record with short name", "line", line, "text", text)
			continue
		}

		if err := m.Insert(d.Amount, d.Name); err != nil {
			if opts.SkipDuplicates && errors.Is(err, treemap.ErrDuplicateKey) {
				log.Warn("skipping duplicate amount", "line", line, "name", d.Name, "amount", d.Amount)
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read donations: %w", err)
	}

	log.Debug("loaded donations", "count", m.Size(), "lines", line)
	return m, nil
}

// parseRecord splits a line at its first comma. It reports false for
// records whose name fragment is too short to be a name.
func parseRecord(text string) (Donation, bool, error) {
	name, amount, found := strings.Cut(text, ",")
	if len(name) <= 1 {
		return Donation{}, false, nil
	}
	if !found {
		return Donation{}, false, errors.New("missing comma")
	}

	n, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		return Donation{}, false, fmt.Errorf("invalid amount: %w", err)
	}
	return Donation{Name: name, Amount: n}, true, nil
}
