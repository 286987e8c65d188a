// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package donors

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/albertocavalcante/donors/internal/treemap"
)

// NoMatch is printed when a who query finds no donor.
const NoMatch = "No match"

var (
	// ErrUsage is returned for malformed query arguments.
	ErrUsage = errors.New("donors: invalid usage")

	// ErrUnknownCommand is returned for a command not in Commands.
	ErrUnknownCommand = errors.New("donors: unknown command")

	// ErrMissingArgument is returned when who is given no amount.
	ErrMissingArgument = errors.New("donors: missing argument")
)

// Commands lists the supported query names.
var Commands = []string{"all", "cheap", "rich", "who"}

// Validate checks that command exists and has the arguments it needs.
func Validate(command string, args []string) error {
	if !slices.Contains(Commands, command) {
		return fmt.Errorf("%w: command %q is invalid, possible commands are: %s",
			ErrUnknownCommand, command, strings.Join(Commands, "|"))
	}
	if command == "who" && len(args) == 0 {
		return fmt.Errorf("%w: command 'who' expects another argument: [+/-]amount", ErrMissingArgument)
	}
	return nil
}

// Run executes command against m, writing results to w.
func Run(w io.Writer, m *treemap.Map[int, string], command string, args []string) error {
	if err := Validate(command, args); err != nil {
		return err
	}

	switch command {
	case "all":
		return All(w, m)
	case "rich":
		return Rich(w, m)
	case "cheap":
		return Cheap(w, m)
	default:
		return Who(w, m, args[0])
	}
}

// All prints every donation in ascending amount order. The map is drained
// as it is printed.
func All(w io.Writer, m *treemap.Map[int, string]) error {
	for !m.Empty() {
		amount, err := m.MinKey()
		if err != nil {
			return err
		}
		if err := printEntry(w, m, amount); err != nil {
			return err
		}
		if err := m.Remove(amount); err != nil {
			return err
		}
	}
	return nil
}

// Rich prints the largest donation.
func Rich(w io.Writer, m *treemap.Map[int, string]) error {
	amount, err := m.MaxKey()
	if err != nil {
		return fmt.Errorf("rich: no donations loaded: %w", err)
	}
	return printEntry(w, m, amount)
}

// Cheap prints the smallest donation.
func Cheap(w io.Writer, m *treemap.Map[int, string]) error {
	amount, err := m.MinKey()
	if err != nil {
		return fmt.Errorf("cheap: no donations loaded: %w", err)
	}
	return printEntry(w, m, amount)
}

// Who looks up a donor by amount. A leading '+' finds the smallest
// donation strictly above the amount, a leading '-' the largest strictly
// below it; otherwise the amount must match exactly. NoMatch is printed
// when nothing qualifies.
func Who(w io.Writer, m *treemap.Map[int, string], arg string) error {
	if arg == "" {
		return fmt.Errorf("%w: who expects [+/-]amount", ErrMissingArgument)
	}
	amount, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: who expects [+/-]amount, got %q", ErrUsage, arg)
	}

	if m.Empty() {
		return printNoMatch(w)
	}

	var key int
	switch arg[0] {
	case '+':
		if amount == math.MaxInt {
			return printNoMatch(w)
		}
		key, err = m.CeilKey(amount + 1)
	case '-':
		key, err = m.FloorKey(-amount - 1)
	default:
		var ok bool
		ok, err = m.ContainsKey(amount)
		if err == nil && !ok {
			return printNoMatch(w)
		}
		key = amount
	}
	if errors.Is(err, treemap.ErrRange) {
		return printNoMatch(w)
	}
	if err != nil {
		return err
	}
	return printEntry(w, m, key)
}

func printEntry(w io.Writer, m *treemap.Map[int, string], amount int) error {
	name, err := m.Get(amount)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, Donation{Name: name, Amount: amount})
	return err
}

func printNoMatch(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoMatch)
	return err
}
