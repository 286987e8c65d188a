// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package donors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/albertocavalcante/donors/internal/testutil"
	"github.com/albertocavalcante/donors/internal/treemap"
)

func scenario(t *testing.T) *treemap.Map[int, string] {
	t.Helper()
	m := treemap.New[int, string]()
	for _, d := range []Donation{
		{Name: "Alice", Amount: 100},
		{Name: "Bob", Amount: 50},
		{Name: "Carol", Amount: 200},
	} {
		if err := m.Insert(d.Amount, d.Name); err != nil {
			t.Fatalf("Insert(%d): %v", d.Amount, err)
		}
	}
	return m
}

func TestQueries(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		want    string
	}{
		{command: "rich", want: "Carol (200)\n"},
		{command: "cheap", want: "Bob (50)\n"},
		{command: "all", want: "Bob (50)\nAlice (100)\nCarol (200)\n"},
		{command: "who", args: []string{"75"}, want: "No match\n"},
		{command: "who", args: []string{"100"}, want: "Alice (100)\n"},
		{command: "who", args: []string{"+50"}, want: "Alice (100)\n"},
		{command: "who", args: []string{"+49"}, want: "Bob (50)\n"},
		{command: "who", args: []string{"+0"}, want: "Bob (50)\n"},
		{command: "who", args: []string{"+199"}, want: "Carol (200)\n"},
		{command: "who", args: []string{"+200"}, want: "No match\n"},
		{command: "who", args: []string{"-200"}, want: "Alice (100)\n"},
		{command: "who", args: []string{"-100"}, want: "Bob (50)\n"},
		{command: "who", args: []string{"-201"}, want: "Carol (200)\n"},
		{command: "who", args: []string{"-101"}, want: "Alice (100)\n"},
		{command: "who", args: []string{"-50"}, want: "No match\n"},
	}

	for _, tc := range tests {
		t.Run(strings.Join(append([]string{tc.command}, tc.args...), " "), func(t *testing.T) {
			var out bytes.Buffer
			if err := Run(&out, scenario(t), tc.command, tc.args); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if got := out.String(); got != tc.want {
				t.Errorf("Run() output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAllDrains(t *testing.T) {
	m := scenario(t)
	var out bytes.Buffer
	if err := All(&out, m); err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if !m.Empty() {
		t.Errorf("map has %d entries after All(), want 0", m.Size())
	}
}

func TestEmptyMapQueries(t *testing.T) {
	m := treemap.New[int, string]()

	var out bytes.Buffer
	if err := All(&out, m); err != nil {
		t.Errorf("All() error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("All() output = %q, want empty", out.String())
	}

	if err := Rich(&out, m); !errors.Is(err, treemap.ErrEmpty) {
		t.Errorf("Rich() error = %v, want ErrEmpty", err)
	}
	if err := Cheap(&out, m); !errors.Is(err, treemap.ErrEmpty) {
		t.Errorf("Cheap() error = %v, want ErrEmpty", err)
	}

	out.Reset()
	if err := Who(&out, m, "+5"); err != nil {
		t.Fatalf("Who() error: %v", err)
	}
	if got := out.String(); got != "No match\n" {
		t.Errorf("Who() output = %q, want %q", got, "No match\n")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr error
	}{
		{name: "unknown command", command: "poor", wantErr: ErrUnknownCommand},
		{name: "who without amount", command: "who", wantErr: ErrMissingArgument},
		{name: "who with text", command: "who", args: []string{"many"}, wantErr: ErrUsage},
		{name: "who with bare sign", command: "who", args: []string{"+"}, wantErr: ErrUsage},
		{name: "who with empty amount", command: "who", args: []string{""}, wantErr: ErrMissingArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(&out, scenario(t), tc.command, tc.args)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tc.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("Run() wrote %q on error", out.String())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, c := range Commands {
		args := []string{}
		if c == "who" {
			args = []string{"1"}
		}
		if err := Validate(c, args); err != nil {
			t.Errorf("Validate(%q) error: %v", c, err)
		}
	}
}

// TestGolden runs each txtar scenario in testdata through Load and Run.
// Args name the command and its arguments; the donation list is the
// archive's donations.dat file.
func TestGolden(t *testing.T) {
	cases, _ := testutil.LoadCases(t, "testdata")

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if len(c.Args) == 0 {
				t.Fatal("case has no command in Args")
			}
			input, ok := c.Files["donations.dat"]
			if !ok {
				t.Fatal("case has no donations.dat")
			}

			m, err := Load(context.Background(), bytes.NewReader(input), LoadOptions{Logger: discard()})
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}

			var out bytes.Buffer
			err = Run(&out, m, c.Args[0], c.Args[1:])
			if c.Exit != 0 {
				if err == nil {
					t.Fatalf("Run() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			c.Compare(t, map[string][]byte{"stdout": out.Bytes()})
		})
	}
}
