// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for donors.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed scenario from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Args are the command-line arguments from the "Args: ..." line.
	// Arguments are whitespace separated.
	Args []string

	// Exit is the expected exit code from the "Exit: N" line (default 0).
	Exit int

	// Files maps input file names to their contents. Every archive file
	// outside want/ is an input file.
	Files map[string][]byte

	// Want maps stream names ("stdout", "stderr") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment with an "Args:" line and optional "Exit:" line
//   - Zero or more input files
//   - One or more "want/<stream>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Files:       make(map[string][]byte),
		Want:        make(map[string][]byte),
	}

	if err := c.parseHeader(); err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		if strings.HasPrefix(f.Name, "want/") {
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
			continue
		}
		c.Files[f.Name] = f.Data
	}

	if c.Args == nil {
		return nil, fmt.Errorf("missing Args: line in archive comment")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseHeader extracts "Args:" and "Exit:" lines from the description.
func (c *Case) parseHeader() error {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Args:"):
			c.Args = strings.Fields(strings.TrimPrefix(line, "Args:"))
			if c.Args == nil {
				c.Args = []string{}
			}
		case strings.HasPrefix(line, "Exit:"):
			code, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Exit:")))
			if err != nil {
				return fmt.Errorf("parse Exit: line: %w", err)
			}
			c.Exit = code
		}
	}
	return nil
}

// Compare compares produced streams against the case's expectations and
// reports differences. Streams present in got but not in Want are ignored,
// so a case may leave stderr unchecked.
func (c *Case) Compare(t *testing.T, got map[string][]byte) {
	t.Helper()

	for stream, wantContent := range c.Want {
		gotContent, ok := got[stream]
		if !ok {
			t.Errorf("missing output stream: %q", stream)
			continue
		}

		wantNorm := normalizeContent(wantContent)
		gotNorm := normalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", stream, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive returns a copy of ar with its want/* files replaced by got.
// Only streams the archive already expects are rewritten.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	var streams []string
	for _, f := range ar.Files {
		if name, ok := strings.CutPrefix(f.Name, "want/"); ok {
			streams = append(streams, name)
			continue
		}
		result.Files = append(result.Files, f)
	}
	sort.Strings(streams)

	for _, name := range streams {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// LoadCases loads all txtar test cases from a directory.
// It returns the archive of each case alongside it, keyed by case name,
// so callers can rewrite goldens.
func LoadCases(t *testing.T, dir string) ([]*Case, map[string]*txtar.Archive) {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	archives := make(map[string]*txtar.Archive, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
		archives[name] = ar
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases, archives
}
