// Package template reads staging buffer templates from coding text files.
//
// A template file names each side with a "FLM2 Left [43]" or
// "FLM2 Right [44]" line, and each buffer with a "Staging1_Data:" or
// "Staging2_Data:" line. Lines after a buffer marker hold its bytes.
package template

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agleyzer/lightseq/internal/bytebuf"
	"github.com/agleyzer/lightseq/internal/side"
)

const (
	leftMarker     = "FLM2 Left [43]"
	rightMarker    = "FLM2 Right [44]"
	staging1Marker = "Staging1_Data:"
	staging2Marker = "Staging2_Data:"

	// skipPrefix marks files in a template directory that are not templates.
	skipPrefix = "!"
)

// Template holds the four buffer texts of one template.
type Template struct {
	Name   string
	Left1  string
	Left2  string
	Right1 string
	Right2 string
}

// Issue is a token that is not a two-digit hex byte.
type Issue struct {
	Field string
	Index int
	Token string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s byte %d: invalid hex %q", i.Field, i.Index, i.Token)
}

// Parse reads one template from r.
func Parse(name string, r io.Reader) (*Template, error) {
	var left1, left2, right1, right2 strings.Builder
	var sideMode side.Name
	buffer := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, leftMarker):
			sideMode = side.Left
		case strings.Contains(line, rightMarker):
			sideMode = side.Right
		case strings.Contains(line, staging1Marker):
			buffer = 1
		case strings.Contains(line, staging2Marker):
			buffer = 2
		default:
			var dst *strings.Builder
			switch {
			case sideMode == side.Left && buffer == 1:
				dst = &left1
			case sideMode == side.Left && buffer == 2:
				dst = &left2
			case sideMode == side.Right && buffer == 1:
				dst = &right1
			case sideMode == side.Right && buffer == 2:
				dst = &right2
			}
			if dst != nil {
				dst.WriteString(line)
				dst.WriteString(" ")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	return &Template{
		Name:   name,
		Left1:  clean(left1.String()),
		Left2:  clean(left2.String()),
		Right1: clean(right1.String()),
		Right2: clean(right2.String()),
	}, nil
}

// LoadFile reads a template file; the file name becomes the template name.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	return Parse(filepath.Base(path), f)
}

// LoadDir reads every template file in dir, sorted by name.
// Subdirectories and files starting with "!" are skipped.
func LoadDir(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	var templates []*Template
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), skipPrefix) {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}

// Validate reports every token that is not a two-digit hex byte.
func (t *Template) Validate() []Issue {
	var issues []Issue
	for _, f := range t.fields() {
		for i, tok := range bytebuf.Parse(f.text) {
			if !bytebuf.IsHexByte(tok) {
				issues = append(issues, Issue{Field: f.name, Index: i, Token: tok})
			}
		}
	}
	return issues
}

// Apply loads the template's buffers into both sides of w.
func (t *Template) Apply(w *side.Workspace) {
	w.Load(side.Left, t.Left1, t.Left2)
	w.Load(side.Right, t.Right1, t.Right2)
}

type field struct {
	name string
	text string
}

func (t *Template) fields() []field {
	return []field{
		{"left1", t.Left1},
		{"left2", t.Left2},
		{"right1", t.Right1},
		{"right2", t.Right2},
	}
}

// clean removes spaces and normalizes separators to ", ".
func clean(s string) string {
	return bytebuf.Build(bytebuf.Parse(strings.ReplaceAll(s, " ", "")))
}
