// Package report renders count results as fixed-width text lines.
package report

import (
	"fmt"
	"strings"

	"github.com/chmouel/gowc/internal/count"
)

// MinFieldWidth is the narrowest field a counter is rendered in.
const MinFieldWidth = 8

// TotalLabel names the summary line printed after several inputs.
const TotalLabel = "total"

// Field names accepted by ParseFields and the configuration file.
const (
	FieldLines = "lines"
	FieldWords = "words"
	FieldChars = "chars"
)

// Selection picks which counters are printed.
type Selection struct {
	Lines bool
	Words bool
	Chars bool
}

// All selects every counter.
func All() Selection {
	return Selection{Lines: true, Words: true, Chars: true}
}

// Empty reports whether no counter is selected.
func (s Selection) Empty() bool {
	return !s.Lines && !s.Words && !s.Chars
}

// WithDefaults returns s, or every counter when s selects nothing.
func (s Selection) WithDefaults() Selection {
	if s.Empty() {
		return All()
	}
	return s
}

// ParseFields builds a Selection from field names such as "lines".
func ParseFields(names []string) (Selection, error) {
	var sel Selection
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case FieldLines:
			sel.Lines = true
		case FieldWords:
			sel.Words = true
		case FieldChars:
			sel.Chars = true
		case "":
		default:
			return Selection{}, fmt.Errorf("unknown field %q, expected one of %s, %s, %s", name, FieldLines, FieldWords, FieldChars)
		}
	}
	return sel, nil
}

// Formatter renders FileInfo values for a selection.
type Formatter struct {
	Selection Selection
	Width     int
}

// NewFormatter returns a Formatter; widths below MinFieldWidth are raised.
func NewFormatter(sel Selection, width int) Formatter {
	if width < MinFieldWidth {
		width = MinFieldWidth
	}
	return Formatter{Selection: sel, Width: width}
}

// Fields concatenates the selected counters, each right-justified.
func (f Formatter) Fields(info count.FileInfo) string {
	width := f.Width
	if width < MinFieldWidth {
		width = MinFieldWidth
	}

	var b strings.Builder
	for _, field := range []struct {
		show  bool
		value uint64
	}{
		{f.Selection.Lines, info.Lines},
		{f.Selection.Words, info.Words},
		{f.Selection.Chars, info.Chars},
	} {
		if field.show {
			fmt.Fprintf(&b, "%*d", width, field.value)
		}
	}
	return b.String()
}

// Line renders one input's result followed by its name as given.
func (f Formatter) Line(info count.FileInfo, name string) string {
	return f.Fields(info) + " " + name
}

// Total renders the summary line.
func (f Formatter) Total(info count.FileInfo) string {
	return f.Line(info, TotalLabel)
}
