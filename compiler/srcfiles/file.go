// Package srcfiles maps byte offsets in bform source texts to line and
// column positions and renders positioned diagnostics.
package srcfiles

import "sort"

// File holds one source text and its line offsets.
type File struct {
	Name  string
	Text  string
	lines []int
}

func NewFile(name, text string) *File {
	lines := []int{0}
	for offset := 0; offset < len(text); offset++ {
		if text[offset] == '\n' {
			lines = append(lines, offset+1)
		}
	}
	return &File{Name: name, Text: text, lines: lines}
}

func (f *File) Position(pos int) Position {
	if pos < 0 || pos > len(f.Text) {
		return Position{-1, -1, -1}
	}
	i := searchLine(f.lines, pos)
	return Position{
		Pos:    pos,
		Line:   i + 1,
		Column: pos - f.lines[i] + 1,
	}
}

// LineOfPos returns the text of the line containing pos, without its
// trailing newline.
func (f *File) LineOfPos(pos int) string {
	i := searchLine(f.lines, pos)
	start := f.lines[i]
	end := len(f.Text)
	if i+1 < len(f.lines) {
		end = f.lines[i+1]
	}
	line := f.Text[start:end]
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return line
}

func searchLine(lines []int, offset int) int {
	return sort.Search(len(lines), func(i int) bool { return lines[i] > offset }) - 1
}

type Position struct {
	Pos    int `json:"pos"`    // Byte offset into the file's text.
	Line   int `json:"line"`   // 1-based line number.
	Column int `json:"column"` // 1-based column number.
}

func (p Position) IsValid() bool { return p.Pos >= 0 }
