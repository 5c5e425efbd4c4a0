package srcfiles

import (
	"fmt"
	"strings"
)

// FormatError renders msg against the half-open source range [pos, end),
// quoting the offending line with an underline beneath the range, or a
// caret when the range is empty.
func FormatError(f *File, msg string, pos, end int) string {
	start := f.Position(pos)
	var b strings.Builder
	b.WriteString(msg)
	if f.Name != "" {
		fmt.Fprintf(&b, " in %s", f.Name)
	}
	line := f.LineOfPos(pos)
	fmt.Fprintf(&b, " at line %d, column %d:\n%s\n", start.Line, start.Column, line)
	last := f.Position(end - 1)
	if end > pos && last.IsValid() {
		formatSpanError(&b, line, start, last)
	} else {
		formatPointError(&b, start)
	}
	return b.String()
}

func formatSpanError(b *strings.Builder, line string, start, last Position) {
	b.WriteString(strings.Repeat(" ", start.Column-1))
	n := last.Column - start.Column + 1
	if start.Line != last.Line {
		n = len(line) - start.Column + 1
	}
	b.WriteString(strings.Repeat("~", n))
}

func formatPointError(b *strings.Builder, start Position) {
	col := start.Column - 1
	for k := 0; k < col; k++ {
		if k >= col-4 && k != col-1 {
			b.WriteByte('=')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("^ ===")
}
