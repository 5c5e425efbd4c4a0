package srcfiles_test

import (
	"testing"

	"github.com/brimdata/bform/compiler/srcfiles"
	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	f := srcfiles.NewFile("test.bform", "def a = 1;\ndef b = 2;\n")
	assert.Equal(t, srcfiles.Position{Pos: 0, Line: 1, Column: 1}, f.Position(0))
	assert.Equal(t, srcfiles.Position{Pos: 4, Line: 1, Column: 5}, f.Position(4))
	assert.Equal(t, srcfiles.Position{Pos: 11, Line: 2, Column: 1}, f.Position(11))
	assert.Equal(t, srcfiles.Position{Pos: 15, Line: 2, Column: 5}, f.Position(15))
	assert.False(t, f.Position(-1).IsValid())
}

func TestLineOfPos(t *testing.T) {
	f := srcfiles.NewFile("", "def a = 1;\ndef b = 2;\n")
	assert.Equal(t, "def a = 1;", f.LineOfPos(0))
	assert.Equal(t, "def b = 2;", f.LineOfPos(13))
}

func TestFormatSpanError(t *testing.T) {
	f := srcfiles.NewFile("box.bform", "def a = ;\n")
	assert.Equal(t,
		"unexpected token in box.bform at line 1, column 9:\ndef a = ;\n        ~",
		srcfiles.FormatError(f, "unexpected token", 8, 9))
}

func TestFormatPointError(t *testing.T) {
	f := srcfiles.NewFile("", "def a = ;\n")
	assert.Equal(t,
		"unexpected end of file at line 1, column 9:\ndef a = ;\n    === ^ ===",
		srcfiles.FormatError(f, "unexpected end of file", 8, 8))
}

func TestMultiLineSpan(t *testing.T) {
	f := srcfiles.NewFile("", "def a =\n1;\n")
	// A span that crosses a line boundary underlines to the end of the
	// first line.
	got := srcfiles.FormatError(f, "oops", 4, 9)
	assert.Equal(t, "oops at line 1, column 5:\ndef a =\n    ~~~", got)
}
