package lexer_test

import (
	"testing"

	"github.com/brimdata/bform/compiler/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexTypes(t *testing.T, src string) []lexer.Type {
	tokens, lexErr := lexer.Lex(src)
	require.Nil(t, lexErr, "lex %q", src)
	var types []lexer.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestOffsets(t *testing.T) {
	tokens, lexErr := lexer.Lex("def box = { x <- u16 };")
	require.Nil(t, lexErr)
	assert.Equal(t, []lexer.Token{
		{lexer.KwDef, 0, 3},
		{lexer.Name, 4, 7},
		{lexer.Equal, 8, 9},
		{lexer.LBrace, 10, 11},
		{lexer.Name, 12, 13},
		{lexer.BackArrow, 14, 16},
		{lexer.Name, 17, 20},
		{lexer.RBrace, 21, 22},
		{lexer.Semi, 22, 23},
		{lexer.EOF, 23, 23},
	}, tokens)
}

func TestMaximalMunch(t *testing.T) {
	assert.Equal(t, []lexer.Type{
		lexer.BackArrow, lexer.LessEqual, lexer.Less, lexer.Arrow, lexer.Minus,
		lexer.FatArrow, lexer.EqualEqual, lexer.Equal, lexer.BangEqual,
		lexer.GreaterEqual, lexer.Greater, lexer.EOF,
	}, lexTypes(t, "<- <= < -> - => == = != >= >"))
}

func TestKeywordsBeatNames(t *testing.T) {
	assert.Equal(t, []lexer.Type{
		lexer.KwDef, lexer.KwFun, lexer.KwOverlap, lexer.KwType, lexer.KwWhere,
		lexer.Name, lexer.Name, lexer.Name, lexer.EOF,
	}, lexTypes(t, "def fun overlap Type where definition funt types"))
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, []lexer.Type{
		lexer.Underscore, lexer.Name, lexer.Name, lexer.EOF,
	}, lexTypes(t, "_ _x x_"))
}

func TestHole(t *testing.T) {
	tokens, lexErr := lexer.Lex("?len")
	require.Nil(t, lexErr)
	assert.Equal(t, []lexer.Token{{lexer.Hole, 0, 4}, {lexer.EOF, 4, 4}}, tokens)

	_, lexErr = lexer.Lex("? ")
	require.NotNil(t, lexErr)
	assert.Equal(t, "malformed hole", lexErr.Msg)
}

func TestNumbers(t *testing.T) {
	tokens, lexErr := lexer.Lex("0x1F 1.5 10e3 42")
	require.Nil(t, lexErr)
	assert.Equal(t, []lexer.Token{
		{lexer.NumberLit, 0, 4},
		{lexer.NumberLit, 5, 8},
		{lexer.NumberLit, 9, 13},
		{lexer.NumberLit, 14, 16},
		{lexer.EOF, 16, 16},
	}, tokens)
}

func TestNameThenProjection(t *testing.T) {
	// "." only ever joins a number literal; after a name, "x.y" stays a
	// projection.
	assert.Equal(t, []lexer.Type{
		lexer.Name, lexer.Dot, lexer.Name, lexer.EOF,
	}, lexTypes(t, "x.y"))
}

func TestStrings(t *testing.T) {
	tokens, lexErr := lexer.Lex(`"hello" "esc\"aped"`)
	require.Nil(t, lexErr)
	assert.Equal(t, []lexer.Token{
		{lexer.StringLit, 0, 7},
		{lexer.StringLit, 8, 19},
		{lexer.EOF, 19, 19},
	}, tokens)
}

func TestUnterminatedString(t *testing.T) {
	tokens, lexErr := lexer.Lex(`def a = "oops`)
	require.NotNil(t, lexErr)
	assert.Equal(t, "unterminated string literal", lexErr.Msg)
	assert.Equal(t, 8, lexErr.Start)
	// The stream ends at the error, EOF token included.
	assert.Equal(t, lexer.EOF, tokens[len(tokens)-1].Type)
	assert.Equal(t, []lexer.Type{lexer.KwDef, lexer.Name, lexer.Equal, lexer.EOF},
		func() []lexer.Type {
			var types []lexer.Type
			for _, tok := range tokens {
				types = append(types, tok.Type)
			}
			return types
		}())
}

func TestUnexpectedCharacter(t *testing.T) {
	_, lexErr := lexer.Lex("def a = #;")
	require.NotNil(t, lexErr)
	assert.Equal(t, `unexpected character '#'`, lexErr.Msg)
	assert.Equal(t, 8, lexErr.Start)
}

func TestComments(t *testing.T) {
	tokens, lexErr := lexer.Lex("a // trailing comment\nb")
	require.Nil(t, lexErr)
	assert.Equal(t, []lexer.Token{
		{lexer.Name, 0, 1},
		{lexer.Name, 22, 23},
		{lexer.EOF, 23, 23},
	}, tokens)
}

func TestEmpty(t *testing.T) {
	tokens, lexErr := lexer.Lex("")
	require.Nil(t, lexErr)
	assert.Equal(t, []lexer.Token{{lexer.EOF, 0, 0}}, tokens)
}
