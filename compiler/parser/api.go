package parser

import (
	"github.com/brimdata/bform/compiler/ast"
	"github.com/brimdata/bform/compiler/intern"
	"github.com/brimdata/bform/compiler/lexer"
)

// AST is the result of one parse: the tree, the intern table its names
// and literals reference, and the diagnostics produced along the way.
// The tree is immutable after the parse returns and may be read
// concurrently as long as the intern table is no longer being written.
type AST struct {
	module   *ast.Module
	term     ast.Term
	table    *intern.Table
	messages []Message
}

// Module returns the parsed module, or nil for a term parse.
func (a *AST) Module() *ast.Module { return a.module }

// Term returns the parsed term, or nil for a module parse.
func (a *AST) Term() ast.Term { return a.term }

func (a *AST) Interner() *intern.Table { return a.table }

func (a *AST) Messages() []Message { return a.messages }

// Ok reports whether the parse produced no diagnostics.  Downstream
// phases gate on it before elaborating.
func (a *AST) Ok() bool { return len(a.messages) == 0 }

// ParseModule parses the source text of one module.  It always returns
// a module: syntax problems surface as Messages and as BadItem or
// BadTerm placeholders in the tree, never as a failed parse.
func ParseModule(src string) *AST {
	return ParseModuleWith(src, intern.NewTable())
}

// ParseModuleWith parses with a caller-supplied intern table so string
// handles stay comparable across the modules of one compilation.  The
// caller must serialize access to the table across parses.
func ParseModuleWith(src string, table *intern.Table) *AST {
	p := newParser(src, table)
	module := p.parseModule()
	return &AST{module: module, table: table, messages: p.messages}
}

// ParseTerm parses a single term, the plumbing used by the REPL and
// tests.  Like ParseModule it always returns a term.
func ParseTerm(src string) *AST {
	return ParseTermWith(src, intern.NewTable())
}

func ParseTermWith(src string, table *intern.Table) *AST {
	p := newParser(src, table)
	term := p.parseTermEntry()
	return &AST{term: term, table: table, messages: p.messages}
}

func (p *parser) parseTermEntry() ast.Term {
	start := p.peek().Start
	msgStart := len(p.messages)
	t, err := p.parseTerm()
	if err != nil {
		serr := err.(*syntaxError)
		p.pruneRecoveries(msgStart)
		p.messages = append(p.messages, p.fromRecovery(serr))
		for !p.at(lexer.EOF) {
			p.next()
		}
		t = &ast.BadTerm{Kind: "BadTerm", Loc: ast.NewLoc(start, p.peek().Start)}
	} else if !p.at(lexer.EOF) {
		p.messages = append(p.messages, Message{Kind: ExtraToken, Loc: tokLoc(p.peek())})
	}
	p.reportLexError()
	return t
}
