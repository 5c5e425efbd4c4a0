// Package parser turns bform source text into the syntax trees of
// package ast.  The parser is a hand-written precedence-climbing parser
// over the token stream of package lexer.  It never fails: syntax
// problems are reported as Messages and the tree carries BadItem and
// BadTerm placeholders where recovery happened.
package parser

import (
	"github.com/brimdata/bform/compiler/ast"
	"github.com/brimdata/bform/compiler/intern"
	"github.com/brimdata/bform/compiler/lexer"
)

type parser struct {
	src      string
	tokens   []lexer.Token
	pos      int
	table    *intern.Table
	messages []Message

	lexErr      *lexer.Error
	lexReported bool
}

func newParser(src string, table *intern.Table) *parser {
	tokens, lexErr := lexer.Lex(src)
	return &parser{src: src, tokens: tokens, table: table, lexErr: lexErr}
}

// A syntaxError marks the token the parse got stuck on.  It propagates
// up to one of the two recovery points, where it becomes a Message.
type syntaxError struct {
	tok      lexer.Token
	expected []string
}

func (e *syntaxError) Error() string { return "syntax error" }

func (p *parser) peek() lexer.Token { return p.tokens[p.pos] }

func (p *parser) peek2() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) at(t lexer.Type) bool { return p.peek().Type == t }

func (p *parser) next() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(t lexer.Type) (lexer.Token, error) {
	if p.at(t) {
		return p.next(), nil
	}
	return lexer.Token{}, p.unexpected(t.String())
}

func (p *parser) unexpected(expected ...string) error {
	return &syntaxError{p.peek(), expected}
}

func (p *parser) text(tok lexer.Token) string { return p.src[tok.Start:tok.End] }

func (p *parser) internTok(tok lexer.Token) intern.ID {
	return p.table.Intern(p.text(tok))
}

func tokLoc(tok lexer.Token) ast.Loc { return ast.NewLoc(tok.Start, tok.End) }

func span(a, b ast.Node) ast.Loc { return ast.NewLoc(a.Pos(), b.End()) }

// reportLexError surfaces the pending lexical error, once, at the point
// the parser first runs into the truncated end of the token stream.
func (p *parser) reportLexError() {
	if p.lexErr == nil || p.lexReported {
		return
	}
	p.lexReported = true
	p.messages = append(p.messages, Message{
		Kind: LexicalError,
		Msg:  p.lexErr.Msg,
		Loc:  ast.NewLoc(p.lexErr.Start, p.lexErr.End),
	})
}

// fromRecovery converts a syntax error into the message reported at a
// recovery point.
func (p *parser) fromRecovery(e *syntaxError) Message {
	if e.tok.Type == lexer.EOF {
		p.reportLexError()
		return Message{Kind: UnrecognizedEOF, Expected: e.expected, Loc: tokLoc(e.tok)}
	}
	return Message{Kind: UnexpectedToken, Expected: e.expected, Loc: tokLoc(e.tok)}
}

// pruneRecoveries drops recovery messages accumulated since from.  When
// an enclosing recovery point discards a partial subtree, the recovery
// messages tied to that subtree's placeholder nodes go with it, keeping
// placeholders and recovery messages one-to-one.
func (p *parser) pruneRecoveries(from int) {
	kept := p.messages[:from]
	for _, m := range p.messages[from:] {
		if !m.IsRecovery() {
			kept = append(kept, m)
		}
	}
	p.messages = kept
}

func (p *parser) parseModule() *ast.Module {
	var items []ast.Item
	for !p.at(lexer.EOF) {
		start := p.peek().Start
		msgStart := len(p.messages)
		item, err := p.parseItem()
		if err != nil {
			item = p.recoverItem(msgStart, start, err)
		}
		items = append(items, item)
	}
	p.reportLexError()
	return &ast.Module{Kind: "Module", Items: items, Loc: ast.NewLoc(0, p.peek().Start)}
}

// recoverItem is the item-level recovery point: it reports the error,
// skips ahead to the next ";" boundary, and stands in a BadItem for the
// skipped range.
func (p *parser) recoverItem(msgStart, start int, err error) ast.Item {
	serr := err.(*syntaxError)
	p.pruneRecoveries(msgStart)
	msg := p.fromRecovery(serr)
	p.messages = append(p.messages, msg)
	for !p.at(lexer.Semi) && !p.at(lexer.EOF) {
		p.next()
	}
	end := p.peek().Start
	if p.at(lexer.Semi) {
		end = p.next().End
	}
	return &ast.BadItem{Kind: "BadItem", Loc: ast.NewLoc(start, end)}
}

func (p *parser) parseItem() (ast.Item, error) {
	def, err := p.expect(lexer.KwDef)
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	var typ ast.Term
	if p.at(lexer.Colon) {
		p.next()
		if typ, err = p.parseLet(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Equal); err != nil {
		return nil, err
	}
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.Semi)
	if err != nil {
		return nil, err
	}
	return &ast.Def{
		Kind:   "Def",
		Name:   name,
		Params: params,
		Type:   typ,
		Expr:   expr,
		Loc:    ast.NewLoc(def.Start, semi.End),
	}, nil
}

func (p *parser) parseName() (*ast.ID, error) {
	tok, err := p.expect(lexer.Name)
	if err != nil {
		return nil, err
	}
	return &ast.ID{Name: p.internTok(tok), Loc: tokLoc(tok)}, nil
}

func (p *parser) atParamStart() bool {
	switch p.peek().Type {
	case lexer.At, lexer.LParen, lexer.Name, lexer.Underscore,
		lexer.StringLit, lexer.NumberLit, lexer.KwTrue, lexer.KwFalse:
		return true
	}
	return false
}

func (p *parser) parseParams() ([]ast.Param, error) {
	var params []ast.Param
	for p.atParamStart() {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// parseParam parses one parameter.  The parenthesized form requires a
// type annotation; the bare form cannot have one.
func (p *parser) parseParam() (ast.Param, error) {
	switch p.peek().Type {
	case lexer.LParen:
		lp := p.next()
		plicity := ast.Explicit
		if p.at(lexer.At) {
			p.next()
			plicity = ast.Implicit
		}
		pat, err := p.parsePattern()
		if err != nil {
			return ast.Param{}, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return ast.Param{}, err
		}
		typ, err := p.parseLet()
		if err != nil {
			return ast.Param{}, err
		}
		rp, err := p.expect(lexer.RParen)
		if err != nil {
			return ast.Param{}, err
		}
		return ast.Param{Plicity: plicity, Pattern: pat, Type: typ, Loc: ast.NewLoc(lp.Start, rp.End)}, nil
	case lexer.At:
		at := p.next()
		pat, err := p.parsePattern()
		if err != nil {
			return ast.Param{}, err
		}
		return ast.Param{Plicity: ast.Implicit, Pattern: pat, Loc: ast.NewLoc(at.Start, pat.End())}, nil
	}
	pat, err := p.parsePattern()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Plicity: ast.Explicit, Pattern: pat, Loc: ast.NewLoc(pat.Pos(), pat.End())}, nil
}

func (p *parser) parsePattern() (ast.Pattern, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.Name:
		p.next()
		return &ast.NamePattern{Kind: "NamePattern", Name: p.internTok(tok), Loc: tokLoc(tok)}, nil
	case lexer.Underscore:
		p.next()
		return &ast.PlaceholderPattern{Kind: "PlaceholderPattern", Loc: tokLoc(tok)}, nil
	case lexer.StringLit:
		p.next()
		return &ast.StringPattern{Kind: "StringPattern", Text: p.internString(tok), Loc: tokLoc(tok)}, nil
	case lexer.NumberLit:
		p.next()
		return &ast.NumberPattern{Kind: "NumberPattern", Text: p.internTok(tok), Loc: tokLoc(tok)}, nil
	case lexer.KwTrue, lexer.KwFalse:
		p.next()
		return &ast.BooleanPattern{Kind: "BooleanPattern", Value: tok.Type == lexer.KwTrue, Loc: tokLoc(tok)}, nil
	}
	return nil, p.unexpected("pattern")
}

// internString interns a string literal's contents, quotes stripped but
// escape sequences left as written.
func (p *parser) internString(tok lexer.Token) intern.ID {
	return p.table.Intern(p.src[tok.Start+1 : tok.End-1])
}

// parseTerm parses at the loosest level: a let-term optionally annotated
// with ": type".
func (p *parser) parseTerm() (ast.Term, error) {
	t, err := p.parseLet()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.Colon) {
		return t, nil
	}
	p.next()
	typ, err := p.parseLet()
	if err != nil {
		return nil, err
	}
	return &ast.Ann{Kind: "Ann", Expr: t, Type: typ, Loc: span(t, typ)}, nil
}

func (p *parser) parseLet() (ast.Term, error) {
	switch p.peek().Type {
	case lexer.KwLet:
		tok := p.next()
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		var typ ast.Term
		if p.at(lexer.Colon) {
			p.next()
			if typ, err = p.parseLet(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.Equal); err != nil {
			return nil, err
		}
		expr, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semi); err != nil {
			return nil, err
		}
		body, err := p.parseLet()
		if err != nil {
			return nil, err
		}
		return &ast.Let{
			Kind:    "Let",
			Pattern: pat,
			Type:    typ,
			Expr:    expr,
			Body:    body,
			Loc:     ast.NewLoc(tok.Start, body.End()),
		}, nil
	case lexer.KwIf:
		tok := p.next()
		cond, err := p.parseFun()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KwThen); err != nil {
			return nil, err
		}
		thn, err := p.parseLet()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KwElse); err != nil {
			return nil, err
		}
		els, err := p.parseLet()
		if err != nil {
			return nil, err
		}
		return &ast.If{
			Kind: "If",
			Cond: cond,
			Then: thn,
			Else: els,
			Loc:  ast.NewLoc(tok.Start, els.End()),
		}, nil
	}
	return p.parseFun()
}

func (p *parser) parseFun() (ast.Term, error) {
	switch p.peek().Type {
	case lexer.KwFun:
		tok := p.next()
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		if len(params) == 0 {
			return nil, p.unexpected("parameter")
		}
		switch p.peek().Type {
		case lexer.Arrow:
			p.next()
			body, err := p.parseFun()
			if err != nil {
				return nil, err
			}
			return &ast.FunType{Kind: "FunType", Params: params, Body: body, Loc: ast.NewLoc(tok.Start, body.End())}, nil
		case lexer.FatArrow:
			p.next()
			body, err := p.parseLet()
			if err != nil {
				return nil, err
			}
			return &ast.FunLiteral{Kind: "FunLiteral", Params: params, Body: body, Loc: ast.NewLoc(tok.Start, body.End())}, nil
		}
		return nil, p.unexpected("->", "=>")
	case lexer.At:
		tok := p.next()
		param, err := p.parseApp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Arrow); err != nil {
			return nil, err
		}
		body, err := p.parseFun()
		if err != nil {
			return nil, err
		}
		return &ast.Arrow{
			Kind:    "Arrow",
			Plicity: ast.Implicit,
			Param:   param,
			Body:    body,
			Loc:     ast.NewLoc(tok.Start, body.End()),
		}, nil
	}
	t, err := p.parseEq()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.Arrow) {
		return t, nil
	}
	// An arrow's left operand is application-level; a binary operator
	// expression to the left of "->" is a syntax error.
	if _, ok := t.(*ast.BinaryExpr); ok {
		return nil, p.unexpected()
	}
	p.next()
	body, err := p.parseFun()
	if err != nil {
		return nil, err
	}
	return &ast.Arrow{
		Kind:    "Arrow",
		Plicity: ast.Explicit,
		Param:   t,
		Body:    body,
		Loc:     span(t, body),
	}, nil
}

var (
	eqOps  = map[lexer.Type]string{lexer.EqualEqual: "==", lexer.BangEqual: "!="}
	cmpOps = map[lexer.Type]string{lexer.Less: "<", lexer.LessEqual: "<=", lexer.Greater: ">", lexer.GreaterEqual: ">="}
	addOps = map[lexer.Type]string{lexer.Plus: "+", lexer.Minus: "-"}
	mulOps = map[lexer.Type]string{lexer.Star: "*", lexer.Slash: "/"}
)

func (p *parser) parseEq() (ast.Term, error)  { return p.parseBinary(eqOps, p.parseCmp, p.parseEq) }
func (p *parser) parseCmp() (ast.Term, error) { return p.parseBinary(cmpOps, p.parseAdd, p.parseCmp) }
func (p *parser) parseAdd() (ast.Term, error) { return p.parseBinary(addOps, p.parseMul, p.parseAdd) }
func (p *parser) parseMul() (ast.Term, error) { return p.parseBinary(mulOps, p.parseApp, p.parseMul) }

// parseBinary parses one binary level.  The left operand comes from the
// tighter level and the right operand recurses at the same level, so
// every level associates to the right, "a - b - c" included.
func (p *parser) parseBinary(ops map[lexer.Type]string, tighter, same func() (ast.Term, error)) (ast.Term, error) {
	lhs, err := tighter()
	if err != nil {
		return nil, err
	}
	name, ok := ops[p.peek().Type]
	if !ok {
		return lhs, nil
	}
	tok := p.next()
	rhs, err := same()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{
		Kind: "BinaryExpr",
		Op:   ast.Op{Name: name, Loc: tokLoc(tok)},
		LHS:  lhs,
		RHS:  rhs,
		Loc:  span(lhs, rhs),
	}, nil
}

func (p *parser) atTermStart() bool {
	switch p.peek().Type {
	case lexer.LParen, lexer.LBracket, lexer.LBrace, lexer.Name, lexer.Underscore,
		lexer.Hole, lexer.KwType, lexer.KwMatch, lexer.KwOverlap,
		lexer.StringLit, lexer.NumberLit, lexer.KwTrue, lexer.KwFalse:
		return true
	}
	return false
}

func (p *parser) parseApp() (ast.Term, error) {
	head, err := p.parseProj()
	if err != nil {
		return nil, err
	}
	var args []ast.Arg
	for {
		if p.at(lexer.At) {
			at := p.next()
			t, err := p.parseProj()
			if err != nil {
				return nil, err
			}
			args = append(args, ast.Arg{Plicity: ast.Implicit, Term: t, Loc: ast.NewLoc(at.Start, t.End())})
			continue
		}
		if !p.atTermStart() {
			break
		}
		t, err := p.parseProj()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Arg{Plicity: ast.Explicit, Term: t, Loc: ast.NewLoc(t.Pos(), t.End())})
	}
	if len(args) == 0 {
		return head, nil
	}
	return &ast.App{Kind: "App", Term: head, Args: args, Loc: ast.NewLoc(head.Pos(), args[len(args)-1].End())}, nil
}

func (p *parser) parseProj() (ast.Term, error) {
	t, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.Dot) {
		return t, nil
	}
	var fields []*ast.ID
	for p.at(lexer.Dot) {
		p.next()
		id, err := p.parseName()
		if err != nil {
			return nil, err
		}
		fields = append(fields, id)
	}
	return &ast.Proj{Kind: "Proj", Term: t, Fields: fields, Loc: ast.NewLoc(t.Pos(), fields[len(fields)-1].End())}, nil
}

func (p *parser) parseAtomic() (ast.Term, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.Name:
		p.next()
		return &ast.Name{Kind: "Name", Name: p.internTok(tok), Loc: tokLoc(tok)}, nil
	case lexer.Underscore:
		p.next()
		return &ast.Placeholder{Kind: "Placeholder", Loc: tokLoc(tok)}, nil
	case lexer.Hole:
		p.next()
		return &ast.Hole{Kind: "Hole", Name: p.table.Intern(p.src[tok.Start+1 : tok.End]), Loc: tokLoc(tok)}, nil
	case lexer.KwType:
		p.next()
		return &ast.Universe{Kind: "Universe", Loc: tokLoc(tok)}, nil
	case lexer.StringLit:
		p.next()
		return &ast.StringLit{Kind: "StringLit", Text: p.internString(tok), Loc: tokLoc(tok)}, nil
	case lexer.NumberLit:
		p.next()
		return &ast.NumberLit{Kind: "NumberLit", Text: p.internTok(tok), Loc: tokLoc(tok)}, nil
	case lexer.KwTrue, lexer.KwFalse:
		p.next()
		return &ast.BooleanLit{Kind: "BooleanLit", Value: tok.Type == lexer.KwTrue, Loc: tokLoc(tok)}, nil
	case lexer.LParen:
		return p.parseParenOrTuple()
	case lexer.LBracket:
		return p.parseArray()
	case lexer.LBrace:
		return p.parseBrace()
	case lexer.KwMatch:
		return p.parseMatch()
	case lexer.KwOverlap:
		return p.parseOverlap()
	}
	return p.recoverAtomic()
}

// recoverAtomic is the atomic-term recovery point.  A stray token that
// neither begins a term nor belongs to the enclosing context is consumed
// and replaced by a BadTerm; tokens the enclosing context may want are
// left in place and the error propagates to the item level instead.
func (p *parser) recoverAtomic() (ast.Term, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.EOF, lexer.Semi, lexer.Comma, lexer.RParen, lexer.RBracket, lexer.RBrace,
		lexer.KwThen, lexer.KwElse, lexer.KwWhere, lexer.KwDef,
		lexer.Pipe, lexer.Equal, lexer.FatArrow, lexer.Arrow, lexer.Colon, lexer.BackArrow:
		return nil, p.unexpected("term")
	}
	p.next()
	p.messages = append(p.messages, p.fromRecovery(&syntaxError{tok, []string{"term"}}))
	return &ast.BadTerm{Kind: "BadTerm", Loc: tokLoc(tok)}, nil
}

func (p *parser) parseParenOrTuple() (ast.Term, error) {
	lp := p.next()
	if p.at(lexer.RParen) {
		rp := p.next()
		return &ast.Tuple{Kind: "Tuple", Elems: []ast.Term{}, Loc: ast.NewLoc(lp.Start, rp.End)}, nil
	}
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.RParen) {
		rp := p.next()
		return &ast.Paren{Kind: "Paren", Term: first, Loc: ast.NewLoc(lp.Start, rp.End)}, nil
	}
	elems := []ast.Term{first}
	for !p.at(lexer.RParen) {
		if _, err := p.expect(lexer.Comma); err != nil {
			return nil, err
		}
		if p.at(lexer.RParen) {
			break
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
	}
	rp := p.next()
	return &ast.Tuple{Kind: "Tuple", Elems: elems, Loc: ast.NewLoc(lp.Start, rp.End)}, nil
}

func (p *parser) parseArray() (ast.Term, error) {
	lb := p.next()
	elems := []ast.Term{}
	for !p.at(lexer.RBracket) {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
		if !p.at(lexer.Comma) {
			break
		}
		p.next()
	}
	rb, err := p.expect(lexer.RBracket)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Kind: "ArrayLiteral", Elems: elems, Loc: ast.NewLoc(lb.Start, rb.End)}, nil
}

func (p *parser) parseMatch() (ast.Term, error) {
	tok := p.next()
	scrut, err := p.parseProj()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	arms := []ast.MatchArm{}
	for !p.at(lexer.RBrace) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FatArrow); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.MatchArm{Pattern: pat, Expr: t, Loc: span(pat, t)})
		if !p.at(lexer.Comma) {
			break
		}
		p.next()
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.Match{Kind: "Match", Expr: scrut, Arms: arms, Loc: ast.NewLoc(tok.Start, rb.End)}, nil
}

func (p *parser) parseOverlap() (ast.Term, error) {
	tok := p.next()
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	fields, err := p.parseFormatFields(nil)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, p.unexpected("field")
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.FormatOverlap{Kind: "FormatOverlap", Fields: fields, Loc: ast.NewLoc(tok.Start, rb.End)}, nil
}

// parseBrace disambiguates the four brace-delimited productions by the
// shape of the first field: "label :" begins a record type, "label ="
// a record literal, "label <-" a format record or the single-field
// conditional form, and "let" a format record.  Bare "{}" is the empty
// tuple.
func (p *parser) parseBrace() (ast.Term, error) {
	lb := p.next()
	if p.at(lexer.RBrace) {
		rb := p.next()
		return &ast.Tuple{Kind: "Tuple", Elems: []ast.Term{}, Loc: ast.NewLoc(lb.Start, rb.End)}, nil
	}
	if p.at(lexer.KwLet) {
		fields, err := p.parseFormatFields(nil)
		if err != nil {
			return nil, err
		}
		rb, err := p.expect(lexer.RBrace)
		if err != nil {
			return nil, err
		}
		return &ast.FormatRecord{Kind: "FormatRecord", Fields: fields, Loc: ast.NewLoc(lb.Start, rb.End)}, nil
	}
	if !p.at(lexer.Name) {
		return nil, p.unexpected("label")
	}
	switch p.peek2().Type {
	case lexer.Colon:
		return p.parseRecordType(lb)
	case lexer.Equal:
		return p.parseRecordLiteral(lb)
	case lexer.BackArrow:
		return p.parseFormatOrCond(lb)
	}
	p.next()
	return nil, p.unexpected(":", "=", "<-")
}

func (p *parser) parseRecordType(lb lexer.Token) (ast.Term, error) {
	fields := []ast.TypeField{}
	for !p.at(lexer.RBrace) {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.TypeField{Name: name, Type: t, Loc: span(name, t)})
		if !p.at(lexer.Comma) {
			break
		}
		p.next()
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.RecordType{Kind: "RecordType", Fields: fields, Loc: ast.NewLoc(lb.Start, rb.End)}, nil
}

func (p *parser) parseRecordLiteral(lb lexer.Token) (ast.Term, error) {
	fields := []ast.ExprField{}
	for !p.at(lexer.RBrace) {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Equal); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.ExprField{Name: name, Expr: t, Loc: span(name, t)})
		if !p.at(lexer.Comma) {
			break
		}
		p.next()
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.RecordLiteral{Kind: "RecordLiteral", Fields: fields, Loc: ast.NewLoc(lb.Start, rb.End)}, nil
}

// parseFormatOrCond parses braces whose first field reads bytes through
// a format.  A "|" after the first field's format selects the
// single-field conditional form; anything else continues as a format
// record.
func (p *parser) parseFormatOrCond(lb lexer.Token) (ast.Term, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.BackArrow); err != nil {
		return nil, err
	}
	format, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.Pipe) {
		p.next()
		cond, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		rb, err := p.expect(lexer.RBrace)
		if err != nil {
			return nil, err
		}
		return &ast.FormatCond{
			Kind:   "FormatCond",
			Name:   name,
			Format: format,
			Cond:   cond,
			Loc:    ast.NewLoc(lb.Start, rb.End),
		}, nil
	}
	var pred ast.Term
	end := format.End()
	if p.at(lexer.KwWhere) {
		p.next()
		if pred, err = p.parseTerm(); err != nil {
			return nil, err
		}
		end = pred.End()
	}
	fields := []ast.FormatField{&ast.FieldFormat{
		Kind:   "FieldFormat",
		Name:   name,
		Format: format,
		Pred:   pred,
		Loc:    ast.NewLoc(name.Pos(), end),
	}}
	if p.at(lexer.Comma) {
		p.next()
		if fields, err = p.parseFormatFields(fields); err != nil {
			return nil, err
		}
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.FormatRecord{Kind: "FormatRecord", Fields: fields, Loc: ast.NewLoc(lb.Start, rb.End)}, nil
}

func (p *parser) parseFormatFields(fields []ast.FormatField) ([]ast.FormatField, error) {
	for !p.at(lexer.RBrace) {
		field, err := p.parseFormatField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if !p.at(lexer.Comma) {
			break
		}
		p.next()
	}
	return fields, nil
}

func (p *parser) parseFormatField() (ast.FormatField, error) {
	if p.at(lexer.KwLet) {
		tok := p.next()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		var typ ast.Term
		if p.at(lexer.Colon) {
			p.next()
			if typ, err = p.parseLet(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.Equal); err != nil {
			return nil, err
		}
		expr, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &ast.FieldComputed{
			Kind: "FieldComputed",
			Name: name,
			Type: typ,
			Expr: expr,
			Loc:  ast.NewLoc(tok.Start, expr.End()),
		}, nil
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.BackArrow); err != nil {
		return nil, err
	}
	format, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	var pred ast.Term
	end := format.End()
	if p.at(lexer.KwWhere) {
		p.next()
		if pred, err = p.parseTerm(); err != nil {
			return nil, err
		}
		end = pred.End()
	}
	return &ast.FieldFormat{
		Kind:   "FieldFormat",
		Name:   name,
		Format: format,
		Pred:   pred,
		Loc:    ast.NewLoc(name.Pos(), end),
	}, nil
}
