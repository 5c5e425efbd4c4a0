package ast

import "github.com/brimdata/bform/compiler/intern"

// Term is the interface implemented by all term nodes.
type Term interface {
	Node
	termNode()
}

type (
	// A Name is an identifier reference.
	Name struct {
		Kind string    `json:"kind"`
		Name intern.ID `json:"name"`
		Loc  `json:"loc"`
	}
	// A Hole is a named metavariable "?x" to be solved by elaboration.
	Hole struct {
		Kind string    `json:"kind"`
		Name intern.ID `json:"name"`
		Loc  `json:"loc"`
	}
	// A Placeholder is the anonymous metavariable "_".
	Placeholder struct {
		Kind string `json:"kind"`
		Loc  `json:"loc"`
	}
	// Universe is the type of types, written "Type".
	Universe struct {
		Kind string `json:"kind"`
		Loc  `json:"loc"`
	}
	// A StringLit carries the literal's contents with escape sequences
	// uninterpreted; elaboration decodes them.
	StringLit struct {
		Kind string    `json:"kind"`
		Text intern.ID `json:"text"`
		Loc  `json:"loc"`
	}
	// A NumberLit carries the literal's spelling; it is not converted
	// to a number at this stage.
	NumberLit struct {
		Kind string    `json:"kind"`
		Text intern.ID `json:"text"`
		Loc  `json:"loc"`
	}
	BooleanLit struct {
		Kind  string `json:"kind"`
		Value bool   `json:"value"`
		Loc   `json:"loc"`
	}
	// A Paren is an explicitly grouped term "(e)", preserved so the
	// source can be reconstructed.
	Paren struct {
		Kind string `json:"kind"`
		Term Term   `json:"term"`
		Loc  `json:"loc"`
	}
	// A Tuple is "()", "(e,)", or "(e1, ..., en)" with n >= 2.  The
	// one-element unannotated form "(e)" is a Paren, never a Tuple.
	Tuple struct {
		Kind  string `json:"kind"`
		Elems []Term `json:"elems"`
		Loc   `json:"loc"`
	}
	ArrayLiteral struct {
		Kind  string `json:"kind"`
		Elems []Term `json:"elems"`
		Loc   `json:"loc"`
	}
	// An Ann is an annotated term "e : t".
	Ann struct {
		Kind string `json:"kind"`
		Expr Term   `json:"expr"`
		Type Term   `json:"type"`
		Loc  `json:"loc"`
	}
	// A Let is "let p (: t)? = e; body".
	Let struct {
		Kind    string  `json:"kind"`
		Pattern Pattern `json:"pattern"`
		Type    Term    `json:"type"` // nil when unannotated
		Expr    Term    `json:"expr"`
		Body    Term    `json:"body"`
		Loc     `json:"loc"`
	}
	If struct {
		Kind string `json:"kind"`
		Cond Term   `json:"cond"`
		Then Term   `json:"then"`
		Else Term   `json:"else"`
		Loc  `json:"loc"`
	}
	// An Arrow is a non-dependent function type "A -> B", implicit when
	// written "@A -> B".
	Arrow struct {
		Kind    string  `json:"kind"`
		Plicity Plicity `json:"plicity"`
		Param   Term    `json:"param"`
		Body    Term    `json:"body"`
		Loc     `json:"loc"`
	}
	// A FunType is a dependent function type "fun p1 ... pn -> t" with
	// at least one parameter.
	FunType struct {
		Kind   string  `json:"kind"`
		Params []Param `json:"params"`
		Body   Term    `json:"body"`
		Loc    `json:"loc"`
	}
	// A FunLiteral is "fun p1 ... pn => e" with at least one parameter.
	FunLiteral struct {
		Kind   string  `json:"kind"`
		Params []Param `json:"params"`
		Body   Term    `json:"body"`
		Loc    `json:"loc"`
	}
	// An App applies a head term to one or more arguments.
	App struct {
		Kind string `json:"kind"`
		Term Term   `json:"term"`
		Args []Arg  `json:"args"`
		Loc  `json:"loc"`
	}
	// A Proj is a field projection chain "e.f1.f2..." with at least
	// one field.
	Proj struct {
		Kind   string `json:"kind"`
		Term   Term   `json:"term"`
		Fields []*ID  `json:"fields"`
		Loc    `json:"loc"`
	}
	Match struct {
		Kind string     `json:"kind"`
		Expr Term       `json:"expr"`
		Arms []MatchArm `json:"arms"`
		Loc  `json:"loc"`
	}
	// A RecordType is "{ x : A, y : B }".
	RecordType struct {
		Kind   string      `json:"kind"`
		Fields []TypeField `json:"fields"`
		Loc    `json:"loc"`
	}
	// A RecordLiteral is "{ x = a, y = b }".
	RecordLiteral struct {
		Kind   string      `json:"kind"`
		Fields []ExprField `json:"fields"`
		Loc    `json:"loc"`
	}
	// A FormatRecord is "{ x <- fmt, ... }": each field's value is
	// obtained by interpreting bytes via a format.
	FormatRecord struct {
		Kind   string        `json:"kind"`
		Fields []FormatField `json:"fields"`
		Loc    `json:"loc"`
	}
	// A FormatCond is the single-field conditional format
	// "{ name <- fmt | cond }".
	FormatCond struct {
		Kind   string `json:"kind"`
		Name   *ID    `json:"name"`
		Format Term   `json:"format"`
		Cond   Term   `json:"cond"`
		Loc    `json:"loc"`
	}
	// A FormatOverlap is "overlap { ... }": fields sharing the same
	// byte region.
	FormatOverlap struct {
		Kind   string        `json:"kind"`
		Fields []FormatField `json:"fields"`
		Loc    `json:"loc"`
	}
	// A BinaryExpr is any expression of the form "lhs op rhs" for the
	// arithmetic operators (+, -, *, /) and the comparisons
	// (==, !=, <, <=, >, >=).  All binary levels parse right-associated.
	BinaryExpr struct {
		Kind string `json:"kind"`
		Op   Op     `json:"op"`
		LHS  Term   `json:"lhs"`
		RHS  Term   `json:"rhs"`
		Loc  `json:"loc"`
	}
	// A BadTerm is a placeholder for a term that could not be parsed.
	// Each one pairs with a recovery message in the parse's diagnostics.
	BadTerm struct {
		Kind string `json:"kind"`
		Loc  `json:"loc"`
	}
)

// An Op is a binary operator occurrence carrying its source range.
type Op struct {
	Name string `json:"name"`
	Loc  `json:"loc"`
}

// A MatchArm is one "pattern => expr" arm of a match term.
type MatchArm struct {
	Pattern Pattern `json:"pattern"`
	Expr    Term    `json:"expr"`
	Loc     `json:"loc"`
}

// A TypeField is one "label : type" field of a record type.
type TypeField struct {
	Name *ID  `json:"name"`
	Type Term `json:"type"`
	Loc  `json:"loc"`
}

// An ExprField is one "label = expr" field of a record literal.
type ExprField struct {
	Name *ID  `json:"name"`
	Expr Term `json:"expr"`
	Loc  `json:"loc"`
}

// FormatField is the interface implemented by the fields of format and
// overlap records.
type FormatField interface {
	Node
	formatFieldNode()
}

type (
	// A FieldFormat is "label <- format", optionally constrained by a
	// "where" predicate.
	FieldFormat struct {
		Kind   string `json:"kind"`
		Name   *ID    `json:"name"`
		Format Term   `json:"format"`
		Pred   Term   `json:"pred"` // nil without a where clause
		Loc    `json:"loc"`
	}
	// A FieldComputed is "let label (: type)? = expr": a field computed
	// from earlier fields rather than read from bytes.
	FieldComputed struct {
		Kind string `json:"kind"`
		Name *ID    `json:"name"`
		Type Term   `json:"type"` // nil when unannotated
		Expr Term   `json:"expr"`
		Loc  `json:"loc"`
	}
)

func (*FieldFormat) formatFieldNode()   {}
func (*FieldComputed) formatFieldNode() {}

func (*Name) termNode()          {}
func (*Hole) termNode()          {}
func (*Placeholder) termNode()   {}
func (*Universe) termNode()      {}
func (*StringLit) termNode()     {}
func (*NumberLit) termNode()     {}
func (*BooleanLit) termNode()    {}
func (*Paren) termNode()         {}
func (*Tuple) termNode()         {}
func (*ArrayLiteral) termNode()  {}
func (*Ann) termNode()           {}
func (*Let) termNode()           {}
func (*If) termNode()            {}
func (*Arrow) termNode()         {}
func (*FunType) termNode()       {}
func (*FunLiteral) termNode()    {}
func (*App) termNode()           {}
func (*Proj) termNode()          {}
func (*Match) termNode()         {}
func (*RecordType) termNode()    {}
func (*RecordLiteral) termNode() {}
func (*FormatRecord) termNode()  {}
func (*FormatCond) termNode()    {}
func (*FormatOverlap) termNode() {}
func (*BinaryExpr) termNode()    {}
func (*BadTerm) termNode()       {}
