// Package ast declares the types used to represent syntax trees for bform
// modules.
package ast

// This module is derived from the GO AST design pattern in
// https://golang.org/pkg/go/ast/
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import "github.com/brimdata/bform/compiler/intern"

type Node interface {
	Pos() int // Position of first character belonging to the node.
	End() int // Position of first character immediately after the node.
}

// Loc is a half-open byte range [First, Last) into the source text of
// one module.  First == Last describes an empty range.
type Loc struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

func NewLoc(pos, end int) Loc {
	return Loc{pos, end}
}

func (l Loc) Pos() int { return l.First }
func (l Loc) End() int { return l.Last }

// ID is a name occurrence carrying its source range.  The name itself
// lives in the parse's intern table.
type ID struct {
	Name intern.ID `json:"name"`
	Loc  `json:"loc"`
}

// Plicity says whether a parameter or argument is syntactically required
// or elided and solved later.
type Plicity int

const (
	Explicit Plicity = iota
	Implicit
)

func (p Plicity) String() string {
	if p == Implicit {
		return "implicit"
	}
	return "explicit"
}

func (p Plicity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// A Module is the root of the tree: the items of one source file in
// source order.
type Module struct {
	Kind  string `json:"kind"`
	Items []Item `json:"items"`
	Loc   `json:"loc"`
}

// Item is the interface implemented by all top-level items.
type Item interface {
	Node
	itemNode()
}

type (
	// A Def is a top-level definition
	// "def name params (: type)? = expr ;".
	Def struct {
		Kind   string  `json:"kind"`
		Name   *ID     `json:"name"`
		Params []Param `json:"params"`
		Type   Term    `json:"type"` // nil when unannotated
		Expr   Term    `json:"expr"`
		Loc    `json:"loc"`
	}
	// A BadItem is a placeholder for an item that could not be parsed.
	// Each one pairs with a recovery message in the parse's diagnostics.
	BadItem struct {
		Kind string `json:"kind"`
		Loc  `json:"loc"`
	}
)

func (*Def) itemNode()     {}
func (*BadItem) itemNode() {}

// A Param is one function or definition parameter.  The type annotation
// is present exactly when the parameter was parenthesized.
type Param struct {
	Plicity Plicity `json:"plicity"`
	Pattern Pattern `json:"pattern"`
	Type    Term    `json:"type"` // nil unless parenthesized
	Loc     `json:"loc"`
}

// An Arg is one application argument, implicit when written "@e".
type Arg struct {
	Plicity Plicity `json:"plicity"`
	Term    Term    `json:"term"`
	Loc     `json:"loc"`
}
