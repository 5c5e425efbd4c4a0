package ast

import "github.com/brimdata/bform/compiler/intern"

// Pattern is the interface implemented by all pattern nodes, which appear
// in let bindings, parameters, and match arms.
type Pattern interface {
	Node
	patternNode()
}

type (
	NamePattern struct {
		Kind string    `json:"kind"`
		Name intern.ID `json:"name"`
		Loc  `json:"loc"`
	}
	// PlaceholderPattern is the "_" pattern.
	PlaceholderPattern struct {
		Kind string `json:"kind"`
		Loc  `json:"loc"`
	}
	StringPattern struct {
		Kind string    `json:"kind"`
		Text intern.ID `json:"text"`
		Loc  `json:"loc"`
	}
	NumberPattern struct {
		Kind string    `json:"kind"`
		Text intern.ID `json:"text"`
		Loc  `json:"loc"`
	}
	BooleanPattern struct {
		Kind  string `json:"kind"`
		Value bool   `json:"value"`
		Loc   `json:"loc"`
	}
)

func (*NamePattern) patternNode()        {}
func (*PlaceholderPattern) patternNode() {}
func (*StringPattern) patternNode()      {}
func (*NumberPattern) patternNode()      {}
func (*BooleanPattern) patternNode()     {}
