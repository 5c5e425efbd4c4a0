package parser

import (
	"strings"

	"github.com/brimdata/bform/compiler/ast"
)

// MessageKind classifies a parse diagnostic.
type MessageKind int

const (
	// LexicalError reports a malformed token; the token stream ends at it.
	LexicalError MessageKind = iota
	// UnexpectedToken reports a token with no place in the grammar,
	// recovered by a placeholder node.
	UnexpectedToken
	// UnrecognizedEOF reports that the tokens ended while more were
	// expected, recovered by a placeholder node.
	UnrecognizedEOF
	// ExtraToken reports tokens remaining after a complete term.
	ExtraToken
)

func (k MessageKind) String() string {
	switch k {
	case LexicalError:
		return "LexicalError"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnrecognizedEOF:
		return "UnrecognizedEOF"
	}
	return "ExtraToken"
}

func (k MessageKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// A Message is one parse diagnostic.  Messages accumulate in the order
// the parser produced them.
type Message struct {
	Kind     MessageKind `json:"kind"`
	Msg      string      `json:"msg,omitempty"`      // LexicalError detail
	Expected []string    `json:"expected,omitempty"` // what the parser could have shifted
	ast.Loc  `json:"loc"`
}

// IsRecovery reports whether the message was produced at a recovery
// point and so pairs with a BadItem or BadTerm node in the tree.
func (m Message) IsRecovery() bool {
	return m.Kind == UnexpectedToken || m.Kind == UnrecognizedEOF
}

func (m Message) String() string {
	var b strings.Builder
	switch m.Kind {
	case LexicalError:
		b.WriteString(m.Msg)
	case UnexpectedToken:
		b.WriteString("unexpected token")
	case UnrecognizedEOF:
		b.WriteString("unexpected end of file")
	case ExtraToken:
		b.WriteString("extra token after end of term")
	}
	if len(m.Expected) > 0 {
		b.WriteString("; expected ")
		for i, e := range m.Expected {
			if i > 0 {
				if i == len(m.Expected)-1 {
					b.WriteString(" or ")
				} else {
					b.WriteString(", ")
				}
			}
			b.WriteString("`" + e + "`")
		}
	}
	return b.String()
}
