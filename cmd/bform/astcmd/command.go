package astcmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/bform/cmd/bform/root"
	"github.com/brimdata/bform/compiler/parser"
	"github.com/brimdata/bform/compiler/srcfiles"
	"github.com/brimdata/bform/pkg/charm"
)

var spec = &charm.Spec{
	Name:  "ast",
	Usage: "ast [ -c source ] [ file ]",
	Short: "parse a module and print its syntax tree as JSON",
	Long: `
The ast command parses a module given with -c or read from a file and
prints the resulting abstract syntax tree as JSON.  Identifier and
literal fields hold intern-table handles, so two equal names show the
same number.

This is mostly useful for dev and test, and for seeing exactly how a
piece of surface syntax is shaped, such as which of the brace forms a
"{ ... }" resolved to.
`,
	New: New,
}

func init() {
	root.Bform.Add(spec)
}

type Command struct {
	*root.Command
	source string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.source, "c", "", "module source text")
	return c, nil
}

func (c *Command) Run(args []string) error {
	var name, src string
	switch {
	case c.source != "":
		if len(args) != 0 {
			return errors.New("provide either -c or a file, not both")
		}
		src = c.source
	case len(args) == 1:
		bb, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		name, src = args[0], string(bb)
	default:
		return charm.NeedHelp
	}
	a := parser.ParseModule(src)
	if !a.Ok() {
		file := srcfiles.NewFile(name, src)
		for _, m := range a.Messages() {
			fmt.Fprintln(os.Stderr, srcfiles.FormatError(file, m.String(), m.Pos(), m.End()))
		}
	}
	bb, err := json.MarshalIndent(a.Module(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bb))
	if !a.Ok() {
		return errors.New("syntax errors found")
	}
	return nil
}
