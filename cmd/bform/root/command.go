package root

import (
	"flag"

	"github.com/brimdata/bform/pkg/charm"
)

var Bform = &charm.Spec{
	Name:  "bform",
	Usage: "bform <command> [options]",
	Short: "work with bform binary format definitions",
	Long: `
The "bform" command works with modules of the bform data-description
language, which declares the layout of binary file formats as records,
unions, arrays, and conditional formats over raw bytes.

This tool covers the surface syntax: it parses modules, reports syntax
diagnostics with source positions, and shows the resulting abstract
syntax tree.  Elaboration and binary decoding live downstream of the
trees produced here.
`,
	New: New,
}

type Command struct{}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	return &Command{}, nil
}

func (c *Command) Run(args []string) error {
	return charm.NeedHelp
}
