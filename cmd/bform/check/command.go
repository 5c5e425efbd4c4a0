package check

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/bform/cmd/bform/root"
	"github.com/brimdata/bform/compiler/intern"
	"github.com/brimdata/bform/compiler/parser"
	"github.com/brimdata/bform/compiler/srcfiles"
	"github.com/brimdata/bform/pkg/charm"
	"go.uber.org/zap"
)

var spec = &charm.Spec{
	Name:  "check",
	Usage: "check [options] file ...",
	Short: "parse bform modules and report syntax diagnostics",
	Long: `
The check command parses each file as a bform module and prints every
syntax diagnostic with its file, line, and column, quoting the offending
source line.  Parsing always runs to the end of each file: a broken
definition is skipped to its closing ";" and the rest of the module is
still checked.

All files share one intern table, the way a multi-module compilation
would load them.  The exit status is nonzero if any diagnostics were
produced.
`,
	New: New,
}

func init() {
	root.Bform.Add(spec)
}

type Command struct {
	*root.Command
	quiet bool
	debug bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.quiet, "q", false, "don't print diagnostics, just set the exit status")
	f.BoolVar(&c.debug, "debug", false, "log per-file parse statistics")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return charm.NeedHelp
	}
	logger := zap.NewNop()
	if c.debug {
		logger = zap.Must(zap.NewDevelopment())
	}
	defer logger.Sync()
	table := intern.NewTable()
	var failed bool
	for _, path := range args {
		bb, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src := string(bb)
		a := parser.ParseModuleWith(src, table)
		logger.Debug("parsed",
			zap.String("file", path),
			zap.Int("items", len(a.Module().Items)),
			zap.Int("messages", len(a.Messages())),
			zap.Int("interned", table.Len()))
		if a.Ok() {
			continue
		}
		failed = true
		if c.quiet {
			continue
		}
		file := srcfiles.NewFile(path, src)
		for _, m := range a.Messages() {
			fmt.Fprintln(os.Stderr, srcfiles.FormatError(file, m.String(), m.Pos(), m.End()))
		}
	}
	if failed {
		return errors.New("syntax errors found")
	}
	return nil
}
