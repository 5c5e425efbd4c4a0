package repl

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/brimdata/bform/cmd/bform/root"
	"github.com/brimdata/bform/compiler/intern"
	"github.com/brimdata/bform/compiler/parser"
	"github.com/brimdata/bform/compiler/srcfiles"
	"github.com/brimdata/bform/pkg/charm"
	"github.com/peterh/liner"
)

var spec = &charm.Spec{
	Name:  "repl",
	Usage: "repl",
	Short: "read terms interactively and print their syntax trees",
	Long: `
The repl reads one term per line and prints either its abstract syntax
tree as JSON or its diagnostics.  All lines share one intern table, so
a name keeps its handle across entries.  History is kept in ~/.bform_history.
`,
	New: New,
}

func init() {
	root.Bform.Add(spec)
}

type Command struct {
	*root.Command
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	return &Command{Command: parent.(*root.Command)}, nil
}

func (c *Command) Run(args []string) error {
	if len(args) != 0 {
		return charm.NeedHelp
	}
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)
	history := historyPath()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			rl.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(history); err == nil {
				rl.WriteHistory(f)
				f.Close()
			}
		}()
	}
	table := intern.NewTable()
	for {
		line, err := rl.Prompt("bform> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}
		rl.AppendHistory(line)
		a := parser.ParseTermWith(line, table)
		if !a.Ok() {
			file := srcfiles.NewFile("", line)
			for _, m := range a.Messages() {
				fmt.Println(srcfiles.FormatError(file, m.String(), m.Pos(), m.End()))
			}
			continue
		}
		bb, err := json.MarshalIndent(a.Term(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(bb))
	}
}

func historyPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ".bform_history")
}
