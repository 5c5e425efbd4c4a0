package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/bform/cmd/bform/astcmd"
	_ "github.com/brimdata/bform/cmd/bform/check"
	_ "github.com/brimdata/bform/cmd/bform/repl"
	"github.com/brimdata/bform/cmd/bform/root"
)

func main() {
	if err := root.Bform.Exec(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bform: %s\n", err)
		os.Exit(1)
	}
}
