package charm

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func displayHelp(s *Spec) {
	fmt.Printf("usage: %s\n", s.Usage)
	if s.Short != "" {
		fmt.Printf("\n%s\n", s.Short)
	}
	if long := strings.TrimSpace(s.Long); long != "" {
		fmt.Printf("\n%s\n", long)
	}
	if fs := specFlags(s); fs != nil {
		fmt.Printf("\noptions:\n")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
	}
	var visible []*Spec
	for _, child := range s.children {
		if !child.Hidden {
			visible = append(visible, child)
		}
	}
	if len(visible) > 0 {
		fmt.Printf("\ncommands:\n")
		for _, child := range visible {
			fmt.Printf("  %s - %s\n", child.Name, child.Short)
		}
	}
}

// specFlags registers s's flags into a throwaway FlagSet so help can
// list them.  The constructed command is discarded.
func specFlags(s *Spec) *flag.FlagSet {
	fs := flag.NewFlagSet(s.Name, flag.ContinueOnError)
	var parent Command
	for _, spec := range specPath(s) {
		cmd, err := spec.New(parent, fs)
		if err != nil {
			return nil
		}
		parent = cmd
	}
	var n int
	fs.VisitAll(func(*flag.Flag) { n++ })
	if n == 0 {
		return nil
	}
	return fs
}

func specPath(s *Spec) []*Spec {
	var path []*Spec
	for ; s != nil; s = s.parent {
		path = append([]*Spec{s}, path...)
	}
	return path
}
