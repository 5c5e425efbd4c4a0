// Package charm is a minimalist CLI framework inspired by cobra and urfave/cli.
package charm

import (
	"errors"
	"flag"
)

var (
	NeedHelp = errors.New("help")
	ErrNoRun = errors.New("no run method")
)

type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help.
	Hidden   bool
	children []*Spec
	parent   *Spec
}

func (s *Spec) Add(child *Spec) {
	s.children = append(s.children, child)
	child.parent = s
}

func (s *Spec) lookupSub(name string) *Spec {
	for _, child := range s.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// Exec runs the command named by args, walking the Spec tree from s down
// one subcommand per leading argument and constructing the command chain
// along the way.  A command that returns NeedHelp, or a -h flag, prints
// help for the deepest spec reached.
func (s *Spec) Exec(args []string) error {
	err := s.exec(nil, args)
	var help *helpError
	if errors.As(err, &help) {
		displayHelp(help.spec)
		return nil
	}
	return err
}

func (s *Spec) exec(parent Command, args []string) error {
	fs := flag.NewFlagSet(s.Name, flag.ContinueOnError)
	fs.Usage = func() {}
	cmd, err := s.New(parent, fs)
	if err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &helpError{s}
		}
		return err
	}
	rest := fs.Args()
	if len(rest) > 0 {
		if rest[0] == "help" {
			if len(rest) > 1 {
				if child := s.lookupSub(rest[1]); child != nil {
					return &helpError{child}
				}
			}
			return &helpError{s}
		}
		if child := s.lookupSub(rest[0]); child != nil {
			return child.exec(cmd, rest[1:])
		}
	}
	if cmd == nil {
		return ErrNoRun
	}
	if err := cmd.Run(rest); err != nil {
		if errors.Is(err, NeedHelp) {
			return &helpError{s}
		}
		return err
	}
	return nil
}

type helpError struct {
	spec *Spec
}

func (h *helpError) Error() string { return "help" }
