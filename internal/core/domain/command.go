package domain

import "strings"

// CommandSpec describes a single external program invocation: a program
// name, its arguments in order, and an optional working directory. Specs are
// value types, constructed fresh per invocation and never shared.
type CommandSpec struct {
	Program string
	Args    []string
	Dir     string
}

// NewCommand constructs a CommandSpec running program with args in the
// process's current directory.
func NewCommand(program string, args ...string) CommandSpec {
	return CommandSpec{Program: program, Args: args}
}

// InDir returns a copy of the spec with the working directory set.
func (c CommandSpec) InDir(dir string) CommandSpec {
	c.Dir = dir
	return c
}

// String returns the full invocation text, program followed by arguments,
// as it would appear on a shell command line.
func (c CommandSpec) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}
