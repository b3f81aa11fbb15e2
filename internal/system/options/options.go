// Package options processes tsh's command line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	prompt      = "tsh> "
	usage       = `tsh - a tiny shell with job control.

Usage:
  tsh [-p PROMPT]
  tsh -c COMMAND
  tsh -h
  tsh -v

Options:
  -c, --command=COMMAND  Evaluate COMMAND and exit.
  -p, --prompt=PROMPT    Use PROMPT instead of the default prompt.
  -h, --help             Display this help.
  -v, --version          Print tsh version.

If tsh's stdin is a TTY, command lines are read with line editing,
history, and command completion. Otherwise lines are read from stdin
exactly as written.
`
	version = "tsh 1.0.0"
)

// Command returns the command supplied with -c, if any.
func Command() string {
	return command
}

// Interactive reports whether the shell is talking to a terminal.
func Interactive() bool {
	return interactive
}

// Parse processes the command line arguments.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")

	if p, _ := opts.String("--prompt"); p != "" {
		prompt = p
	}

	interactive = command == "" && isatty.IsTerminal(os.Stdin.Fd())
}

// Prompt returns the string printed before each read.
func Prompt() string {
	return prompt
}
