/*
Tsh is a tiny Unix shell with job control.

Tsh reads one command line at a time and runs each command in its own
process group. The following all behave as expected:

    date
    /bin/echo hi
    sleep 100 &
    ctrl-c
    ctrl-z
    fg
    quit

At most one foreground and one suspended job are tracked. Typing
ctrl-c or ctrl-z interrupts or suspends the whole foreground process
group, "fg" resumes whatever is suspended, and "quit" (or end of
input) exits the shell.

Tsh is released under an MIT-style license.
*/
package main

import (
	"os"

	"github.com/kstigelman/shell/internal/engine"
	"github.com/kstigelman/shell/internal/system/cache"
	"github.com/kstigelman/shell/internal/system/job"
	"github.com/kstigelman/shell/internal/system/options"
	"github.com/kstigelman/shell/internal/system/process"
	"github.com/kstigelman/shell/internal/ui"
)

func main() {
	process.CombineOutput()

	options.Parse()

	job.Monitor()

	e := engine.New()

	if command := options.Command(); command != "" {
		e.Evaluate(command)

		return
	}

	if options.Interactive() {
		cache.Populate(os.Getenv("PATH"))
	}

	ui.Run(e)
}
