// Released under an MIT license. See LICENSE.

// Package engine evaluates command lines.
package engine

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kstigelman/shell/internal/reader/lexer"
	"github.com/kstigelman/shell/internal/system/job"
)

// T (engine) dispatches command lines: built-ins run in place,
// everything else is launched as a job.
type T struct{}

// New creates a new T.
func New() *T {
	return &T{}
}

// Evaluate runs one command line to completion. For a foreground job
// that includes waiting for the job to stop or terminate.
func (e *T) Evaluate(line string) {
	argv, background := lexer.Split(line)
	if len(argv) == 0 {
		return
	}

	if e.builtin(argv) {
		return
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		fmt.Printf("%s: Command not found\n", argv[0])

		return
	}

	err = job.Launch(path, argv, background, line)
	if err != nil {
		fmt.Printf("fork error (%s) -- exiting\n", err)
		os.Exit(1)
	}

	if !background {
		job.Wait()
	}
}

// builtin intercepts command names the shell handles itself. The
// "fg" builtin resumes whatever is suspended, if anything, and then
// waits; with nothing suspended it is a harmless no-op.
func (e *T) builtin(argv []string) bool {
	switch argv[0] {
	case "quit":
		os.Exit(0)

	case "fg":
		job.Resume()
		job.Wait()

		return true
	}

	return false
}
