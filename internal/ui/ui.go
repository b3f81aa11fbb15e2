// Released under an MIT license. See LICENSE.

// Package ui provides the shell's read-eval loop.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kstigelman/shell/internal/system/cache"
	"github.com/kstigelman/shell/internal/system/history"
	"github.com/kstigelman/shell/internal/system/options"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process command lines.
type Evaluator interface {
	Evaluate(line string)
}

// Run reads command lines and hands them to the Evaluator until end
// of input. The prompt is printed before every read.
func Run(e Evaluator) {
	if options.Interactive() {
		interactive(e)
	} else {
		batch(e)
	}
}

func batch(e Evaluator) {
	s := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(options.Prompt())

		if !s.Scan() {
			return
		}

		e.Evaluate(s.Text())
	}
}

func interactive(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	cli.SetCompleter(func(line string) []string {
		if strings.ContainsAny(line, " \t") {
			return nil
		}

		return cache.Executables(line)
	})

	_ = history.Load(cli.ReadHistory)

	for {
		line, err := cli.Prompt(options.Prompt())

		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}

		case liner.ErrPromptAborted:
			fmt.Println()

			continue

		default:
			// End of input.
			_ = history.Save(cli.WriteHistory)

			return
		}

		e.Evaluate(line)
	}
}
