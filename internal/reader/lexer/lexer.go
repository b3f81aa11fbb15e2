// Released under an MIT license. See LICENSE.

// Package lexer splits command lines into argument vectors.
//
// The grammar is deliberately small. A token is a run of non-blank
// characters, except that a single-quoted span is one token with the
// quotes stripped. There is no escape handling inside quotes; a quote
// that is never closed swallows the rest of the line. A final token
// of "&" marks the command line as a background job and is dropped.
package lexer

import "strings"

const blank = " \t\r\n"

// Split scans line and returns the argument vector plus a flag
// indicating that the command should run in the background.
// A blank line produces an empty vector.
func Split(line string) (argv []string, background bool) {
	for i := 0; i < len(line); {
		switch {
		case strings.IndexByte(blank, line[i]) != -1:
			i++

		case line[i] == '\'':
			i++

			n := strings.IndexByte(line[i:], '\'')
			if n == -1 {
				n = len(line) - i
			}

			argv = append(argv, line[i:i+n])

			i += n + 1

		default:
			n := strings.IndexAny(line[i:], blank)
			if n == -1 {
				n = len(line) - i
			}

			argv = append(argv, line[i:i+n])

			i += n
		}
	}

	if n := len(argv); n > 0 && argv[n-1] == "&" {
		argv = argv[:n-1]
		background = true
	}

	return argv, background
}
