// Command trainer generates binary tree traversal exercises, quizzes
// you on them and writes printable worksheets.
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
