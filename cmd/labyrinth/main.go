// Command labyrinth finds the shortest route between the 'A' and 'B' cells
// of a text maze.
//
//	labyrinth distance -i maze.txt
//	labyrinth -i maze.txt --mode path
//	labyrinth path -i maze.txt --png route.png
//	labyrinth distance -i maze.txt --fallback huge.txt.br --memory-limit-mb 512
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
