// SPDX-License-Identifier: MIT

// Command ugraph loads YAML graph documents, runs breadth-first traversals
// and generates fixture documents.
//
//	ugraph gen cycle 6 > ring.yaml
//	ugraph bfs -f ring.yaml --start 0
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
