// SPDX-License-Identifier: MIT

// Command cfpq answers context-free path queries described by YAML
// documents (see package loader for the layout).
//
//	cfpq run -f query.yaml [-a gll|tensor|hellings|matrix|rpq|bfs] [--workers N] [--json]
//	cfpq compare -f query.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
