// Package main provides the CLI entrypoint for bsfield-gen.
//
// bsfield-gen turns the adlog field expressions of a feature catalog into
// canonical bs field paths and generates the BsFieldEnum enumeration:
//   - Normalizes variable-keyed lookups into key:<id> path segments
//   - Filters candidates down to well-formed canonical paths
//   - Assigns registry ids and renders the enum sorted by id
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
