// Command watset clusters the vertices of a weighted graph read as a
// tab-separated edge list.
//
// Usage:
//
//	watset cluster -a cw -p mode=top -i graph.tsv
//	watset cluster -c watset.yaml < graph.tsv
//	watset algorithms
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
