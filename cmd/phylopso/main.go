// Phylopso is a tool for clonal phylogeny inference from single-cell
// mutation data.
package main

import (
	"github.com/js-arias/command"

	"github.com/katalvlaran/phylopso/cmd/phylopso/history"
	"github.com/katalvlaran/phylopso/cmd/phylopso/search"
)

var app = &command.Command{
	Usage: "phylopso <command> [<argument>...]",
	Short: "clonal phylogeny inference by particle swarm search",
}

func init() {
	app.Add(search.Command)
	app.Add(history.Command)

	// help topics
	app.Add(matrixGuide)
}

func main() {
	app.Main()
}

var matrixGuide = &command.Command{
	Usage: "matrix-files",
	Short: "genotype matrix files",
	Long: `
A genotype matrix file holds one line per single cell and one
whitespace-separated column per mutation. Each value is:

	0  the mutation was not observed in the cell
	1  the mutation was observed in the cell
	2  no information (the site was not covered)

Blank lines are ignored. Mutation names can be given in a separate file,
one name per line, in column order; without it mutations are named
"1", "2", ... Example with four cells and four mutations:

	1 0 0 0
	1 1 0 2
	1 0 1 0
	0 0 1 1
	`,
}
