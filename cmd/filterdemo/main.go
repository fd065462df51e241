// Command filterdemo prints the numbers 1 to 100 that satisfy each of a list
// of predicates, one group at a time, with a blank line after each group.
package main

import (
	"embed"

	"github.com/zircuit-labs/zkr-go-delegates/runner"
	"github.com/zircuit-labs/zkr-go-delegates/showcase"
)

//go:embed data/settings.toml
var settings embed.FS

func main() {
	runner.Run("filterdemo", settings, showcase.FilterProgram)
}
