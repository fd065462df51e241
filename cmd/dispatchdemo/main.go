// Command dispatchdemo rebinds one operation variable to add and then
// subtract, printing the result of each on the operands 1 and 2.
package main

import (
	"embed"

	"github.com/zircuit-labs/zkr-go-delegates/runner"
	"github.com/zircuit-labs/zkr-go-delegates/showcase"
)

//go:embed data/settings.toml
var settings embed.FS

func main() {
	runner.Run("dispatchdemo", settings, showcase.DispatchProgram)
}
