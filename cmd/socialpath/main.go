// Command socialpath loads a social graph from a DOT edge list and reports
// its statistics and the closest connection between two people.
package main

import (
	"github.com/katalvlaran/socialpath/cmd/socialpath/commands"
)

func main() {
	commands.Execute()
}
