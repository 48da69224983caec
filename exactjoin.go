// Join elements with a separator in a single allocation
package main

import (
	"github.com/darthshadow/exactjoin/cmd"
)

func main() {
	cmd.Main()
}
