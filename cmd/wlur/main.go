// Command wlur applies a Gaussian blur to image files.
package main

import (
	"fmt"
	"os"

	"github.com/wlur/wlur/cmd/wlur/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
