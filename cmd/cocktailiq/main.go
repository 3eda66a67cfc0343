// Command cocktailiq is the command line interface to the flavor analysis
// pipeline.
package main

import (
	"os"

	"github.com/flavorlab/cocktailiq/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}
