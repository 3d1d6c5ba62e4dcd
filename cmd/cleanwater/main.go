// cleanwater runs the clean-water plant filter scenario.
package main

import (
	"os"

	"github.com/hupe1980/cleanwater/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
