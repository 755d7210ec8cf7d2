// Xylem evaluates visual node graphs headlessly.
package main

import (
	"os"

	"github.com/xylemcad/xylem/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
