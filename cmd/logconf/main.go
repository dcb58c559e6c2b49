// Command logconf renders logging configurations and applies them to a
// demo logger.
package main

import (
	"fmt"
	"os"

	"github.com/philipp01105/logconf/core"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, core.Describe(err))
		os.Exit(1)
	}
}
