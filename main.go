// wpconf is the CLI for updating values in a wp-config.php in place.
package main

import (
	"fmt"
	"os"

	"wpconf/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
