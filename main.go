// chronic converts between natural-language durations and seconds.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/chronic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
