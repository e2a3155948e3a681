// Command fft_cli runs maintenance and reporting tasks against the tracker database.
package main

import (
	"os"

	"github.com/SscSPs/family_finance_tracker/cmd/fft_cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
