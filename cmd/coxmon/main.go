// Command coxmon is the host side of the NUC122 board tests. It follows the
// report stream of a board, checks board description files, lists the pin
// multiplexer and runs the suites against the simulated chip.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var errFailed = errors.New("test run failed")

var rootCmd = &cobra.Command{
	Use:           "coxmon",
	Short:         "NUC122 board test monitor",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(monitorCmd, pinsCmd, checkCmd, selftestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
