package main

import (
	"fmt"

	"github.com/JackieYan/cox/board"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <board.yaml>...",
	Short: "Validate board description files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		bad := 0
		for _, path := range args {
			c, err := board.Load(path)
			if err == nil {
				err = c.Validate()
			}
			if err != nil {
				bad++
				fmt.Fprintf(out, "%s:\n%v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "%s: ok (%s, %d pin assignments)\n", path, c.Board, len(c.Pins))
		}
		if bad > 0 {
			return errFailed
		}
		return nil
	},
}
