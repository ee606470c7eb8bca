package main

import (
	"fmt"
	"strings"

	"github.com/JackieYan/cox/nuc122"
	"github.com/JackieYan/cox/xgpio"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	pinsBySignal bool

	pinsCmd = &cobra.Command{
		Use:   "pins",
		Short: "List the pin multiplexer table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !pinsBySignal {
				for _, p := range nuc122.Pins() {
					var sigs []string
					for _, s := range nuc122.SignalsFor(p) {
						sigs = append(sigs, string(s))
					}
					fmt.Fprintf(out, "%-5s %s\n", nuc122.PinName(p), strings.Join(sigs, " "))
				}
				return nil
			}

			bySignal := map[xgpio.Signal][]string{}
			for _, e := range nuc122.MuxTable() {
				bySignal[e.Signal] = append(bySignal[e.Signal], nuc122.PinName(e.Pin))
			}
			sigs := maps.Keys(bySignal)
			slices.Sort(sigs)
			for _, s := range sigs {
				fmt.Fprintf(out, "%-9s %s\n", s, strings.Join(bySignal[s], " "))
			}
			return nil
		},
	}
)

func init() {
	pinsCmd.Flags().BoolVarP(&pinsBySignal, "by-signal", "s", false, "group by peripheral signal")
}
