package main

import (
	"bytes"
	"context"

	"github.com/JackieYan/cox/board"
	"github.com/JackieYan/cox/host/monitor"
	"github.com/JackieYan/cox/nuc122/sim"
	"github.com/JackieYan/cox/protocol"
	"github.com/JackieYan/cox/suites"
	"github.com/JackieYan/cox/testkit"
	"github.com/JackieYan/cox/xgpio"
	"github.com/spf13/cobra"
)

var (
	selftestOpts = struct {
		board   string
		latency uint64
		verbose bool
	}{}

	selftestCmd = &cobra.Command{
		Use:   "selftest",
		Short: "Run the board suites on the simulated chip",
		Long:  "Run the board suites against the host model of the NUC122 and decode the report stream they produce, as monitor would from a board.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := board.Default()
			if selftestOpts.board != "" {
				var err error
				if cfg, err = board.Load(selftestOpts.board); err != nil {
					return err
				}
			}

			var stream bytes.Buffer
			if err := selftest(cfg, selftestOpts.latency, &stream); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			m := monitor.New(&stream)
			m.OnMessage(printMessage(out, selftestOpts.verbose))
			r, err := m.Run(context.Background())
			if err != nil {
				return err
			}
			return printSummary(out, r, m.Stats())
		},
	}
)

func init() {
	selftestCmd.Flags().StringVarP(&selftestOpts.board, "board", "f", "", "board description file (default NU-LB-NUC122)")
	selftestCmd.Flags().Uint64VarP(&selftestOpts.latency, "latency", "l", 0, "interrupt status clear latency in bus cycles")
	selftestCmd.Flags().BoolVarP(&selftestOpts.verbose, "verbose", "v", false, "print tokens and interrupt traces")
}

// selftest runs the suites on a simulated chip wired as cfg describes and
// writes the report stream to stream.
func selftest(cfg *board.Config, latency uint64, stream *bytes.Buffer) error {
	chip := sim.New(sim.Options{ClearLatency: latency})
	b := suites.NewBoard(chip)
	defer xgpio.SetDriver(nil)
	if err := cfg.Configure(b); err != nil {
		return err
	}
	if err := cfg.Apply(b.GPIO); err != nil {
		return err
	}
	chip.AttachGPIO(b.GPIO)
	for _, tm := range b.Timers {
		chip.AttachTimer(tm)
	}
	chip.Link(b.LoopOut, b.LoopIn)

	enc := protocol.NewEncoder(stream)
	enc.Hello(cfg.Board)
	testkit.NewRunner(enc, func() { chip.Advance(1) }).Run(suites.All(b)...)
	return nil
}
