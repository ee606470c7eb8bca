package main

import (
	"context"
	"time"

	"github.com/JackieYan/cox/host/monitor"
	"github.com/JackieYan/cox/host/serial"
	"github.com/spf13/cobra"
)

var (
	monitorOpts = struct {
		device  string
		baud    int
		timeout time.Duration
		verbose bool
	}{}

	monitorCmd = &cobra.Command{
		Use:   "monitor",
		Short: "Follow a board's report stream",
		Long:  "Open the board's UART, print the test reports as they arrive and exit with the run's result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := serial.DefaultConfig(monitorOpts.device)
			cfg.Baud = monitorOpts.baud
			port, err := serial.Open(cfg)
			if err != nil {
				return err
			}
			defer port.Close()
			port.Flush()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if monitorOpts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, monitorOpts.timeout)
				defer cancel()
			}

			out := cmd.OutOrStdout()
			m := monitor.New(port)
			m.OnMessage(printMessage(out, monitorOpts.verbose))
			r, err := m.Run(ctx)
			if err != nil {
				return err
			}
			return printSummary(out, r, m.Stats())
		},
	}
)

func init() {
	monitorCmd.Flags().StringVarP(&monitorOpts.device, "device", "d", "/dev/ttyUSB0", "serial device")
	monitorCmd.Flags().IntVarP(&monitorOpts.baud, "baud", "b", serial.DefaultBaud, "baud rate")
	monitorCmd.Flags().DurationVarP(&monitorOpts.timeout, "timeout", "t", 2*time.Minute, "give up after this long, 0 waits forever")
	monitorCmd.Flags().BoolVarP(&monitorOpts.verbose, "verbose", "v", false, "print tokens and interrupt traces")
}
