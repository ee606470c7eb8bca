package main

import (
	"fmt"
	"io"

	"github.com/JackieYan/cox/host/monitor"
	"github.com/JackieYan/cox/protocol"
	"github.com/JackieYan/cox/xcore"
)

func printMessage(w io.Writer, verbose bool) func(protocol.Message) {
	return func(m protocol.Message) {
		switch m.ID {
		case protocol.MsgHello:
			fmt.Fprintf(w, "board %s (stream v%s)\n", m.Name, m.Text)
		case protocol.MsgCaseStart:
			if verbose {
				fmt.Fprintf(w, "RUN   %s\n", m.Name)
			}
		case protocol.MsgToken:
			if verbose {
				fmt.Fprintf(w, "      token %q\n", m.Token)
			}
		case protocol.MsgCasePass:
			fmt.Fprintf(w, "PASS  %s\n", m.Name)
		case protocol.MsgCaseFail:
			fmt.Fprintf(w, "FAIL  %s:%s\n", m.Name, m.Text)
		case protocol.MsgLog:
			fmt.Fprintf(w, "log   %s\n", m.Text)
		case protocol.MsgTrace:
			if verbose {
				fmt.Fprintf(w, "      irq %d source %s status %s\n", m.IRQ, xcore.Hex32(m.Source), xcore.Hex32(m.Status))
			}
		}
	}
}

func printSummary(w io.Writer, r *monitor.Report, stats protocol.Stats) error {
	fmt.Fprintf(w, "%d passed, %d failed", r.Passed, r.Failed)
	if stats.BadFrames > 0 || stats.SeqGaps > 0 {
		fmt.Fprintf(w, " (%d bad frames, %d sequence gaps)", stats.BadFrames, stats.SeqGaps)
	}
	fmt.Fprintln(w)
	if !r.OK() {
		return errFailed
	}
	return nil
}
