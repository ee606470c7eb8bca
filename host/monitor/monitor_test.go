package monitor

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/JackieYan/cox/nuc122/sim"
	"github.com/JackieYan/cox/protocol"
	"github.com/JackieYan/cox/suites"
	"github.com/JackieYan/cox/testkit"
	"github.com/JackieYan/cox/xgpio"
)

func TestRunCollectsCases(t *testing.T) {
	var buf bytes.Buffer
	enc := protocol.NewEncoder(&buf)
	enc.Hello("old")
	enc.CaseStart("stale")
	enc.Hello("nu-lb-nuc122")
	enc.CaseStart("xtimer, 001")
	enc.Token('a')
	enc.CasePass("xtimer, 001")
	enc.CaseStart("xgpio, 001")
	enc.Log("edge")
	enc.CaseFail("xgpio, 001", " rising edge interrupt error! (timeout)")
	enc.Trace(4, 0x50004040, 0x08)
	enc.Summary(1, 1)

	var seen int
	m := New(&buf)
	m.OnMessage(func(protocol.Message) { seen++ })
	r, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if r.Board != "nu-lb-nuc122" || r.Version != protocol.Version {
		t.Errorf("board/version = %q/%q", r.Board, r.Version)
	}
	if len(r.Cases) != 2 {
		t.Fatalf("cases = %+v", r.Cases)
	}
	if c := r.Cases[0]; !c.Passed || string(c.Tokens) != "a" {
		t.Errorf("case 0 = %+v", c)
	}
	if c := r.Cases[1]; c.Passed || c.Message != " rising edge interrupt error! (timeout)" {
		t.Errorf("case 1 = %+v", c)
	}
	if len(r.Logs) != 1 || len(r.Traces) != 1 || r.Traces[0].Status != 0x08 {
		t.Errorf("logs/traces = %v/%v", r.Logs, r.Traces)
	}
	if r.OK() || r.Passed != 1 || r.Failed != 1 {
		t.Errorf("summary = %d/%d OK=%v", r.Passed, r.Failed, r.OK())
	}
	if seen != 11 {
		t.Errorf("handler saw %d messages, want 11", seen)
	}
}

func TestRunIncomplete(t *testing.T) {
	var buf bytes.Buffer
	enc := protocol.NewEncoder(&buf)
	enc.Hello("b")
	enc.CaseStart("x")

	_, err := New(&buf).Run(context.Background())
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("Run = %v, want ErrIncomplete", err)
	}
}

func failedRun(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := protocol.NewEncoder(&buf)
	enc.Hello("nu-lb-nuc122")
	enc.CaseStart("xgpio, 001")
	enc.CaseFail("xgpio, 001", "edge (timeout)")
	enc.Summary(0, 1)
	enc.Trace(4, 0x50004040, 0x08)
	enc.Trace(8, 0x40010000, 0x01)
	return buf.Bytes()
}

func TestRunKeepsTailAfterSummary(t *testing.T) {
	r, err := New(iotest.OneByteReader(bytes.NewReader(failedRun(t)))).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.Done || r.Failed != 1 {
		t.Errorf("summary = %d/%d done=%v", r.Passed, r.Failed, r.Done)
	}
	if len(r.Traces) != 2 || r.Traces[1].Status != 0x01 {
		t.Errorf("traces = %+v, want 2", r.Traces)
	}
}

// chunkReader hands out its chunks one per Read, then idles.
type chunkReader struct {
	chunks [][]byte
	idles  int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		c.idles++
		return 0, nil
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if len(c.chunks[0]) == 0 {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func TestRunStopsAtIdleAfterSummary(t *testing.T) {
	data := failedRun(t)
	var next bytes.Buffer
	enc := protocol.NewEncoder(&next)
	enc.Hello("restarted")
	enc.CaseStart("xtimer, 001")

	var chunks [][]byte
	for len(data) > 0 {
		n := 5
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	rd := &chunkReader{chunks: append(chunks, next.Bytes())}

	r, err := New(rd).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Board != "nu-lb-nuc122" || len(r.Cases) != 1 || len(r.Traces) != 2 {
		t.Errorf("report = %+v", r)
	}
	if rd.idles > 1 {
		t.Errorf("Run read %d idle times after the summary", rd.idles)
	}
}

type idleReader struct{}

func (idleReader) Read(p []byte) (int, error) { return 0, nil }

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(idleReader{}).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestSimulatedBoard(t *testing.T) {
	chip := sim.New(sim.Options{})
	b := suites.NewBoard(chip)
	defer xgpio.SetDriver(nil)
	chip.AttachGPIO(b.GPIO)
	for _, tm := range b.Timers {
		chip.AttachTimer(tm)
	}
	chip.Link(b.LoopOut, b.LoopIn)

	var buf bytes.Buffer
	enc := protocol.NewEncoder(&buf)
	enc.Hello("sim")
	testkit.NewRunner(enc, func() { chip.Advance(1) }).Run(suites.All(b)...)

	m := New(&buf)
	r, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.OK() || len(r.Cases) != 3 {
		t.Errorf("report = %+v", r)
	}
	if s := m.Stats(); s.BadFrames != 0 || s.SeqGaps != 0 {
		t.Errorf("stats = %+v", s)
	}
}
