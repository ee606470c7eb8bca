// Package monitor follows the report stream of a board running its test
// suites and collects the results.
package monitor

import (
	"context"
	"errors"
	"io"

	"github.com/JackieYan/cox/protocol"
)

var ErrIncomplete = errors.New("stream ended before the summary")

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name    string
	Passed  bool
	Message string
	Tokens  []byte
}

// Report is everything received since the last hello.
type Report struct {
	Board   string
	Version string
	Cases   []CaseResult
	Logs    []string
	Traces  []protocol.Message

	// Summary counts as sent by the board.
	Passed uint32
	Failed uint32
	Done   bool
}

// OK reports whether the run finished with no failed case.
func (r *Report) OK() bool {
	return r.Done && r.Failed == 0
}

// Monitor decodes a report stream.
type Monitor struct {
	r       io.Reader
	dec     *protocol.Decoder
	report  Report
	handler func(protocol.Message)
	next    bool
}

// New returns a monitor reading from r.
func New(r io.Reader) *Monitor {
	return &Monitor{r: r, dec: protocol.NewDecoder()}
}

// OnMessage sets a function called with every decoded message.
func (m *Monitor) OnMessage(h func(protocol.Message)) {
	m.handler = h
}

// Stats returns the decoder counters.
func (m *Monitor) Stats() protocol.Stats {
	return m.dec.Stats()
}

// Report returns the results collected so far.
func (m *Monitor) Report() *Report {
	return &m.report
}

func (m *Monitor) current() *CaseResult {
	if n := len(m.report.Cases); n > 0 {
		return &m.report.Cases[n-1]
	}
	return nil
}

func (m *Monitor) handle(msg protocol.Message) {
	r := &m.report
	if r.Done && msg.ID == protocol.MsgHello {
		// Next run; keep the finished report
		m.next = true
	}
	if m.next {
		return
	}
	switch msg.ID {
	case protocol.MsgHello:
		// Board restarted
		*r = Report{Board: msg.Name, Version: msg.Text}
	case protocol.MsgCaseStart:
		r.Cases = append(r.Cases, CaseResult{Name: msg.Name})
	case protocol.MsgToken:
		if c := m.current(); c != nil {
			c.Tokens = append(c.Tokens, msg.Token)
		}
	case protocol.MsgCasePass, protocol.MsgCaseFail:
		c := m.current()
		if c == nil || c.Name != msg.Name {
			r.Cases = append(r.Cases, CaseResult{Name: msg.Name})
			c = m.current()
		}
		c.Passed = msg.ID == protocol.MsgCasePass
		c.Message = msg.Text
	case protocol.MsgSummary:
		r.Passed, r.Failed = msg.Passed, msg.Failed
		r.Done = true
	case protocol.MsgLog:
		r.Logs = append(r.Logs, msg.Text)
	case protocol.MsgTrace:
		r.Traces = append(r.Traces, msg)
	}
	if m.handler != nil {
		m.handler(msg)
	}
}

// Feed decodes data and reports whether a summary has arrived.
func (m *Monitor) Feed(data []byte) bool {
	for _, msg := range m.dec.Feed(data) {
		m.handle(msg)
	}
	return m.report.Done
}

// Run reads until a summary arrives, the reader ends or ctx is done.
// Reads returning no data, as a serial port does on its read timeout,
// are retried. Once the summary is in, Run keeps what is still arriving
// and returns at the first idle read or at the end of the stream.
func (m *Monitor) Run(ctx context.Context) (*Report, error) {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			if m.report.Done {
				return &m.report, nil
			}
			return &m.report, err
		}
		n, err := m.r.Read(buf)
		if n > 0 {
			m.Feed(buf[:n])
		}
		if m.report.Done && (n == 0 || err != nil || m.next) {
			return &m.report, nil
		}
		if errors.Is(err, io.EOF) {
			return &m.report, ErrIncomplete
		}
		if err != nil {
			return &m.report, err
		}
	}
}
