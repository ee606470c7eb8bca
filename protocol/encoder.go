package protocol

import (
	"errors"
	"io"
)

var ErrFrameTooLong = errors.New("frame exceeds maximum length")

// Encoder writes report frames to w. It builds each frame in a fixed
// buffer, so encoding does not allocate. Not safe for concurrent use.
type Encoder struct {
	w   io.Writer
	seq uint8
	buf [FrameLengthMax]byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) begin(id MsgID) []byte {
	return AppendUVLQ(e.buf[:FrameHeaderSize], uint32(id))
}

// fit truncates s so that it and its length prefix fit in the frame.
func fit(p []byte, s string) string {
	room := FrameLengthMax - FrameTrailerSize - len(p) - 1
	if room < 0 {
		return ""
	}
	if len(s) > room {
		return s[:room]
	}
	return s
}

func (e *Encoder) finish(p []byte) error {
	if len(p)+FrameTrailerSize > FrameLengthMax {
		return ErrFrameTooLong
	}
	p[0] = byte(len(p) + FrameTrailerSize)
	p[1] = FrameDest | e.seq
	crc := CRC16(p)
	p = append(p, byte(crc>>8), byte(crc), FrameSync)
	e.seq = (e.seq + 1) & FrameSeqMask
	_, err := e.w.Write(p)
	return err
}

// Hello announces the board and stream version.
func (e *Encoder) Hello(board string) error {
	p := e.begin(MsgHello)
	p = AppendString(p, Version)
	p = AppendString(p, fit(p, board))
	return e.finish(p)
}

// CaseStart reports that a test case is about to run.
func (e *Encoder) CaseStart(name string) error {
	p := e.begin(MsgCaseStart)
	return e.finish(AppendString(p, fit(p, name)))
}

// Token reports a token emitted by the code under test.
func (e *Encoder) Token(b byte) error {
	p := e.begin(MsgToken)
	return e.finish(append(p, b))
}

// CasePass reports a passed test case.
func (e *Encoder) CasePass(name string) error {
	p := e.begin(MsgCasePass)
	return e.finish(AppendString(p, fit(p, name)))
}

// CaseFail reports a failed test case. msg is truncated to fit the frame.
func (e *Encoder) CaseFail(name, msg string) error {
	p := e.begin(MsgCaseFail)
	if len(name) > PayloadMax/2 {
		name = name[:PayloadMax/2]
	}
	p = AppendString(p, name)
	return e.finish(AppendString(p, fit(p, msg)))
}

// Summary reports the totals of a run.
func (e *Encoder) Summary(passed, failed uint32) error {
	p := e.begin(MsgSummary)
	p = AppendUVLQ(p, passed)
	return e.finish(AppendUVLQ(p, failed))
}

// Log sends free text.
func (e *Encoder) Log(text string) error {
	p := e.begin(MsgLog)
	return e.finish(AppendString(p, fit(p, text)))
}

// Trace reports one interrupt dispatch.
func (e *Encoder) Trace(irq, source, status uint32) error {
	p := e.begin(MsgTrace)
	p = AppendUVLQ(p, irq)
	p = AppendUVLQ(p, source)
	return e.finish(AppendUVLQ(p, status))
}
