// Package protocol implements the framed report stream a board sends to the
// host while it runs test suites.
//
// A frame is
//
//	len | seq | payload... | crc16 hi | crc16 lo | 0x7E
//
// where len counts the whole frame, seq is 0x10 | n for a 4-bit running
// counter n, and the CRC covers len, seq and payload. The payload is a VLQ
// message ID followed by the message arguments.
package protocol

// Version is the report stream version announced in the hello message.
const Version = "1"

// Frame layout
const (
	FrameHeaderSize  = 2
	FrameTrailerSize = 3
	FrameLengthMin   = FrameHeaderSize + FrameTrailerSize
	FrameLengthMax   = 64
	PayloadMax       = FrameLengthMax - FrameLengthMin

	FrameSync    = 0x7E
	FrameDest    = 0x10
	FrameSeqMask = 0x0F
)

// MsgID identifies a report message.
type MsgID uint8

// Report messages
const (
	MsgHello     MsgID = iota // version, board
	MsgCaseStart              // case name
	MsgToken                  // emitted token
	MsgCasePass               // case name
	MsgCaseFail               // case name, failure message
	MsgSummary                // passed, failed
	MsgLog                    // text
	MsgTrace                  // irq, source, status
)

func (id MsgID) String() string {
	switch id {
	case MsgHello:
		return "hello"
	case MsgCaseStart:
		return "case-start"
	case MsgToken:
		return "token"
	case MsgCasePass:
		return "case-pass"
	case MsgCaseFail:
		return "case-fail"
	case MsgSummary:
		return "summary"
	case MsgLog:
		return "log"
	case MsgTrace:
		return "trace"
	}
	return "unknown"
}

// Message is one decoded report. Only the fields of its ID are set.
type Message struct {
	ID  MsgID
	Seq uint8

	Name   string // hello: board, case-*: case name
	Text   string // hello: version, case-fail: message, log: text
	Token  byte
	Passed uint32
	Failed uint32
	IRQ    uint32
	Source uint32
	Status uint32
}
