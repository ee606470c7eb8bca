package protocol

import "errors"

var ErrUnknownMessage = errors.New("unknown message ID")

// Stats counts stream problems seen by a Decoder.
type Stats struct {
	Frames    int // Valid frames
	Skipped   int // Bytes discarded while resynchronizing
	BadFrames int // Frames rejected for length, CRC or trailer errors
	SeqGaps   int // Frames whose sequence did not follow the previous one
	Unknown   int // Valid frames with an unknown message
}

// Decoder splits a byte stream into report messages. Bytes may arrive in
// any chunking; a corrupt frame is skipped up to the next sync byte.
type Decoder struct {
	buf     []byte
	synced  bool
	lastSeq int
	stats   Stats
}

// NewDecoder returns a decoder expecting the stream to start at a frame
// boundary.
func NewDecoder() *Decoder {
	return &Decoder{synced: true, lastSeq: -1}
}

// Stats returns the counters so far.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// Feed adds stream bytes and returns the messages completed by them.
func (d *Decoder) Feed(data []byte) []Message {
	d.buf = append(d.buf, data...)
	var out []Message

	for len(d.buf) > 0 {
		if !d.synced {
			i := 0
			for i < len(d.buf) && d.buf[i] != FrameSync {
				i++
			}
			d.stats.Skipped += i
			if i == len(d.buf) {
				d.buf = d.buf[:0]
				break
			}
			d.buf = d.buf[i+1:]
			d.synced = true
			continue
		}
		if d.buf[0] == FrameSync {
			d.buf = d.buf[1:]
			continue
		}
		if len(d.buf) < FrameLengthMin {
			break
		}
		n := int(d.buf[0])
		seq := d.buf[1]
		if n < FrameLengthMin || n > FrameLengthMax || seq&^FrameSeqMask != FrameDest {
			d.reject()
			continue
		}
		if len(d.buf) < n {
			break
		}
		frame := d.buf[:n]
		crc := uint16(frame[n-3])<<8 | uint16(frame[n-2])
		if frame[n-1] != FrameSync || crc != CRC16(frame[:n-FrameTrailerSize]) {
			d.reject()
			continue
		}

		s := int(seq & FrameSeqMask)
		if d.lastSeq >= 0 && s != (d.lastSeq+1)&FrameSeqMask {
			d.stats.SeqGaps++
		}
		d.lastSeq = s
		d.stats.Frames++

		msg, err := parsePayload(frame[FrameHeaderSize : n-FrameTrailerSize])
		if err != nil {
			d.stats.Unknown++
		} else {
			msg.Seq = uint8(s)
			out = append(out, msg)
		}
		d.buf = d.buf[n:]
	}

	// Keep the buffer from pinning a large backing array
	if len(d.buf) == 0 {
		d.buf = nil
	}
	return out
}

func (d *Decoder) reject() {
	d.stats.BadFrames++
	d.buf = d.buf[1:]
	d.stats.Skipped++
	d.synced = false
}

func parsePayload(p []byte) (Message, error) {
	id, err := ReadUVLQ(&p)
	if err != nil {
		return Message{}, err
	}
	m := Message{ID: MsgID(id)}
	switch m.ID {
	case MsgHello:
		if m.Text, err = ReadString(&p); err == nil {
			m.Name, err = ReadString(&p)
		}
	case MsgCaseStart, MsgCasePass:
		m.Name, err = ReadString(&p)
	case MsgToken:
		if len(p) < 1 {
			return m, ErrShortPayload
		}
		m.Token = p[0]
	case MsgCaseFail:
		if m.Name, err = ReadString(&p); err == nil {
			m.Text, err = ReadString(&p)
		}
	case MsgSummary:
		if m.Passed, err = ReadUVLQ(&p); err == nil {
			m.Failed, err = ReadUVLQ(&p)
		}
	case MsgLog:
		m.Text, err = ReadString(&p)
	case MsgTrace:
		if m.IRQ, err = ReadUVLQ(&p); err == nil {
			if m.Source, err = ReadUVLQ(&p); err == nil {
				m.Status, err = ReadUVLQ(&p)
			}
		}
	default:
		return m, ErrUnknownMessage
	}
	return m, err
}
