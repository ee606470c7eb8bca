// Package testkit runs test cases on the board and reports results over the
// protocol stream.
//
// Interrupt callbacks prove they ran by emitting tokens. A case then waits
// for the expected token sequence with AssertQBreak, which gives up after a
// bounded number of polls.
package testkit

import (
	"github.com/JackieYan/cox/reg"
)

// TokenBufferSize is the number of tokens kept between two assertions.
const TokenBufferSize = 32

// Reporter receives test progress. *protocol.Encoder implements it.
type Reporter interface {
	CaseStart(name string) error
	Token(b byte) error
	CasePass(name string) error
	CaseFail(name, msg string) error
	Summary(passed, failed uint32) error
}

// Case is one test case.
type Case interface {
	// Name returns the case description, such as "xtimer, 001, timer interrupt".
	Name() string
	Setup(t *T)
	TearDown(t *T)
	Execute(t *T)
}

// T is the state of the running case.
type T struct {
	tokens [TokenBufferSize]byte
	count  int
	lost   int

	name   string
	failed bool
	msg    string
	rep    Reporter
	repErr error
	idle   func()
}

// current receives tokens emitted through the package-level EmitToken.
var current *T

// EmitToken records a token for the running case. Safe from interrupt
// context. Tokens beyond TokenBufferSize are dropped and the next
// assertion fails.
func EmitToken(b byte) {
	if t := current; t != nil {
		t.EmitToken(b)
	}
}

// EmitToken records a token. Safe from interrupt context.
func (t *T) EmitToken(b byte) {
	reg.Critical(func() {
		if t.count < TokenBufferSize {
			t.tokens[t.count] = b
			t.count++
		} else {
			t.lost++
		}
	})
}

// take removes and returns the first n buffered tokens if at least n
// tokens are buffered.
func (t *T) take(n int) ([]byte, bool) {
	var out []byte
	ok := false
	reg.Critical(func() {
		if t.count < n {
			return
		}
		out = append(out, t.tokens[:n]...)
		copy(t.tokens[:], t.tokens[n:t.count])
		t.count -= n
		ok = true
	})
	return out, ok
}

func (t *T) lostTokens() int {
	var n int
	reg.Critical(func() { n = t.lost })
	return n
}

// Tokens returns the buffered tokens without consuming them.
func (t *T) Tokens() string {
	var s string
	reg.Critical(func() {
		s = string(t.tokens[:t.count])
	})
	return s
}

// AssertQBreak waits until the tokens in expected have been emitted, in
// order. It polls at most budget times, calling the idle hook between
// polls. On a timeout, wrong tokens or lost tokens the case fails with msg
// and AssertQBreak returns false; the case should return.
func (t *T) AssertQBreak(expected, msg string, budget uint32) bool {
	for i := uint32(0); ; i++ {
		if t.lostTokens() > 0 {
			t.Fail(msg + " (token overflow)")
			return false
		}
		if got, ok := t.take(len(expected)); ok {
			for _, b := range got {
				if t.rep != nil {
					if err := t.rep.Token(b); err != nil && t.repErr == nil {
						t.repErr = err
					}
				}
			}
			if string(got) != expected {
				t.Fail(msg + " (got \"" + string(got) + "\")")
				return false
			}
			return true
		}
		if i >= budget {
			t.Fail(msg + " (timeout)")
			return false
		}
		if t.idle != nil {
			t.idle()
		}
	}
}

// Assert fails the case with msg unless cond holds.
func (t *T) Assert(cond bool, msg string) bool {
	if !cond {
		t.Fail(msg)
	}
	return cond
}

// AssertNoError fails the case if err is not nil.
func (t *T) AssertNoError(err error, msg string) bool {
	if err != nil {
		t.Fail(msg + ": " + err.Error())
		return false
	}
	return true
}

// Fail marks the case failed. Only the first message is kept.
func (t *T) Fail(msg string) {
	if !t.failed {
		t.msg = msg
	}
	t.failed = true
}

// Failed reports whether the case has failed.
func (t *T) Failed() bool {
	return t.failed
}

// Message returns the first failure message.
func (t *T) Message() string {
	return t.msg
}

// Name returns the running case's name.
func (t *T) Name() string {
	return t.name
}
