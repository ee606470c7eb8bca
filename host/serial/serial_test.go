package serial

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	if cfg.Device != "/dev/ttyUSB0" || cfg.Baud != 115200 || cfg.ReadTimeout != 100*time.Millisecond {
		t.Errorf("DefaultConfig = %+v", cfg)
	}
}

func TestOpenNilConfig(t *testing.T) {
	if _, err := Open(nil); err != ErrNoConfig {
		t.Errorf("Open(nil) = %v, want ErrNoConfig", err)
	}
}

func TestReadTimeoutIsIdle(t *testing.T) {
	r := bytes.NewReader([]byte("ab"))
	b := make([]byte, 4)
	if n, err := readTimeout(r, b); n != 2 || err != nil {
		t.Errorf("first read = %d, %v", n, err)
	}
	if n, err := readTimeout(r, b); n != 0 || err != nil {
		t.Errorf("timed out read = %d, %v; want 0, nil", n, err)
	}
	if _, err := readTimeout(failingReader{}, b); err != io.ErrUnexpectedEOF {
		t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, io.ErrUnexpectedEOF }
