package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSelftest(t *testing.T) {
	out, err := run(t, "selftest")
	if err != nil {
		t.Fatalf("selftest: %v\n%s", err, out)
	}
	for _, want := range []string{
		"board nu-lb-nuc122",
		"PASS  xtimer, 001, timer interrupt test",
		"PASS  xgpio, 001, gpio edge interrupt test",
		"PASS  xgpio, 002, pin multiplexer test",
		"3 passed, 0 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPins(t *testing.T) {
	out, err := run(t, "pins")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "PB4   UART1RX SPI1CS\n") {
		t.Errorf("PB4 row missing:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 41 {
		t.Errorf("%d rows, want 41", n)
	}

	out, err = run(t, "pins", "--by-signal")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "SPI0CS    PB10 PC0 PD1\n") {
		t.Errorf("SPI0CS row missing:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(good, []byte("board: g\nloopback: {out: PA10, in: PB3}\npins: {PC1: SPI0CLK}\n"), 0o644)
	os.WriteFile(bad, []byte("board: b\nloopback: {out: PA10, in: PB3}\npins: {PC1: UART0TX}\n"), 0o644)

	out, err := run(t, "check", good)
	if err != nil || !strings.Contains(out, "good.yaml: ok (g, 1 pin assignments)") {
		t.Errorf("check good = %v\n%s", err, out)
	}
	out, err = run(t, "check", good, bad)
	if !errors.Is(err, errFailed) || !strings.Contains(out, "signal not available on pin") {
		t.Errorf("check bad = %v\n%s", err, out)
	}
}
