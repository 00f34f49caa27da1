package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestRun_Defaults(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"lowpass @ 1000 Hz, fs = 44100 Hz", "b0 = ", "a2 = ", "stable: true", "Freq [Hz]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "sample_rate: 48000\ncutoff: 250\nmode: highpass\npoints: 3\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", path, "-cutoff", "500"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "highpass @ 500 Hz, fs = 48000 Hz") {
		t.Fatalf("unexpected header:\n%s", stdout.String())
	}
}

func TestRun_Bandpass(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "bandpass", "-bandwidth", "250"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "bandwidth = 250 Hz") {
		t.Fatalf("bandwidth missing:\n%s", stdout.String())
	}
}

func TestRun_InvalidParams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-cutoff", "30000"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "biquadinfo: ") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if code := run([]string{"extra"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d for positional arg, want 2", code)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "Usage: biquadinfo") {
		t.Fatalf("usage not printed: %q", stderr.String())
	}
}

func TestLogSpaced(t *testing.T) {
	got := logSpaced(20, 20000, 4)
	want := []float64{20, 200, 2000, 20000}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9*want[i] {
			t.Fatalf("logSpaced[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := logSpaced(20, 20000, 1); len(got) != 1 || got[0] != 20 {
		t.Fatalf("single point = %v", got)
	}
}

func TestLogSpaced_LowSampleRate(t *testing.T) {
	// At 30 Hz the table tops out below the usual 20 Hz start.
	hi := 0.95 * 30.0 / 2
	got := logSpaced(20, hi, 5)
	for i, hz := range got {
		if hz <= 0 || hz > hi*(1+1e-12) {
			t.Fatalf("logSpaced[%d] = %v, want in (0, %v]", i, hz, hi)
		}
	}
	if got[0] >= got[len(got)-1] {
		t.Fatalf("axis not increasing: %v", got)
	}
}

func TestRunLowSampleRate(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-rate", "30", "-cutoff", "10", "-points", "3"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if strings.Contains(stdout.String(), "\n20.0 ") {
		t.Fatalf("row above Nyquist in output:\n%s", stdout.String())
	}
}
