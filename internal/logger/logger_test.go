package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// capture enables verbose output into a buffer and restores defaults on cleanup.
func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)

	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("resolved %s", "/tmp/app.db") }, "[DEBUG] resolved /tmp/app.db\n"},
		{"info", func() { Info("opened %d pools", 1) }, "[INFO] opened 1 pools\n"},
		{"warn", func() { Warn("closing failed") }, "[WARN] closing failed\n"},
		{"section", func() { Section("Setup") }, "\n=== Setup ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			if buf.String() != tt.expected {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("test message")
	Section("ignored")

	if buf.Len() > 0 {
		t.Error("expected no output when verbose is disabled")
	}
}

func TestConcurrentAccess(t *testing.T) {
	buf := capture(t, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Debug("concurrent %d", i)
			IsVerbose()
		}()
	}
	wg.Wait()

	if got := bytes.Count(buf.Bytes(), []byte("\n")); got != 10 {
		t.Errorf("expected 10 lines, got %d", got)
	}
}
