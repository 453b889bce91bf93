package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("poster loaded")
	if !bytes.Contains(buf.Bytes(), []byte("poster loaded")) {
		t.Errorf("logger output = %q", buf.String())
	}

	buf.Reset()
	logger.Debug("frame")
	if buf.Len() != 0 {
		t.Error("debug messages should be filtered at info level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		verbose bool
		want    log.Level
	}{
		{"debug", false, log.DebugLevel},
		{"warn", false, log.WarnLevel},
		{" error ", false, log.ErrorLevel},
		{"", false, log.InfoLevel},
		{"loud", false, log.InfoLevel},
		{"error", true, log.DebugLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in, tt.verbose); got != tt.want {
			t.Errorf("parseLevel(%q, %v) = %v, want %v", tt.in, tt.verbose, got, tt.want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext should fall back to the default logger")
	}

	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestOpenLogFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee.log")

	for _, msg := range []string{"first", "second"} {
		f, err := openLogFile(path)
		if err != nil {
			t.Fatalf("openLogFile() error = %v", err)
		}
		newLogger(f, log.InfoLevel).Info(msg)
		f.Close()
	}

	data := readFile(t, path)
	if !bytes.Contains(data, []byte("first")) || !bytes.Contains(data, []byte("second")) {
		t.Errorf("log file = %q, want both messages", data)
	}
}
