package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer collects JSON log output. It is safe for concurrent handlers.
type TestLogBuffer struct {
	mu  sync.Mutex
	out bytes.Buffer
}

func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.Write(p)
}

func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

// Reset drops everything logged so far.
func (b *TestLogBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Reset()
}

// Records decodes every JSON record written so far, in order.
func (b *TestLogBuffer) Records() ([]map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(b.String()))
	var records []map[string]any
	for {
		var rec map[string]any
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// GetTestLogger returns a debug-level JSON logger and the buffer it writes to.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()

	buf := &TestLogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// AssertLogContains fails t unless want appears somewhere in the output.
func AssertLogContains(t *testing.T, buf *TestLogBuffer, want string) {
	t.Helper()

	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("log output has no %q:\n%s", want, out)
	}
}

// AssertLogField fails t unless some record has key set to want.
func AssertLogField(t *testing.T, buf *TestLogBuffer, key string, want any) {
	t.Helper()

	records, err := buf.Records()
	if err != nil {
		t.Fatalf("decode log records: %v", err)
	}
	for _, rec := range records {
		if got, ok := rec[key]; ok && got == want {
			return
		}
	}
	t.Errorf("no log record has %s=%v:\n%s", key, want, buf.String())
}
