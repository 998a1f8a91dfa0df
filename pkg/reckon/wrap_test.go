package reckon

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLogCallsWrapsWithoutChangingReplies(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	upper := LogCalls(logger, func(line string) string {
		return strings.ToUpper(line)
	})

	if got := upper("hello"); got != "HELLO" {
		t.Fatalf("expected 'HELLO', got '%s'", got)
	}
	logged := buf.String()
	if !strings.Contains(logged, `"hello"`) || !strings.Contains(logged, `"HELLO"`) {
		t.Errorf("expected call and reply in log output, got %q", logged)
	}
}

func TestSessionLogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	session := New(WithLogger(log.New(&buf, "", 0)))
	defer session.Close()

	session.Eval("2 + 3")
	logged := buf.String()
	if !strings.Contains(logged, `"2 + 3"`) {
		t.Errorf("expected input line in log output, got %q", logged)
	}
	if !strings.Contains(logged, "execute expression") {
		t.Errorf("expected command kind in log output, got %q", logged)
	}
}
