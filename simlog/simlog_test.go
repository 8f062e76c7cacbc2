package simlog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfoWarnErrorPrefixes(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	defer SetOutput(log.New(bytesDiscard{}, "", 0))

	Info("frame %d done", 3)
	Warn("degenerate face skipped")
	Error("export failed: %v", "disk full")

	out := buf.String()
	if !strings.Contains(out, "[info] frame 3 done") {
		t.Fatalf("missing info line in: %s", out)
	}
	if !strings.Contains(out, "[warn] degenerate face skipped") {
		t.Fatalf("missing warn line in: %s", out)
	}
	if !strings.Contains(out, "[error] export failed: disk full") {
		t.Fatalf("missing error line in: %s", out)
	}
}

type bytesDiscard struct{}

func (bytesDiscard) Write(p []byte) (int, error) { return len(p), nil }
