package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(min Level) (*Logger, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, min)
	l.now = func() time.Time { return time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC) }
	return l, &buf
}

func TestLogger_FormatsLine(t *testing.T) {
	l, buf := newTestLogger(DEBUG)

	l.Info("db", "connected")

	assert.Equal(t, "10:30:00 INFO  [DB      ] connected\n", buf.String())
}

func TestLogger_FiltersBelowMinimum(t *testing.T) {
	l, buf := newTestLogger(WARN)

	l.Debug("app", "noise")
	l.Info("app", "noise")
	l.Warn("app", "careful")
	l.Error("app", "broken")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN")
	assert.Contains(t, lines[1], "ERROR")
}

func TestLogger_LogAPI(t *testing.T) {
	l, buf := newTestLogger(INFO)

	l.LogAPI("GET", "/events/1", 200, 3*time.Millisecond)

	assert.Contains(t, buf.String(), "[API     ] GET /events/1 200 (3ms)")
}

func TestLogger_LogSync(t *testing.T) {
	l, buf := newTestLogger(INFO)

	l.LogSync("event.upserted", "synced event 1")

	assert.Contains(t, buf.String(), "[SYNC    ] [event.upserted] synced event 1")
}
