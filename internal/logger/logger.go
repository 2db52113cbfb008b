package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger writes one line per entry: time, level, [CATEGORY], message.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	min Level
	now func() time.Time
}

func New(out io.Writer, min Level) *Logger {
	return &Logger{out: out, min: min, now: time.Now}
}

// Default logs INFO and above to stdout.
func Default() *Logger {
	return New(os.Stdout, INFO)
}

func (l *Logger) log(level Level, category, message string) {
	if level < l.min {
		return
	}

	ts := color.New(color.FgBlue).Sprint(l.now().UTC().Format("15:04:05"))
	lvl, cat := levelColors(level)
	line := fmt.Sprintf("%s %s %s %s\n",
		ts,
		lvl.Sprintf("%-5s", level),
		cat.Sprintf("[%-8s]", strings.ToUpper(category)),
		message,
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}

func levelColors(level Level) (*color.Color, *color.Color) {
	switch level {
	case DEBUG:
		return color.New(color.FgCyan), color.New(color.FgCyan, color.Bold)
	case WARN:
		return color.New(color.FgYellow), color.New(color.FgYellow, color.Bold)
	case ERROR:
		return color.New(color.FgRed), color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgGreen), color.New(color.FgGreen, color.Bold)
	}
}

func (l *Logger) Debug(category, message string) { l.log(DEBUG, category, message) }
func (l *Logger) Info(category, message string)  { l.log(INFO, category, message) }
func (l *Logger) Warn(category, message string)  { l.log(WARN, category, message) }
func (l *Logger) Error(category, message string) { l.log(ERROR, category, message) }

func (l *Logger) LogAPI(method, uri string, status int, latency time.Duration) {
	l.Info("API", fmt.Sprintf("%s %s %d (%s)", method, uri, status, latency))
}

func (l *Logger) LogSync(routingKey, message string) {
	l.Info("SYNC", fmt.Sprintf("[%s] %s", routingKey, message))
}
