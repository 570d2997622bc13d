// Package actionlog appends one audit line per handled request to a file.
package actionlog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"
)

const (
	DefaultPath     = "Logs/actions.log"
	Anonymous       = "Anonymous"
	timestampLayout = "2006-01-02 15:04:05"
)

// Logger is shared by all requests. Only the file append is serialized.
type Logger struct {
	path string
	now  func() time.Time
	diag *log.Logger

	mu       sync.Mutex
	dirReady bool
}

type Option func(*Logger)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithDiagnostics sets where write failures are reported. Defaults to log.Default().
func WithDiagnostics(d *log.Logger) Option {
	return func(l *Logger) { l.diag = d }
}

func New(path string, opts ...Option) *Logger {
	if path == "" {
		path = DefaultPath
	}
	l := &Logger{path: path, now: time.Now, diag: log.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) Path() string { return l.path }

var fieldEscaper = strings.NewReplacer(
	"\\", `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"|", `\|`,
)

// escapeField keeps a value on one line and free of the field separator.
func escapeField(s string) string {
	s = fieldEscaper.Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}

// FormatLine renders one audit line, newline included. Fields are escaped so
// a line always holds exactly one entry.
func FormatLine(ts time.Time, user, component, operation string) string {
	if strings.TrimSpace(user) == "" {
		user = Anonymous
	}
	return fmt.Sprintf("[%s] | User: %s | Controller: %s | Action: %s\n",
		ts.Format(timestampLayout), escapeField(user), escapeField(component), escapeField(operation))
}

// LogAction records that user ran component/operation. Write failures are
// reported to the diagnostics logger and never returned.
func (l *Logger) LogAction(user, component, operation string) {
	line := FormatLine(l.now(), user, component, operation)
	if err := l.append(line); err != nil {
		l.diag.Printf("actionlog: write %s: %v", l.path, err)
	}
}

func (l *Logger) append(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.dirReady {
		if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		l.dirReady = true
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
