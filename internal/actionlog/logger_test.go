package actionlog

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRE = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \| User: [^|]+ \| Controller: [^|]+ \| Action: [^|]+$`)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestFormatLine(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	assert.Equal(t, "[2026-03-04 05:06:07] | User: Ada | Controller: Todo | Action: Index\n",
		FormatLine(ts, "Ada", "Todo", "Index"))
	assert.Equal(t, "[2026-03-04 05:06:07] | User: Anonymous | Controller: Inscription | Action: Index\n",
		FormatLine(ts, "  ", "Inscription", "Index"))
}

func TestLogAction_CreatesDirectoryLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Logs", "nested", "actions.log")
	l := New(path)

	_, err := os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(err), "directory must not exist before the first write")

	l.LogAction("Ada", "Todo", "Index")
	l.LogAction("", "Todo", "Add")

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "User: Ada | Controller: Todo | Action: Index")
	assert.Contains(t, lines[1], "User: Anonymous | Controller: Todo | Action: Add")
}

func TestLogAction_ConcurrentWritersDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l := New(path)

	const writers = 64
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			l.LogAction(fmt.Sprintf("user-%02d", i), "Todo", strings.Repeat("Act", 50))
		}(i)
	}
	wg.Wait()

	lines := readLines(t, path)
	require.Len(t, lines, writers)
	seen := map[string]bool{}
	for _, line := range lines {
		assert.Regexp(t, lineRE, line)
		user := strings.TrimPrefix(strings.Split(line, " | ")[1], "User: ")
		assert.False(t, seen[user], "duplicate line for %s", user)
		seen[user] = true
	}
	assert.Len(t, seen, writers)
}

func TestLogAction_FailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "Logs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	var diag bytes.Buffer
	l := New(filepath.Join(blocker, "actions.log"), WithDiagnostics(log.New(&diag, "", 0)))

	assert.NotPanics(t, func() { l.LogAction("Ada", "Todo", "Index") })
	assert.Contains(t, diag.String(), "actionlog: write")
}

func TestLogAction_UsesClock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	ts := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	New(path, WithClock(func() time.Time { return ts })).LogAction("Ada", "Theme", "Toggle")

	assert.Equal(t, []string{"[2025-12-31 23:59:59] | User: Ada | Controller: Theme | Action: Toggle"}, readLines(t, path))
}

func TestFormatLine_EscapesSeparatorsAndLineBreaks(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	forged := "Eve\n[2026-01-01 00:00:00] | User: admin | Controller: Todo | Action: Add"

	got := FormatLine(ts, forged, "Todo", "Index")

	assert.Equal(t, 1, strings.Count(got, "\n"))
	assert.Equal(t,
		`[2026-03-04 05:06:07] | User: Eve\n[2026-01-01 00:00:00] \| User: admin \| Controller: Todo \| Action: Add | Controller: Todo | Action: Index`+"\n",
		got)
	assert.Equal(t, "a?b", escapeField("a\x00b"))
	assert.Equal(t, `a\\\|b`, escapeField(`a\|b`))
}

func TestLogAction_OneLinePerCallWithHostileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l := New(path)

	l.LogAction("Eve\r\n[2026-01-01 00:00:00] | User: admin", "Inscription", "Index")
	l.LogAction("Eve", "Todo\nForged", "Index")

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `User: Eve\r\n[2026-01-01 00:00:00] \| User: admin | Controller: Inscription`)
	assert.Contains(t, lines[1], `Controller: Todo\nForged | Action: Index`)
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, New("").Path())
	assert.Equal(t, "x/y.log", New("x/y.log").Path())
}
