// Package activity keeps the user-facing audit trail of workflow events.
//
// Every workflow transition (request started, succeeded, failed, correction
// accepted or rejected) lands here as a timestamped entry. Entries are
// presented newest-first and are never evicted; the log lives only for the
// process lifetime. This is display state, not developer tracing - the slog
// file in internal/logger covers that.
package activity

import (
	"fmt"
	"time"
)

// Entry is a single immutable log line. IsError marks entries recorded for
// workflow failures so the log panel can highlight them.
type Entry struct {
	When    time.Time
	Message string
	IsError bool
}

// String renders the entry the way the log panel shows it.
func (e Entry) String() string {
	return "[" + e.When.Format("15:04:05") + "] " + e.Message
}

// Log is an insertion-ordered sequence of entries. It is owned by the
// composition root and only touched from the update loop, so it carries
// no locking.
type Log struct {
	entries []Entry
	now     func() time.Time
}

// NewLog returns an empty log using the wall clock.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Record adds one entry stamped with the current time.
func (l *Log) Record(message string) {
	l.entries = append(l.entries, Entry{When: l.now(), Message: message})
}

// Recordf is the printf convenience over Record.
func (l *Log) Recordf(format string, args ...interface{}) {
	l.Record(fmt.Sprintf(format, args...))
}

// RecordError adds one entry marked as a failure.
func (l *Log) RecordError(message string) {
	l.entries = append(l.entries, Entry{When: l.now(), Message: message, IsError: true})
}

// Len returns the number of entries recorded so far.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a newest-first copy of the log.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Lines returns the rendered entries newest-first, ready for a viewport.
func (l *Log) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// Newest returns the most recent entry and whether one exists.
func (l *Log) Newest() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
