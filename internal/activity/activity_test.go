package activity

import (
	"testing"
	"time"
)

// testLog returns a log with a fixed clock so timestamps are deterministic.
func testLog(at time.Time) *Log {
	l := NewLog()
	l.now = func() time.Time { return at }
	return l
}

func TestRecord_Format(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	l := testLog(when)

	l.Record("correction requested")

	entry, ok := l.Newest()
	if !ok {
		t.Fatal("Newest() reported no entries after Record")
	}
	if got, want := entry.String(), "[09:26:53] correction requested"; got != want {
		t.Errorf("Entry.String() = %q, want %q", got, want)
	}
}

func TestRecord_GrowsByOne(t *testing.T) {
	l := testLog(time.Now())

	for i := 1; i <= 5; i++ {
		l.Record("event")
		if l.Len() != i {
			t.Fatalf("Len() after %d records = %d, want %d", i, l.Len(), i)
		}
	}
}

func TestEntries_NewestFirst(t *testing.T) {
	l := NewLog()
	tick := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	l.Record("first")
	l.Record("second")
	l.Record("third")

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}

	want := []string{"third", "second", "first"}
	for i, w := range want {
		if entries[i].Message != w {
			t.Errorf("Entries()[%d].Message = %q, want %q", i, entries[i].Message, w)
		}
	}
}

func TestLines_NewestFirst(t *testing.T) {
	when := time.Date(2026, 3, 14, 23, 59, 1, 0, time.UTC)
	l := testLog(when)

	l.Record("older")
	l.Record("newer")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d lines, want 2", len(lines))
	}
	if lines[0] != "[23:59:01] newer" {
		t.Errorf("Lines()[0] = %q, want newest entry first", lines[0])
	}
	if lines[1] != "[23:59:01] older" {
		t.Errorf("Lines()[1] = %q, want oldest entry last", lines[1])
	}
}

func TestRecordf(t *testing.T) {
	l := testLog(time.Now())

	l.Recordf("corrections ready: %d issue(s) in %s", 3, "HTML")

	entry, _ := l.Newest()
	if got, want := entry.Message, "corrections ready: 3 issue(s) in HTML"; got != want {
		t.Errorf("Recordf message = %q, want %q", got, want)
	}
}

func TestRecordError_Flagged(t *testing.T) {
	l := testLog(time.Now())

	l.Record("corrections requested")
	l.RecordError("correction failed: boom")

	entries := l.Entries()
	if !entries[0].IsError {
		t.Error("RecordError entry not flagged as error")
	}
	if entries[1].IsError {
		t.Error("Record entry flagged as error")
	}
}

func TestNewest_Empty(t *testing.T) {
	l := NewLog()

	if _, ok := l.Newest(); ok {
		t.Error("Newest() on empty log reported an entry")
	}
	if l.Len() != 0 {
		t.Errorf("Len() on empty log = %d, want 0", l.Len())
	}
}

func TestEntries_CopyIsIndependent(t *testing.T) {
	l := testLog(time.Now())
	l.Record("only")

	entries := l.Entries()
	entries[0].Message = "mutated"

	got, _ := l.Newest()
	if got.Message != "only" {
		t.Error("mutating the Entries() copy changed the log")
	}
}
