package routetable

import (
	"fmt"
	"sync"
	"testing"
)

type capturedLogEntry struct {
	msg   string
	attrs map[string]any
}

type capturedLogger struct {
	mu      sync.Mutex
	entries []capturedLogEntry
}

func (l *capturedLogger) Warn(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, capturedLogEntry{
		msg:   msg,
		attrs: attrsToMap(args),
	})
}

func (l *capturedLogger) all() []capturedLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]capturedLogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func attrsToMap(args []any) map[string]any {
	attrs := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}
		attrs[key] = args[i+1]
	}
	return attrs
}

type mockMetrics struct {
	mu          sync.Mutex
	inserts     map[string]int
	lookups     map[string]int
	rangeEvents map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		inserts:     make(map[string]int),
		lookups:     make(map[string]int),
		rangeEvents: make(map[string]int),
	}
}

func (m *mockMetrics) RecordInsert(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts[result]++
}

func (m *mockMetrics) RecordLookup(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[result]++
}

func (m *mockMetrics) RecordRangeEvent(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rangeEvents[event]++
}

func (m *mockMetrics) insertCount(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserts[result]
}

func (m *mockMetrics) lookupCount(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups[result]
}

func (m *mockMetrics) rangeEventCount(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rangeEvents[event]
}

func mustNewTable(t *testing.T, opts ...Option) *Table {
	t.Helper()

	table, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return table
}

func mustInsertRange(t *testing.T, table *Table, start, end, dest string) {
	t.Helper()

	if err := table.InsertRange(start, end, dest); err != nil {
		t.Fatalf("InsertRange(%q, %q, %q) error = %v", start, end, dest, err)
	}
}

func lookupDest(t *testing.T, table *Table, query string) string {
	t.Helper()

	dest, ok, err := table.Lookup(query)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", query, err)
	}
	if !ok {
		return ""
	}
	return dest.String()
}
