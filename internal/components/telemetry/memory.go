package telemetry

import (
	"strings"
	"sync"
)

// Report is a single call recorded by MemoryAPI.
type Report struct {
	Level  string
	Id     string
	Params []any
	Count  int64
}

// MemoryAPI records every report in memory, it is meant for tests that need to
// assert that a component reported (or did not report) something.
type MemoryAPI struct {
	mutex   sync.Mutex
	reports []Report
}

func (m *MemoryAPI) record(r Report) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.reports = append(m.reports, r)
}

func (m *MemoryAPI) ReportBroken(id string, params ...any) {
	m.record(Report{Level: "broken", Id: id, Params: params})
}

func (m *MemoryAPI) ReportWarning(id string, params ...any) {
	m.record(Report{Level: "warning", Id: id, Params: params})
}

func (m *MemoryAPI) ReportDebug(msg string, params ...any) {
	m.record(Report{Level: "debug", Id: msg, Params: params})
}

func (m *MemoryAPI) ReportCount(id string, count int64) {
	m.record(Report{Level: "count", Id: id, Count: count})
}

// Reports returns a copy of every report of the given level, an empty level
// returns all of them.
func (m *MemoryAPI) Reports(level string) []Report {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var out []Report
	for _, r := range m.reports {
		if level == "" || r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// Has returns true if a report of `level` has an id ending with `idSuffix`.
func (m *MemoryAPI) Has(level, idSuffix string) bool {
	for _, r := range m.Reports(level) {
		if strings.HasSuffix(r.Id, idSuffix) {
			return true
		}
	}
	return false
}
