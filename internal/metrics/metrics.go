// Package metrics keeps process-wide counters for scans and selftests and
// renders them in Prometheus text exposition format.
package metrics

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds runtime counters for pdgid.
type Metrics struct {
	// Scans
	Scans          atomic.Int64
	ScanErrors     atomic.Int64
	CodesScanned   atomic.Int64
	CodesMatched   atomic.Int64
	ChunksDone     atomic.Int64
	WorkerPanics   atomic.Int64
	LastScanMillis atomic.Int64

	// Selftests
	Selftests        atomic.Int64
	SelftestFailures atomic.Int64

	startTime time.Time
}

var (
	global     *Metrics
	globalOnce sync.Once
)

// Global returns the process-wide metrics.
func Global() *Metrics {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// New creates an empty metrics set.
func New() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordChunk records one finished scan chunk.
func (m *Metrics) RecordChunk(scanned, matched int64) {
	m.ChunksDone.Add(1)
	m.CodesScanned.Add(scanned)
	m.CodesMatched.Add(matched)
}

// RecordPanic records a scan worker that panicked.
func (m *Metrics) RecordPanic() {
	m.WorkerPanics.Add(1)
}

// RecordScan records a finished scan.
func (m *Metrics) RecordScan(success bool, durationMs int64) {
	m.Scans.Add(1)
	if !success {
		m.ScanErrors.Add(1)
	}
	m.LastScanMillis.Store(durationMs)
}

// RecordSelftest records a selftest run
func (m *Metrics) RecordSelftest(healthy bool) {
	m.Selftests.Add(1)
	if !healthy {
		m.SelftestFailures.Add(1)
	}
}

type series struct {
	name, help, kind string
	value            int64
}

// WriteText writes every counter in Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# HELP pdgid_uptime_seconds Time since the process started\n# TYPE pdgid_uptime_seconds gauge\npdgid_uptime_seconds %.2f\n",
		time.Since(m.startTime).Seconds()); err != nil {
		return err
	}

	for _, s := range []series{
		{"pdgid_scans_total", "Scans run", "counter", m.Scans.Load()},
		{"pdgid_scan_errors_total", "Scans that failed or were cancelled", "counter", m.ScanErrors.Load()},
		{"pdgid_codes_scanned_total", "Codes evaluated by scans", "counter", m.CodesScanned.Load()},
		{"pdgid_codes_matched_total", "Codes kept by scan filters", "counter", m.CodesMatched.Load()},
		{"pdgid_scan_chunks_total", "Scan chunks completed", "counter", m.ChunksDone.Load()},
		{"pdgid_scan_worker_panics_total", "Scan workers recovered from a panic", "counter", m.WorkerPanics.Load()},
		{"pdgid_last_scan_duration_ms", "Duration of the last scan", "gauge", m.LastScanMillis.Load()},
		{"pdgid_selftests_total", "Selftests run", "counter", m.Selftests.Load()},
		{"pdgid_selftest_failures_total", "Selftests with failing checks", "counter", m.SelftestFailures.Load()},
	} {
		if _, err := fmt.Fprintf(w, "\n# HELP %s %s\n# TYPE %s %s\n%s %d\n", s.name, s.help, s.name, s.kind, s.name, s.value); err != nil {
			return err
		}
	}
	return nil
}
