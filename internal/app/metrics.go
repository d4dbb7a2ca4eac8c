// Package app provides the main application structure and coordination.
package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// Metrics tracks event loop statistics. It is logged at shutdown.
type Metrics struct {
	// Event processing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	eventMaxNs   atomic.Int64
	errorCount   atomic.Uint64

	// Rendering
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	skippedFrames atomic.Uint64
	fullFrames    atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordEvent records the time taken to dispatch one event.
func (m *Metrics) RecordEvent(duration time.Duration, err error) {
	ns := duration.Nanoseconds()
	m.eventCount.Add(1)
	m.eventTotalNs.Add(ns)
	if err != nil {
		m.errorCount.Add(1)
	}

	for {
		old := m.eventMaxNs.Load()
		if ns <= old {
			break
		}
		if m.eventMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records a frame drawn for region. None regions are
// counted as skipped frames.
func (m *Metrics) RecordRender(region dirty.Region, duration time.Duration) {
	if region.IsNone() {
		m.skippedFrames.Add(1)
		return
	}
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
	if region.Kind() == dirty.KindAll {
		m.fullFrames.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	eventCount := m.eventCount.Load()
	renderCount := m.renderCount.Load()

	var avgEventNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}

	var avgRenderNs int64
	if renderCount > 0 {
		avgRenderNs = m.renderTotalNs.Load() / int64(renderCount)
	}

	return MetricsSnapshot{
		Uptime:        time.Since(m.startTime),
		EventCount:    eventCount,
		AvgEventNs:    avgEventNs,
		MaxEventNs:    m.eventMaxNs.Load(),
		ErrorCount:    m.errorCount.Load(),
		RenderCount:   renderCount,
		AvgRenderNs:   avgRenderNs,
		SkippedFrames: m.skippedFrames.Load(),
		FullFrames:    m.fullFrames.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	EventCount    uint64
	AvgEventNs    int64
	MaxEventNs    int64
	ErrorCount    uint64
	RenderCount   uint64
	AvgRenderNs   int64
	SkippedFrames uint64
	FullFrames    uint64
}

// PartialRate returns the percentage of drawn frames that were not full
// redraws.
func (s MetricsSnapshot) PartialRate() float64 {
	if s.RenderCount == 0 {
		return 0
	}
	return float64(s.RenderCount-s.FullFrames) / float64(s.RenderCount) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}
