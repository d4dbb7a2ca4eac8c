package app

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/picoterm/internal/renderer/dirty"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics() returned nil")
	}

	snapshot := m.Snapshot()
	if snapshot.EventCount != 0 {
		t.Errorf("expected 0 events, got %d", snapshot.EventCount)
	}
	if snapshot.AvgEventNs != 0 {
		t.Errorf("expected 0 average with no events, got %d", snapshot.AvgEventNs)
	}
	if snapshot.PartialRate() != 0 {
		t.Errorf("expected 0 partial rate with no frames, got %f", snapshot.PartialRate())
	}
}

func TestMetrics_RecordEvent(t *testing.T) {
	m := NewMetrics()

	m.RecordEvent(1*time.Millisecond, nil)
	m.RecordEvent(3*time.Millisecond, errors.New("boom"))
	m.RecordEvent(2*time.Millisecond, nil)

	snapshot := m.Snapshot()
	if snapshot.EventCount != 3 {
		t.Errorf("expected 3 events, got %d", snapshot.EventCount)
	}
	if snapshot.ErrorCount != 1 {
		t.Errorf("expected 1 error, got %d", snapshot.ErrorCount)
	}
	if snapshot.AvgEventNs != int64(2*time.Millisecond) {
		t.Errorf("expected avg 2ms, got %d ns", snapshot.AvgEventNs)
	}
	if snapshot.MaxEventNs != int64(3*time.Millisecond) {
		t.Errorf("expected max 3ms, got %d ns", snapshot.MaxEventNs)
	}
}

func TestMetrics_RecordRender(t *testing.T) {
	m := NewMetrics()

	m.RecordRender(dirty.All(), 4*time.Millisecond)
	m.RecordRender(dirty.SingleLine(3), 1*time.Millisecond)
	m.RecordRender(dirty.Skeleton(), 1*time.Millisecond)
	m.RecordRender(dirty.LineRange(1, 5), 2*time.Millisecond)
	m.RecordRender(dirty.None(), 0)
	m.RecordRender(dirty.None(), 0)

	snapshot := m.Snapshot()
	if snapshot.RenderCount != 4 {
		t.Errorf("expected 4 frames, got %d", snapshot.RenderCount)
	}
	if snapshot.SkippedFrames != 2 {
		t.Errorf("expected 2 skipped frames, got %d", snapshot.SkippedFrames)
	}
	if snapshot.FullFrames != 1 {
		t.Errorf("expected 1 full frame, got %d", snapshot.FullFrames)
	}
	if snapshot.AvgRenderNs != int64(2*time.Millisecond) {
		t.Errorf("expected avg 2ms, got %d ns", snapshot.AvgRenderNs)
	}
	if rate := snapshot.PartialRate(); rate != 75 {
		t.Errorf("expected partial rate 75, got %f", rate)
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(2 * time.Millisecond)

	elapsed := timer.Stop()
	if elapsed < 2*time.Millisecond {
		t.Errorf("expected at least 2ms, got %v", elapsed)
	}
	if timer.Elapsed() >= elapsed {
		t.Error("expected Stop to reset the timer")
	}
}
