package monitor

import (
	"testing"
	"time"
)

// TestStartStop tests a basic monitoring window over some allocation work
func TestStartStop(t *testing.T) {
	h, err := Start(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("failed to start monitor: %v", err)
	}

	// Allocate so the window observes heap movement.
	buf := make([][]byte, 0, 100)
	for i := 0; i < 100; i++ {
		buf = append(buf, make([]byte, 64*1024))
		time.Sleep(time.Millisecond)
	}
	_ = buf

	snap := h.Stop()

	if !snap.Valid {
		t.Fatal("expected valid snapshot")
	}
	if snap.SampleCount < 1 {
		t.Errorf("expected at least one sample, got %d", snap.SampleCount)
	}
	if snap.Duration <= 0 {
		t.Errorf("expected positive duration, got %s", snap.Duration)
	}
	if snap.PeakHeapBytes == 0 {
		t.Error("expected non-zero peak heap")
	}
}

// TestStopIdempotent tests that repeated Stop calls return the same frozen
// snapshot
func TestStopIdempotent(t *testing.T) {
	h, err := Start(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("failed to start monitor: %v", err)
	}

	time.Sleep(25 * time.Millisecond)

	first := h.Stop()
	second := h.Stop()

	if first != second {
		t.Errorf("snapshots differ between Stop calls:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestShortWindow tests that a window shorter than the interval still
// produces the final flush sample
func TestShortWindow(t *testing.T) {
	h, err := Start(time.Second)
	if err != nil {
		t.Fatalf("failed to start monitor: %v", err)
	}

	snap := h.Stop()

	if !snap.Valid {
		t.Error("expected valid snapshot from flush sample")
	}
	if snap.SampleCount < 1 {
		t.Errorf("expected at least one sample, got %d", snap.SampleCount)
	}
}

// TestDefaultInterval tests the interval fallback for non-positive values
func TestDefaultInterval(t *testing.T) {
	h, err := Start(0)
	if err != nil {
		t.Fatalf("failed to start monitor: %v", err)
	}
	if h.interval != DefaultInterval {
		t.Errorf("expected default interval %s, got %s", DefaultInterval, h.interval)
	}
	h.Stop()
}

// TestMemoryUsageMB tests the mebibyte conversion
func TestMemoryUsageMB(t *testing.T) {
	s := Snapshot{PeakHeapBytes: 4 * 1024 * 1024}
	if got := s.MemoryUsageMB(); got != 4.0 {
		t.Errorf("expected 4.0 MB, got %f", got)
	}
}
