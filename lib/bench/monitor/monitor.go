package monitor

import (
	"context"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/procfs"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "monitor")

// DefaultInterval is the sampling interval used by Start.
const DefaultInterval = time.Second

// Snapshot summarizes resource usage over one monitoring window. Absent
// metrics are flagged rather than reported as zero: CPUValid is false when
// procfs was unavailable, Valid is false when no sample was taken at all.
type Snapshot struct {
	AvgCPUPercent    float64
	PeakHeapBytes    uint64
	PeakRSSBytes     uint64
	MemoryDeltaBytes int64
	GCCount          uint32
	GCPauseTotal     time.Duration
	SampleCount      int
	Duration         time.Duration
	Valid            bool
	CPUValid         bool
}

// MemoryUsageMB returns the peak heap in mebibytes.
func (s Snapshot) MemoryUsageMB() float64 {
	return float64(s.PeakHeapBytes) / (1024.0 * 1024.0)
}

// Handle is one running (or stopped) monitoring window. Create with Start.
type Handle struct {
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}

	// proc is nil when /proc is unavailable; CPU/RSS sampling degrades.
	proc *procfs.Proc

	startHeap  uint64
	startGC    uint32
	startPause uint64
	startCPU   float64
	startTime  time.Time

	mu       sync.Mutex
	stopped  bool
	peakHeap uint64
	peakRSS  uint64
	samples  int
	snap     Snapshot
}

// Start begins sampling at the given interval (DefaultInterval when <= 0).
// The returned handle must be stopped, typically via defer, so the sampling
// goroutine is released even when the measured operation panics.
func Start(interval time.Duration) (*Handle, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{
		interval:  interval,
		cancel:    cancel,
		done:      make(chan struct{}),
		startTime: time.Now(),
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	h.startHeap = ms.HeapAlloc
	h.peakHeap = ms.HeapAlloc
	h.startGC = ms.NumGC
	h.startPause = ms.PauseTotalNs

	if proc, err := procfs.NewProc(os.Getpid()); err == nil {
		if stat, err := proc.Stat(); err == nil {
			h.proc = &proc
			h.startCPU = stat.CPUTime()
			h.peakRSS = uint64(stat.ResidentMemory())
		} else {
			log.WithError(err).Warn("proc stat unavailable, CPU sampling disabled")
		}
	} else {
		log.WithError(err).Debug("procfs unavailable, CPU sampling disabled")
	}

	go h.loop(ctx)
	return h, nil
}

// Stop cancels sampling, flushes the last partial window and returns the
// frozen snapshot. Safe to call more than once.
func (h *Handle) Stop() Snapshot {
	h.mu.Lock()
	if h.stopped {
		snap := h.snap
		h.mu.Unlock()
		return snap
	}
	h.stopped = true
	h.mu.Unlock()

	h.cancel()
	<-h.done

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

func (h *Handle) loop(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.sample()
		case <-ctx.Done():
			// Flush the final partial window before shutting down.
			h.sample()
			h.finalize()
			return
		}
	}
}

func (h *Handle) sample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.samples++
	if ms.HeapAlloc > h.peakHeap {
		h.peakHeap = ms.HeapAlloc
	}
	if h.proc != nil {
		if stat, err := h.proc.Stat(); err == nil {
			if rss := uint64(stat.ResidentMemory()); rss > h.peakRSS {
				h.peakRSS = rss
			}
		}
	}
}

func (h *Handle) finalize() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	elapsed := time.Since(h.startTime)

	h.mu.Lock()
	defer h.mu.Unlock()

	snap := Snapshot{
		PeakHeapBytes:    h.peakHeap,
		PeakRSSBytes:     h.peakRSS,
		MemoryDeltaBytes: int64(ms.HeapAlloc) - int64(h.startHeap),
		GCCount:          ms.NumGC - h.startGC,
		GCPauseTotal:     time.Duration(ms.PauseTotalNs - h.startPause),
		SampleCount:      h.samples,
		Duration:         elapsed,
		Valid:            h.samples > 0,
	}

	if h.proc != nil && elapsed > 0 {
		if stat, err := h.proc.Stat(); err == nil {
			snap.AvgCPUPercent = (stat.CPUTime() - h.startCPU) / elapsed.Seconds() * 100.0
			snap.CPUValid = true
		}
	}

	h.snap = snap
}
