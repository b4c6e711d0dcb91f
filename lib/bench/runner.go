package bench

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/techishthoughts/serbench/lib/bench/monitor"
	"github.com/techishthoughts/serbench/lib/payload"
)

var log = logrus.WithField("component", "bench")

// runState tracks the orchestrator state machine. Terminal states are DONE
// and FAILED.
type runState string

const (
	stateInit      runState = "INIT"
	stateWarmup    runState = "WARMUP"
	stateMeasure   runState = "MEASURE"
	stateAggregate runState = "AGGREGATE"
	stateDone      runState = "DONE"
	stateFailed    runState = "FAILED"
)

// Runner orchestrates benchmark runs. The zero value is usable; the fields
// tune harness behavior, not measurement semantics.
type Runner struct {
	// MonitorInterval overrides the resource sampling interval
	// (monitor.DefaultInterval when zero).
	MonitorInterval time.Duration
}

// Run drives a full benchmark with the default Runner.
func Run(a Adapter, cfg BenchmarkConfig) (BenchmarkResult, error) {
	return (&Runner{}).Run(a, cfg)
}

// Run executes INIT -> WARMUP -> MEASURE -> AGGREGATE for one adapter under
// one config. Recoverable iteration failures are recorded and the run
// continues; fatal errors (generation failure, adapter contract violation)
// abort the run and are returned alongside a result with Success=false.
func (r *Runner) Run(a Adapter, cfg BenchmarkConfig) (BenchmarkResult, error) {
	cfg = cfg.normalized()

	result := BenchmarkResult{
		RunID:            uuid.NewString(),
		Backend:          a.Name(),
		Config:           cfg,
		RoundtripSuccess: true,
		StartTime:        time.Now(),
		Success:          true,
	}

	runLog := log.WithFields(logrus.Fields{
		"run":     result.RunID,
		"backend": a.Name(),
		"tier":    cfg.Tier,
	})
	runLog.WithField("state", stateInit).Info("benchmark run starting")

	// INIT: one dataset per run, reused across iterations. The dataset is
	// immutable, so reuse does not violate determinism.
	if _, err := payload.ParseTier(string(cfg.Tier)); err != nil {
		return r.fail(&result, runLog, &GenerationError{Tier: cfg.Tier, Err: err})
	}
	ds := payload.Generate(cfg.Tier, cfg.Seed)

	algorithm := r.pickAlgorithm(a, cfg)

	// WARMUP: discarded iterations to keep one-time initialization costs out
	// of the measured steady state.
	if cfg.Warmup {
		runLog.WithField("state", stateWarmup).Debugf("running %d warmup iterations", cfg.WarmupIterations)
		for i := 0; i < cfg.WarmupIterations; i++ {
			sr := a.Serialize(ds)
			if sr.Success {
				_, _ = a.Deserialize(sr.Data)
			}
		}
	}

	// Resource monitoring is best-effort: failure to start degrades the run
	// (no snapshot) but never fails it.
	var mon *monitor.Handle
	if cfg.MemoryMonitoring {
		var err error
		mon, err = monitor.Start(r.MonitorInterval)
		if err != nil {
			runLog.WithError(err).Warn("resource monitor unavailable, continuing without resource metrics")
			mon = nil
		} else {
			// Paired release: the monitor goroutine stops even if an adapter
			// panics mid-measure.
			defer mon.Stop()
		}
	}

	runLog.WithField("state", stateMeasure).Debugf("measuring %d iterations", cfg.Iterations)

	for i := 0; i < cfg.Iterations; i++ {
		if err := r.runIteration(a, ds, cfg, algorithm, i, &result, runLog); err != nil {
			if mon != nil {
				mon.Stop()
			}
			return r.fail(&result, runLog, err)
		}
	}

	runLog.WithField("state", stateAggregate).Debug("aggregating results")

	if mon != nil {
		if snap := mon.Stop(); snap.Valid {
			result.Resources = &snap
		} else {
			runLog.Warn("resource monitor produced no samples, snapshot absent")
		}
	}

	result.EndTime = time.Now()

	runLog.WithFields(logrus.Fields{
		"state":        stateDone,
		"success_rate": result.SuccessRatePercent(),
		"roundtrip":    result.RoundtripSuccess,
	}).Info("benchmark run finished")

	return result, nil
}

// runIteration executes one serialize -> compress -> deserialize ->
// decompress -> roundtrip-check cycle. It returns an error only for fatal
// contract violations; everything else is recorded and tolerated.
func (r *Runner) runIteration(a Adapter, ds *payload.Dataset, cfg BenchmarkConfig, algorithm string, i int, result *BenchmarkResult, runLog *logrus.Entry) error {
	sr := a.Serialize(ds)

	if sr.Success && sr.Data == nil {
		return &ContractViolationError{Backend: a.Name(), Phase: "serialize", Reason: "successful result without data"}
	}
	if !sr.Success && sr.Error == "" {
		return &ContractViolationError{Backend: a.Name(), Phase: "serialize", Reason: "failed result without error message"}
	}

	result.serializationResults = append(result.serializationResults, sr)

	if !sr.Success {
		iterErr := &IterationError{Backend: a.Name(), Iteration: i, Phase: "serialize", Err: errors.New(sr.Error)}
		runLog.WithError(iterErr).Warn("iteration failed, continuing")
		return nil
	}

	// The bytes the roundtrip check will deserialize: the compressed payload
	// is decompressed first when compression is on and succeeded.
	wire := sr.Data

	if cfg.Compression {
		cr := a.Compress(sr.Data, algorithm)
		if cr.Success && cr.Data == nil && len(sr.Data) > 0 {
			return &ContractViolationError{Backend: a.Name(), Phase: "compress", Reason: "successful result without data"}
		}
		result.compressionResults = append(result.compressionResults, cr)

		if cr.Success {
			plain, err := a.Decompress(cr.Data, cr.Algorithm)
			if err != nil {
				runLog.WithField("iteration", i).WithError(err).Warn("decompress failed, roundtrip marked unsuccessful")
				result.RoundtripSuccess = false
				return nil
			}
			wire = plain
		} else {
			runLog.WithField("iteration", i).Warnf("compression failed: %s", cr.Error)
		}
	}

	if cfg.Roundtrip {
		out, err := a.Deserialize(wire)
		if err != nil {
			runLog.WithField("iteration", i).WithError(err).Warn("deserialize failed, roundtrip marked unsuccessful")
			result.RoundtripSuccess = false
			return nil
		}
		if out == nil {
			return &ContractViolationError{Backend: a.Name(), Phase: "deserialize", Reason: "nil dataset without error"}
		}
		if out.ObjectCount() != ds.ObjectCount() {
			runLog.WithField("iteration", i).Warnf("roundtrip mismatch: got %d objects, want %d", out.ObjectCount(), ds.ObjectCount())
			result.RoundtripSuccess = false
		}
	}

	return nil
}

// pickAlgorithm resolves the compression codec for a run: the configured
// algorithm if set, otherwise the adapter's first real algorithm, falling
// back to "NONE" for backends without compression support.
func (r *Runner) pickAlgorithm(a Adapter, cfg BenchmarkConfig) string {
	if !cfg.Compression {
		return "NONE"
	}
	if cfg.CompressionAlgorithm != "" {
		return cfg.CompressionAlgorithm
	}
	for _, alg := range a.SupportedCompressionAlgorithms() {
		if alg != "NONE" {
			return alg
		}
	}
	return "NONE"
}

func (r *Runner) fail(result *BenchmarkResult, runLog *logrus.Entry, err error) (BenchmarkResult, error) {
	result.Success = false
	result.Error = err.Error()
	result.EndTime = time.Now()
	runLog.WithField("state", stateFailed).WithError(err).Error("benchmark run aborted")
	return *result, err
}
