package sweep

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdUtil "github.com/techishthoughts/serbench/cmd/util"
	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/metrics"
	"github.com/techishthoughts/serbench/lib/payload"
	"github.com/techishthoughts/serbench/lib/report"
	"github.com/techishthoughts/serbench/lib/serializer"
)

var (
	sweepCmdConfig bench.BenchmarkConfig
	SweepCmd       = &cobra.Command{
		Use:     "sweep",
		Short:   "Benchmark multiple backends across multiple tiers",
		Long:    `Benchmark every selected backend against every selected complexity tier and print a comparison table. The configuration can be set via command line flags or environment variables. The format of the environment variables is SERBENCH_<flag> (e.g. SERBENCH_BACKENDS=json,gob)`,
		PreRunE: processConfig,
		RunE:    runSweep,
	}
)

func init() {
	// add flags
	cmdUtil.SetupBenchFlags(SweepCmd)

	key := "backends"
	SweepCmd.PersistentFlags().String(key, "all", cmdUtil.WrapString("Comma-separated list of backends to benchmark, or 'all' for every registered backend"))

	key = "tiers"
	SweepCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Comma-separated list of complexity tiers to sweep (small, medium, large, huge) - defaults to the single tier from --tier"))

	key = "concurrency"
	SweepCmd.PersistentFlags().Int(key, 1, cmdUtil.WrapString("Number of benchmarks to run in parallel. Values above 1 speed up the sweep but contaminate the CPU/memory samples of concurrent runs"))

	key = "csv"
	SweepCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Write the comparison as CSV to the given file path"))

	key = "prometheus"
	SweepCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Write the aggregated gauges in Prometheus exposition format to the given file path"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := cmdUtil.LoadEnvAndBindFlags(cmd); err != nil {
		return err
	}

	cfg, err := cmdUtil.GetBenchConfig()
	if err != nil {
		return err
	}
	sweepCmdConfig = cfg
	return nil
}

// runSweep executes the full backend x tier matrix
func runSweep(_ *cobra.Command, _ []string) error {
	registry := serializer.DefaultRegistry()

	backends, err := selectBackends(registry)
	if err != nil {
		return err
	}
	tiers, err := selectTiers()
	if err != nil {
		return err
	}

	concurrency := viper.GetInt("concurrency")
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > 1 && sweepCmdConfig.MemoryMonitoring {
		logrus.Warn("running with concurrency > 1 degrades resource sample fidelity")
	}

	type job struct {
		backend string
		tier    payload.ComplexityTier
	}

	jobs := make(chan job)
	results := xsync.NewMapOf[string, *bench.BenchmarkResult]()

	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				adapter, err := registry.Get(j.backend)
				if err != nil {
					recordErr(&errMu, &firstErr, err)
					continue
				}

				cfg := sweepCmdConfig
				cfg.Tier = j.tier

				result, err := bench.Run(adapter, cfg)
				if err != nil {
					recordErr(&errMu, &firstErr, fmt.Errorf("%s/%s: %w", j.backend, j.tier, err))
					continue
				}
				results.Store(fmt.Sprintf("%s/%s", j.backend, j.tier), &result)
			}
		}()
	}

	for _, backend := range backends {
		for _, tier := range tiers {
			jobs <- job{backend: backend, tier: tier}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	all := make([]*bench.BenchmarkResult, 0, results.Size())
	results.Range(func(_ string, r *bench.BenchmarkResult) bool {
		all = append(all, r)
		return true
	})

	comparison := report.NewComparison(all)
	comparison.RenderTable(os.Stdout)

	if path := viper.GetString("csv"); path != "" {
		if err := writeCSV(comparison, path); err != nil {
			return err
		}
		fmt.Printf("wrote CSV to %s\n", path)
	}

	if path := viper.GetString("prometheus"); path != "" {
		if err := writeMetrics(all, path); err != nil {
			return err
		}
		fmt.Printf("wrote metrics to %s\n", path)
	}

	return nil
}

func recordErr(mu *sync.Mutex, dst *error, err error) {
	mu.Lock()
	defer mu.Unlock()
	if *dst == nil {
		*dst = err
	}
	logrus.WithError(err).Error("benchmark failed")
}

// selectBackends resolves the --backends flag against the registry
func selectBackends(registry *serializer.Registry) ([]string, error) {
	raw := viper.GetString("backends")
	if raw == "" || raw == "all" {
		return registry.Names(), nil
	}

	var backends []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := registry.Get(name); err != nil {
			return nil, err
		}
		backends = append(backends, name)
	}
	if len(backends) == 0 {
		return nil, fmt.Errorf("no backends selected")
	}
	return backends, nil
}

// selectTiers resolves the --tiers flag, falling back to the single --tier
func selectTiers() ([]payload.ComplexityTier, error) {
	raw := viper.GetString("tiers")
	if raw == "" {
		return []payload.ComplexityTier{sweepCmdConfig.Tier}, nil
	}
	if raw == "all" {
		return payload.Tiers(), nil
	}

	var tiers []payload.ComplexityTier
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tier, err := payload.ParseTier(name)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("no tiers selected")
	}
	return tiers, nil
}

func writeCSV(comparison *report.Comparison, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return comparison.WriteCSV(f)
}

func writeMetrics(results []*bench.BenchmarkResult, path string) error {
	exporter := metrics.NewExporter()
	for _, r := range results {
		exporter.Publish(r)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	exporter.WritePrometheus(f)
	return nil
}
