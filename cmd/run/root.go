package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdUtil "github.com/techishthoughts/serbench/cmd/util"
	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/metrics"
	"github.com/techishthoughts/serbench/lib/report"
	"github.com/techishthoughts/serbench/lib/serializer"
)

var (
	runCmdConfig bench.BenchmarkConfig
	RunCmd       = &cobra.Command{
		Use:     "run",
		Short:   "Benchmark a single serialization backend",
		Long:    `Benchmark a single serialization backend against a synthetic dataset. The configuration can be set via command line flags or environment variables. The format of the environment variables is SERBENCH_<flag> (e.g. SERBENCH_ITERATIONS=50)`,
		PreRunE: processConfig,
		RunE:    runBenchmark,
	}
)

func init() {
	// add flags
	cmdUtil.SetupBenchFlags(RunCmd)

	key := "backend"
	RunCmd.PersistentFlags().String(key, "json", cmdUtil.WrapString("Serialization backend to benchmark (see 'serbench list')"))

	key = "csv"
	RunCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Write the result as CSV to the given file path"))

	key = "prometheus"
	RunCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Write the aggregated gauges in Prometheus exposition format to the given file path"))
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
	runCmdConfig = cfg
	return nil
}

// runBenchmark executes the benchmark for the selected backend
func runBenchmark(_ *cobra.Command, _ []string) error {
	registry := serializer.DefaultRegistry()
	adapter, err := registry.Get(viper.GetString("backend"))
	if err != nil {
		return err
	}

	fmt.Println(runCmdConfig.String())

	result, err := bench.Run(adapter, runCmdConfig)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	comparison := report.NewComparison([]*bench.BenchmarkResult{&result})
	comparison.RenderTable(os.Stdout)

	if path := viper.GetString("csv"); path != "" {
		if err := writeCSV(comparison, path); err != nil {
			return err
		}
		fmt.Printf("wrote CSV to %s\n", path)
	}

	if path := viper.GetString("prometheus"); path != "" {
		if err := writeMetrics(&result, path); err != nil {
			return err
		}
		fmt.Printf("wrote metrics to %s\n", path)
	}

	return nil
}

func writeCSV(comparison *report.Comparison, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return comparison.WriteCSV(f)
}

func writeMetrics(result *bench.BenchmarkResult, path string) error {
	exporter := metrics.NewExporter()
	exporter.Publish(result)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	exporter.WritePrometheus(f)
	return nil
}
