package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupBenchFlags adds the shared benchmark configuration flags to a command.
func SetupBenchFlags(cmd *cobra.Command) {
	key := "tier"
	cmd.PersistentFlags().String(key, "medium", WrapString("Workload complexity tier (small, medium, large, huge)"))

	key = "iterations"
	cmd.PersistentFlags().Int(key, bench.DefaultIterations, WrapString("Number of measured iterations per backend"))

	key = "warmup"
	cmd.PersistentFlags().Bool(key, false, WrapString("Run discarded warmup iterations before measuring"))

	key = "warmup-iterations"
	cmd.PersistentFlags().Int(key, bench.DefaultWarmupIterations, WrapString("Number of warmup iterations when warmup is enabled"))

	key = "compression"
	cmd.PersistentFlags().Bool(key, true, WrapString("Measure the compress/decompress leg of each iteration"))

	key = "compression-algorithm"
	cmd.PersistentFlags().String(key, "", WrapString("Compression algorithm to use (GZIP, SNAPPY, LZ4, ZSTD, BROTLI) - defaults to the backend's first supported algorithm"))

	key = "roundtrip"
	cmd.PersistentFlags().Bool(key, true, WrapString("Check that deserialized object counts match the input"))

	key = "monitor"
	cmd.PersistentFlags().Bool(key, true, WrapString("Sample process CPU/memory usage during the measure window"))

	key = "seed"
	cmd.PersistentFlags().Int64(key, payload.DefaultSeed, WrapString("Dataset generator seed - identical seeds yield identical datasets"))
}

// LoadEnvAndBindFlags loads dotenv files and binds a command's flags to
// viper so every flag can also come from the environment.
func LoadEnvAndBindFlags(cmd *cobra.Command) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("SERBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return viper.BindPFlags(cmd.Flags())
}

// GetBenchConfig reads the shared benchmark flags from viper into a config.
func GetBenchConfig() (bench.BenchmarkConfig, error) {
	tier, err := payload.ParseTier(viper.GetString("tier"))
	if err != nil {
		return bench.BenchmarkConfig{}, err
	}

	cfg := bench.DefaultConfig()
	cfg.Tier = tier
	cfg.Seed = viper.GetInt64("seed")
	cfg.Iterations = viper.GetInt("iterations")
	cfg.Warmup = viper.GetBool("warmup")
	cfg.WarmupIterations = viper.GetInt("warmup-iterations")
	cfg.Compression = viper.GetBool("compression")
	cfg.CompressionAlgorithm = strings.ToUpper(viper.GetString("compression-algorithm"))
	cfg.Roundtrip = viper.GetBool("roundtrip")
	cfg.MemoryMonitoring = viper.GetBool("monitor")

	return cfg, nil
}

// ConfigureLogging applies the global log level flag.
func ConfigureLogging(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)
	return nil
}
