package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techishthoughts/serbench/cmd/run"
	"github.com/techishthoughts/serbench/cmd/sweep"
	"github.com/techishthoughts/serbench/cmd/util"
	"github.com/techishthoughts/serbench/lib/serializer"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "serbench",
		Short: "serialization benchmark harness",
		Long: fmt.Sprintf(`serbench (v%s)

A fairness-controlled benchmark harness for comparing serialization
and compression backends against identical synthetic datasets.`, Version),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return util.ConfigureLogging(level)
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of serbench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serbench v%s\n", Version)
		},
	}

	// listCmd prints every registered backend with its capabilities
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the available serialization backends",
		Run: func(cmd *cobra.Command, args []string) {
			registry := serializer.DefaultRegistry()
			names := registry.Names()
			sort.Strings(names)

			fmt.Printf("%-10s %-12s %-18s %s\n", "BACKEND", "FORMAT", "SCHEMA EVOLUTION", "COMPRESSION")
			for _, name := range names {
				adapter, err := registry.Get(name)
				if err != nil {
					continue
				}
				algorithms := adapter.SupportedCompressionAlgorithms()
				fmt.Printf("%-10s %-12s %-18s %s\n",
					adapter.Name(),
					adapter.Format(),
					yesNo(adapter.SupportsSchemaEvolution()),
					strings.Join(algorithms, ","),
				)
			}
		},
	}
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	// Add Commands
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(sweep.SweepCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (trace, debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
