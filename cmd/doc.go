// Package cmd implements the command-line interface for the serbench
// serialization benchmark harness. It provides a hierarchical command
// structure with operations for running benchmarks and inspecting the
// available backends.
//
// The package is organized into several subpackages:
//
//   - run: Command for benchmarking a single serialization backend
//   - sweep: Command for benchmarking multiple backends across multiple tiers
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See serbench -help for a list of all commands.
package cmd
