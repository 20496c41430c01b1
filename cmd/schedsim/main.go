// schedsim - interactive CPU scheduling simulator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/schedsim"
)

// CLI flags
var (
	configURL string
	seed      int64
	quantum   int
	traceFile string
	logLevel  string
	logFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "schedsim - single-machine CPU scheduling simulator",
	Long: `schedsim simulates fifo, sjf, round robin and priority scheduling over a set of synthetic processes.

Run without arguments to start the interactive shell.`,
	Version:       schedsim.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runShell,
}

var replayCmd = &cobra.Command{
	Use:   "replay <script-url>",
	Short: "Execute shell commands from a script",
	Long: `Execute shell commands read from a local or remote script, one command per line.

Examples:
  schedsim replay session.txt
  schedsim replay --seed 7 s3://bucket/sessions/rr.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configURL, "config", "c", "", "YAML configuration URL")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for generated process attributes (0 seeds from the clock)")
	rootCmd.PersistentFlags().IntVarP(&quantum, "quantum", "q", 0, "Round robin quantum in cycles")
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace-file", "", "Export OpenTelemetry spans to the file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(replayCmd)
}
