package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qre",
	Short: "Quantum resource estimator",
	Long: `qre computes the physical qubits and runtime a fault-tolerant quantum
algorithm needs on a given qubit model and error correction scheme, including
the magic state factories that feed it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log search progress to stderr")
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(unitsCmd)
}

// newLogger logs warnings only, or everything in development format with
// --verbose.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
