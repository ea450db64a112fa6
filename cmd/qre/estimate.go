package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qre/job"
)

var jobFile string

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a job and print the JSON report",
	Example: `  qre estimate --job job.yaml
  qre estimate --job job.yaml --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return errors.Wrap(err, "logger")
		}
		defer func() { _ = logger.Sync() }()

		params, err := job.LoadFile(jobFile)
		if err != nil {
			return err
		}
		j, err := params.Build(logger)
		if err != nil {
			return err
		}

		logger.Debug("job loaded",
			zap.String("qubit", j.Qubit.String()),
			zap.String("qec_scheme", j.Protocol.Name),
			zap.Float64("error_budget", j.TotalBudget),
		)

		rep, err := j.Run(cmd.Context())
		if err != nil {
			return err
		}

		return rep.Encode(cmd.OutOrStdout())
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to the YAML job file")
	_ = estimateCmd.MarkFlagRequired("job")
}
