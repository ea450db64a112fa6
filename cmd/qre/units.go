package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qre/distill"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the pre-defined distillation unit templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tINPUTS\tOUTPUTS")
		for _, t := range append(distill.DefaultTemplates(), distill.Trivial1To1()) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", t.Name, t.Type, t.NumInputStates, t.NumOutputStates)
		}

		return w.Flush()
	},
}
