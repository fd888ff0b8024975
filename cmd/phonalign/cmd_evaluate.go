package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/evaluate"
)

func (a *app) evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <gold.tsv> <test.tsv>",
		Short: "Score a partition against a gold standard",
		Long: `Read two item<TAB>cluster files and print b-cubed and pairwise
precision, recall and F1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gold, err := readPartition(cmd, args[0])
			if err != nil {
				return err
			}
			test, err := readPartition(cmd, args[1])
			if err != nil {
				return err
			}

			bc, err := evaluate.BCubes(gold, test)
			if err != nil {
				return err
			}
			pr, err := evaluate.Pairs(gold, test)
			if err != nil {
				return err
			}

			a.logger.Info("partitions scored",
				zap.Int("items", len(gold)),
				zap.Float64("bcubed_f1", bc.F1),
				zap.Float64("pairs_f1", pr.F1))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bcubed\t%s\n", bc)
			fmt.Fprintf(out, "pairs\t%s\n", pr)

			return nil
		},
	}
}
