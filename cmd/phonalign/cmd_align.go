package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/sequence"
)

func (a *app) alignCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "align <seq-a> <seq-b>",
		Short: "Align two segmented sequences",
		Long: `Align two whitespace- or dash-segmented sequences and print both rows,
the alignment score and the normalized distance.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.cfg.Scorer()
			if err != nil {
				return err
			}
			opts, err := a.cfg.PairwiseOptions()
			if err != nil {
				return err
			}
			if mode != "" {
				m, err := pairwise.ParseMode(mode)
				if err != nil {
					return err
				}
				opts = append(opts, pairwise.WithMode(m))
			}

			x, y := sequence.Parse(args[0]), sequence.Parse(args[1])
			done := a.rec.Stage("align")
			aln, err := pairwise.Align(x, y, s, opts...)
			if err != nil {
				return err
			}
			d, err := pairwise.Distance(x, y, s, opts...)
			if err != nil {
				return err
			}
			done()
			a.rec.Alignments(aln.Mode.String(), 1)
			a.logger.Debug("aligned",
				zap.String("mode", aln.Mode.String()),
				zap.Float64("score", aln.Score),
				zap.Float64("distance", d))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, aln.String())
			fmt.Fprintf(out, "score\t%g\n", aln.Score)
			fmt.Fprintf(out, "distance\t%.4f\n", d)

			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "global, local or overlap (overrides config)")

	return cmd
}
