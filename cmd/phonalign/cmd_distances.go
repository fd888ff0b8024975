package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/distance"
	"github.com/katalvlaran/phonalign/matrix"
)

func (a *app) distancesCmd() *cobra.Command {
	var (
		format  string
		metric  string
		aligned bool
	)
	cmd := &cobra.Command{
		Use:   "distances <sequences.tsv>",
		Short: "Build a pairwise distance matrix",
		Long: `Read taxon<TAB>sequence lines ("-" for stdin) and write the pairwise
distance matrix in whitespace (PHYLIP-like) or CSV layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := matrix.ParseFormat(format)
			if err != nil {
				return err
			}
			taxa, seqs, err := readSequences(cmd, args[0], aligned)
			if err != nil {
				return err
			}
			s, err := a.cfg.Scorer()
			if err != nil {
				return err
			}
			opts, err := a.cfg.DistanceOptions(a.logger)
			if err != nil {
				return err
			}
			m, err := distance.ParseMetric(a.cfg.Distance.Metric)
			if metric != "" {
				m, err = distance.ParseMetric(metric)
			}
			if err != nil {
				return err
			}
			opts = append(opts, distance.WithMetric(m))

			done := a.rec.Stage("distances")
			dm, err := distance.BuildContext(cmd.Context(), seqs, taxa, s, opts...)
			if err != nil {
				return err
			}
			done()
			n := len(taxa)
			a.rec.Alignments(m.String(), n*(n-1)/2)
			a.logger.Info("distance matrix built",
				zap.Int("taxa", n),
				zap.String("metric", m.String()))

			return dm.Write(cmd.OutOrStdout(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&format, "format", "whitespace", "output layout: whitespace or csv")
	fl.StringVar(&metric, "metric", "", "alignment, edit or hamming (overrides config)")
	fl.BoolVar(&aligned, "aligned", false, "input rows are already aligned (keep gaps)")

	return cmd
}
