package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/matrix"
	"github.com/katalvlaran/phonalign/tree"
)

func (a *app) treeCmd() *cobra.Command {
	var (
		format    string
		method    string
		topology  bool
		flat      bool
		threshold float64
	)
	cmd := &cobra.Command{
		Use:   "tree <matrix>",
		Short: "Build a tree or flat clusters from a distance matrix",
		Long: `Read a distance matrix ("-" for stdin) and print a Newick tree, or with
--flat the taxon<TAB>cluster assignment of a threshold cut.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := matrix.ParseFormat(format)
			if err != nil {
				return err
			}
			rc, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer rc.Close()
			dm, err := matrix.ReadDistance(rc, f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if flat {
				link, err := a.cfg.Linkage()
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("threshold") {
					threshold = a.cfg.Tree.Threshold
				}
				done := a.rec.Stage("flat")
				clusters, err := tree.FlatCluster(dm, threshold, link)
				if err != nil {
					return err
				}
				done()
				a.logger.Info("flat clusters",
					zap.Float64("threshold", threshold),
					zap.String("linkage", link.String()))
				for _, taxon := range dm.Labels() {
					fmt.Fprintf(out, "%s\t%d\n", taxon, clusters[taxon])
				}

				return nil
			}

			m, err := a.cfg.TreeMethod()
			if method != "" {
				m, err = tree.ParseMethod(method)
			}
			if err != nil {
				return err
			}
			done := a.rec.Stage("tree")
			t, err := m.Build(dm)
			if err != nil {
				return err
			}
			done()
			a.rec.Merges(m.String(), t.InternalCount())
			a.logger.Info("tree built",
				zap.String("method", m.String()),
				zap.Int("leaves", len(t.Leaves())))

			if topology {
				fmt.Fprintln(out, t.Topology())
			} else {
				fmt.Fprintln(out, t.Newick())
			}

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&format, "format", "whitespace", "input layout: whitespace or csv")
	fl.StringVar(&method, "method", "", "upgma or nj (overrides config)")
	fl.BoolVar(&topology, "topology", false, "print Newick without branch lengths")
	fl.BoolVar(&flat, "flat", false, "print flat clusters instead of a tree")
	fl.Float64Var(&threshold, "threshold", 0, "flat clustering threshold (default from config)")

	return cmd
}
