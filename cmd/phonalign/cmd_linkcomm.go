package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/core"
	"github.com/katalvlaran/phonalign/linkcomm"
	"github.com/katalvlaran/phonalign/matrix"
)

func (a *app) linkcommCmd() *cobra.Command {
	var (
		threshold float64
		tanimoto  bool
		fromDM    bool
		format    string
		cut       float64
		nodes     bool
	)
	cmd := &cobra.Command{
		Use:   "linkcomm <edges|matrix>",
		Short: "Cluster graph edges into link communities",
		Long: `Read "u v [weight]" edge lines ("-" for stdin), or with --matrix a
distance matrix whose pairs at or below --cut become edges, and print
edge<TAB>u<TAB>v<TAB>community for the partition of maximal density.
With --nodes print node<TAB>communities instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g   *core.Graph
				err error
			)
			if fromDM {
				g, err = a.matrixGraph(cmd, args[0], format, cut)
			} else {
				g, err = readGraph(cmd, args[0])
			}
			if err != nil {
				return err
			}
			opts := a.cfg.LinkOptions(a.logger)
			if cmd.Flags().Changed("threshold") {
				opts = append(opts, linkcomm.WithThreshold(threshold))
			}
			if tanimoto {
				opts = append(opts, linkcomm.WithTanimoto())
			}

			done := a.rec.Stage("linkcomm")
			res, err := linkcomm.Cluster(g, opts...)
			if err != nil {
				return err
			}
			done()
			a.rec.Merges("linkcomm", g.EdgeCount()-len(res.Communities))
			a.logger.Info("link communities",
				zap.Int("edges", g.EdgeCount()),
				zap.Int("communities", len(res.Communities)),
				zap.Float64("density", res.BestDensity))

			out := cmd.OutOrStdout()
			if nodes {
				for _, v := range g.Vertices() {
					ids := make([]string, 0, len(res.NodeCommunities[v]))
					for _, c := range res.NodeCommunities[v] {
						ids = append(ids, strconv.Itoa(c))
					}
					fmt.Fprintf(out, "%s\t%s\n", v, strings.Join(ids, ","))
				}
			} else {
				for _, e := range g.Edges() {
					fmt.Fprintf(out, "%s\t%s\t%s\t%d\n", e.ID, e.From, e.To, res.EdgeCommunity[e.ID])
				}
			}
			fmt.Fprintf(out, "# threshold\t%.4f\n# density\t%.4f\n", res.BestThreshold, res.BestDensity)

			return nil
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&threshold, "threshold", 0, "stop once 1-similarity exceeds this (overrides config)")
	fl.BoolVar(&tanimoto, "tanimoto", false, "use Tanimoto similarity")
	fl.BoolVar(&fromDM, "matrix", false, "input is a distance matrix")
	fl.StringVar(&format, "format", "whitespace", "matrix layout: whitespace or csv")
	fl.Float64Var(&cut, "cut", 0, "keep matrix pairs with distance <= cut (default from config)")
	fl.BoolVar(&nodes, "nodes", false, "print node memberships instead of edges")

	return cmd
}

func (a *app) matrixGraph(cmd *cobra.Command, path, format string, cut float64) (*core.Graph, error) {
	f, err := matrix.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	rc, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	dm, err := matrix.ReadDistance(rc, f)
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("cut") {
		cut = a.cfg.Link.MatrixCut
	}

	return linkcomm.FromMatrix(dm, cut)
}
