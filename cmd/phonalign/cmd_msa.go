package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/msa"
	"github.com/katalvlaran/phonalign/tree"
)

func (a *app) msaCmd() *cobra.Command {
	var (
		mode   string
		refine bool
		guide  string
	)
	cmd := &cobra.Command{
		Use:   "msa <sequences.tsv>",
		Short: "Align a set of sequences",
		Long: `Read taxon<TAB>sequence lines ("-" for stdin) and print a multiple
alignment, one taxon<TAB>row per line, followed by its sum-of-pairs score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxa, seqs, err := readSequences(cmd, args[0], false)
			if err != nil {
				return err
			}
			s, err := a.cfg.Scorer()
			if err != nil {
				return err
			}
			opts, err := a.cfg.MSAOptions(a.logger)
			if err != nil {
				return err
			}
			if guide != "" {
				t, err := readNewick(guide)
				if err != nil {
					return err
				}
				opts = append(opts, msa.WithGuideTree(t))
			}
			if mode == "" {
				mode = a.cfg.MSA.Mode
			}
			if !cmd.Flags().Changed("refine") {
				refine = a.cfg.MSA.Refine
			}

			al, err := msa.New(seqs, taxa, s, opts...)
			if err != nil {
				return err
			}
			done := a.rec.Stage("msa")
			var aln msa.Alignment
			switch mode {
			case "progressive":
				aln, err = al.Progressive()
			case "library":
				aln, err = al.Library()
			default:
				return fmt.Errorf("msa mode %q: %w", mode, phonalign.ErrConfiguration)
			}
			if err != nil {
				return err
			}
			if refine {
				if aln, err = al.Refine(aln); err != nil {
					return err
				}
			}
			done()
			a.rec.Alignments(mode, 1)
			a.rec.Merges("msa", len(taxa)-1)

			sp, err := al.SumOfPairs(aln)
			if err != nil {
				return err
			}
			a.logger.Info("msa done",
				zap.String("mode", mode),
				zap.Int("taxa", len(taxa)),
				zap.Int("columns", aln.Len()),
				zap.Float64("sum_of_pairs", sp))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, aln.String())
			fmt.Fprintf(out, "# sum-of-pairs\t%g\n", sp)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", "", "progressive or library (overrides config)")
	f.BoolVar(&refine, "refine", false, "iteratively refine the alignment")
	f.StringVar(&guide, "guide", "", "Newick guide tree file")

	return cmd
}

func readNewick(path string) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guide tree: %w", err)
	}

	return tree.ParseNewick(strings.TrimSpace(string(data)))
}
