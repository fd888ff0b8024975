package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/core"
	"github.com/katalvlaran/phonalign/evaluate"
	"github.com/katalvlaran/phonalign/sequence"
)

// openInput opens path, or the command's stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return f, nil
}

// scanLines calls fn for every non-blank line not starting with '#'.
// Line numbers are 1-based.
func scanLines(cmd *cobra.Command, path string, fn func(line int, text string) error) error {
	rc, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(n, text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), phonalign.ErrMalformedInput)
}

// readSequences reads "taxon<TAB>segments" lines. With aligned set, rows
// keep their gaps and parenthesised merged segments.
func readSequences(cmd *cobra.Command, path string, aligned bool) ([]string, []sequence.Sequence, error) {
	var (
		taxa []string
		seqs []sequence.Sequence
	)
	err := scanLines(cmd, path, func(line int, text string) error {
		taxon, row, ok := strings.Cut(text, "\t")
		if !ok {
			return malformed(line, "want taxon<TAB>sequence")
		}
		seq := sequence.Parse(row)
		if aligned {
			var err error
			if seq, err = sequence.ParseAligned(row); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		}
		taxa = append(taxa, strings.TrimSpace(taxon))
		seqs = append(seqs, seq)

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return taxa, seqs, nil
}

// readGraph reads "u v" or "u v weight" lines. Any weight column makes the
// graph weighted; lines without one then weigh 1.
func readGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	type edge struct {
		u, v string
		w    float64
	}
	var (
		edges    []edge
		weighted bool
	)
	err := scanLines(cmd, path, func(line int, text string) error {
		f := strings.Fields(text)
		switch len(f) {
		case 2:
			edges = append(edges, edge{u: f[0], v: f[1], w: 1})
		case 3:
			w, err := strconv.ParseFloat(f[2], 64)
			if err != nil {
				return malformed(line, "weight %q", f[2])
			}
			edges = append(edges, edge{u: f[0], v: f[1], w: w})
			weighted = true
		default:
			return malformed(line, "want 2 or 3 fields, got %d", len(f))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	// Loops and repeats are admitted here so linkcomm reports them.
	opts = append(opts, core.WithLoops(), core.WithMultiEdges())
	g := core.NewGraph(opts...)
	for _, e := range edges {
		w := e.w
		if !weighted {
			w = 0
		}
		if _, err := g.AddEdge(e.u, e.v, w); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.u, e.v, err)
		}
	}

	return g, nil
}

// readPartition reads "item<TAB>cluster" lines.
func readPartition(cmd *cobra.Command, path string) (evaluate.Partition[string], error) {
	p := make(evaluate.Partition[string])
	err := scanLines(cmd, path, func(line int, text string) error {
		f := strings.Fields(text)
		if len(f) != 2 {
			return malformed(line, "want item<TAB>cluster, got %d fields", len(f))
		}
		if _, dup := p[f[0]]; dup {
			return malformed(line, "item %q listed twice", f[0])
		}
		p[f[0]] = f[1]

		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}
