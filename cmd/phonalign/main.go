// Command phonalign aligns phonetic sequences, builds distance matrices and
// trees, clusters link graphs and scores partitions.
//
//	phonalign align "t o x t a" "t o k t a"
//	phonalign msa words.tsv --mode library --refine
//	phonalign distances words.tsv --format csv > dist.csv
//	phonalign tree dist.csv --format csv --method nj
//	phonalign linkcomm edges.txt
//	phonalign evaluate gold.tsv test.tsv
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
