// Package phonalign aligns phonetic segment sequences and turns the results
// into trees, cognate partitions and communities.
//
// 🚀 What is phonalign?
//
//	A deterministic, pure-Go toolkit for historical-linguistics comparison:
//		• Scoring: identity, substitution tables, sound-class (Dolgopolsky) models
//		• Pairwise: global, local and overlap alignment with affine gaps (Gotoh)
//		• Multiple: progressive and library (consistency) alignment + refinement
//		• Distances: parallel N×N matrices from pairwise alignment
//		• Trees: UPGMA, Neighbor-Joining, Newick read/write, flat clustering
//		• Communities: link clustering by partition density
//		• Evaluation: b-cubed and pairwise precision / recall / F-score
//
// ✨ Determinism
//
//   - Every tie is broken by index order, never by map iteration.
//   - Parallel pairwise work (errgroup) writes into pre-indexed cells; merges
//     and selections stay single-threaded.
//   - Randomized refinement takes an explicit seed.
//
// Layout:
//
//	sequence/  segment tokenizer, gap helpers
//	scoring/   Scorer contract, substitution matrices, sound classes
//	pairwise/  DP engine and pairwise alignment, normalized distance
//	msa/       profiles, progressive / library alignment, refinement
//	matrix/    dense storage and labelled distance matrices
//	distance/  distance matrix builder
//	tree/      UPGMA, NJ, Newick, flat clustering
//	core/      undirected community graph
//	linkcomm/  link communities
//	evaluate/  partition comparison
//	config/    YAML configuration
//	metrics/   prometheus run metrics
//	cmd/       phonalign CLI
//
// Errors from every subpackage wrap one of ErrConfiguration,
// ErrInsufficientData or ErrMalformedInput.
//
//	go get github.com/katalvlaran/phonalign
package phonalign
