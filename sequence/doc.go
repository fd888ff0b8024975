// Package sequence holds the segment Sequence type and its tokenizers.
//
// A Sequence is an ordered list of phonetic segments ("t", "ʃ", "aː", ...).
// Segments are opaque strings: the package never splits a multi-character
// segment on its own, it only splits on explicit delimiters.
//
// Two input grammars are understood:
//
//	Parse("t o x t a")      → [t o x t a]   whitespace- or dash-delimited
//	Parse("t-o-x-t-a")      → [t o x t a]
//	ParseAligned("t (t s) - a") → [t ts - a] aligned rows: "-" is a gap,
//	                                         (...) merges its tokens into one
//	                                         segment
//
// Aligned sequences use Gap ("-") as the gap symbol.
package sequence
