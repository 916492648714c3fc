// Package sentalign aligns two parallel sequences of text segments, such as
// the sentences of a document and of its translation, using only segment
// lengths.
//
// 🚀 What is sentalign?
//
//	A pure-Go implementation of the Gale–Church length-based aligner:
//		• distance: Gaussian length model and operation penalties
//		• align: dynamic-programming engine with deterministic backtrace
//		• group: operation list → two sequences of index groups
//		• text: alignment of weighted regions and of delimited strings
//		• matrix: owned, bounds-checked DP tables
//
// ✨ Why sentalign?
//
//   - Deterministic: fixed tie-break order, byte-identical output per input
//   - Safe: no panics on user input, explicit budget for table size
//   - Pure Go: no cgo, no global state, safe to call from many goroutines
//
// Quick example:
//
//	a := []int{12, 8, 40, 3} // lengths of source sentences
//	b := []int{20, 41, 2}    // lengths of translated sentences
//	ga, gb, err := sentalign.Align(a, b)
//	// ga = [[0 1] [2] [3]]
//	// gb = [[0] [1] [2]]
//
// The caller decides how segments are measured (characters, words) and is
// responsible for cutting long documents at fixed anchors and aligning each
// block independently; see package text and cmd/sentalign.
package sentalign
