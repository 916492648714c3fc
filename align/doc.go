// Package align finds the minimum-cost sequence of length-based alignment
// operations between two sequences of segment lengths.
//
// 🚀 What is it?
//
//	A generalized edit distance over six transitions per cell:
//	  • Substitution  1–1
//	  • Deletion      1–0
//	  • Insertion     0–1
//	  • Contraction   2–1
//	  • Expansion     1–2
//	  • Melding       2–2
//	Each transition is priced by a distance.Model (Gale–Church by default).
//	The engine fills an (nx+1)×(ny+1) cost table and a parallel predecessor
//	table, then backtraces from (nx, ny) to (0, 0).
//
// ✨ Key properties:
//   - deterministic: ties resolve Substitution > Deletion > Insertion >
//     Contraction > Expansion > Melding
//   - total: empty inputs degenerate to a run of insertions or deletions
//   - bounded: WithMaxCells caps table size, failing with ErrTableTooLarge
//     before anything is allocated
//
// ⚙️ Usage:
//
//	ops, err := align.Align([]int{12, 8, 40}, []int{20, 41})
//	for _, op := range ops {
//	  fmt.Println(op.Kind, op.Cost)
//	}
//
// Performance:
//
//   - Time:   O(nx·ny)
//   - Memory: O(nx·ny) for the tables, O(nx+ny) for the operation list
package align
