// SPDX-License-Identifier: MIT

// Package matrix provides the owned, bounds-checked row-major grids used as
// dynamic-programming tables by the alignment engine.
//
// 🚀 What is inside?
//
//	Dense[T] is a flat buffer of rows*cols cells addressed by the explicit
//	formula i*cols + j. It is sized once at construction and never grows.
//	  • At/Set return ErrOutOfRange instead of panicking
//	  • CheckCells validates a requested shape against a cell budget
//	    before anything is allocated (ErrTooLarge)
//	  • Fill resets every cell to one value in O(rows*cols)
//
// ⚙️ Usage:
//
//	costs, err := matrix.NewDense[int](nx+1, ny+1)
//	if err != nil {
//	  return err
//	}
//	_ = costs.Set(0, 0, 0)
//	v, err := costs.At(i, j)
//
// Ownership:
//
//	A grid belongs to the call that created it. Nothing in this package keeps
//	global state, so independent grids may be used from independent goroutines
//	without locking; a single grid is not safe for concurrent mutation.
package matrix
