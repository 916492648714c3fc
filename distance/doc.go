// Package distance scores how plausible it is that two groups of segments are
// mutual translations, given only their lengths.
//
// The model is the one published by Gale and Church: the length of a
// translation is assumed to be normally distributed around the length of the
// source with a variance proportional to that length. A length pair is turned
// into a two-sided z-score, the z-score into a tail probability, and the
// probability into an integer cost of -100·ln(p). Operations other than a
// plain 1–1 match add a fixed, empirically calibrated penalty.
//
// ⚙️ Usage:
//
//	c := distance.Cost(12, 14, 0, 0) // substitution of a 12-char by a 14-char segment
//	m := distance.GaleChurch{}       // the same model behind the Model interface
//	_ = m.Cost(12, 7, 0, 8)          // expansion: 12 ↔ (7, 8)
//
// All functions are pure and safe for concurrent use.
package distance
