// Package text aligns sequences of weighted regions and delimited strings on
// top of the length-based engine.
//
// A region is anything with a Weight (its length in words, characters, ...).
// AlignRegions maps the index groups produced by the engine back to the
// regions themselves.
//
// AlignText works on plain strings: "||" marks an anchor, a synchronisation
// point that both texts share and that no alignment may cross, and "|" marks
// a boundary between alignable regions. Both may be surrounded by white-space.
//
//	pairs, err := text.AlignText(
//	  "The quick brown fox | jumps || over the lazy dog",
//	  "Den kvikke brune reven | hopper || elegant | over den trege hunden")
//	// pairs[2] == [2]string{"over the lazy dog", "elegant over den trege hunden"}
package text
