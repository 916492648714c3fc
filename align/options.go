package align

import "github.com/katalvlaran/sentalign/distance"

// ---------- Defaults (single source of truth) ----------

// DefaultMaxCells bounds (nx+1)·(ny+1). Both tables together take about
// 24 bytes per cell, so the default stays below half a gigabyte.
const DefaultMaxCells = 1 << 24

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicModelNil        = "align: WithModel: model must not be nil"
	panicMaxCellsInvalid = "align: WithMaxCells: limit must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	model    distance.Model // DefaultModel
	maxCells int            // DefaultMaxCells
}

// DefaultModel is the Gale–Church length model.
var DefaultModel distance.Model = distance.GaleChurch{}

// WithModel replaces the cost model. The engine calls m.Cost with the
// argument layout documented on distance.Model.
//
// Panics when m is nil.
func WithModel(m distance.Model) Option {
	if m == nil {
		panic(panicModelNil)
	}

	return func(o *Options) { o.model = m }
}

// WithMaxCells caps the number of DP cells, (len(x)+1)·(len(y)+1).
// Larger inputs fail with ErrTableTooLarge before allocation.
//
// Panics when limit <= 0.
func WithMaxCells(limit int) Option {
	if limit <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = limit }
}

// gatherOptions applies user setters over the documented defaults.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		model:    DefaultModel,
		maxCells: DefaultMaxCells,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
