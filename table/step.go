package table

import (
	"github.com/openddlab/donorpipe/types"
)

// Step processes one record during table construction. Steps are applied in
// declared order; returning keep=false drops the record. Steps must be pure -
// they receive a clone of the upstream record and may mutate or replace it.
type Step func(r *types.Record) (out *types.Record, keep bool)

// Filter adapts a predicate to a Step
func Filter(pred func(*types.Record) bool) Step {
	return func(r *types.Record) (*types.Record, bool) {
		return r, pred(r)
	}
}

// Transform adapts a record transform to a Step
func Transform(fn func(*types.Record) *types.Record) Step {
	return func(r *types.Record) (*types.Record, bool) {
		return fn(r), true
	}
}
