package check

import (
	"context"
	"iter"
)

// First returns the first item of seq satisfying pred. Cancellation is
// observed before the first pull and between pulls; a canceled scan
// reports no match.
func First[T any](ctx context.Context, seq iter.Seq[T], pred func(T) bool) (T, bool) {
	var zero T
	if ctx.Err() != nil {
		return zero, false
	}
	for item := range seq {
		if pred(item) {
			return item, true
		}
		if ctx.Err() != nil {
			return zero, false
		}
	}
	return zero, false
}

// FirstAcross applies First to the sequence of each source in order and
// returns the first match.
func FirstAcross[S any, T any](ctx context.Context, sources []S, seqOf func(S) iter.Seq[T], pred func(T) bool) (T, bool) {
	var zero T
	for _, src := range sources {
		if item, ok := First(ctx, seqOf(src), pred); ok {
			return item, true
		}
		if ctx.Err() != nil {
			return zero, false
		}
	}
	return zero, false
}
