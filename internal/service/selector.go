package service

import "math"

// Predicate reports whether an item should be excluded from selection.
type Predicate[T any] func(T) bool

// Select returns the candidate whose metric is closest to target, skipping
// candidates any exclusion predicate matches. When every candidate is
// excluded the unfiltered list is used, so Select only reports false when
// candidates is empty. Ties go to the earliest candidate.
func Select[T any](candidates []T, target float64, metric func(T) float64, exclusions ...Predicate[T]) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}

	pool := filter(candidates, exclusions)
	if len(pool) == 0 {
		pool = candidates
	}

	best := pool[0]
	bestDist := math.Abs(metric(best) - target)
	for _, c := range pool[1:] {
		if d := math.Abs(metric(c) - target); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

func filter[T any](candidates []T, exclusions []Predicate[T]) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if !excluded(c, exclusions) {
			out = append(out, c)
		}
	}
	return out
}

func excluded[T any](item T, exclusions []Predicate[T]) bool {
	for _, p := range exclusions {
		if p(item) {
			return true
		}
	}
	return false
}
