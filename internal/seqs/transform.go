package seqs

import "iter"

func Map[S any, T any](seq iter.Seq[S], f func(S) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Skip drops the first n elements of seq.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Fold reduces seq into a single value, starting from initial.
func Fold[T any, A any](seq iter.Seq[T], initial A, f func(A, T) A) A {
	acc := initial
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}
