package seqs

import "iter"

// From yields the elements of s in order.
func From[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Windows yields every contiguous sub-slice of s with the given size.
// The yielded slices alias s and must not be modified.
// Nothing is yielded when size is not positive or larger than len(s).
func Windows[T any](s []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		for i := 0; i+size <= len(s); i++ {
			if !yield(s[i : i+size : i+size]) {
				return
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Pairs yields each element of seq together with the element that follows it.
func Pairs[T any](seq iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return func(yield func(Pair[T, T]) bool) {
		var prev T
		first := true
		for v := range seq {
			if first {
				prev, first = v, false
				continue
			}
			if !yield(Pair[T, T]{prev, v}) {
				return
			}
			prev = v
		}
	}
}

func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}
