package partition

import (
	"iter"

	"github.com/npillmayer/lazyseq"
)

// Index advance applied below a chosen part: stepping past the part's
// index makes parts pairwise distinct, staying at it permits reuse.
const (
	distinctParts = 1
	repeatedParts = 0
)

// SetsWithSum returns an iterator over every strictly increasing tuple
// of exactly size distinct terms of s summing to sum.
//
// Tuples are yielded in lexicographic order: ascending by first part,
// then recursively so. Every yielded slice is freshly allocated and may
// be retained by the caller. For size 0 the enumeration yields a single
// empty tuple when sum is 0, and nothing otherwise.
//
// The terms of s must be strictly increasing and positive, and size and
// sum must be non-negative; these are caller obligations, not checked
// conditions. A non-ascending sequence may cause the enumeration to
// loop forever.
func SetsWithSum(s *lazyseq.Seq, size int, sum int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		tracer().Debugf("enumerating %d-sets of terms with sum %d", size, sum)
		withSum(s, size, sum, distinctParts, yield)
	}
}

// MultisetsWithSum returns an iterator over every non-decreasing tuple
// of exactly size terms of s summing to sum, with terms freely
// repeatable.
//
// Apart from permitting repetition it behaves exactly like SetsWithSum,
// including enumeration order and preconditions.
func MultisetsWithSum(s *lazyseq.Seq, size int, sum int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		tracer().Debugf("enumerating %d-multisets of terms with sum %d", size, sum)
		withSum(s, size, sum, repeatedParts, yield)
	}
}

// withSum recursively enumerates tuples, choosing the first part from
// all terms not exceeding the remaining sum and recursing on a shifted
// view of the sequence for the rest. It reports whether the consumer
// wants the enumeration to continue.
func withSum(s *lazyseq.Seq, size int, sum int64, step int, yield func([]int64) bool) bool {
	if size == 0 {
		if sum != 0 {
			return true
		}
		return yield([]int64{})
	}
	for index, first := range s.RangeBelow(sum, lazyseq.Inclusive) {
		rest := s.Shift(index + step)
		more := withSum(rest, size-1, sum-first, step, func(tail []int64) bool {
			tuple := make([]int64, 0, size)
			tuple = append(tuple, first)
			tuple = append(tuple, tail...)
			return yield(tuple)
		})
		if !more {
			return false
		}
	}
	return true
}
