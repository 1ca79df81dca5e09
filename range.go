package lazyseq

import "iter"

// Bound selects whether a range boundary includes its endpoint.
type Bound int8

// Boundary modes for range queries. Every boundary of a range query is
// qualified independently.
const (
	Inclusive Bound = iota
	Exclusive
)

func (b Bound) String() string {
	if b == Inclusive {
		return "inclusive"
	}
	return "exclusive"
}

// RangeEntries returns an iterator over all (index, term) entries of the
// sequence, starting at index 0.
//
// The iteration is infinite; consumers stop it by breaking out of the
// range loop. Each call starts a fresh traversal, and independent
// traversals interact only through the shared memo.
func (s *Seq) RangeEntries() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := 0; ; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// EachEntry visits (index, term) entries in index order, starting at 0.
//
// The traversal is unbounded; it stops at the first callback error and
// returns that error to the caller. A callback that never errs does not
// return.
func (s *Seq) EachEntry(f func(index int, term int64) error) error {
	for i := 0; ; i++ {
		if err := f(i, s.At(i)); err != nil {
			return err
		}
	}
}

// Slice returns the terms for indices in the requested range, each
// boundary independently inclusive or exclusive.
//
// The result is empty whenever the effective range is, e.g. for
// start > end or for a point range with an exclusive boundary.
func (s *Seq) Slice(start, end int, startMode, endMode Bound) []int64 {
	if startMode == Exclusive {
		start++
	}
	if endMode == Inclusive {
		end++
	}
	terms := []int64{}
	for i := start; i < end; i++ {
		terms = append(terms, s.At(i))
	}
	return terms
}

// RangeBelow returns an iterator over all (index, term) entries whose
// term lies below the given bound, or at it for an inclusive mode.
//
// Terms are assumed to ascend; the scan stops at the first term
// exceeding the effective bound.
func (s *Seq) RangeBelow(upper int64, mode Bound) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := 0; ; i++ {
			term := s.At(i)
			if term > upper || (term == upper && mode == Exclusive) {
				return
			}
			if !yield(i, term) {
				return
			}
		}
	}
}

// TermsBelow returns an iterator over all terms below the given bound,
// or at it for an inclusive mode. See RangeBelow.
func (s *Seq) TermsBelow(upper int64, mode Bound) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, term := range s.RangeBelow(upper, mode) {
			if !yield(term) {
				return
			}
		}
	}
}

// RangeBetween returns an iterator over all (index, term) entries whose
// term lies between the two bounds, each boundary independently
// inclusive or exclusive. The common qualification is a half-open
// interval: lower inclusive, upper exclusive.
//
// Terms are assumed to ascend; entries below the effective lower bound
// are skipped, and the scan stops at the first term exceeding the
// effective upper bound.
func (s *Seq) RangeBetween(lower, upper int64, lowerMode, upperMode Bound) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i, term := range s.RangeBelow(upper, upperMode) {
			if term < lower || (term == lower && lowerMode == Exclusive) {
				continue
			}
			if !yield(i, term) {
				return
			}
		}
	}
}

// TermsBetween returns an iterator over all terms between the two
// bounds. See RangeBetween.
func (s *Seq) TermsBetween(lower, upper int64, lowerMode, upperMode Bound) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, term := range s.RangeBetween(lower, upper, lowerMode, upperMode) {
			if !yield(term) {
				return
			}
		}
	}
}
