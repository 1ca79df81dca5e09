package lazyseq

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// TermFunc computes the term of a sequence at a given index.
// Implementations must be pure and total over all non-negative indices.
type TermFunc func(index int) int64

// Seq is a lazy, memoized, conceptually infinite sequence of integer terms.
//
// A Seq is permanently bound to exactly one term source, chosen at
// construction time with FromFunc or FromProducer. Terms are computed on
// first access and memoized for the lifetime of the instance; memoized
// entries are never evicted or overwritten.
//
// The two source kinds differ only in their access cost:
//
//	Operation       |  FromFunc      |  FromProducer
//	----------------+----------------+----------------------
//	At(k), uncached |  O(1) calls    |  drains source to k
//	At(k), cached   |  O(1)          |  O(1)
//
// All value-bounded operations (TermsBelow, TermsBetween and friends)
// additionally assume that terms ascend with increasing index. The
// package does not verify this; handing a non-ascending sequence to a
// value-bounded operation may loop forever.
//
// A Seq is not safe for concurrent use.
type Seq struct {
	fn     TermFunc     // term source, function kind
	next   func() int64 // term source, producer kind
	parent *Seq         // set for shifted views, both sources nil then
	offset int
	memo   map[int]int64 // sparse memo, function kind only
	filled []int64       // contiguous memo, producer kind only
}

// FromFunc creates a sequence whose term at index i is f(i).
//
// The function must be pure and total over non-negative indices; it is
// consulted at most once per index, in whatever order indices are
// requested.
func FromFunc(f TermFunc) *Seq {
	assert(f != nil, "FromFunc requires a non-nil term function")
	return &Seq{
		fn:   f,
		memo: make(map[int]int64),
	}
}

// FromProducer creates a sequence whose terms are pulled from a one-shot
// producer, starting at index 0.
//
// The producer must yield terms in ascending order and is consumed at
// most once; it is never restarted. Accessing index k drains the
// producer until k+1 terms have been memoized. A producer that never
// reaches the requested index blocks the access forever; there is no
// timeout, callers needing bounded latency must impose an external
// iteration cap.
func FromProducer(next func() int64) *Seq {
	assert(next != nil, "FromProducer requires a non-nil producer")
	return &Seq{next: next}
}

// At returns the term at the given index.
//
// Repeated calls for the same index return the same value without
// recomputation. At panics with ErrInvalidIndex for negative indices;
// Term is the checked variant.
func (s *Seq) At(index int) int64 {
	if index < 0 {
		panic(ErrInvalidIndex)
	}
	if s.parent != nil {
		return s.parent.At(index + s.offset)
	}
	if s.fn != nil {
		if term, ok := s.memo[index]; ok {
			return term
		}
		term := s.fn(index)
		s.memo[index] = term
		return term
	}
	if index >= len(s.filled) {
		T().Debugf("sequence drains producer for terms %d…%d", len(s.filled), index)
		for len(s.filled) <= index {
			s.filled = append(s.filled, s.next())
		}
	}
	return s.filled[index]
}

// Term returns the term at the given index, or ErrInvalidIndex for a
// negative index.
func (s *Seq) Term(index int) (int64, error) {
	if index < 0 {
		return 0, ErrInvalidIndex
	}
	return s.At(index), nil
}

// Shift returns a derived view of s with indices renumbered by a fixed
// non-negative offset: the view's term at index i is s.At(i + offset).
//
// Views carry no memo of their own; every access delegates to the
// original sequence, so memoized terms are shared through it. Shifting a
// view again collapses into a single view over the original, keeping
// access cost independent of how often a sequence has been re-shifted.
func (s *Seq) Shift(offset int) *Seq {
	assert(offset >= 0, "Shift requires a non-negative offset")
	if offset == 0 {
		return s
	}
	if s.parent != nil {
		return &Seq{parent: s.parent, offset: s.offset + offset}
	}
	return &Seq{parent: s, offset: offset}
}
