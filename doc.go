/*
Package lazyseq offers lazy, memoized, conceptually infinite sequences of
integers.

Sequences

A sequence in the sense of this package is an ordered, 0-indexed,
unbounded collection of integer terms. Clients never materialize it:
terms are computed on demand and memoized, so that number-theoretic
sequences like the positive integers or the primes can be handled as
first-class values without fixing an upper bound in advance.

A sequence is defined by exactly one of two kinds of term source: a pure
function from index to term, memoized sparsely, or a one-shot producer
yielding terms in ascending order from index 0, memoized contiguously so
that random index access becomes possible.

On top of single-term access the package provides lazy enumeration of
(index, term) entries, finite index-range slices with independently
inclusive or exclusive boundaries, and value-bounded scans which stop as
soon as the terms outgrow the requested bound. Value-bounded operations
assume ascending terms; this is a contract with the caller, not a
property the package verifies.

Sub-package partition builds combinatorial enumerators on top of these
range queries, and sub-package prime supplies the primality predicate
behind the predefined prime sequence.

All enumeration in this package is pull-based and single-threaded:
nothing is computed until a consumer asks for the next element, and
abandoning an iteration carries no cleanup obligation. Sequences are not
safe for concurrent use.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lazyseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeqError is an error type for the lazyseq module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrInvalidIndex is flagged whenever a sequence index is negative.
const ErrInvalidIndex = SeqError("sequence index is invalid")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
