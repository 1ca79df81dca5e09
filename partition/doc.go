/*
Package partition enumerates fixed-size tuples of sequence terms that
sum to a target value.

The enumerators treat a lazyseq.Seq as a pool of candidate parts and
lazily generate every way of writing a target as a sum of terms, with
parts either pairwise distinct (SetsWithSum) or freely repeatable
(MultisetsWithSum). With the positive integers as the underlying
sequence this yields the classical integer partitions into a fixed
number of parts; with the primes, prime partitions, and so on for any
strictly increasing positive sequence.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package partition

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseq'
func tracer() tracing.Trace {
	return tracing.Select("lazyseq")
}
