package lazyseq

import "github.com/npillmayer/lazyseq/prime"

// Predefined sequences with process lifetime. Both are created once at
// package initialization and must not be reassigned; their memos still
// grow lazily on demand. As with every Seq, they are not safe for
// concurrent use.
var (
	// PositiveIntegers is the sequence 1, 2, 3, …; its term at index n
	// is n+1.
	PositiveIntegers = FromFunc(func(index int) int64 {
		return int64(index) + 1
	})

	// Primes is the ascending sequence of prime numbers 2, 3, 5, 7, …
	Primes = FromProducer(prime.Stream())
)
