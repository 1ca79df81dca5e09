/*
Package prime provides a deterministic primality predicate and an
ascending stream of prime numbers.

The predicate is the collaborator behind the predefined prime sequence
of the parent package, but it is useful on its own.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package prime

import "math/big"

// IsPrime reports whether n is a prime number. Numbers below 2 are not
// prime.
//
// The test is exact for the full int64 range: with zero extra
// Miller-Rabin rounds, big.Int's ProbablyPrime applies a base-2
// pseudoprime test plus a Lucas test, which is proven deterministic for
// all 64-bit inputs.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(n).ProbablyPrime(0)
}

// Stream returns a one-shot producer of the ascending primes 2, 3, 5, …
//
// Every call to the returned function yields the next prime. The
// producer matches the contract of lazyseq.FromProducer: forward-only,
// ascending, never restarted.
func Stream() func() int64 {
	candidate := int64(1)
	return func() int64 {
		for {
			if candidate < 3 {
				candidate++
			} else {
				candidate += 2
			}
			if IsPrime(candidate) {
				return candidate
			}
		}
	}
}
