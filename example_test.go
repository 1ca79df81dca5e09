package lazyseq_test

import (
	"fmt"

	"github.com/npillmayer/lazyseq"
)

func ExampleSeq_Slice() {
	terms := lazyseq.PositiveIntegers.Slice(0, 4, lazyseq.Inclusive, lazyseq.Exclusive)
	fmt.Println(terms)
	// Output: [1 2 3 4]
}

func ExampleSeq_TermsBelow() {
	for p := range lazyseq.Primes.TermsBelow(10, lazyseq.Inclusive) {
		fmt.Println(p)
	}
	// Output:
	// 2
	// 3
	// 5
	// 7
}

func ExampleFromFunc() {
	squares := lazyseq.FromFunc(func(index int) int64 {
		n := int64(index) + 1
		return n * n
	})
	fmt.Println(squares.Slice(0, 5, lazyseq.Inclusive, lazyseq.Exclusive))
	// Output: [1 4 9 16 25]
}
