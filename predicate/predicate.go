// Package predicate holds the integer predicates used by the filter demo.
//
// All predicates are pure, so a single value may be reused across any
// number of sequences.
package predicate

import (
	"golang.org/x/exp/constraints"

	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
)

// IsEven reports whether n is divisible by two.
func IsEven[N constraints.Integer](n N) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two. Negative odd numbers are odd.
func IsOdd[N constraints.Integer](n N) bool {
	return n%2 != 0
}

// GreaterThan returns a predicate matching values strictly above threshold.
func GreaterThan[N constraints.Integer](threshold N) zkriter.Predicate[N] {
	return func(n N) bool {
		return n > threshold
	}
}

// IsPrime tests n by trial division with odd divisors up to sqrt(n).
// 1 and below are not prime, 2 is, and every other even number is rejected
// without trying any divisor.
func IsPrime[N constraints.Integer](n N) bool {
	switch {
	case n <= 1:
		return false
	case n == 2:
		return true
	case n%2 == 0:
		return false
	}
	// i <= n/i is i*i <= n without overflowing N
	for i := N(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
