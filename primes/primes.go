// SPDX-License-Identifier: MIT

package primes

// Classifier reports whether a value should be treated as prime.
// IsPrime is the default; Never is useful to neutralize sign flipping.
type Classifier func(n int) bool

// Compile-time check that the package predicates satisfy Classifier.
var (
	_ Classifier = IsPrime
	_ Classifier = Never
)

// IsPrime reports whether n is prime using trial division.
//
// Implementation:
//   - Stage 1: reject n ≤ 1, accept 2, reject other evens.
//   - Stage 2: test odd divisors i while i ≤ n/i (same bound as i*i ≤ n,
//     but without overflow for n close to MaxInt).
//
// Complexity: O(√n) time, O(1) space.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// Never is a Classifier that treats every value as non-prime.
func Never(int) bool { return false }

// Sieve returns a table of length limit+1 where table[k] reports primality of k.
// A negative limit yields an empty table.
// Complexity: O(limit log log limit) time, O(limit) space.
func Sieve(limit int) []bool {
	if limit < 0 {
		return []bool{}
	}
	table := make([]bool, limit+1)
	for k := 2; k <= limit; k++ {
		table[k] = true
	}
	for p := 2; p <= limit/p; p++ {
		if !table[p] {
			continue
		}
		for k := p * p; k <= limit; k += p {
			table[k] = false
		}
	}

	return table
}
