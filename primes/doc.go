// Package primes classifies integers as prime or composite by trial division.
//
// What:
//
//	IsPrime answers "is n prime?" for any int, treating every value ≤ 1 as
//	non-prime, 2 as the only even prime, and testing odd divisors up to √n.
//
// Why:
//
//	The zigzag traversal flips the sign of every prime cell it visits. It does
//	so through a Classifier, so callers (and tests) can swap the predicate
//	without touching the traversal itself.
//
// Complexity:
//
//   - IsPrime: O(√n) time, O(1) space.
//   - Sieve:   O(n log log n) time, O(n) space (reference oracle).
package primes
