package collections

// Capacity policy: bucket and entry arrays are always sized to a prime, which
// keeps simple modulo-based bucket selection from clustering on patterned
// hash codes. Small sizes are covered densely, then the table grows
// geometrically (~1.2x) up to the largest capacity we support.
var primes = []int{
	3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131, 163, 197, 239, 293,
	353, 431, 521, 631, 761, 919, 1103, 1327, 1597, 1931, 2333, 2801, 3371,
	4049, 4861, 5839, 7013, 8419, 10103, 12143, 14591, 17519, 21023, 25229,
	30293, 36353, 43627, 52361, 62851, 75431, 90523, 108631, 130363, 156437,
	187751, 225307, 270371, 324449, 389357, 467237, 560689, 672827, 807403,
	968897, 1162687, 1395263, 1674319, 2009191, 2411033, 2893249, 3471899,
	4166287, 4999559, 5999471, 7199369,
}

// maxPrimeCapacity is the largest supported array length. It is itself
// prime, so growth clamped to it still satisfies the prime-capacity
// invariant.
const maxPrimeCapacity = 0x7FFFFFC3

// minimumGrowth is the floor added on top of doubling so that the smallest
// table steps don't thrash through tiny reallocations.
const minimumGrowth = 4

func isPrime(candidate int) bool {
	if candidate&1 == 0 {
		return candidate == 2
	}
	for divisor := 3; divisor*divisor <= candidate; divisor += 2 {
		if candidate%divisor == 0 {
			return false
		}
	}
	return true
}

// getPrime returns the smallest supported prime >= min.
// Requesting a capacity beyond maxPrimeCapacity is a caller bug and panics.
func getPrime(min int) int {
	if min < 0 || min > maxPrimeCapacity {
		panic("collections: capacity exceeds maximum supported size")
	}
	for _, p := range primes {
		if p >= min {
			return p
		}
	}
	// Past the precomputed table; scan odd candidates.
	for candidate := min | 1; candidate <= maxPrimeCapacity; candidate += 2 {
		if isPrime(candidate) {
			return candidate
		}
	}
	return maxPrimeCapacity
}

// expandPrime returns the capacity to grow to from oldCount occupied slots:
// doubling, with a small floor, clamped to the maximum supported size.
func expandPrime(oldCount int) int {
	newSize := max(2*oldCount, oldCount+minimumGrowth)
	if newSize > maxPrimeCapacity {
		if oldCount >= maxPrimeCapacity {
			panic("collections: capacity exceeds maximum supported size")
		}
		return maxPrimeCapacity
	}
	return getPrime(newSize)
}
