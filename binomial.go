package mirrorverse

// Binomial returns the binomial coefficient C(n, k), or 0 when k > n.
//
// It is computed as a running product-and-divide, which stays exact in
// integer arithmetic (every prefix product is divisible by i+1) and does not
// overflow for the curve degrees this package is meant for (≤ ~20).
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	result := uint64(1)
	for i := 0; i < k; i++ {
		result *= uint64(n - i)
		result /= uint64(i + 1)
	}
	return result
}
