package factory

import "gonum.org/v1/gonum/stat/distuv"

// successCDF is P(successes ≤ k) for n trials failing with probability q.
func successCDF(n uint64, q float64, k uint64) float64 {
	d := distuv.Binomial{N: float64(n), P: 1 - q}

	return d.CDF(float64(k))
}

// successQuantile returns the smallest k in [0, n] such that
// P(successes ≤ k) ≥ alpha.
func successQuantile(n uint64, q, alpha float64) uint64 {
	if alpha <= 0 {
		return 0
	}
	lo, hi := uint64(0), n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if successCDF(n, q, mid) >= alpha {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// quantileAtLeast reports successQuantile(n, q, alpha) ≥ k with one CDF
// evaluation.
func quantileAtLeast(n uint64, q, alpha float64, k uint64) bool {
	switch {
	case k == 0:
		return true
	case k > n || alpha <= 0:
		return false
	}

	return successCDF(n, q, k-1) < alpha
}
