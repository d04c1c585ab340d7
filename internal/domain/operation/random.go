package operation

// Rand is the uniform source every probabilistic rule draws from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Roll reports whether a draw lands under p.
func Roll(r Rand, p float64) bool {
	return r.Float64() < p
}

// IntBetween returns a uniform int in [lo, hi].
func IntBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func FloatBetween(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func Pick[T any](r Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.IntN(len(items))], true
}
