// Package optest provides deterministic random sources for tests.
package optest

// Rand replays scripted draws. Floats and ints are consumed independently;
// when a script runs out the last value repeats, or 0 if it was empty.
type Rand struct {
	Floats []float64
	Ints   []int

	fi int
	ii int
}

func NewRand(floats ...float64) *Rand {
	return &Rand{Floats: floats}
}

func (r *Rand) WithInts(ints ...int) *Rand {
	r.Ints = ints
	return r
}

func (r *Rand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	if r.fi >= len(r.Floats) {
		return r.Floats[len(r.Floats)-1]
	}
	v := r.Floats[r.fi]
	r.fi++
	return v
}

// IntN returns the next scripted int reduced into [0, n).
func (r *Rand) IntN(n int) int {
	if n <= 0 || len(r.Ints) == 0 {
		return 0
	}
	var v int
	if r.ii >= len(r.Ints) {
		v = r.Ints[len(r.Ints)-1]
	} else {
		v = r.Ints[r.ii]
		r.ii++
	}
	if v < 0 {
		v = -v
	}
	return v % n
}

// Always returns a source whose every float draw is v.
func Always(v float64) *Rand {
	return &Rand{Floats: []float64{v}}
}
