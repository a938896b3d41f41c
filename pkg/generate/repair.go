package generate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// dayHours is the fixed daily time budget every generated row must close.
const dayHours = 24.0

// GPA bounds for the clipped score column.
const (
	gpaMin = 0.0
	gpaMax = 4.0
)

// repairTime enforces the 24-hour budget on one sampled row, in place,
// and returns the residual (physical activity) hours. The stage order is
// load-bearing: clip negatives first, then sum, then either rescale into
// the budget (residual 0) or let the residual absorb the slack, then
// round everything to one decimal. Rounding happens after the sum is
// closed, so the written values can drift from 24 by a few tenths; that
// drift is cosmetic and deliberately not re-normalized.
func (g *Generator) repairTime(vec []float64) float64 {
	var hours [4]float64
	for i, idx := range g.timeIdx {
		v := vec[idx]
		if v < 0 {
			v = 0
		}
		hours[i] = v
	}

	sum := floats.Sum(hours[:])

	var residual float64
	if sum > dayHours {
		factor := dayHours / sum
		for i := range hours {
			hours[i] *= factor
		}
		residual = 0 // no slack left for the residual activity
	} else {
		residual = dayHours - sum
	}

	for i, idx := range g.timeIdx {
		vec[idx] = round1(hours[i])
	}
	return round1(residual)
}

// repairNumerics cleans the non-time numeric columns in place: GPA is
// clipped into [0, 4] and rounded to two decimals, Age is rounded to a
// whole number. Any other numeric column passes through unrepaired, the
// same way the seed's unknown numerics are modeled but not constrained.
func (g *Generator) repairNumerics(vec []float64) {
	if g.gpaIdx >= 0 {
		v := vec[g.gpaIdx]
		if v < gpaMin {
			v = gpaMin
		}
		if v > gpaMax {
			v = gpaMax
		}
		vec[g.gpaIdx] = round2(v)
	}
	if g.ageIdx >= 0 {
		vec[g.ageIdx] = math.Round(vec[g.ageIdx])
	}
}

// repairCategoricals projects each sampled categorical component onto its
// column's observed category set: round to the nearest integer code, then
// clamp into the codec's range. The resulting code is stored back in the
// vector; decoding to the category string happens at emission. This
// round-trip is a nearest-neighbor projection, not an inverse.
func (g *Generator) repairCategoricals(vec []float64) {
	for _, cat := range g.categoricals {
		code := int(math.Round(vec[cat.modeledIdx]))
		if code < 0 {
			code = 0
		}
		if max := cat.size - 1; code > max {
			code = max
		}
		vec[cat.modeledIdx] = float64(code)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
