package aml

import (
	"math"

	"github.com/gonum/floats"
)

// Sum computes the per-channel sum of the powered feature entries in a
// by inclusion-exclusion on the four corners.
// Negative values from floating-point cancellation are clamped to zero.
func (ii *IntegralImage) Sum(a Area) []float64 {
	g := ii.Image
	v := make([]float64, g.Channels)
	for k := 0; k < g.Channels; k++ {
		s := g.At(a.Right, a.Bottom, k)
		if a.Left > 0 {
			s -= g.At(a.Left-1, a.Bottom, k)
		}
		if a.Top > 0 {
			s -= g.At(a.Right, a.Top-1, k)
		}
		if a.Left > 0 && a.Top > 0 {
			s += g.At(a.Left-1, a.Top-1, k)
		}
		if s < 0 || math.IsNaN(s) {
			s = 0
		}
		v[k] = s
	}
	return v
}

// Score computes the cosine similarity between the query vector and
// the approximate max-pooled descriptor of the area.
// The windowed sum of powered entries is taken to the power 1/Exp,
// which tends to the channelwise maximum as Exp grows,
// then L2-normalized and compared to the query by dot product.
// The result is clamped to [-1, 1] against floating-point error.
// An all-zero window has no direction and scores NaN;
// NaN compares false against any score and is never selected.
func (ii *IntegralImage) Score(query []float64, a Area) float64 {
	pool := ii.Sum(a)
	for k := range pool {
		pool[k] = math.Pow(pool[k], 1/ii.Exp)
	}
	floats.Scale(1/floats.Norm(pool, 2), pool)
	score := floats.Dot(pool, query)
	return math.Min(math.Max(score, -1), 1)
}
