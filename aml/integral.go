package aml

import (
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

// Exp is the exponent used in approximate max pooling.
// According to the paper, 10 is a good choice.
const Exp = 10.0

// IntegralImage is a channelwise summed-area table of a feature map
// whose entries were raised to a power before accumulation.
// It is immutable once built.
type IntegralImage struct {
	Image *rimg64.Multi
	// Exp is the exponent the entries were raised to.
	Exp float64
}

// Integral computes the channelwise integral image of f,
// raising each entry to the power exp first.
// The entry at (x, y, k) of the result is the sum of powered entries
// over the rectangle from the origin to (x, y) inclusive.
// Assumes that f contains no negative entries.
// Any NaN or negative accumulator is replaced with zero.
func Integral(f *rimg64.Multi, exp float64) *IntegralImage {
	g := rimg64.NewMulti(f.Width, f.Height, f.Channels)
	for i := 0; i < f.Width; i++ {
		for j := 0; j < f.Height; j++ {
			for k := 0; k < f.Channels; k++ {
				g.Set(i, j, k, math.Pow(f.At(i, j, k), exp))
			}
		}
	}
	// Cumulative sum along x then along y, per channel.
	for j := 0; j < g.Height; j++ {
		for k := 0; k < g.Channels; k++ {
			for i := 1; i < g.Width; i++ {
				g.Set(i, j, k, g.At(i, j, k)+g.At(i-1, j, k))
			}
		}
	}
	for i := 0; i < g.Width; i++ {
		for k := 0; k < g.Channels; k++ {
			for j := 1; j < g.Height; j++ {
				g.Set(i, j, k, g.At(i, j, k)+g.At(i, j-1, k))
			}
		}
	}
	for idx, x := range g.Elems {
		if x < 0 || math.IsNaN(x) {
			g.Elems[idx] = 0
		}
	}
	return &IntegralImage{g, exp}
}
